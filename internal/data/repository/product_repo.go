package repository

import (
	"context"
	"fmt"

	"inventory-backend/internal/data/entity"
	"inventory-backend/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindAll(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, sku, category, stock, price,
		                      reorder_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.SKU,
		product.Category,
		product.Stock,
		product.Price,
		product.ReorderLevel,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("sku", product.SKU),
		)
		return fmt.Errorf("create product %s: %w", product.SKU, err)
	}

	return nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, sku, category, stock, price, reorder_level,
		       created_at, updated_at
		FROM products
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.SKU,
			&product.Category,
			&product.Stock,
			&product.Price,
			&product.ReorderLevel,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate products rows: %w", err)
	}

	return products, nil
}

// Update returns the number of rows affected; zero means no such product.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		UPDATE products
		SET name = $2, sku = $3, category = $4, stock = $5, price = $6,
		    reorder_level = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.SKU,
		product.Category,
		product.Stock,
		product.Price,
		product.ReorderLevel,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return 0, fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	return result.RowsAffected(), nil
}

// Delete returns the number of rows affected; zero means no such product.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return 0, fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	return result.RowsAffected(), nil
}
