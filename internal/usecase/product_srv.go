package usecase

import (
	"context"
	"fmt"
	"time"

	"inventory-backend/internal/data/entity"
	"inventory-backend/internal/data/repository"
	"inventory-backend/internal/dto/request"
	"inventory-backend/internal/dto/response"
	"inventory-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// lowStockThreshold marks a product as a low-stock item on the dashboard.
const lowStockThreshold = 10

type ProductService interface {
	Dashboard(ctx context.Context) (*response.DashboardResponse, error)
	Create(ctx context.Context, req *request.ProductRequest) error
	Update(ctx context.Context, productID string, req *request.ProductRequest) error
	Delete(ctx context.Context, productID string) error
}

type productService struct {
	productRepo repository.ProductRepository
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		log:         log,
	}
}

// Dashboard returns the full inventory plus aggregates computed in one pass.
func (ps *productService) Dashboard(ctx context.Context) (*response.DashboardResponse, error) {
	products, err := ps.productRepo.FindAll(ctx)
	if err != nil {
		ps.log.Error("Failed to load inventory", zap.Error(err))
		return nil, fmt.Errorf("failed to load inventory")
	}

	inventory := make([]response.ProductResponse, 0, len(products))
	categories := make(map[string]struct{})
	stats := response.InventoryStats{}

	for _, product := range products {
		inventory = append(inventory, response.ProductToResponse(product))

		stats.TotalProducts++
		if product.Stock <= lowStockThreshold {
			stats.LowStockItems++
		}
		stats.TotalValue += float64(product.Stock) * product.Price
		categories[product.Category] = struct{}{}
	}
	stats.TotalCategories = len(categories)

	return &response.DashboardResponse{
		Status:    "success",
		Inventory: inventory,
		Stats:     stats,
	}, nil
}

func (ps *productService) Create(ctx context.Context, req *request.ProductRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Product validation failed", zap.Any("errors", errs))
		return fmt.Errorf("All fields are required")
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		SKU:          req.SKU,
		Category:     req.Category,
		Stock:        *req.Stock,
		Price:        *req.Price,
		ReorderLevel: req.ReorderLevel,
	}

	if err := ps.productRepo.Create(ctx, product); err != nil {
		ps.log.Error("Failed to create product", zap.Error(err), zap.String("sku", req.SKU))
		return fmt.Errorf("failed to add product")
	}

	ps.log.Info("Product added",
		zap.String("product_id", product.ID.String()),
		zap.String("sku", product.SKU),
	)

	return nil
}

func (ps *productService) Update(ctx context.Context, productID string, req *request.ProductRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Product validation failed", zap.Any("errors", errs))
		return fmt.Errorf("All fields are required")
	}

	id, err := uuid.Parse(productID)
	if err != nil {
		ps.log.Warn("Invalid product ID", zap.String("product_id", productID), zap.Error(err))
		return fmt.Errorf("Invalid product ID")
	}

	product := &entity.Product{
		Base: entity.Base{
			ID:        id,
			UpdatedAt: time.Now(),
		},
		Name:         req.Name,
		SKU:          req.SKU,
		Category:     req.Category,
		Stock:        *req.Stock,
		Price:        *req.Price,
		ReorderLevel: req.ReorderLevel,
	}

	rows, err := ps.productRepo.Update(ctx, product)
	if err != nil {
		ps.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", productID))
		return fmt.Errorf("failed to update product")
	}
	if rows == 0 {
		return fmt.Errorf("Product not found")
	}

	return nil
}

func (ps *productService) Delete(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		ps.log.Warn("Invalid product ID", zap.String("product_id", productID), zap.Error(err))
		return fmt.Errorf("Invalid product ID")
	}

	rows, err := ps.productRepo.Delete(ctx, id)
	if err != nil {
		ps.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", productID))
		return fmt.Errorf("failed to delete product")
	}
	if rows == 0 {
		return fmt.Errorf("Product not found")
	}

	return nil
}
