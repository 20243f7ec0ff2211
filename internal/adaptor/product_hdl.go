package adaptor

import (
	"encoding/json"
	"net/http"

	"inventory-backend/internal/dto/request"
	"inventory-backend/internal/dto/response"
	"inventory-backend/internal/usecase"
	"inventory-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// Dashboard handles GET /api/products/dashboard (public)
func (h *ProductHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "load dashboard")
		return
	}

	utils.ResponseSuccess(w, dashboard)
}

// Create handles POST /api/products (Shopkeeper only)
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.Create(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "add product")
		return
	}

	utils.ResponseSuccess(w, response.StatusMessageResponse{
		Status:  "success",
		Message: "Product added successfully",
	})
}

// Update handles PUT /api/products/{id} (Shopkeeper only)
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required")
		return
	}

	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.Update(r.Context(), productID, &req); err != nil {
		h.handleServiceError(w, err, "update product")
		return
	}

	utils.ResponseSuccess(w, response.StatusMessageResponse{
		Status:  "success",
		Message: "Product updated successfully",
	})
}

// Delete handles DELETE /api/products/{id} (Shopkeeper only)
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required")
		return
	}

	if err := h.service.Delete(r.Context(), productID); err != nil {
		h.handleServiceError(w, err, "delete product")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *ProductHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	code := statusForError(err)

	if code == http.StatusInternalServerError {
		h.log.Error("Failed to "+operation, zap.Error(err))
	} else {
		h.log.Warn(operation+" rejected", zap.Error(err), zap.Int("status", code))
	}

	utils.ResponseJSON(w, code, utils.MessageResponse{Message: clientMessage(err, code)})
}
