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

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetAllUsers handles GET /api/users (Shopkeeper only)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, users)
}

// UpdateUserRole handles PUT /api/users/{id} (Shopkeeper only)
func (h *UserHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "id")
	if targetID == "" {
		utils.ResponseBadRequest(w, "User ID is required")
		return
	}

	var req request.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.UpdateRole(r.Context(), targetID, &req); err != nil {
		h.handleServiceError(w, err, "update user role")
		return
	}

	utils.ResponseSuccess(w, response.StatusMessageResponse{
		Status:  "success",
		Message: "User role updated",
	})
}

// DeleteUser handles DELETE /api/users/{id} (Shopkeeper only)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "id")
	if targetID == "" {
		utils.ResponseBadRequest(w, "User ID is required")
		return
	}

	caller, ok := utils.GetSessionUser(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	if err := h.service.DeleteUser(r.Context(), caller, targetID); err != nil {
		h.handleServiceError(w, err, "delete user")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	code := statusForError(err)

	if code == http.StatusInternalServerError {
		h.log.Error("Failed to "+operation, zap.Error(err))
	} else {
		h.log.Warn(operation+" rejected", zap.Error(err), zap.Int("status", code))
	}

	utils.ResponseJSON(w, code, utils.MessageResponse{Message: clientMessage(err, code)})
}
