package usecase

import (
	"context"
	"fmt"

	"inventory-backend/internal/data/entity"
	"inventory-backend/internal/data/repository"
	"inventory-backend/internal/dto/request"
	"inventory-backend/internal/dto/response"
	"inventory-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetAllUsers(ctx context.Context) (*response.UserListResponse, error)
	UpdateRole(ctx context.Context, targetID string, req *request.UpdateRoleRequest) error
	DeleteUser(ctx context.Context, caller utils.SessionUser, targetID string) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (us *userService) GetAllUsers(ctx context.Context) (*response.UserListResponse, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		us.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("failed to get users")
	}

	// Hash never leaves the service layer
	list := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		list = append(list, response.UserToResponse(user))
	}

	return &response.UserListResponse{
		Status: "success",
		Users:  list,
	}, nil
}

func (us *userService) UpdateRole(ctx context.Context, targetID string, req *request.UpdateRoleRequest) error {
	// 1. Role must be one of the two known roles
	if !entity.ValidRole(req.Role) {
		us.log.Warn("Invalid role in update", zap.String("role", req.Role))
		return fmt.Errorf("Invalid role")
	}

	// 2. Parse target id
	id, err := uuid.Parse(targetID)
	if err != nil {
		us.log.Warn("Invalid user ID", zap.String("user_id", targetID), zap.Error(err))
		return fmt.Errorf("Invalid user ID")
	}

	// 3. Update; zero rows means no such user
	rows, err := us.userRepo.UpdateRole(ctx, id, entity.UserRole(req.Role))
	if err != nil {
		us.log.Error("Failed to update role", zap.Error(err), zap.String("user_id", targetID))
		return fmt.Errorf("failed to update role")
	}
	if rows == 0 {
		return fmt.Errorf("User not found")
	}

	us.log.Info("User role updated",
		zap.String("user_id", targetID),
		zap.String("role", req.Role),
	)

	return nil
}

func (us *userService) DeleteUser(ctx context.Context, caller utils.SessionUser, targetID string) error {
	id, err := uuid.Parse(targetID)
	if err != nil {
		us.log.Warn("Invalid user ID", zap.String("user_id", targetID), zap.Error(err))
		return fmt.Errorf("Invalid user ID")
	}

	// Self-targeting protection, independent of the role check
	if caller.ID == id {
		us.log.Warn("Self-deletion attempt", zap.String("user_id", targetID))
		return fmt.Errorf("You cannot delete your own account.")
	}

	rows, err := us.userRepo.Delete(ctx, id)
	if err != nil {
		us.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", targetID))
		return fmt.Errorf("failed to delete user")
	}
	if rows == 0 {
		return fmt.Errorf("User not found")
	}

	return nil
}
