package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"inventory-backend/internal/data/entity"
	"inventory-backend/internal/data/repository"
	"inventory-backend/internal/dto/request"
	"inventory-backend/internal/dto/response"
	"inventory-backend/pkg/mailer"
	"inventory-backend/pkg/token"
	"inventory-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// pgUniqueViolation is the SQLSTATE for a unique-constraint violation.
const pgUniqueViolation = "23505"

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*entity.Session, error)
	Logout(ctx context.Context, sessionToken string) error
	CurrentUser(ctx context.Context, sessionToken string) (*response.UserResponse, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) (preview string, err error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Advisory duplicate check; the unique constraint below is the
	// authoritative guard against the check-then-insert race
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return fmt.Errorf("Email already registered")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	// 4. Create user
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.UserRole(req.Role),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// Lost the race against a concurrent registration
			return fmt.Errorf("Email already registered")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
	)

	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*entity.Session, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("Login attempt for unknown email", zap.String("email", req.Email))
		return nil, fmt.Errorf("Email not registered")
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Incorrect password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("Incorrect password")
	}

	// 4. Create session snapshotting the identity. The insert is confirmed
	// before the response goes out, so the session is queryable on the
	// client's next request.
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Token:     uuid.New(),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return session, nil
}

// Logout is idempotent: destroying an absent session is not an error.
func (s *authService) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}

	if err := s.repo.Session.Revoke(ctx, sessionToken); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	return nil
}

// CurrentUser returns the session snapshot, or nil without error when the
// request carries no valid session.
func (s *authService) CurrentUser(ctx context.Context, sessionToken string) (*response.UserResponse, error) {
	if sessionToken == "" {
		return nil, nil
	}

	session, err := s.repo.Session.FindValidSession(ctx, sessionToken)
	if err != nil {
		s.log.Error("Failed to look up session", zap.Error(err))
		return nil, fmt.Errorf("failed to look up session")
	}
	if session == nil {
		return nil, nil
	}

	return &response.UserResponse{
		ID:    session.UserID.String(),
		Name:  session.Name,
		Email: session.Email,
		Role:  string(session.Role),
	}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) (string, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Forgot-password validation failed", zap.Any("errors", errs))
		return "", fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", req.Email))
		return "", fmt.Errorf("failed to find user")
	}
	if user == nil {
		return "", fmt.Errorf("No account with that email")
	}

	// 3. Record the issued token so redemption can be single-use
	validity := time.Duration(s.config.Reset.ExpiryMinutes) * time.Minute
	reset := &entity.PasswordReset{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(validity),
	}

	if err := s.repo.Reset.Create(ctx, reset); err != nil {
		s.log.Error("Failed to record password reset", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("failed to issue reset token")
	}

	// 4. Sign the token
	signed, err := token.Generate(user.ID, reset.ID, []byte(s.config.Reset.Secret), validity)
	if err != nil {
		s.log.Error("Failed to sign reset token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("failed to issue reset token")
	}

	resetLink := fmt.Sprintf("%s/reset-password.html?token=%s",
		strings.TrimRight(s.config.App.BaseURL, "/"), url.QueryEscape(signed))

	// 5. Deliver. Runs after all store mutations, so a mail failure leaves
	// nothing half-applied. Bounded; no retry.
	mailCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	preview, err := s.mail.SendPasswordReset(mailCtx, user.Email, resetLink)
	if err != nil {
		s.log.Error("Failed to send reset email", zap.Error(err), zap.String("email", user.Email))
		return "", fmt.Errorf("failed to send reset email")
	}

	s.log.Info("Password reset issued",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", reset.ExpiresAt),
	)

	return preview, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	// 1. Token is required
	if req.Token == "" {
		return fmt.Errorf("Token is required")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reset-password validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Verify signature and expiry
	claims, err := token.Verify(req.Token, []byte(s.config.Reset.Secret))
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			return fmt.Errorf("Reset token has expired")
		}
		return fmt.Errorf("Invalid token")
	}

	resetID, err := uuid.Parse(claims.ID)
	if err != nil {
		return fmt.Errorf("Invalid token")
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return fmt.Errorf("Invalid token")
	}

	// 3. Single-use: consuming an already-used or unknown jti fails
	consumed, err := s.repo.Reset.Consume(ctx, resetID)
	if err != nil {
		s.log.Error("Failed to consume reset token", zap.Error(err))
		return fmt.Errorf("failed to reset password")
	}
	if !consumed {
		return fmt.Errorf("Invalid token")
	}

	// 4. Hash and overwrite
	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	rows, err := s.repo.User.UpdatePassword(ctx, userID, hashedPassword)
	if err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to reset password")
	}
	if rows == 0 {
		// User deleted between issuance and redemption
		return fmt.Errorf("User not found")
	}

	// Outstanding sessions stay valid; only the credential changes.
	s.log.Info("Password reset", zap.String("user_id", userID.String()))
	return nil
}
