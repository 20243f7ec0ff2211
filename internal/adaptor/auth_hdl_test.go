package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inventory-backend/internal/data/entity"
	"inventory-backend/internal/dto/request"
	"inventory-backend/internal/dto/response"
	"inventory-backend/pkg/middleware"
	"inventory-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubAuthService scripts one outcome per operation.
type stubAuthService struct {
	registerErr error
	session     *entity.Session
	loginErr    error
	loggedOut   []string
	currentUser *response.UserResponse
	preview     string
	forgotErr   error
	resetErr    error
}

func (s *stubAuthService) Register(context.Context, *request.RegisterRequest) error {
	return s.registerErr
}

func (s *stubAuthService) Login(context.Context, *request.LoginRequest) (*entity.Session, error) {
	return s.session, s.loginErr
}

func (s *stubAuthService) Logout(_ context.Context, sessionToken string) error {
	s.loggedOut = append(s.loggedOut, sessionToken)
	return nil
}

func (s *stubAuthService) CurrentUser(context.Context, string) (*response.UserResponse, error) {
	return s.currentUser, nil
}

func (s *stubAuthService) ForgotPassword(context.Context, *request.ForgotPasswordRequest) (string, error) {
	return s.preview, s.forgotErr
}

func (s *stubAuthService) ResetPassword(context.Context, *request.ResetPasswordRequest) error {
	return s.resetErr
}

func newAuthHandler(service *stubAuthService) *AuthHandler {
	return NewAuthHandler(service, &utils.Config{}, zap.NewNop())
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoginSetsSessionCookie(t *testing.T) {
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Token:      uuid.New(),
		UserID:     uuid.New(),
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	}
	handler := newAuthHandler(&stubAuthService{session: session})

	rec := httptest.NewRecorder()
	handler.Login(rec, postJSON("/login", `{"email":"anna@example.com","password":"p1"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Login successful"}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.SessionCookie, cookie.Name)
	assert.Equal(t, session.Token.String(), cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.WithinDuration(t, session.ExpiresAt, cookie.Expires, time.Second)
}

func TestLoginFailureIsBadRequest(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{loginErr: fmt.Errorf("Incorrect password")})

	rec := httptest.NewRecorder()
	handler.Login(rec, postJSON("/login", `{"email":"anna@example.com","password":"x"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Incorrect password"}`, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

func TestRegisterDuplicateEnvelope(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{registerErr: fmt.Errorf("Email already registered")})

	rec := httptest.NewRecorder()
	handler.Register(rec, postJSON("/register",
		`{"name":"Anna","email":"anna@example.com","password":"p1","role":"Shopkeeper"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Email already registered"}`, rec.Body.String())
}

func TestRegisterBadBody(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{})

	rec := httptest.NewRecorder()
	handler.Register(rec, postJSON("/register", `{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Invalid request body"}`, rec.Body.String())
}

func TestLogoutClearsCookieAndRedirects(t *testing.T) {
	service := &stubAuthService{}
	handler := newAuthHandler(service)

	sessionToken := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: sessionToken})

	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, []string{sessionToken}, service.loggedOut)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestLogoutWithoutCookieStillRedirects(t *testing.T) {
	service := &stubAuthService{}
	handler := newAuthHandler(service)

	rec := httptest.NewRecorder()
	handler.Logout(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Empty(t, service.loggedOut)
}

func TestCurrentUserAnonymousEnvelope(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{})

	rec := httptest.NewRecorder()
	handler.CurrentUser(rec, httptest.NewRequest(http.MethodGet, "/current-user", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false,"user":null}`, rec.Body.String())
}

func TestCurrentUserEnvelope(t *testing.T) {
	user := &response.UserResponse{
		ID:    uuid.NewString(),
		Name:  "Anna",
		Email: "anna@example.com",
		Role:  "Shopkeeper",
	}
	handler := newAuthHandler(&stubAuthService{currentUser: user})

	req := httptest.NewRequest(http.MethodGet, "/current-user", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: uuid.NewString()})

	rec := httptest.NewRecorder()
	handler.CurrentUser(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.CurrentUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotNil(t, body.User)
	assert.Equal(t, "anna@example.com", body.User.Email)
}

func TestForgotPasswordIncludesPreview(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{preview: "http://localhost:8080/reset-password.html?token=abc"})

	rec := httptest.NewRecorder()
	handler.ForgotPassword(rec, postJSON("/api/forgot-password", `{"email":"anna@example.com"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"message":"Password reset email sent","preview":"http://localhost:8080/reset-password.html?token=abc"}`,
		rec.Body.String())
}

func TestForgotPasswordInternalFailureIsOpaque(t *testing.T) {
	// A store or signing failure inside the flow must not leak its message
	handler := newAuthHandler(&stubAuthService{forgotErr: fmt.Errorf("failed to issue reset token")})

	rec := httptest.NewRecorder()
	handler.ForgotPassword(rec, postJSON("/api/forgot-password", `{"email":"anna@example.com"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Server error"}`, rec.Body.String())
}

func TestForgotPasswordUnknownEmailIs404(t *testing.T) {
	handler := newAuthHandler(&stubAuthService{forgotErr: fmt.Errorf("No account with that email")})

	rec := httptest.NewRecorder()
	handler.ForgotPassword(rec, postJSON("/api/forgot-password", `{"email":"nobody@example.com"}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"No account with that email"}`, rec.Body.String())
}

func TestResetPasswordOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"success", nil, http.StatusOK, `{"message":"Password has been reset successfully"}`},
		{"expired", fmt.Errorf("Reset token has expired"), http.StatusBadRequest, `{"message":"Reset token has expired"}`},
		{"invalid", fmt.Errorf("Invalid token"), http.StatusBadRequest, `{"message":"Invalid token"}`},
		{"missing", fmt.Errorf("Token is required"), http.StatusBadRequest, `{"message":"Token is required"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newAuthHandler(&stubAuthService{resetErr: tt.err})

			rec := httptest.NewRecorder()
			handler.ResetPassword(rec, postJSON("/reset-password",
				`{"token":"abc","newPassword":"p2"}`))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  string
		want int
	}{
		{"User not found", http.StatusNotFound},
		{"Product not found", http.StatusNotFound},
		{"No account with that email", http.StatusNotFound},
		{"Email already registered", http.StatusBadRequest},
		{"Email not registered", http.StatusBadRequest},
		{"Incorrect password", http.StatusBadRequest},
		{"Invalid role", http.StatusBadRequest},
		{"You cannot delete your own account.", http.StatusBadRequest},
		{"Invalid token", http.StatusBadRequest},
		{"Reset token has expired", http.StatusBadRequest},
		{"Token is required", http.StatusBadRequest},
		{"All fields are required", http.StatusBadRequest},
		{"failed to create session", http.StatusInternalServerError},
		{"failed to issue reset token", http.StatusInternalServerError},
		{"failed to send reset email", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusForError(fmt.Errorf("%s", tt.err)), tt.err)
	}
}
