package usecase

import (
	"context"
	"sync"
	"time"

	"inventory-backend/internal/data/entity"
	"inventory-backend/internal/data/repository"
	"inventory-backend/pkg/mailer"
	"inventory-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory fakes backing the service tests. They mirror the repository
// contracts: not-found lookups return (nil, nil), writes report rows
// affected.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]*entity.User, 0, len(f.users))
	for _, user := range f.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id uuid.UUID, role entity.UserRole) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return 0, nil
	}
	user.Role = role
	return 1, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return 0, nil
	}
	user.PasswordHash = passwordHash
	return 1, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return 0, nil
	}
	delete(f.users, id)
	return 1, nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *session
	f.sessions[session.Token.String()] = &copied
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || !session.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if session, ok := f.sessions[token]; ok && session.RevokedAt == nil {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for token, session := range f.sessions {
		if !session.ExpiresAt.After(time.Now()) {
			delete(f.sessions, token)
		}
	}
	return nil
}

type fakeResetRepo struct {
	mu     sync.Mutex
	resets map[uuid.UUID]*entity.PasswordReset
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{resets: make(map[uuid.UUID]*entity.PasswordReset)}
}

func (f *fakeResetRepo) Create(_ context.Context, reset *entity.PasswordReset) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *reset
	f.resets[reset.ID] = &copied
	return nil
}

func (f *fakeResetRepo) Consume(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reset, ok := f.resets[id]
	if !ok || reset.IsUsed || !reset.ExpiresAt.After(time.Now()) {
		return false, nil
	}
	reset.IsUsed = true
	return true, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	products := make([]*entity.Product, 0, len(f.products))
	for _, product := range f.products {
		copied := *product
		products = append(products, &copied)
	}
	return products, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[product.ID]; !ok {
		return 0, nil
	}
	copied := *product
	f.products[product.ID] = &copied
	return 1, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[id]; !ok {
		return 0, nil
	}
	delete(f.products, id)
	return 1, nil
}

// fakeMailer records the last delivery and hands the link back as the
// preview, like the dev log transport.
type fakeMailer struct {
	mu   sync.Mutex
	to   string
	link string
}

func (f *fakeMailer) SendPasswordReset(_ context.Context, to, resetLink string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.to = to
	f.link = resetLink
	return resetLink, nil
}

func (f *fakeMailer) lastLink() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.link
}

var _ mailer.Mailer = (*fakeMailer)(nil)

type fixture struct {
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	resets   *fakeResetRepo
	products *fakeProductRepo
	mail     *fakeMailer
	service  *Service
}

func newFixture() *fixture {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	resets := newFakeResetRepo()
	products := newFakeProductRepo()
	mail := &fakeMailer{}

	repo := &repository.Repository{
		User:    users,
		Session: sessions,
		Reset:   resets,
		Product: products,
	}

	config := &utils.Config{
		App: utils.AppConfig{
			BaseURL: "http://localhost:8080",
		},
		Session: utils.SessionConfig{ExpiryHours: 24},
		Reset: utils.ResetConfig{
			Secret:        "test-secret",
			ExpiryMinutes: 60,
		},
	}

	return &fixture{
		users:    users,
		sessions: sessions,
		resets:   resets,
		products: products,
		mail:     mail,
		service:  NewService(repo, config, mail, zap.NewNop()),
	}
}
