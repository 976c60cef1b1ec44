package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"trendwatch-backend/internal/domains/user"
	"trendwatch-backend/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*user.AdminUser // keyed by email

	lastLoginRecorded bool
	updatedHash       string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.AdminUser)}
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.AdminUser, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.AdminUser, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	f.updatedHash = hash
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	f.lastLoginRecorded = true
	return nil
}

func seedAdmin(t *testing.T, repo *fakeUserRepo, email, password string) *user.AdminUser {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &user.AdminUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Newsroom Admin",
		Role:         user.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	repo.users[email] = u
	return u
}

func newTestService(repo user.Repository) user.Service {
	return NewUserService(repo, jwt.NewManager("test-secret", 15, 72))
}

func TestLoginIssuesTokens(t *testing.T) {
	repo := newFakeUserRepo()
	seedAdmin(t, repo, "editor@example.com", "Sup3rSecret")
	svc := newTestService(repo)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "editor@example.com",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
	assert.Equal(t, "editor@example.com", resp.User.Email)
	assert.True(t, repo.lastLoginRecorded)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedAdmin(t, repo, "editor@example.com", "Sup3rSecret")
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "editor@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownEmailReadsAsInvalidCredentials(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	// Unknown account and wrong password must be indistinguishable
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestRefreshRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	seedAdmin(t, repo, "editor@example.com", "Sup3rSecret")
	svc := newTestService(repo)

	login, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "editor@example.com",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), user.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedAdmin(t, repo, "editor@example.com", "Sup3rSecret")
	svc := newTestService(repo)

	login, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "editor@example.com",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), user.RefreshTokenRequest{
		RefreshToken: login.AccessToken,
	})
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedAdmin(t, repo, "editor@example.com", "Sup3rSecret")
	svc := newTestService(repo)

	err := svc.ChangePassword(context.Background(), u.ID, user.ChangePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "NewSecret123",
	})
	assert.ErrorIs(t, err, user.ErrWrongPassword)

	err = svc.ChangePassword(context.Background(), u.ID, user.ChangePasswordRequest{
		CurrentPassword: "Sup3rSecret",
		NewPassword:     "NewSecret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, repo.updatedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.updatedHash), []byte("NewSecret123")))
}
