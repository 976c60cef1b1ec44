package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"trendwatch-backend/internal/domains/user"
	"trendwatch-backend/pkg/jwt"
	"trendwatch-backend/pkg/logger"
)

// bcrypt cost 12 balances hashing time against brute-force resistance
const bcryptCost = 12

type userService struct {
	repo user.Repository
	jwt  *jwt.Manager
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo: repo,
		jwt:  jwtManager,
	}
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. FIND USER BY EMAIL
	// Never reveal whether the email exists; both failure modes read
	// as invalid credentials.
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	// 3. VERIFY PASSWORD (constant-time comparison)
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	// 4. GENERATE JWT TOKENS
	accessToken, err := s.jwt.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := s.jwt.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}
	expiresAt := time.Now().Add(s.jwt.AccessExpiry())

	// 5. RECORD LOGIN
	if err := s.repo.UpdateLastLogin(ctx, u.ID); err != nil {
		logger.Warn("last login update failed", map[string]interface{}{
			"user_id": u.ID.String(),
			"error":   err.Error(),
		})
	}

	logger.Info("admin login", map[string]interface{}{"user_id": u.ID.String()})
	return &user.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         u.ToDTO(),
	}, nil
}

func (s *userService) Refresh(ctx context.Context, req user.RefreshTokenRequest) (*user.RefreshResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	// Reload the user so a deleted account cannot keep refreshing
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	accessToken, err := s.jwt.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &user.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(s.jwt.AccessExpiry()),
	}, nil
}

func (s *userService) Me(ctx context.Context, id uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, id, string(hash))
}
