package user

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Refresh(ctx context.Context, req RefreshTokenRequest) (*RefreshResponse, error)
	Me(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest) error
}
