package repository

import (
	"context"

	"github.com/panasystem/panasystem-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para User (login).
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
