package repositories

import (
	"context"

	"github.com/Gabrielduah055/menHealthBackend/internal/domain/entities"
)

type AdminUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entities.AdminUser, error)
	GetByID(ctx context.Context, adminID string) (*entities.AdminUser, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByID(ctx context.Context, userID string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
}

var (
	ErrUserNotFound      = &RepositoryError{"user not found"}
	ErrEmailTaken        = &RepositoryError{"email already registered"}
	ErrAdminUserNotFound = &RepositoryError{"admin user not found"}
)
