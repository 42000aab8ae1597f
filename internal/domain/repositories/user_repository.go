package repositories

import (
	"context"

	"github.com/google/uuid"
	"percytext.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetBySessionToken(ctx context.Context, token string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.User, error)
	Search(ctx context.Context, query string) ([]*entities.User, error)
}
