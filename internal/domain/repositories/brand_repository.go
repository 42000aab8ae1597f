package repositories

import (
	"context"

	"github.com/google/uuid"
	"percytext.backend/internal/domain/entities"
)

// BrandRepository defines brand data operations
type BrandRepository interface {
	Create(ctx context.Context, brand *entities.Brand) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Brand, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Brand, error)
	Update(ctx context.Context, brand *entities.Brand) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.BrandStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.Brand, error)
}
