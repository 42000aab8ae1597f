package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
)

func testBrand(userID uuid.UUID) *entities.Brand {
	return &entities.Brand{
		UserID:      userID,
		DisplayName: "Percy Pizza",
		CompanyName: "Percy Pizza LLC",
		EIN:         "12-3456789",
		EntityType:  entities.EntityTypePrivateProfit,
		Vertical:    entities.VerticalFoodBeverage,
		Phone:       "+15551230000",
		Email:       "compliance@percypizza.com",
		Country:     "US",
		Website:     null.StringFrom("https://percypizza.com"),
		Street:      "1 Main St",
		City:        "Austin",
		State:       "TX",
		PostalCode:  "78701",
		Status:      entities.BrandStatusPending,
	}
}

func TestBrandRepository_CRUDAndList(t *testing.T) {
	db := newTestDB(t)
	createBrandTable(t, db)
	repo := NewBrandRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	b := testBrand(userID)
	require.NoError(t, repo.Create(ctx, b))
	require.NotEqual(t, uuid.Nil, b.ID)

	byID, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "Percy Pizza", byID.DisplayName)
	require.Equal(t, entities.BrandStatusPending, byID.Status)
	require.Equal(t, "https://percypizza.com", byID.Website.String)
	require.False(t, byID.StockSymbol.Valid)

	byUser, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)

	b.DisplayName = "Percy Pizza Updated"
	b.StockSymbol = null.StringFrom("PPZA")
	require.NoError(t, repo.Update(ctx, b))

	updated, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "Percy Pizza Updated", updated.DisplayName)
	require.Equal(t, "PPZA", updated.StockSymbol.String)
	require.Equal(t, userID, updated.UserID)

	require.NoError(t, repo.UpdateStatus(ctx, b.ID, entities.BrandStatusApproved))
	approved, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, entities.BrandStatusApproved, approved.Status)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, repo.Delete(ctx, b.ID))
	_, err = repo.GetByID(ctx, b.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBrandRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createBrandTable(t, db)
	repo := NewBrandRepository(db)
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	b := testBrand(uuid.New())
	b.ID = id
	err = repo.Update(ctx, b)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdateStatus(ctx, id, entities.BrandStatusSuspended)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Delete(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBrandRepository_GetByUserIDEmpty(t *testing.T) {
	db := newTestDB(t)
	createBrandTable(t, db)
	repo := NewBrandRepository(db)

	items, err := repo.GetByUserID(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Empty(t, items)
}
