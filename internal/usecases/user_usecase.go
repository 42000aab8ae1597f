package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
	"percytext.backend/internal/domain/repositories"
)

// UserUsecase handles user management business logic
type UserUsecase struct {
	userRepo repositories.UserRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// GetUser gets a user by ID
func (u *UserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// FindUserByEmail looks a user up by email. A missing user is not an error:
// the result is nil.
func (u *UserUsecase) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// ListUsers lists all users
func (u *UserUsecase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.List(ctx)
}

// SearchUsers finds users matching the query
func (u *UserUsecase) SearchUsers(ctx context.Context, query string) ([]*entities.User, error) {
	if query == "" {
		return u.userRepo.List(ctx)
	}
	return u.userRepo.Search(ctx, query)
}

// UpdateUser updates user details
func (u *UserUsecase) UpdateUser(ctx context.Context, id uuid.UUID, input *entities.UpdateUserInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		existing, err := u.userRepo.GetByEmail(ctx, *input.Email)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domainerrors.Conflict("email already registered")
		}
		user.Email = *input.Email
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, id)
}

// UpdateUserStatus updates a user's account status
func (u *UserUsecase) UpdateUserStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) (*entities.User, error) {
	if err := u.userRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.userRepo.GetByID(ctx, id)
}

// DeleteUser removes a user
func (u *UserUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return u.userRepo.Delete(ctx, id)
}
