package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"percytext.backend/internal/domain/entities"
	domainerrors "percytext.backend/internal/domain/errors"
	"percytext.backend/internal/usecases"
)

func TestUserUsecase_FindUserByEmail_MissingIsNotAnError(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)

	userRepo.On("GetByEmail", context.Background(), "nobody@mail.com").Return(nil, domainerrors.ErrNotFound).Once()

	user, err := uc.FindUserByEmail(context.Background(), "nobody@mail.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserUsecase_FindUserByEmail_Found(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)
	id := uuid.New()

	userRepo.On("GetByEmail", context.Background(), "a@mail.com").Return(&entities.User{ID: id}, nil).Once()

	user, err := uc.FindUserByEmail(context.Background(), "a@mail.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
}

func TestUserUsecase_UpdateUser_EmailConflict(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)
	id := uuid.New()

	userRepo.On("GetByID", context.Background(), id).Return(&entities.User{ID: id, Email: "old@mail.com"}, nil).Once()
	userRepo.On("GetByEmail", context.Background(), "taken@mail.com").Return(&entities.User{ID: uuid.New()}, nil).Once()

	email := "taken@mail.com"
	_, err := uc.UpdateUser(context.Background(), id, &entities.UpdateUserInput{Email: &email})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserUsecase_UpdateUserStatus(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)
	id := uuid.New()

	userRepo.On("UpdateStatus", context.Background(), id, entities.UserStatusActive).Return(nil).Once()
	userRepo.On("GetByID", context.Background(), id).Return(&entities.User{ID: id, Status: entities.UserStatusActive}, nil).Once()

	user, err := uc.UpdateUserStatus(context.Background(), id, entities.UserStatusActive)
	require.NoError(t, err)
	assert.Equal(t, entities.UserStatusActive, user.Status)
}

func TestUserUsecase_SearchUsers_EmptyQueryListsAll(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)

	userRepo.On("List", context.Background()).Return([]*entities.User{{}, {}}, nil).Once()
	users, err := uc.SearchUsers(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, users, 2)

	userRepo.On("Search", context.Background(), "alice").Return([]*entities.User{{}}, nil).Once()
	users, err = uc.SearchUsers(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
