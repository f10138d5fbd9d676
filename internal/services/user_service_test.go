package services

import (
	"testing"

	"marketplace_backend/internal/apperrors"
	"marketplace_backend/internal/auth"
	"marketplace_backend/internal/models"
	"marketplace_backend/internal/repositories"
	"marketplace_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("old-password")
	require.NoError(t, err)
	return &models.User{
		BaseModel:    models.BaseModel{ID: "user-1"},
		Email:        "user@example.com",
		PasswordHash: hash,
		FullName:     "Stored Name",
		Role:         models.UserRoleCustomer,
		IsEnabled:    true,
	}
}

func TestUserUpdate_PartialFields(t *testing.T) {
	userRepo := &mockUserRepository{}
	svc := NewUserService(userRepo)

	userRepo.On("FindByID", mock.Anything, "user-1").Return(storedUser(t), nil)
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	disabled := false
	updated, err := svc.Update(nil, "user-1", &dto.UpdateUserRequest{
		FullName:  "", // absent field, must not clear the stored name
		Gender:    "female",
		IsEnabled: &disabled,
	})
	require.NoError(t, err)

	assert.Equal(t, "Stored Name", updated.FullName)
	assert.Equal(t, "female", updated.Gender)
	assert.False(t, updated.IsEnabled)
	assert.Equal(t, "user@example.com", updated.Email)
}

func TestUserUpdate_RehashesPassword(t *testing.T) {
	userRepo := &mockUserRepository{}
	svc := NewUserService(userRepo)

	userRepo.On("FindByID", mock.Anything, "user-1").Return(storedUser(t), nil)
	userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.Update(nil, "user-1", &dto.UpdateUserRequest{Password: "new-password"})
	require.NoError(t, err)

	assert.True(t, auth.CheckPasswordHash("new-password", updated.PasswordHash))
	assert.False(t, auth.CheckPasswordHash("old-password", updated.PasswordHash))
}

func TestUserUpdate_NotFound(t *testing.T) {
	userRepo := &mockUserRepository{}
	svc := NewUserService(userRepo)

	userRepo.On("FindByID", mock.Anything, "missing").Return(nil, repositories.ErrUserNotFound)

	_, err := svc.Update(nil, "missing", &dto.UpdateUserRequest{FullName: "X"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserDelete(t *testing.T) {
	userRepo := &mockUserRepository{}
	svc := NewUserService(userRepo)

	userRepo.On("FindByID", mock.Anything, "user-1").Return(storedUser(t), nil)
	userRepo.On("FindByID", mock.Anything, "missing").Return(nil, repositories.ErrUserNotFound)
	userRepo.On("Delete", mock.Anything, "user-1").Return(nil)

	assert.NoError(t, svc.Delete(nil, "user-1"))
	assert.ErrorIs(t, svc.Delete(nil, "missing"), apperrors.ErrUserNotFound)
}

func TestUserListByRole(t *testing.T) {
	userRepo := &mockUserRepository{}
	svc := NewUserService(userRepo)

	userRepo.On("FindAll", mock.Anything).
		Return([]models.User{{Role: models.UserRoleAdmin}, {Role: models.UserRoleSeller}}, nil)
	userRepo.On("FindByRole", mock.Anything, models.UserRoleSeller).
		Return([]models.User{{Role: models.UserRoleSeller}}, nil)

	all, err := svc.ListByRole(nil, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	sellers, err := svc.ListByRole(nil, models.UserRoleSeller)
	require.NoError(t, err)
	require.Len(t, sellers, 1)
	assert.Equal(t, models.UserRoleSeller, sellers[0].Role)
}
