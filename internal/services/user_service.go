package services

import (
	"marketplace_backend/internal/apperrors"
	"marketplace_backend/internal/auth"
	"marketplace_backend/internal/models"
	"marketplace_backend/internal/repositories"
	"marketplace_backend/internal/services/dto"

	"gorm.io/gorm"
)

type UserService interface {
	ListByRole(db *gorm.DB, role models.UserRole) ([]models.User, error)
	GetByID(db *gorm.DB, id string) (*models.User, error)
	Update(db *gorm.DB, id string, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(db *gorm.DB, id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) ListByRole(db *gorm.DB, role models.UserRole) ([]models.User, error) {
	var (
		users []models.User
		err   error
	)
	if role == "" {
		users, err = s.userRepo.FindAll(db)
	} else {
		users, err = s.userRepo.FindByRole(db, role)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

func (s *UserServiceImpl) GetByID(db *gorm.DB, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// Update applies each provided field and keeps the stored value otherwise.
// String fields fall back on emptiness; only is_enabled distinguishes an
// absent field from an explicit false. An empty-string full_name therefore
// cannot clear the stored name — long-standing API behavior, kept as is.
func (s *UserServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.Birthday != "" {
		user.Birthday = req.Birthday
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.IsEnabled != nil {
		user.IsEnabled = *req.IsEnabled
	}
	if req.Password != "" {
		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) Delete(db *gorm.DB, id string) error {
	if _, err := s.userRepo.FindByID(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
