package services

import (
	"marketplace_backend/internal/apperrors"
	"marketplace_backend/internal/auth"
	"marketplace_backend/internal/models"
	"marketplace_backend/internal/repositories"
	"marketplace_backend/internal/services/dto"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)

	// RegisterAdmin accepts only the literal "admin" role.
	RegisterAdmin(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)

	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo       repositories.UserRepository
	sessionService SessionService
	jwtSecret      string
}

func NewAuthService(userRepo repositories.UserRepository, sessionService SessionService, jwtSecret string) AuthService {
	return &AuthServiceImpl{
		userRepo:       userRepo,
		sessionService: sessionService,
		jwtSecret:      jwtSecret,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	return s.createUser(db, req, req.Role)
}

func (s *AuthServiceImpl) RegisterAdmin(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	if req.Role != models.UserRoleAdmin {
		return nil, apperrors.ErrOnlyAdminRole
	}
	return s.createUser(db, req, models.UserRoleAdmin)
}

func (s *AuthServiceImpl) createUser(db *gorm.DB, req *dto.RegisterRequest, role models.UserRole) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	// Email uniqueness is checked first: a taken email reports even when the
	// role is also bad.
	if !models.ValidRole(role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		Role:         role,
		IsEnabled:    true,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		// The unique index wins races the pre-check cannot see.
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrLoginUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateAccessToken(s.jwtSecret, user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := auth.GenerateRefreshToken(s.jwtSecret, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.sessionService.Reconcile(db, user.ID, refreshToken); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
