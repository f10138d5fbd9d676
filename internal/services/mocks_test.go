package services

import (
	"time"

	"marketplace_backend/internal/models"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// The repositories are stateless and take the handle per call, so the mocks
// receive a nil *gorm.DB throughout these tests.

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(db *gorm.DB, id string) (*models.User, error) {
	args := m.Called(db, id)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	args := m.Called(db, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(db *gorm.DB, user *models.User) error {
	return m.Called(db, user).Error(0)
}

func (m *mockUserRepository) Update(db *gorm.DB, user *models.User) error {
	return m.Called(db, user).Error(0)
}

func (m *mockUserRepository) Delete(db *gorm.DB, userID string) error {
	return m.Called(db, userID).Error(0)
}

func (m *mockUserRepository) FindByRole(db *gorm.DB, role models.UserRole) ([]models.User, error) {
	args := m.Called(db, role)
	if u := args.Get(0); u != nil {
		return u.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindAll(db *gorm.DB) ([]models.User, error) {
	args := m.Called(db)
	if u := args.Get(0); u != nil {
		return u.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Create(db *gorm.DB, session *models.Session) error {
	return m.Called(db, session).Error(0)
}

func (m *mockSessionRepository) FindByToken(db *gorm.DB, refreshToken string) (*models.Session, error) {
	args := m.Called(db, refreshToken)
	if s := args.Get(0); s != nil {
		return s.(*models.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionRepository) UpdateExpiry(db *gorm.DB, refreshToken string, expiresAt time.Time) error {
	return m.Called(db, refreshToken, expiresAt).Error(0)
}

func (m *mockSessionRepository) DeleteByToken(db *gorm.DB, refreshToken string) error {
	return m.Called(db, refreshToken).Error(0)
}

func (m *mockSessionRepository) DeleteAllByToken(db *gorm.DB, refreshToken string) error {
	return m.Called(db, refreshToken).Error(0)
}

func (m *mockSessionRepository) FindAll(db *gorm.DB) ([]models.Session, error) {
	args := m.Called(db)
	if s := args.Get(0); s != nil {
		return s.([]models.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionRepository) FindByUserID(db *gorm.DB, userID string) ([]models.Session, error) {
	args := m.Called(db, userID)
	if s := args.Get(0); s != nil {
		return s.([]models.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(db *gorm.DB, product *models.Product) error {
	return m.Called(db, product).Error(0)
}

func (m *mockProductRepository) FindByID(db *gorm.DB, id string) (*models.Product, error) {
	args := m.Called(db, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) FindAll(db *gorm.DB, categoryID string) ([]models.Product, error) {
	args := m.Called(db, categoryID)
	if p := args.Get(0); p != nil {
		return p.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepository) Update(db *gorm.DB, product *models.Product) error {
	return m.Called(db, product).Error(0)
}

func (m *mockProductRepository) Delete(db *gorm.DB, id string) error {
	return m.Called(db, id).Error(0)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) Create(db *gorm.DB, category *models.Category) error {
	return m.Called(db, category).Error(0)
}

func (m *mockCategoryRepository) FindByID(db *gorm.DB, id string) (*models.Category, error) {
	args := m.Called(db, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepository) FindAll(db *gorm.DB) ([]models.Category, error) {
	args := m.Called(db)
	if c := args.Get(0); c != nil {
		return c.([]models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepository) Update(db *gorm.DB, category *models.Category) error {
	return m.Called(db, category).Error(0)
}

func (m *mockCategoryRepository) Delete(db *gorm.DB, id string) error {
	return m.Called(db, id).Error(0)
}
