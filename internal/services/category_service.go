package services

import (
	"marketplace_backend/internal/apperrors"
	"marketplace_backend/internal/models"
	"marketplace_backend/internal/repositories"
	"marketplace_backend/internal/services/dto"

	"gorm.io/gorm"
)

type CategoryService interface {
	List(db *gorm.DB) ([]models.Category, error)
	Create(db *gorm.DB, req *dto.CreateCategoryRequest) (*models.Category, error)
	GetByID(db *gorm.DB, id string) (*models.Category, error)
	Update(db *gorm.DB, id string, req *dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(db *gorm.DB, id string) error
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) List(db *gorm.DB) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *CategoryServiceImpl) Create(db *gorm.DB, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(db, category); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) GetByID(db *gorm.DB, id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := s.categoryRepo.Update(db, category); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Delete(db *gorm.DB, id string) error {
	if _, err := s.GetByID(db, id); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
