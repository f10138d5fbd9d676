package services

import (
	"marketplace_backend/internal/apperrors"
	"marketplace_backend/internal/models"
	"marketplace_backend/internal/repositories"
	"marketplace_backend/internal/services/dto"

	"gorm.io/gorm"
)

type ProductService interface {
	List(db *gorm.DB, categoryID string) ([]models.Product, error)

	// Create validates the category foreign key before persisting.
	Create(db *gorm.DB, req *dto.CreateProductRequest) (*models.Product, error)

	GetByID(db *gorm.DB, id string) (*models.Product, error)
	Update(db *gorm.DB, id string, req *dto.UpdateProductRequest) (*models.Product, error)
	Delete(db *gorm.DB, id string) error
}

type ProductServiceImpl struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) ProductService {
	return &ProductServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *ProductServiceImpl) List(db *gorm.DB, categoryID string) ([]models.Product, error) {
	products, err := s.productRepo.FindAll(db, categoryID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return products, nil
}

func (s *ProductServiceImpl) Create(db *gorm.DB, req *dto.CreateProductRequest) (*models.Product, error) {
	if err := s.checkCategory(db, req.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		MarketID:    req.MarketID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}
	if err := s.productRepo.Create(db, product); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}

func (s *ProductServiceImpl) GetByID(db *gorm.DB, id string) (*models.Product, error) {
	product, err := s.productRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}

func (s *ProductServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkCategory(db, req.CategoryID); err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = req.Stock
	product.CategoryID = req.CategoryID

	if err := s.productRepo.Update(db, product); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}

func (s *ProductServiceImpl) Delete(db *gorm.DB, id string) error {
	if _, err := s.GetByID(db, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProductServiceImpl) checkCategory(db *gorm.DB, categoryID string) error {
	if _, err := s.categoryRepo.FindByID(db, categoryID); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
