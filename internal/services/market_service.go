package services

import (
	"marketplace_backend/internal/apperrors"
	"marketplace_backend/internal/models"
	"marketplace_backend/internal/repositories"
	"marketplace_backend/internal/services/dto"

	"gorm.io/gorm"
)

type MarketService interface {
	List(db *gorm.DB) ([]models.Market, error)
	Create(db *gorm.DB, ownerID string, req *dto.CreateMarketRequest) (*models.Market, error)
	GetByID(db *gorm.DB, id string) (*models.Market, error)
	Update(db *gorm.DB, id string, req *dto.UpdateMarketRequest) (*models.Market, error)
	Delete(db *gorm.DB, id string) error
}

type MarketServiceImpl struct {
	marketRepo repositories.MarketRepository
}

func NewMarketService(marketRepo repositories.MarketRepository) MarketService {
	return &MarketServiceImpl{marketRepo: marketRepo}
}

func (s *MarketServiceImpl) List(db *gorm.DB) ([]models.Market, error) {
	markets, err := s.marketRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return markets, nil
}

func (s *MarketServiceImpl) Create(db *gorm.DB, ownerID string, req *dto.CreateMarketRequest) (*models.Market, error) {
	market := &models.Market{
		UserID:      ownerID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.marketRepo.Create(db, market); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return market, nil
}

func (s *MarketServiceImpl) GetByID(db *gorm.DB, id string) (*models.Market, error) {
	market, err := s.marketRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMarketNotFound) {
			return nil, apperrors.ErrMarketNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return market, nil
}

func (s *MarketServiceImpl) Update(db *gorm.DB, id string, req *dto.UpdateMarketRequest) (*models.Market, error) {
	market, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	market.Name = req.Name
	market.Description = req.Description

	if err := s.marketRepo.Update(db, market); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return market, nil
}

func (s *MarketServiceImpl) Delete(db *gorm.DB, id string) error {
	if _, err := s.GetByID(db, id); err != nil {
		return err
	}
	if err := s.marketRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
