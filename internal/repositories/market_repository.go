package repositories

import (
	"errors"

	"marketplace_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMarketNotFound = errors.New("market not found")

type MarketRepository interface {
	Create(db *gorm.DB, market *models.Market) error
	FindByID(db *gorm.DB, id string) (*models.Market, error)
	FindAll(db *gorm.DB) ([]models.Market, error)
	Update(db *gorm.DB, market *models.Market) error
	Delete(db *gorm.DB, id string) error
}

type marketRepository struct{}

func NewMarketRepository() MarketRepository {
	return &marketRepository{}
}

func (r *marketRepository) Create(db *gorm.DB, market *models.Market) error {
	return db.Create(market).Error
}

func (r *marketRepository) FindByID(db *gorm.DB, id string) (*models.Market, error) {
	var market models.Market
	if err := db.First(&market, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMarketNotFound
		}
		return nil, err
	}
	return &market, nil
}

func (r *marketRepository) FindAll(db *gorm.DB) ([]models.Market, error) {
	markets := make([]models.Market, 0)
	err := db.Find(&markets).Error
	return markets, err
}

func (r *marketRepository) Update(db *gorm.DB, market *models.Market) error {
	result := db.Save(market)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMarketNotFound
	}
	return nil
}

func (r *marketRepository) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Market{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMarketNotFound
	}
	return nil
}
