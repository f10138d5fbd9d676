package repositories

import (
	"errors"
	"time"

	"marketplace_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create(db *gorm.DB, session *models.Session) error

	// FindByToken looks a session up by exact refresh-token match.
	FindByToken(db *gorm.DB, refreshToken string) (*models.Session, error)

	// UpdateExpiry bumps the expiry of the session holding the token.
	UpdateExpiry(db *gorm.DB, refreshToken string, expiresAt time.Time) error

	// DeleteByToken removes the session with the token. A token absent from
	// the store is a no-op, not an error.
	DeleteByToken(db *gorm.DB, refreshToken string) error

	// DeleteAllByToken removes every row matching the token filter. The unique
	// index keeps this to one row in practice; the multi-row form survives
	// duplicate data.
	DeleteAllByToken(db *gorm.DB, refreshToken string) error

	FindAll(db *gorm.DB) ([]models.Session, error)
	FindByUserID(db *gorm.DB, userID string) ([]models.Session, error)
}

type sessionRepository struct{}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{}
}

func (r *sessionRepository) Create(db *gorm.DB, session *models.Session) error {
	return db.Create(session).Error
}

func (r *sessionRepository) FindByToken(db *gorm.DB, refreshToken string) (*models.Session, error) {
	var session models.Session
	if err := db.Where("refresh_token = ?", refreshToken).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) UpdateExpiry(db *gorm.DB, refreshToken string, expiresAt time.Time) error {
	result := db.Model(&models.Session{}).
		Where("refresh_token = ?", refreshToken).
		Updates(map[string]interface{}{
			"expires_at": expiresAt,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepository) DeleteByToken(db *gorm.DB, refreshToken string) error {
	return db.Where("refresh_token = ?", refreshToken).Delete(&models.Session{}).Error
}

func (r *sessionRepository) DeleteAllByToken(db *gorm.DB, refreshToken string) error {
	return db.Where("refresh_token = ?", refreshToken).Delete(&models.Session{}).Error
}

func (r *sessionRepository) FindAll(db *gorm.DB) ([]models.Session, error) {
	// Non-nil so an empty result marshals as [] rather than null.
	sessions := make([]models.Session, 0)
	err := db.Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepository) FindByUserID(db *gorm.DB, userID string) ([]models.Session, error) {
	sessions := make([]models.Session, 0)
	err := db.Where("user_id = ?", userID).Find(&sessions).Error
	return sessions, err
}
