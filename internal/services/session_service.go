package services

import (
	"time"

	"marketplace_backend/internal/apperrors"
	"marketplace_backend/internal/models"
	"marketplace_backend/internal/repositories"

	"gorm.io/gorm"
)

// SessionTTL is how long a session row stays valid after each login that
// touches it. Independent of the refresh token's own signing validity.
const SessionTTL = 30 * 24 * time.Hour

type SessionService interface {
	// Reconcile creates a session for the refresh token or, when a row with
	// that exact token already exists, extends its expiry. The upsert is keyed
	// on the token value alone; ownership of an existing row is not re-checked.
	Reconcile(db *gorm.DB, userID, refreshToken string) (*models.Session, error)

	// RevokeByToken deletes the session holding the token. Unknown tokens are
	// a silent no-op.
	RevokeByToken(db *gorm.DB, refreshToken string) error

	// RevokeAllByToken deletes every session matching the token filter.
	RevokeAllByToken(db *gorm.DB, refreshToken string) error

	// List returns all sessions, or the given user's sessions when userID is
	// non-empty.
	List(db *gorm.DB, userID string) ([]models.Session, error)
}

type SessionServiceImpl struct {
	sessionRepo repositories.SessionRepository
}

func NewSessionService(sessionRepo repositories.SessionRepository) SessionService {
	return &SessionServiceImpl{sessionRepo: sessionRepo}
}

func (s *SessionServiceImpl) Reconcile(db *gorm.DB, userID, refreshToken string) (*models.Session, error) {
	expiresAt := time.Now().Add(SessionTTL)

	session, err := s.sessionRepo.FindByToken(db, refreshToken)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.InternalError(err)
		}

		session = &models.Session{
			UserID:       userID,
			RefreshToken: refreshToken,
			ExpiresAt:    expiresAt,
		}
		if err := s.sessionRepo.Create(db, session); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return session, nil
	}

	if err := s.sessionRepo.UpdateExpiry(db, refreshToken, expiresAt); err != nil {
		return nil, apperrors.InternalError(err)
	}
	session.ExpiresAt = expiresAt
	return session, nil
}

func (s *SessionServiceImpl) RevokeByToken(db *gorm.DB, refreshToken string) error {
	if err := s.sessionRepo.DeleteByToken(db, refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SessionServiceImpl) RevokeAllByToken(db *gorm.DB, refreshToken string) error {
	if err := s.sessionRepo.DeleteAllByToken(db, refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SessionServiceImpl) List(db *gorm.DB, userID string) ([]models.Session, error) {
	var (
		sessions []models.Session
		err      error
	)
	if userID == "" {
		sessions, err = s.sessionRepo.FindAll(db)
	} else {
		sessions, err = s.sessionRepo.FindByUserID(db, userID)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return sessions, nil
}
