package progress

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*Session, error)
	ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*Session, error)
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*Session, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC")
}

// Create inserts the session and its questions in one transaction.
func (r *sessionRepository) Create(ctx context.Context, s *Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessionRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*Session, error) {
	var sessions []*Session
	if err := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Where("user_id = ?", userID).
		Order("completed_at DESC, id DESC").
		Limit(limit).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListAllByUser returns every session without questions.
func (r *sessionRepository) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*Session, error) {
	var sessions []*Session
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC, id DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetByIDForUser returns ErrSessionNotFound both for unknown ids and for
// sessions owned by someone else.
func (r *sessionRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*Session, error) {
	var s Session
	if err := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Where("id = ? AND user_id = ?", id, userID).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}
