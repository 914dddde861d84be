package services

import (
	"context"
	"errors"
	"time"

	"fitnessmap/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("no fitness data found")

// ProfileStore persists calculated fitness profiles keyed by user.
type ProfileStore interface {
	Save(ctx context.Context, p *models.FitnessProfile) error
	Latest(ctx context.Context, userID uint) (*models.FitnessProfile, error)
	History(ctx context.Context, userID uint, limit int) ([]models.FitnessProfile, error)
	Between(ctx context.Context, userID uint, from, to time.Time) ([]models.FitnessProfile, error)
}

type GormProfileStore struct{ db *gorm.DB }

func NewGormProfileStore(db *gorm.DB) *GormProfileStore { return &GormProfileStore{db: db} }

func (s *GormProfileStore) Save(ctx context.Context, p *models.FitnessProfile) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *GormProfileStore) Latest(ctx context.Context, userID uint) (*models.FitnessProfile, error) {
	var p models.FitnessProfile
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at desc, id desc").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// History returns profiles newest first. limit <= 0 means no limit.
func (s *GormProfileStore) History(ctx context.Context, userID uint, limit int) ([]models.FitnessProfile, error) {
	q := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at desc, id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []models.FitnessProfile
	err := q.Find(&out).Error
	return out, err
}

// Between returns profiles updated in [from, to), oldest first.
func (s *GormProfileStore) Between(ctx context.Context, userID uint, from, to time.Time) ([]models.FitnessProfile, error) {
	var out []models.FitnessProfile
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND updated_at >= ? AND updated_at < ?", userID, from, to).
		Order("updated_at asc, id asc").
		Find(&out).Error
	return out, err
}
