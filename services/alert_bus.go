package services

import (
	"context"
	"time"

	"fitnessmap/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	AlertWarning = "warning"
	AlertInfo    = "info"
)

// AlertBus stores alerts and pushes them to realtime subscribers.
type AlertBus struct {
	db     *gorm.DB
	broker Broker
	log    zerolog.Logger
}

func NewAlertBus(db *gorm.DB, broker Broker, log zerolog.Logger) *AlertBus {
	return &AlertBus{db: db, broker: broker, log: log}
}

// Emit never fails the caller; storage errors are logged.
func (b *AlertBus) Emit(ctx context.Context, userID uint, typ, message string) {
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	if err := b.db.WithContext(ctx).Create(a).Error; err != nil {
		b.log.Error().Err(err).Uint("user_id", userID).Msg("store alert")
		return
	}
	if b.broker != nil {
		b.broker.Publish(ctx, Event{Kind: EventAlertCreated, UserID: userID, Alert: a})
	}
}

// List returns the user's alerts, newest first.
func (b *AlertBus) List(ctx context.Context, userID uint, limit int) ([]models.Alert, error) {
	q := b.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc, id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []models.Alert
	err := q.Find(&out).Error
	return out, err
}
