package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"fitnessmap/config"
	"fitnessmap/models"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func testLogger() zerolog.Logger { return zerolog.New(io.Discard) }

// memStore is an in-memory ProfileStore.
type memStore struct {
	mu   sync.Mutex
	rows []models.FitnessProfile
	err  error
}

func (m *memStore) Save(_ context.Context, p *models.FitnessProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	p.ID = uint(len(m.rows) + 1)
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now()
	}
	m.rows = append(m.rows, *p)
	return nil
}

func (m *memStore) Latest(ctx context.Context, userID uint) (*models.FitnessProfile, error) {
	rows, _ := m.History(ctx, userID, 1)
	if len(rows) == 0 {
		return nil, ErrProfileNotFound
	}
	return &rows[0], nil
}

func (m *memStore) History(_ context.Context, userID uint, limit int) ([]models.FitnessProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.FitnessProfile
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].UserID == userID {
			out = append(out, m.rows[i])
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) Between(_ context.Context, userID uint, from, to time.Time) ([]models.FitnessProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.FitnessProfile
	for _, r := range m.rows {
		if r.UserID == userID && !r.UpdatedAt.Before(from) && r.UpdatedAt.Before(to) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	return out, nil
}

// recordingBroker captures published events.
type recordingBroker struct {
	mu     sync.Mutex
	events []Event
}

func (b *recordingBroker) Publish(_ context.Context, ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, ev)
}

func (b *recordingBroker) Subscribe(uint, func(Event)) func() { return func() {} }

func (b *recordingBroker) Events() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Event(nil), b.events...)
}
