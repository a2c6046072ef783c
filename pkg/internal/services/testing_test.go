package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	localCache "github.com/Deepak1230987/meetAI/pkg/internal/cache"
	"github.com/Deepak1230987/meetAI/pkg/internal/database"
	"github.com/Deepak1230987/meetAI/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// memoryStore is a map-backed stand-in for the redis store so cached
// lookups run without a live redis.
type memoryStore struct {
	mu   sync.Mutex
	data map[any]any
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[any]any{}}
}

func (v *memoryStore) Get(ctx context.Context, key any) (any, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if val, ok := v.data[key]; ok {
		return val, nil
	}
	return nil, errors.New("value not found in store")
}

func (v *memoryStore) GetWithTTL(ctx context.Context, key any) (any, time.Duration, error) {
	val, err := v.Get(ctx, key)
	return val, 0, err
}

func (v *memoryStore) Set(ctx context.Context, key any, value any, options ...store.Option) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.data[key] = value
	return nil
}

func (v *memoryStore) Delete(ctx context.Context, key any) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.data, key)
	return nil
}

func (v *memoryStore) Invalidate(ctx context.Context, options ...store.InvalidateOption) error {
	return nil
}

func (v *memoryStore) Clear(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.data = map[any]any{}
	return nil
}

func (v *memoryStore) GetType() string {
	return "memory"
}

// setupTestSource points database.C at a fresh in-memory sqlite source
// with the full schema migrated, and swaps the cache for a local one.
func setupTestSource(t *testing.T) {
	t.Helper()

	source, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := source.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigration(source))

	database.C = source
	localCache.S = newMemoryStore()
}

func seedAccount(t *testing.T, id, name string) models.Account {
	t.Helper()
	account := models.Account{
		BaseModel: models.BaseModel{ID: id},
		Name:      name,
		Email:     id + "@example.com",
	}
	require.NoError(t, database.C.Create(&account).Error)
	return account
}

func seedAgent(t *testing.T, owner models.Account, id, name string) models.Agent {
	t.Helper()
	agent := models.Agent{
		BaseModel:    models.BaseModel{ID: id},
		Name:         name,
		Instructions: "You are a helpful assistant.",
		AccountID:    owner.ID,
	}
	require.NoError(t, database.C.Create(&agent).Error)
	return agent
}

func seedMeeting(t *testing.T, meeting models.Meeting) models.Meeting {
	t.Helper()
	if len(meeting.Status) == 0 {
		meeting.Status = models.MeetingStatusUpcoming
	}
	require.NoError(t, database.C.Create(&meeting).Error)
	return meeting
}
