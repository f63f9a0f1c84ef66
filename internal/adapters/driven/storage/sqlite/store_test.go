package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant-labs/gardenlog/internal/core/domain"
	"github.com/verdant-labs/gardenlog/internal/core/ports/driven"
)

// setupTestStore builds a store in a temporary directory, without a
// seeding collaborator.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "gardenlog-test-*")
	require.NoError(t, err)

	m := NewManager(tempDir, nil)
	store, err := m.Store(context.Background())
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

// createTestPlant inserts a catalog plant to satisfy foreign key
// constraints on plantings.
func createTestPlant(t *testing.T, store *Store, id string) {
	t.Helper()
	err := store.PlantStore().UpsertAll(context.Background(), []domain.Plant{
		{
			ID:               id,
			Name:             "Test Plant " + id,
			GrowZoneNumber:   5,
			WateringInterval: 7,
		},
	})
	require.NoError(t, err)
}

// testDate returns a fixed millisecond-precision UTC timestamp offset
// by the given number of days.
func testDate(days int) time.Time {
	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, days)
}

// ==================== Manager Lifecycle Tests ====================

func TestManager_BuildsStore(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "gardenlog-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	m := NewManager(tempDir, nil)
	store, err := m.Store(context.Background())
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	dbPath := filepath.Join(tempDir, "garden.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)
	assert.NoError(t, store.db.Ping())
}

func TestManager_InvalidDataDir(t *testing.T) {
	m := NewManager("/invalid\x00path", nil)
	_, err := m.Store(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInit)
}

func TestManager_SameHandleAcrossCalls(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "gardenlog-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	m := NewManager(tempDir, nil)
	defer m.Close()

	first, err := m.Store(context.Background())
	require.NoError(t, err)
	second, err := m.Store(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestManager_ConcurrentFirstAccess(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "gardenlog-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	var seeds int
	var seedMu sync.Mutex
	seed := func(ctx context.Context, plants driven.PlantStore) error {
		seedMu.Lock()
		seeds++
		seedMu.Unlock()
		return plants.UpsertAll(ctx, []domain.Plant{
			{ID: "p1", Name: "Plant One", WateringInterval: 7},
		})
	}

	m := NewManager(tempDir, seed)
	defer m.Close()

	const callers = 16
	stores := make([]*Store, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := m.Store(context.Background())
			assert.NoError(t, err)
			stores[i] = s
		}(i)
	}
	wg.Wait()

	// All callers share the winner's handle, and the seed ran once.
	for i := 1; i < callers; i++ {
		assert.Same(t, stores[0], stores[i])
	}
	assert.Equal(t, 1, seeds)
}

func TestManager_SeedsOnlyFreshStore(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "gardenlog-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	var seeds int
	seed := func(ctx context.Context, plants driven.PlantStore) error {
		seeds++
		return plants.UpsertAll(ctx, []domain.Plant{
			{ID: "p1", Name: "Plant One", WateringInterval: 7},
		})
	}

	first := NewManager(tempDir, seed)
	store, err := first.Store(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, seeds)
	require.NoError(t, store.Close())

	// Reopening a populated store must not seed again.
	second := NewManager(tempDir, seed)
	store, err = second.Store(context.Background())
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, 1, seeds)

	plants, err := store.PlantStore().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, plants, 1)
}

func TestManager_FailedBuildIsRetryable(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "gardenlog-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	var calls int
	seed := func(ctx context.Context, plants driven.PlantStore) error {
		calls++
		if calls == 1 {
			return errors.New("catalog unavailable")
		}
		return plants.UpsertAll(ctx, []domain.Plant{
			{ID: "p1", Name: "Plant One", WateringInterval: 7},
		})
	}

	m := NewManager(tempDir, seed)
	defer m.Close()

	_, err = m.Store(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog unavailable")

	// The failure is not cached: the next call builds again and seeds.
	store, err := m.Store(context.Background())
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, 2, calls)
}

func TestManager_SchemaVersionMismatch(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "gardenlog-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	// Build once so the file exists, then move it ahead of the pinned
	// version from outside.
	m := NewManager(tempDir, nil)
	store, err := m.Store(context.Background())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	db, err := sql.Open("sqlite", filepath.Join(tempDir, dbFileName))
	require.NoError(t, err)
	_, err = db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = NewManager(tempDir, nil).Store(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInit)
	assert.Contains(t, err.Error(), "schema version 99")
}

func TestManager_CloseWithoutBuild(t *testing.T) {
	m := NewManager("", nil)
	assert.NoError(t, m.Close())
}
