package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/verdant-labs/gardenlog/internal/core/domain"
	"github.com/verdant-labs/gardenlog/internal/core/ports/driven"
	"github.com/verdant-labs/gardenlog/internal/logger"
)

// dbFileName is the store file created inside the data directory.
const dbFileName = "garden.db"

// Store is the single process-wide SQLite handle. It exposes the two
// entity tables through typed store views and fans out change
// notifications to live queries. Write/read atomicity below this
// layer is SQLite's responsibility; the handle itself needs no
// locking once built.
type Store struct {
	db      *sql.DB
	path    string
	codecs  map[string]map[string]Codec
	tracker *tracker
}

// PlantStore returns the typed catalog view.
func (s *Store) PlantStore() driven.PlantStore {
	return &plantStore{store: s}
}

// GardenStore returns the typed plantings view.
func (s *Store) GardenStore() driven.GardenStore {
	return &gardenStore{store: s}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SeedFunc populates a freshly created store with the initial catalog.
// The lifecycle manager calls it exactly once, inside the build
// critical section, before publishing the handle.
type SeedFunc func(ctx context.Context, plants driven.PlantStore) error

// Manager hands out the process-wide store handle. The first caller
// transitions Uninitialized -> Building and performs schema
// validation, open/create, version check and, for a brand-new store,
// seeding. Callers concurrent with Building observe exactly one build
// attempt and share its outcome. A failed build is not cached: a
// later call starts a fresh attempt.
type Manager struct {
	dataDir string
	seed    SeedFunc

	ready atomic.Pointer[Store]

	mu      sync.Mutex
	current *attempt
}

type attempt struct {
	done  chan struct{}
	store *Store
	err   error
}

// NewManager creates a lifecycle manager for a store under dataDir.
// If dataDir is empty, defaults to ~/.gardenlog/data. seed may be nil
// when no seeding collaborator is configured.
func NewManager(dataDir string, seed SeedFunc) *Manager {
	return &Manager{dataDir: dataDir, seed: seed}
}

// Store returns the shared handle, building it on first use. Losers
// of the first-access race await the winner's result rather than
// building a second handle; ctx cancels the wait, not the build.
func (m *Manager) Store(ctx context.Context) (*Store, error) {
	if s := m.ready.Load(); s != nil {
		return s, nil
	}

	m.mu.Lock()
	if a := m.current; a != nil {
		m.mu.Unlock()
		select {
		case <-a.done:
			return a.store, a.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	a := &attempt{done: make(chan struct{})}
	m.current = a
	m.mu.Unlock()

	a.store, a.err = m.build(ctx)

	m.mu.Lock()
	if a.err == nil {
		m.ready.Store(a.store)
	}
	m.current = nil
	m.mu.Unlock()
	close(a.done)

	return a.store, a.err
}

// Close closes the handle if one was built.
func (m *Manager) Close() error {
	if s := m.ready.Load(); s != nil {
		return s.Close()
	}
	return nil
}

// build performs one full construction: validate, open, check
// version, apply DDL and seed when the store is brand new.
func (m *Manager) build(ctx context.Context) (*Store, error) {
	if err := gardenSchema.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInit, err)
	}

	dataDir := m.dataDir
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: getting home directory: %v", domain.ErrInit, err)
		}
		dataDir = filepath.Join(home, ".gardenlog", "data")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", domain.ErrInit, err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	// WAL keeps readers unblocked while writers commit. The pragmas
	// ride on the DSN so the driver applies them to every connection
	// the pool opens; foreign_keys in particular is per-connection
	// state and must not depend on which connection ran init.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", domain.ErrInit, err)
	}

	s := &Store{
		db:      db,
		path:    dbPath,
		codecs:  gardenSchema.codecs(),
		tracker: newTracker(),
	}

	if err := s.initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}

	fresh, err := s.isFresh(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: checking catalog: %v", domain.ErrInit, err)
	}
	if fresh && m.seed != nil {
		logger.Debug("seeding fresh store at %s", dbPath)
		if err := m.seed(ctx, s.PlantStore()); err != nil {
			db.Close()
			return nil, fmt.Errorf("seeding catalog: %w", err)
		}
	}

	return s, nil
}

// initialize pins the schema version and applies the DDL. A fresh
// file (user_version 0) is stamped with the pinned version; any other
// mismatch is fatal.
func (s *Store) initialize(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("%w: reading schema version: %v", domain.ErrInit, err)
	}
	switch version {
	case 0:
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return fmt.Errorf("%w: stamping schema version: %v", domain.ErrInit, err)
		}
	case schemaVersion:
		// Already at the pinned version.
	default:
		return fmt.Errorf("%w: schema version %d, want %d (no migration path)",
			domain.ErrInit, version, schemaVersion)
	}

	for _, stmt := range gardenSchema.DDL() {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: applying schema: %v", domain.ErrInit, err)
		}
	}

	return nil
}

// isFresh reports whether the catalog has never been populated. An
// empty plants table after a crash between create and seed also
// counts, so the seed is retried on the next open instead of leaving
// an empty catalog behind.
func (s *Store) isFresh(ctx context.Context) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM plants").Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
