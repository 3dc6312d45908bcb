package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/domain/repository"
	"github.com/bnema/tessera/internal/logging"
)

// LazyDB opens the database on first access. Opening compiles the SQLite
// WASM module and runs migrations, which `tessera schema` and friends never
// need.
type LazyDB struct {
	dbPath string
	db     *sql.DB
	err    error
	once   sync.Once
	mu     sync.RWMutex
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a lazy database provider for dbPath.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the connection, opening it once.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		logging.FromContext(ctx).Debug().Str("path", l.dbPath).Msg("opening database on first use")
		db, err := NewConnection(ctx, l.dbPath)
		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

// Close closes the connection if it was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized reports whether the connection was opened.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}

// LazyLayoutStateRepository defers opening the database to its first call.
type LazyLayoutStateRepository struct {
	provider port.DatabaseProvider
	repo     repository.LayoutStateRepository
	once     sync.Once
	initErr  error
}

var _ repository.LayoutStateRepository = (*LazyLayoutStateRepository)(nil)

// NewLazyLayoutStateRepository creates a lazy-loading layout repository.
func NewLazyLayoutStateRepository(provider port.DatabaseProvider) *LazyLayoutStateRepository {
	return &LazyLayoutStateRepository{provider: provider}
}

func (r *LazyLayoutStateRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewLayoutStateRepository(db)
		logging.FromContext(ctx).Debug().Str("path", r.provider.Path()).Msg("layout store ready")
	})
	return r.initErr
}

func (r *LazyLayoutStateRepository) SaveSnapshot(ctx context.Context, id entity.WorkspaceID, state *entity.SessionState) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SaveSnapshot(ctx, id, state)
}

func (r *LazyLayoutStateRepository) GetSnapshot(ctx context.Context, id entity.WorkspaceID) (*entity.StoredLayout, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetSnapshot(ctx, id)
}

func (r *LazyLayoutStateRepository) DeleteSnapshot(ctx context.Context, id entity.WorkspaceID) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.DeleteSnapshot(ctx, id)
}

func (r *LazyLayoutStateRepository) ListSnapshots(ctx context.Context) ([]entity.LayoutSummary, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.ListSnapshots(ctx)
}
