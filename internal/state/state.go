// Package state persists per-deck reading positions in SQLite.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "pagescroll"
	dbFileName   = "pagescroll.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	debounce  time.Duration
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]Position
}

// Open opens the database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the database at dbPath, creating its directory. ":memory:"
// opens a private in-memory database.
func OpenPath(dbPath string) (*Manager, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// one connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{
		db:       db,
		debounce: saveDebounce,
		pending:  make(map[string]Position),
	}, nil
}

// Close flushes pending writes and closes the database.
func (m *Manager) Close() error {
	flushErr := m.Flush()
	if err := m.db.Close(); err != nil {
		return err
	}
	return flushErr
}

// Flush writes pending positions now.
func (m *Manager) Flush() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}
	pending := m.pending
	m.pending = make(map[string]Position)
	m.saveMu.Unlock()

	return savePositions(m.db, pending)
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// GetPosition returns the saved position of deckPath, including one still
// waiting to be written, or nil if none was saved.
func (m *Manager) GetPosition(deckPath string) (*Position, error) {
	m.saveMu.Lock()
	p, ok := m.pending[deckPath]
	m.saveMu.Unlock()
	if ok {
		return &p, nil
	}
	return getPosition(m.db, deckPath)
}

// SavePosition records fragment for deckPath. Writes are debounced so a
// burst of navigation hits the disk once.
func (m *Manager) SavePosition(deckPath, fragment string) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending[deckPath] = Position{
		DeckPath:  deckPath,
		Fragment:  fragment,
		UpdatedAt: time.Now(),
	}

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, func() {
		_ = m.Flush()
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
