package state

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func TestInitSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := initSchema(db); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}

	var version int
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("version = %d, want %d", version, currentSchemaVersion)
	}
}

func TestGetPosition_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	p, err := getPosition(db, "/talks/intro.md")
	if err != nil {
		t.Fatalf("getPosition failed: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil position on empty db, got %+v", p)
	}
}

func TestSavePositions_Upsert(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first := time.Unix(1_700_000_000, 0)
	err := savePositions(db, map[string]Position{
		"/a.md": {DeckPath: "/a.md", Fragment: "slide2", UpdatedAt: first},
		"/b.md": {DeckPath: "/b.md", Fragment: "slide0", UpdatedAt: first},
	})
	if err != nil {
		t.Fatalf("savePositions failed: %v", err)
	}
	err = savePositions(db, map[string]Position{
		"/a.md": {DeckPath: "/a.md", Fragment: "slide5", UpdatedAt: first.Add(time.Hour)},
	})
	if err != nil {
		t.Fatalf("savePositions (update) failed: %v", err)
	}

	a, err := getPosition(db, "/a.md")
	if err != nil || a == nil {
		t.Fatalf("getPosition(/a.md) = %v, %v", a, err)
	}
	if a.Fragment != "slide5" {
		t.Errorf("Fragment = %q, want slide5", a.Fragment)
	}
	if !a.UpdatedAt.Equal(first.Add(time.Hour)) {
		t.Errorf("UpdatedAt = %v", a.UpdatedAt)
	}

	b, _ := getPosition(db, "/b.md")
	if b == nil || b.Fragment != "slide0" {
		t.Errorf("getPosition(/b.md) = %+v", b)
	}
}

func TestManager_DebouncedSaveReadsBack(t *testing.T) {
	m, err := OpenPath(":memory:")
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	defer m.Close()
	m.debounce = time.Hour

	m.SavePosition("/talk.md", "slide1")
	m.SavePosition("/talk.md", "slide2")

	p, err := m.GetPosition("/talk.md")
	if err != nil || p == nil || p.Fragment != "slide2" {
		t.Fatalf("pending GetPosition = %+v, %v", p, err)
	}

	stored, _ := getPosition(m.DB(), "/talk.md")
	if stored != nil {
		t.Fatalf("write not debounced: %+v", stored)
	}

	if err := m.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	stored, _ = getPosition(m.DB(), "/talk.md")
	if stored == nil || stored.Fragment != "slide2" {
		t.Errorf("stored = %+v, want slide2", stored)
	}
}

func TestManager_TimerFlushes(t *testing.T) {
	m, err := OpenPath(":memory:")
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	defer m.Close()
	m.debounce = 10 * time.Millisecond

	m.SavePosition("/talk.md", "slide3")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if p, _ := getPosition(m.DB(), "/talk.md"); p != nil {
			if p.Fragment != "slide3" {
				t.Errorf("Fragment = %q", p.Fragment)
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("debounced save never reached the database")
}

func TestManager_CloseFlushesToDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "state.db")

	m, err := OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	m.debounce = time.Hour
	m.SavePosition("/talk.md", "slide4")
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenPath(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	p, err := reopened.GetPosition("/talk.md")
	if err != nil || p == nil || p.Fragment != "slide4" {
		t.Errorf("GetPosition after reopen = %+v, %v", p, err)
	}
}

func TestDeckFragment_OverrideWinsUntilWrite(t *testing.T) {
	mock := NewMock()
	mock.SetPosition(Position{DeckPath: "/talk.md", Fragment: "slide7", UpdatedAt: time.Unix(1_700_000_000, 0)})

	f := NewDeckFragment(mock, "/talk.md", "slide2", nil)

	if got, ok := f.Read(); !ok || got != "slide2" {
		t.Errorf("Read() = %q, %v, want override", got, ok)
	}
	if _, ok := f.SavedAt(); ok {
		t.Error("SavedAt() reported a stored position while overridden")
	}

	f.Write("slide3")
	if got, _ := f.Read(); got != "slide3" {
		t.Errorf("Read() after Write = %q", got)
	}
	if mock.Saves() != 1 {
		t.Errorf("saves = %d, want 1", mock.Saves())
	}
	if p, _ := mock.GetPosition("/talk.md"); p.Fragment != "slide3" {
		t.Errorf("stored fragment = %q", p.Fragment)
	}
}

func TestDeckFragment_ReadsStore(t *testing.T) {
	mock := NewMock()
	saved := time.Unix(1_700_000_000, 0)
	mock.SetPosition(Position{DeckPath: "/talk.md", Fragment: "slide7", UpdatedAt: saved})

	f := NewDeckFragment(mock, "/talk.md", "", nil)

	if got, ok := f.Read(); !ok || got != "slide7" {
		t.Errorf("Read() = %q, %v", got, ok)
	}
	if at, ok := f.SavedAt(); !ok || !at.Equal(saved) {
		t.Errorf("SavedAt() = %v, %v", at, ok)
	}
}

func TestDeckFragment_Missing(t *testing.T) {
	f := NewDeckFragment(NewMock(), "/new.md", "", nil)

	if got, ok := f.Read(); ok {
		t.Errorf("Read() = %q, true, want absent", got)
	}
}

func TestDeckFragment_StoreErrorMeansAbsent(t *testing.T) {
	mock := NewMock()
	mock.SetGetError(errors.New("disk gone"))

	f := NewDeckFragment(mock, "/talk.md", "", nil)

	if _, ok := f.Read(); ok {
		t.Error("Read() reported a fragment despite the store error")
	}
}
