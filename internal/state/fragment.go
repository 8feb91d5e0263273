package state

import (
	"log/slog"
	"time"

	"github.com/llehouerou/pagescroll/internal/deck"
)

// DeckFragment is the fragment store of one deck file. A fragment given on
// the command line wins over the saved position until the deck navigates.
type DeckFragment struct {
	store    Interface
	deckPath string
	log      *slog.Logger

	current string
	set     bool
	savedAt time.Time
}

// NewDeckFragment returns a store for deckPath. override is the fragment
// from the command line, empty if none.
func NewDeckFragment(store Interface, deckPath, override string, log *slog.Logger) *DeckFragment {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &DeckFragment{
		store:    store,
		deckPath: deckPath,
		log:      log,
		current:  override,
		set:      override != "",
	}
}

var _ deck.FragmentStore = (*DeckFragment)(nil)

func (f *DeckFragment) Read() (string, bool) {
	if f.set {
		return f.current, true
	}
	p, err := f.store.GetPosition(f.deckPath)
	if err != nil {
		f.log.Warn("read deck position", "deck", f.deckPath, "err", err)
		return "", false
	}
	if p == nil {
		return "", false
	}
	f.savedAt = p.UpdatedAt
	return p.Fragment, true
}

func (f *DeckFragment) Write(fragment string) {
	f.current = fragment
	f.set = true
	f.store.SavePosition(f.deckPath, fragment)
}

// SavedAt returns when the position read from the store was saved.
func (f *DeckFragment) SavedAt() (time.Time, bool) {
	return f.savedAt, !f.savedAt.IsZero()
}
