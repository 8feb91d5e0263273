// internal/app/app.go
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pagescroll/internal/config"
	"github.com/llehouerou/pagescroll/internal/deck"
	"github.com/llehouerou/pagescroll/internal/keymap"
	"github.com/llehouerou/pagescroll/internal/slides"
	"github.com/llehouerou/pagescroll/internal/state"
	"github.com/llehouerou/pagescroll/internal/ui/slideview"
)

// Options wires the model to its environment.
type Options struct {
	Config   *config.Config
	DeckPath string
	// Fragment from the command line, empty if none.
	Fragment string
	State    state.Interface
	Logger   *slog.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
	Watch Watch
}

// Model is the root application model.
type Model struct {
	cfg       *config.Config
	deckCfg   deck.Config
	deckPath  string
	deckName  string
	deckBytes int64

	runtime   *Runtime
	deck      *deck.SlideDeck
	view      *slideview.View
	fragments *state.DeckFragment
	keys      *keymap.Resolver
	watch     Watch
	log       *slog.Logger

	started  bool
	showHelp bool
	ErrorMsg string
	errorID  int
	Width    int
	Height   int
}

// New loads the deck and builds the model. Nothing is drawn or measured
// until the first window size arrives.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	st := opts.State
	if st == nil {
		st = state.NewMock()
	}

	deckCfg, err := cfg.DeckConfig()
	if err != nil {
		return Model{}, err
	}
	grace, err := cfg.FinishGrace()
	if err != nil {
		return Model{}, err
	}

	path, err := filepath.Abs(opts.DeckPath)
	if err != nil {
		return Model{}, err
	}
	all, size, err := loadDeck(path)
	if err != nil {
		return Model{}, err
	}

	rt := NewRuntime(cfg.FrameInterval(), opts.Clock)
	view := slideview.New(rt, all, slideview.Options{
		Selector:  deckCfg.Selector,
		CodeStyle: cfg.UI.CodeStyle,
	})
	fragments := state.NewDeckFragment(st, path, opts.Fragment, log)

	d, err := deck.New(deckCfg, view, deck.Options{
		Scheduler:   rt,
		Input:       rt,
		Fragments:   fragments,
		Curves:      cfg.Curves(),
		Logger:      log,
		OnError:     rt.ReportError,
		FinishGrace: grace,
	})
	if err != nil {
		return Model{}, err
	}

	return Model{
		cfg:       cfg,
		deckCfg:   deckCfg,
		deckPath:  path,
		deckName:  filepath.Base(path),
		deckBytes: size,
		runtime:   rt,
		deck:      d,
		view:      view,
		fragments: fragments,
		keys:      keymap.Default(),
		watch:     opts.Watch,
		log:       log.With("component", "app"),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.watch.waitForChange(), m.watch.waitForError())
}

// Deck returns the slide deck.
func (m Model) Deck() *deck.SlideDeck { return m.deck }

// Runtime returns the deck's scheduler and input source.
func (m Model) Runtime() *Runtime { return m.runtime }

// HelpVisible reports whether the help overlay is shown.
func (m Model) HelpVisible() bool { return m.showHelp }

func loadDeck(path string) ([]slides.Slide, int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read deck: %w", err)
	}
	return slides.Parse(data), int64(len(data)), nil
}
