package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pagescroll/internal/app"
	"github.com/llehouerou/pagescroll/internal/config"
	"github.com/llehouerou/pagescroll/internal/errmsg"
	"github.com/llehouerou/pagescroll/internal/logging"
	"github.com/llehouerou/pagescroll/internal/state"
	"github.com/llehouerou/pagescroll/internal/watch"
)

type flags struct {
	config       string
	easing       string
	durationMS   int
	interpolated bool
	noLoop       bool
	noWatch      bool
}

func parseFlags() (flags, string, string) {
	var f flags
	flag.StringVar(&f.config, "config", "", "Additional config file (read last)")
	flag.StringVar(&f.easing, "easing", "", "Transition easing (linear, ease, easeInOut, easeInOutCubic, ...)")
	flag.IntVar(&f.durationMS, "duration", 0, "Transition duration in milliseconds")
	flag.BoolVar(&f.interpolated, "interpolated", false, "Animate frame by frame instead of with a native transition")
	flag.BoolVar(&f.noLoop, "no-loop", false, "Stop at the first and last slide")
	flag.BoolVar(&f.noWatch, "no-watch", false, "Do not reload the deck when the file changes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] DECK.md[#slideN]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	deckPath, fragment := splitFragment(flag.Arg(0))
	return f, deckPath, fragment
}

// splitFragment separates "talk.md#slide3" into path and fragment.
func splitFragment(arg string) (string, string) {
	path, fragment, _ := strings.Cut(arg, "#")
	return path, fragment
}

// apply overrides the loaded configuration with the flags set on the
// command line.
func (f flags) apply(cfg *config.Config) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "easing":
			cfg.Deck.Easing = f.easing
		case "duration":
			cfg.Deck.DurationMS = f.durationMS
		case "interpolated":
			cfg.Deck.Interpolated = f.interpolated
		case "no-loop":
			loop := !f.noLoop
			cfg.Deck.Loop = &loop
		}
	})
}

func run() error {
	f, deckPath, fragment := parseFlags()

	var extra []string
	if f.config != "" {
		extra = append(extra, f.config)
	}
	cfg, err := config.Load(extra...)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	f.apply(cfg)

	logger, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = logging.Discard()
	}
	defer logger.Close()

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer func() {
		if err := stateMgr.Close(); err != nil {
			logger.Error("close state", "err", err)
		}
	}()

	var w app.Watch
	if !f.noWatch {
		watcher, err := watch.New(deckPath, watch.DefaultDebounce)
		if err != nil {
			logger.Warn("deck watch disabled", "path", deckPath, "err", err)
		} else {
			defer watcher.Close()
			w = app.Watch{Changes: watcher.Changes(), Errors: watcher.Errors()}
		}
	}

	m, err := app.New(app.Options{
		Config:   cfg,
		DeckPath: deckPath,
		Fragment: fragment,
		State:    stateMgr,
		Logger:   logger.Logger,
		Watch:    w,
	})
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpDeckLoad, deckPath, err))
	}

	logger.Info("starting", "deck", deckPath, "fragment", fragment)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
