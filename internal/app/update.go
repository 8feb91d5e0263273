// internal/app/update.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pagescroll/internal/app/handler"
	"github.com/llehouerou/pagescroll/internal/errmsg"
	"github.com/llehouerou/pagescroll/internal/keymap"
	"github.com/llehouerou/pagescroll/internal/slides"
	"github.com/llehouerou/pagescroll/internal/ui/slideview"
	"github.com/llehouerou/pagescroll/internal/ui/statusbar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cmd = m.handleWindowSize(msg)

	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m.handleMouseMsg(msg)

	case FrameMsg:
		m.runtime.RunFrame(time.Time(msg))

	case TimerMsg:
		m.runtime.FireTimer(msg.ID)

	case DeckChangedMsg:
		cmd = tea.Batch(m.reload(), m.watch.waitForChange())

	case WatchErrorMsg:
		cmd = tea.Batch(m.setError(errmsg.Format(errmsg.OpDeckWatch, msg.Err)), m.watch.waitForError())

	case ErrorClearMsg:
		if msg.ID == m.errorID {
			m.ErrorMsg = ""
		}
	}

	cmd = tea.Batch(cmd, m.drain())
	return m, cmd
}

// drain surfaces deck errors and hands over the deck's pending ticks.
func (m *Model) drain() tea.Cmd {
	var cmds []tea.Cmd
	for _, err := range m.runtime.TakeErrors() {
		cmds = append(cmds, m.setError(errmsg.Format(errmsg.DeckOp(err), err)))
	}
	cmds = append(cmds, m.runtime.Flush())
	return tea.Batch(cmds...)
}

func (m *Model) setError(text string) tea.Cmd {
	m.errorID++
	m.ErrorMsg = text
	return ErrorClearCmd(m.errorID)
}

func (m *Model) bodyHeight() int {
	if m.cfg.ShowStatus() {
		return max(m.Height-statusbar.Height, 0)
	}
	return m.Height
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) tea.Cmd {
	m.Width = msg.Width
	m.Height = msg.Height
	m.view.Resize(m.Width, m.bodyHeight())

	if !m.started {
		m.started = true
		if err := m.deck.Initialize(); err != nil {
			return m.setError(errmsg.Format(errmsg.DeckOp(err), err))
		}
		return nil
	}
	m.runtime.DispatchResize()
	return nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if m.showHelp && key == "esc" {
		m.showHelp = false
		return nil
	}

	_, cmd := handler.Chain(m.keys.Resolve(key),
		m.handleHelpOpen,
		m.handleNavigation,
		m.handleDeckKeys,
		m.handleGlobalKeys,
	)
	return cmd
}

// handleHelpOpen swallows everything but closing while the overlay is up.
func (m *Model) handleHelpOpen(a keymap.Action) handler.Result {
	if !m.showHelp {
		return handler.NotHandled
	}
	if a == keymap.ActionHelp || a == keymap.ActionQuit {
		m.showHelp = false
	}
	return handler.HandledNoCmd
}

func (m *Model) handleNavigation(a keymap.Action) handler.Result {
	delta, ok := a.WheelDelta()
	if !ok {
		return handler.NotHandled
	}
	m.runtime.DispatchWheel(delta)
	return handler.HandledNoCmd
}

func (m *Model) handleDeckKeys(a keymap.Action) handler.Result {
	if a != keymap.ActionReload {
		return handler.NotHandled
	}
	return handler.Handled(m.reload())
}

func (m *Model) handleGlobalKeys(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionHelp:
		m.showHelp = true
		return handler.HandledNoCmd
	case keymap.ActionQuit:
		m.deck.Teardown()
		return handler.Handled(tea.Quit)
	default:
		return handler.NotHandled
	}
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || m.showHelp {
		return
	}
	switch msg.Button { //nolint:exhaustive // only the wheel navigates
	case tea.MouseButtonWheelDown:
		m.runtime.DispatchWheel(1)
	case tea.MouseButtonWheelUp:
		m.runtime.DispatchWheel(-1)
	}
}

// reload re-reads the deck file and swaps in a fresh view. The position
// carries over through the fragment store.
func (m *Model) reload() tea.Cmd {
	all, size, err := loadDeck(m.deckPath)
	if err != nil {
		return m.setError(errmsg.FormatWith(errmsg.OpDeckReload, m.deckName, err))
	}

	v := slideview.New(m.runtime, all, slideview.Options{
		Selector:  m.deckCfg.Selector,
		CodeStyle: m.cfg.UI.CodeStyle,
	})
	v.Resize(m.view.Width(), m.view.Height())
	m.view = v
	m.deckBytes = size
	m.started = true

	if err := m.deck.SetContainer(v); err != nil {
		return m.setError(errmsg.Format(errmsg.DeckOp(err), err))
	}
	m.log.Info("deck reloaded",
		"path", m.deckPath,
		"slides", len(slides.WithClass(all, m.deckCfg.Selector)),
		"index", m.deck.Current())
	return nil
}
