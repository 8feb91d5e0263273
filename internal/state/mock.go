// internal/state/mock.go
package state

import "time"

// Mock is a test double for Manager.
type Mock struct {
	positions map[string]Position
	saves     int
	closed    bool
	getErr    error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{positions: make(map[string]Position)}
}

func (m *Mock) GetPosition(deckPath string) (*Position, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	p, ok := m.positions[deckPath]
	if !ok {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	return &p, nil
}

func (m *Mock) SavePosition(deckPath, fragment string) {
	m.saves++
	m.positions[deckPath] = Position{DeckPath: deckPath, Fragment: fragment, UpdatedAt: time.Now()}
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetPosition(p Position) { m.positions[p.DeckPath] = p }

func (m *Mock) SetGetError(err error) { m.getErr = err }

func (m *Mock) Saves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
