package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"janggi/internal/janggi"
)

var ErrNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*Session
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Session)}
}

func (m *Manager) NewGame() *Session {
	return m.add(janggi.NewGame())
}

// NewGameFrom 从 FEN 开一盘，主要给调试和测试用
func (m *Manager) NewGameFrom(fen string) (*Session, error) {
	g, err := janggi.DecodePosition(fen)
	if err != nil {
		return nil, err
	}
	return m.add(g), nil
}

func (m *Manager) add(g *janggi.Game) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		game:      g,
		updatedAt: now,
	}
	m.games[s.ID] = s
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
