package game

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"xiangqi/internal/xiangqi"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
	opts  []xiangqi.Option
}

// NewManager opts 会传给每一局的 NewRules。
func NewManager(opts ...xiangqi.Option) *Manager {
	return &Manager{games: make(map[string]*GameState), opts: opts}
}

// NewGame 按方位建一局并摆好开局。
func (m *Manager) NewGame(orientation xiangqi.Side) (*GameState, error) {
	rules, err := xiangqi.NewRules(orientation, m.opts...)
	if err != nil {
		return nil, err
	}
	b := xiangqi.NewBoard(rules)
	if err := rules.StartGame(b); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return m.add(b), nil
}

// Load 用文本编码的局面建一局。
func (m *Manager) Load(layout string) (*GameState, error) {
	b, err := xiangqi.Decode(layout, m.opts...)
	if err != nil {
		return nil, err
	}
	return m.add(b), nil
}

func (m *Manager) add(b *xiangqi.Board) *GameState {
	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		CreatedAt: now,
		board:     b,
		updatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return g
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	return nil
}

// List 所有对局 ID，按创建时间排序。
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	gs := make([]*GameState, 0, len(m.games))
	for _, g := range m.games {
		gs = append(gs, g)
	}
	sort.Slice(gs, func(i, j int) bool {
		if gs[i].CreatedAt.Equal(gs[j].CreatedAt) {
			return gs[i].ID < gs[j].ID
		}
		return gs[i].CreatedAt.Before(gs[j].CreatedAt)
	})
	ids := make([]string, len(gs))
	for i, g := range gs {
		ids[i] = g.ID
	}
	return ids
}
