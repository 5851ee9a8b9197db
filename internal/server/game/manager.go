package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"hexchess/internal/hexchess"
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrIllegalMove      = errors.New("illegal move")
	ErrInvalidPromotion = errors.New("invalid promotion piece")
	ErrGameOver         = errors.New("game is over")
	ErrStalePosition    = errors.New("position changed since search")
)

type session struct {
	mu    sync.Mutex
	state *GameState
}

// Manager 内存中的对局表。对外只给快照，调用方可以随意读写快照里的局面。
type Manager struct {
	mu    sync.RWMutex
	games map[string]*session
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*session)}
}

func (m *Manager) NewGame() *GameState {
	return m.newGame(hexchess.NewInitialPosition())
}

// NewGameFromFEN 从指定局面开局
func (m *Manager) NewGameFromFEN(fen string) (*GameState, error) {
	pos, err := hexchess.DecodePosition(fen)
	if err != nil {
		return nil, err
	}
	return m.newGame(pos), nil
}

func (m *Manager) newGame(pos *hexchess.Position) *GameState {
	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Pos:       pos,
		History:   []uint64{pos.CalculateHash()},
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.games[g.ID] = &session{state: g}
	m.mu.Unlock()
	return g.clone()
}

func (m *Manager) lookup(id string) (*session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return s, nil
}

// Get 返回对局快照
func (m *Manager) Get(id string) (*GameState, error) {
	s, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone(), nil
}

// Play 走一步合法着法；兵到底线时按 promotion 升变，PieceNone 默认升后
func (m *Manager) Play(id string, mv hexchess.Move, promotion hexchess.PieceType) (*GameState, error) {
	s, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.play(mv, promotion)
}

// ApplyEngineMove 把基于 hash 局面算出来的着法落到对局里；局面已经变了就拒绝
func (m *Manager) ApplyEngineMove(id string, basedOn uint64, mv hexchess.Move) (*GameState, error) {
	s, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Pos.CalculateHash() != basedOn {
		return nil, ErrStalePosition
	}
	return s.play(mv, hexchess.Queen)
}

func (s *session) play(mv hexchess.Move, promotion hexchess.PieceType) (*GameState, error) {
	g := s.state
	if g.Status() != hexchess.Ongoing {
		return nil, ErrGameOver
	}
	if !g.Pos.IsLegal(mv) {
		return nil, fmt.Errorf("%w: %v", ErrIllegalMove, mv)
	}
	if promotion == hexchess.PieceNone {
		promotion = hexchess.Queen
	}

	next := g.Pos.Clone()
	if !next.MovePiece(mv.From, mv.To) {
		return nil, fmt.Errorf("%w: %v", ErrIllegalMove, mv)
	}
	if next.HasPendingPromotion && !next.PromotePawn(promotion) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPromotion, promotion)
	}

	g.Pos = next
	g.History = append(g.History, next.CalculateHash())
	g.Moves = append(g.Moves, mv)
	g.UpdatedAt = time.Now()
	return g.clone(), nil
}

// Status 对局结果，包括三次重复
func (m *Manager) Status(id string) (hexchess.GameStatus, error) {
	g, err := m.Get(id)
	if err != nil {
		return hexchess.Ongoing, err
	}
	return g.Status(), nil
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
