package game

import (
	"sync"
	"time"

	"janggi/internal/janggi"
)

// Session 包一盘对局。引擎本身不加锁，所有访问都要先拿 mu。
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *janggi.Game
	updatedAt time.Time
}

// Snapshot 是某一时刻对局的只读快照
type Snapshot struct {
	ID        string
	Position  string
	ToMove    janggi.Color
	Turn      int
	Result    janggi.Result
	InCheck   bool
	UpdatedAt time.Time
}

func (s *Session) snapshotLocked() Snapshot {
	toMove := s.game.ToMove()
	return Snapshot{
		ID:        s.ID,
		Position:  s.game.Encode(),
		ToMove:    toMove,
		Turn:      s.game.Turn(),
		Result:    s.game.Result(),
		InCheck:   s.game.InCheck(toMove),
		UpdatedAt: s.updatedAt,
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Play 在会话锁内调用引擎；失败时返回引擎给出的原因。
func (s *Session) Play(from, to janggi.Square) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.game.Play(from, to); err != nil {
		return s.snapshotLocked(), err
	}
	s.updatedAt = time.Now()
	return s.snapshotLocked(), nil
}

func (s *Session) Moves(from janggi.Square) []janggi.Square {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Moves(from)
}
