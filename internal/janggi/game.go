package janggi

// Game 是唯一的权威棋盘 + 回合计数 + 结果。
// 不是并发安全的：同一时间只能有一个调用方。
type Game struct {
	board   Board
	turn    int
	result  Result
	lastErr error
}

// NewGame 返回初始局面，蓝方先走。
func NewGame() *Game {
	return &Game{board: parseInitialBoard()}
}

// ToMove 由回合数的奇偶决定
func (g *Game) ToMove() Color {
	if g.turn%2 == 0 {
		return Blue
	}
	return Red
}

func (g *Game) Turn() int      { return g.turn }
func (g *Game) Result() Result { return g.result }

// Board 返回棋盘的拷贝，修改它不会影响对局。
func (g *Game) Board() Board { return g.board }

func (g *Game) At(sq Square) Piece { return g.board.At(sq) }

// LastError 返回最近一次 MakeMove 被拒绝的原因；成功后清空。
func (g *Game) LastError() error { return g.lastErr }

func (g *Game) InCheck(c Color) bool { return g.board.InCheck(c) }

// Moves 返回 from 上棋子当前能走到的格子（不看是否轮到它）。
func (g *Game) Moves(from Square) []Square {
	return g.board.Destinations(from)
}

// MakeMove 是只返回成败的版本，失败原因见 LastError。
func (g *Game) MakeMove(from, to Square) bool {
	g.lastErr = g.Play(from, to)
	return g.lastErr == nil
}

// Play 校验并执行一步。from == to 表示停着（pass）。
// 被拒绝时局面和回合数都不变。
func (g *Game) Play(from, to Square) error {
	if g.result != Ongoing {
		return ErrGameOver
	}
	if !g.board.InBounds(from) || !g.board.InBounds(to) {
		return ErrOutOfBounds
	}
	pc := g.board.At(from)
	if pc == NoPiece {
		return ErrNoPiece
	}
	mover := g.ToMove()
	if pc.Color() != mover {
		return ErrWrongTurn
	}

	if from == to {
		if g.board.InCheck(mover) {
			return ErrPassInCheck
		}
		g.turn++
		return nil
	}

	dst := g.board.At(to)
	if dst != NoPiece && dst.Color() == mover {
		return ErrOwnPiece
	}
	if !g.board.canReach(from, to) {
		return ErrUnreachable
	}
	if dst.Kind() == KindGeneral {
		return ErrCaptureGeneral
	}

	g.board.Place(to, pc)
	g.board.Place(from, NoPiece)

	// 只判断对方是否被将死，自己露将不在这里管
	opp := mover.Opposite()
	if g.board.InCheck(opp) && g.board.isCheckmated(opp) {
		g.result = winFor(mover)
	}
	g.turn++
	return nil
}
