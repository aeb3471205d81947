package janggi

import (
	"errors"
	"testing"
)

// helper to apply a sequence of moves
func playMoves(t *testing.T, g *Game, moves [][2]Square) {
	t.Helper()
	for i, m := range moves {
		if err := g.Play(m[0], m[1]); err != nil {
			t.Fatalf("move %d (%v) failed: %v", i, m, err)
		}
	}
}

func TestTurnAlternation(t *testing.T) {
	g := NewGame()

	playMoves(t, g, [][2]Square{{Sq(3, 0), Sq(4, 0)}})
	if g.ToMove() != Red || g.Turn() != 1 {
		t.Fatalf("expected red to move at turn 1, got %v at %d", g.ToMove(), g.Turn())
	}

	if err := g.Play(Sq(4, 0), Sq(5, 0)); !errors.Is(err, ErrWrongTurn) {
		t.Fatalf("expected ErrWrongTurn, got %v", err)
	}
	if g.ToMove() != Red || g.Turn() != 1 {
		t.Fatalf("rejected move must not advance the turn")
	}

	playMoves(t, g, [][2]Square{
		{Sq(6, 0), Sq(5, 0)},
		{Sq(1, 4), Sq(1, 4)}, // 停着
		{Sq(8, 4), Sq(8, 4)},
	})
	if g.ToMove() != Blue || g.Turn() != 4 {
		t.Fatalf("expected blue to move at turn 4, got %v at %d", g.ToMove(), g.Turn())
	}

	// 吃子
	playMoves(t, g, [][2]Square{{Sq(4, 0), Sq(5, 0)}})
	if g.At(Sq(5, 0)) != MakePiece(Blue, KindSoldier) || g.At(Sq(4, 0)) != NoPiece {
		t.Fatalf("capture not applied: %s", g.Encode())
	}
	b := g.Board()
	if b.Occupied() != 31 {
		t.Fatalf("expected 31 pieces after capture, got %d", b.Occupied())
	}
}

func TestPlayRejections(t *testing.T) {
	tests := []struct {
		name     string
		from, to Square
		want     error
	}{
		{"empty origin", Sq(4, 4), Sq(5, 4), ErrNoPiece},
		{"opponent piece", Sq(6, 0), Sq(5, 0), ErrWrongTurn},
		{"own piece at destination", Sq(0, 0), Sq(0, 1), ErrOwnPiece},
		{"own general at destination", Sq(0, 3), Sq(1, 4), ErrOwnPiece},
		{"horse cannot reach", Sq(0, 2), Sq(3, 3), ErrUnreachable},
		{"chariot cannot turn", Sq(0, 0), Sq(5, 5), ErrUnreachable},
		{"off board", Sq(0, 0), Sq(10, 0), ErrOutOfBounds},
		{"off board origin", Sq(-1, 0), Sq(0, 0), ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			before := g.Board()
			if g.MakeMove(tt.from, tt.to) {
				t.Fatalf("move %v -> %v should be rejected", tt.from, tt.to)
			}
			if !errors.Is(g.LastError(), tt.want) {
				t.Fatalf("LastError = %v, want %v", g.LastError(), tt.want)
			}
			if g.Turn() != 0 || g.Board() != before {
				t.Fatalf("rejected move changed the game")
			}
		})
	}
}

func TestMakeMoveClearsLastError(t *testing.T) {
	g := NewGame()
	if g.MakeMove(Sq(4, 4), Sq(5, 4)) {
		t.Fatalf("expected rejection")
	}
	if !g.MakeMove(Sq(0, 2), Sq(2, 3)) {
		t.Fatalf("horse move should be legal: %v", g.LastError())
	}
	if g.LastError() != nil {
		t.Fatalf("LastError should be cleared, got %v", g.LastError())
	}
}

func TestNoSelfCapture(t *testing.T) {
	g := NewGame()
	b := g.Board()
	for i, from := range b.Squares {
		if from.Color() != Blue {
			continue
		}
		for j, to := range b.Squares {
			if i == j || to.Color() != Blue {
				continue
			}
			fromSq := Sq(i/Cols, i%Cols)
			toSq := Sq(j/Cols, j%Cols)
			if err := g.Play(fromSq, toSq); !errors.Is(err, ErrOwnPiece) {
				t.Fatalf("%v -> %v: expected ErrOwnPiece, got %v", fromSq, toSq, err)
			}
		}
	}
}

func TestPassWhileInCheck(t *testing.T) {
	g := newTestGame(Blue, map[Square]Piece{
		Sq(1, 4): blueGeneral,
		Sq(3, 0): MakePiece(Blue, KindSoldier),
		Sq(5, 4): MakePiece(Red, KindChariot),
	})
	for _, sq := range []Square{Sq(1, 4), Sq(3, 0)} {
		if g.MakeMove(sq, sq) {
			t.Fatalf("pass with %v while in check should be rejected", sq)
		}
		if !errors.Is(g.LastError(), ErrPassInCheck) {
			t.Fatalf("expected ErrPassInCheck, got %v", g.LastError())
		}
	}
	if g.Turn() != 0 {
		t.Fatalf("turn advanced after rejected pass")
	}

	// 挪开将以后就可以了
	if !g.MakeMove(Sq(1, 4), Sq(1, 3)) {
		t.Fatalf("general should be able to step aside: %v", g.LastError())
	}
	if g.ToMove() != Red {
		t.Fatalf("expected red to move")
	}
}

const (
	// 蓝车 (5,8) 下到 (9,8) 将军，(8,0) 的车封住第 8 行
	mateFEN = "4K4/9/9/9/9/8R/9/9/R8/3k5 b"
	// 同上，但红方有一个车能吃掉将军的车
	mateWithCaptureFEN = "4K4/9/9/8r/9/8R/9/9/R8/3k5 b"
	// 少了封线的车，红将可以上去
	checkFEN = "4K4/9/9/9/9/8R/9/9/9/3k5 b"
)

func decode(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := DecodePosition(fen)
	if err != nil {
		t.Fatalf("decode %q: %v", fen, err)
	}
	return g
}

func TestCheckmateEndsGame(t *testing.T) {
	for _, fen := range []string{mateFEN, mateWithCaptureFEN} {
		t.Run(fen, func(t *testing.T) {
			g := decode(t, fen)
			if g.InCheck(Red) {
				t.Fatalf("red should not start in check")
			}

			from, to := Sq(5, 8), Sq(9, 8)
			expected := g.Board()
			expected.Place(to, expected.At(from))
			expected.Place(from, NoPiece)

			if !g.MakeMove(from, to) {
				t.Fatalf("mating move rejected: %v", g.LastError())
			}
			if g.Result() != BlueWins {
				t.Fatalf("expected blue to win, got %v", g.Result())
			}
			if g.Board() != expected {
				t.Fatalf("board differs from the applied move after mate check")
			}

			turn := g.Turn()
			for _, m := range [][2]Square{
				{Sq(9, 3), Sq(9, 3)},
				{Sq(9, 3), Sq(8, 3)},
				{Sq(8, 0), Sq(7, 0)},
				{Sq(4, 4), Sq(4, 5)},
			} {
				if g.MakeMove(m[0], m[1]) {
					t.Fatalf("move %v accepted after game over", m)
				}
				if !errors.Is(g.LastError(), ErrGameOver) {
					t.Fatalf("expected ErrGameOver, got %v", g.LastError())
				}
			}
			if g.Turn() != turn {
				t.Fatalf("turn advanced after game over")
			}
		})
	}
}

func TestCheckWithEscapeContinues(t *testing.T) {
	g := decode(t, checkFEN)
	from, to := Sq(5, 8), Sq(9, 8)
	expected := g.Board()
	expected.Place(to, expected.At(from))
	expected.Place(from, NoPiece)

	if !g.MakeMove(from, to) {
		t.Fatalf("checking move rejected: %v", g.LastError())
	}
	if g.Result() != Ongoing {
		t.Fatalf("general can escape, game must go on; got %v", g.Result())
	}
	if g.Board() != expected {
		t.Fatalf("simulation leaked into the board")
	}
	if !g.InCheck(Red) {
		t.Fatalf("red should be in check")
	}
	if g.MakeMove(Sq(9, 3), Sq(9, 3)) {
		t.Fatalf("red cannot pass while in check")
	}
	assertSquares(t, g.Moves(Sq(9, 3)), []Square{Sq(8, 3), Sq(8, 4)})
	if !g.MakeMove(Sq(9, 3), Sq(8, 4)) {
		t.Fatalf("escape rejected: %v", g.LastError())
	}
	if g.InCheck(Red) {
		t.Fatalf("red should be out of check")
	}
}

func TestGeneralIsNeverCaptured(t *testing.T) {
	g := newTestGame(Blue, map[Square]Piece{
		Sq(1, 4): blueGeneral,
		Sq(3, 4): MakePiece(Blue, KindSoldier),
		Sq(5, 4): MakePiece(Red, KindChariot),
	})
	// 兵横走，自己露将；只有将自己的走法才过滤被将军的格子
	if !g.MakeMove(Sq(3, 4), Sq(3, 3)) {
		t.Fatalf("soldier move rejected: %v", g.LastError())
	}
	if !g.InCheck(Blue) {
		t.Fatalf("blue general should be exposed")
	}

	before := g.Board()
	if err := g.Play(Sq(5, 4), Sq(1, 4)); !errors.Is(err, ErrCaptureGeneral) {
		t.Fatalf("expected ErrCaptureGeneral, got %v", err)
	}
	if g.Board() != before || g.ToMove() != Red {
		t.Fatalf("rejected capture changed the game")
	}
}
