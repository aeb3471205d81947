package janggi

import (
	"sort"
	"testing"
)

var (
	blueGeneral = MakePiece(Blue, KindGeneral)
	redGeneral  = MakePiece(Red, KindGeneral)
)

// newTestGame 在空棋盘上摆子；没给将的一方把将放在九宫中线底边。
func newTestGame(toMove Color, pieces map[Square]Piece) *Game {
	g := &Game{}
	for sq, pc := range pieces {
		g.board.Place(sq, pc)
	}
	if _, ok := g.board.findGeneral(Blue); !ok {
		g.board.Place(Sq(0, 4), blueGeneral)
	}
	if _, ok := g.board.findGeneral(Red); !ok {
		g.board.Place(Sq(9, 4), redGeneral)
	}
	if toMove == Red {
		g.turn = 1
	}
	return g
}

func sortSquares(sqs []Square) []Square {
	out := append([]Square(nil), sqs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func assertSquares(t *testing.T, got, want []Square) {
	t.Helper()
	g, w := sortSquares(got), sortSquares(want)
	if len(g) != len(w) {
		t.Fatalf("destinations mismatch:\n got=%v\nwant=%v", g, w)
	}
	for i := range g {
		if g[i] != w[i] {
			t.Fatalf("destinations mismatch:\n got=%v\nwant=%v", g, w)
		}
	}
}

func containsSquare(sqs []Square, sq Square) bool {
	for _, s := range sqs {
		if s == sq {
			return true
		}
	}
	return false
}
