package janggi

import (
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols
)

// Board 只负责存子，不做任何规则判断。
type Board struct {
	Squares [NumSquares]Piece
}

func (b *Board) InBounds(sq Square) bool {
	return sq.Row >= 0 && sq.Row < Rows && sq.Col >= 0 && sq.Col < Cols
}

// At 返回 sq 上的棋子；越界当作空格。
func (b *Board) At(sq Square) Piece {
	if !b.InBounds(sq) {
		return NoPiece
	}
	return b.Squares[sq.index()]
}

// Place 把 pc 放到 sq（NoPiece 即清空）。越界直接忽略。
func (b *Board) Place(sq Square, pc Piece) {
	if !b.InBounds(sq) {
		return
	}
	b.Squares[sq.index()] = pc
}

func (b *Board) findGeneral(c Color) (Square, bool) {
	want := MakePiece(c, KindGeneral)
	for i, pc := range b.Squares {
		if pc == want {
			return Square{Row: i / Cols, Col: i % Cols}, true
		}
	}
	return Square{}, false
}

// Occupied 统计棋盘上的子数
func (b *Board) Occupied() int {
	n := 0
	for _, pc := range b.Squares {
		if pc != NoPiece {
			n++
		}
	}
	return n
}

// withMove 临时把 from 上的子挪到 to，执行 fn 后无条件恢复两格原状。
func (b *Board) withMove(from, to Square, fn func() bool) bool {
	savedFrom, savedTo := b.At(from), b.At(to)
	defer func() {
		b.Place(to, savedTo)
		b.Place(from, savedFrom)
	}()
	b.Place(from, NoPiece)
	b.Place(to, savedFrom)
	return fn()
}

var letterToKind = map[rune]PieceKind{
	'k': KindGeneral,
	'a': KindGuard,
	'e': KindElephant,
	'h': KindHorse,
	'r': KindChariot,
	'c': KindCannon,
	'p': KindSoldier,
}

func pieceToChar(p Piece) rune {
	if p == NoPiece {
		return '.'
	}
	var base rune
	for k, v := range letterToKind {
		if v == p.Kind() {
			base = k
			break
		}
	}
	if base == 0 {
		return '.'
	}
	if p.Color() == Blue {
		return unicode.ToUpper(base)
	}
	return base
}

func charToPiece(ch rune) (Piece, bool) {
	kind, ok := letterToKind[unicode.ToLower(ch)]
	if !ok {
		return NoPiece, false
	}
	c := Red
	if unicode.IsUpper(ch) {
		c = Blue
	}
	return MakePiece(c, kind), true
}

// 第一行是 0 行（记谱的第 1 路），蓝方在下
const initialBoardString = `REHA.AEHR
....K....
.C.....C.
P.P.P.P.P
.........
.........
p.p.p.p.p
.c.....c.
....k....
reha.aehr`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString 行数不为 10")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString 列数不为 9")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			pc, ok := charToPiece(ch)
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			b.Squares[Square{Row: r, Col: c}.index()] = pc
		}
	}
	return b
}
