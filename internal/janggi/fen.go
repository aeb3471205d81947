package janggi

import (
	"errors"
	"fmt"
	"strings"
)

// 简单 FEN-like：10 行用“/”隔开（第 0 行在前），空位用数字压缩；空格后 b/r 表示轮到谁
func (g *Game) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := g.board.At(Square{Row: r, Col: c})
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if g.ToMove() == Blue {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('r')
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

// DecodePosition 从 FEN 还原一盘进行中的对局。
// 每方必须恰好有一个将。
func DecodePosition(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: missing side to move", ErrInvalidFEN)
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidFEN, Rows, len(rows))
	}
	var b Board
	generals := [2]int{}
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return nil, fmt.Errorf("%w: rank %d too long", ErrInvalidFEN, r)
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			pc, ok := charToPiece(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			if pc.Kind() == KindGeneral {
				generals[pc.Color()]++
			}
			b.Place(Square{Row: r, Col: c}, pc)
			c++
		}
		if c != Cols {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, r, c)
		}
	}
	if generals[Blue] != 1 || generals[Red] != 1 {
		return nil, fmt.Errorf("%w: need exactly one general per side", ErrInvalidFEN)
	}

	g := &Game{board: b}
	switch parts[1] {
	case "b":
	case "r":
		g.turn = 1
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, parts[1])
	}
	return g, nil
}
