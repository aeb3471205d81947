package janggi

import "fmt"

// isAttacked 判断 sq 是否在 bySide 一方（除将以外）所有棋子走法的并集里。
// 将不参与：将自己的走法已经会调用这里，算进来会无限递归。
func (b *Board) isAttacked(sq Square, bySide Color) bool {
	var moves []Square
	for i, pc := range b.Squares {
		if pc == NoPiece || pc.Color() != bySide || pc.Kind() == KindGeneral {
			continue
		}
		moves = moves[:0]
		b.pseudoMoves(Square{Row: i / Cols, Col: i % Cols}, pc, &moves)
		for _, to := range moves {
			if to == sq {
				return true
			}
		}
	}
	return false
}

func (b *Board) mustGeneral(c Color) Square {
	sq, ok := b.findGeneral(c)
	if !ok {
		panic(fmt.Sprintf("janggi: %s general missing from board", c))
	}
	return sq
}

// InCheck 判断 c 这一方的将是否被将军
func (b *Board) InCheck(c Color) bool {
	return b.isAttacked(b.mustGeneral(c), c.Opposite())
}

// isCheckmated 只在 c 已被将军时调用。
// 只尝试把将挪到它自己能走的每个格子，不考虑用其它子垫将或吃掉攻击子。
func (b *Board) isCheckmated(c Color) bool {
	from := b.mustGeneral(c)
	var moves []Square
	genGeneralMoves(b, from, b.At(from), &moves)
	enemy := c.Opposite()
	for _, to := range moves {
		escaped := b.withMove(from, to, func() bool {
			return !b.isAttacked(to, enemy)
		})
		if escaped {
			return false
		}
	}
	return true
}
