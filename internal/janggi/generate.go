package janggi

// pseudoMoves 按棋子种类生成 from 上这个子能到达的格子。
// 只有将会过滤掉送将的格子，其它子不考虑自己的将是否被将军。
func (b *Board) pseudoMoves(from Square, pc Piece, moves *[]Square) {
	switch pc.Kind() {
	case KindGeneral:
		genGeneralMoves(b, from, pc, moves)
	case KindCannon:
		genCannonMoves(b, from, pc, moves)
	case KindGuard, KindElephant, KindHorse, KindChariot, KindSoldier:
		genChainMoves(b, from, pc, moves)
	}
}

// Destinations 返回 from 上棋子能走到的所有格子；空格或越界返回 nil。
func (b *Board) Destinations(from Square) []Square {
	pc := b.At(from)
	if pc == NoPiece {
		return nil
	}
	var moves []Square
	b.pseudoMoves(from, pc, &moves)
	return moves
}

func (b *Board) canReach(from, to Square) bool {
	for _, sq := range b.Destinations(from) {
		if sq == to {
			return true
		}
	}
	return false
}
