package janggi

// walkChain 沿 c 走最多 reach 次。
// 中间步遇子即整条方向作废；最后一步空格可落并继续，遇敌子可吃并停止，遇己方子停止。
// pal 不为空时，每一步都必须留在这个九宫内。
func walkChain(b *Board, from Square, side Color, c chain, reach int, pal *palace, moves *[]Square) {
	cur := from
	for n := 0; n < reach; n++ {
		for i, d := range c {
			cur = cur.add(d)
			if !b.InBounds(cur) || (pal != nil && !pal.contains(cur)) {
				return
			}
			pc := b.At(cur)
			if pc == NoPiece {
				continue
			}
			if i == len(c)-1 && pc.Color() != side {
				*moves = append(*moves, cur)
			}
			return
		}
		*moves = append(*moves, cur)
	}
}

// 士、象、马、车、卒：普通方向 + 按格子查表得到的九宫方向
func genChainMoves(b *Board, from Square, pc Piece, moves *[]Square) {
	r := ruleFor(pc)
	side := pc.Color()
	for _, c := range r.dirs {
		walkChain(b, from, side, c, r.reach, nil, moves)
	}
	extra, ok := r.palace[from]
	if !ok {
		return
	}
	pal, _ := palaceAt(from)
	for _, c := range extra {
		walkChain(b, from, side, c, min(r.reach, palaceReach), &pal, moves)
	}
}

// 将：走法同士，但不能走到会被对方攻击的格子。
// 每个候选格都临时把将挪过去再判断，判断完复原。
func genGeneralMoves(b *Board, from Square, pc Piece, moves *[]Square) {
	var cand []Square
	genChainMoves(b, from, pc, &cand)
	enemy := pc.Color().Opposite()
	for _, to := range cand {
		safe := b.withMove(from, to, func() bool {
			return !b.isAttacked(to, enemy)
		})
		if safe {
			*moves = append(*moves, to)
		}
	}
}
