package janggi

// 包：必须隔一个子（炮架）才能走或吃；炮架不能是包，也不能吃包。
func genCannonMoves(b *Board, from Square, pc Piece, moves *[]Square) {
	r := ruleFor(pc)
	side := pc.Color()
	for _, c := range r.dirs {
		cannonRay(b, from, side, c[0], r.reach, nil, moves)
	}
	extra, ok := r.palace[from]
	if !ok {
		return
	}
	pal, _ := palaceAt(from)
	for _, c := range extra {
		cannonRay(b, from, side, c[0], min(r.reach, palaceReach), &pal, moves)
	}
}

func cannonRay(b *Board, from Square, side Color, d step, reach int, pal *palace, moves *[]Square) {
	cur := from
	screened := false
	for n := 0; n < reach; n++ {
		cur = cur.add(d)
		if !b.InBounds(cur) || (pal != nil && !pal.contains(cur)) {
			return
		}
		pc := b.At(cur)

		// 找炮架
		if !screened {
			if pc == NoPiece {
				continue
			}
			if pc.Kind() == KindCannon {
				return
			}
			screened = true
			continue
		}

		// 翻过炮架之后
		if pc == NoPiece {
			*moves = append(*moves, cur)
			continue
		}
		if pc.Color() != side && pc.Kind() != KindCannon {
			*moves = append(*moves, cur)
		}
		return
	}
}
