package janggi

type step struct{ dr, dc int }

// chain 一个方向由若干单步组成；只有最后一步可以落子，前面的每一步都必须是空格（蹩腿）。
type chain []step

var (
	north = step{-1, 0}
	south = step{+1, 0}
	west  = step{0, -1}
	east  = step{0, +1}
	nw    = step{-1, -1}
	ne    = step{-1, +1}
	sw    = step{+1, -1}
	se    = step{+1, +1}
)

var orthoChains = []chain{{north}, {south}, {west}, {east}}

// 马：直一格 + 斜一格
var horseChains = []chain{
	{north, nw}, {north, ne},
	{south, sw}, {south, se},
	{west, nw}, {west, sw},
	{east, ne}, {east, se},
}

// 象：直一格 + 斜两格
var elephantChains = []chain{
	{north, nw, nw}, {north, ne, ne},
	{south, sw, sw}, {south, se, se},
	{west, nw, nw}, {west, sw, sw},
	{east, ne, ne}, {east, se, se},
}

// 九宫
type palace struct {
	top, left, bottom, right int
}

var palaces = [2]palace{
	Blue: {top: 0, left: 3, bottom: 2, right: 5},
	Red:  {top: 7, left: 3, bottom: 9, right: 5},
}

func (p palace) contains(sq Square) bool {
	return sq.Row >= p.top && sq.Row <= p.bottom && sq.Col >= p.left && sq.Col <= p.right
}

func palaceAt(sq Square) (palace, bool) {
	for _, p := range palaces {
		if p.contains(sq) {
			return p, true
		}
	}
	return palace{}, false
}

// 九宫里画出来的线，按相对九宫左上角的位置列出。
// 斜线只经过四个角和中心。
var palaceLines = [3][3][]step{
	{{south, east, se}, {west, east, south}, {west, south, sw}},
	{{north, south, east}, {north, south, west, east, nw, ne, sw, se}, {north, south, west}},
	{{north, east, ne}, {west, east, north}, {west, north, nw}},
}

func isDiagonal(d step) bool { return d.dr != 0 && d.dc != 0 }

// palaceTable 把某个九宫里符合 keep 的线展开成“格子 -> 额外方向”的表。
func palaceTable(p palace, keep func(step) bool) map[Square][]chain {
	out := make(map[Square][]chain)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sq := Square{Row: p.top + r, Col: p.left + c}
			for _, d := range palaceLines[r][c] {
				if keep(d) {
					out[sq] = append(out[sq], chain{d})
				}
			}
		}
	}
	return out
}

func mergeTables(ts ...map[Square][]chain) map[Square][]chain {
	out := make(map[Square][]chain)
	for _, t := range ts {
		for sq, cs := range t {
			out[sq] = append(out[sq], cs...)
		}
	}
	return out
}

// 九宫斜线最多走两步
const palaceReach = 2

// 车、包的最大步数：棋盘最长边
const slideReach = Rows

type rule struct {
	dirs   []chain
	reach  int
	palace map[Square][]chain
}

var rules [2][KindSoldier + 1]rule

func forward(c Color) step {
	if c == Blue {
		return south
	}
	return north
}

func init() {
	all := func(step) bool { return true }
	diagonal := isDiagonal
	sliderPalace := mergeTables(palaceTable(palaces[Blue], diagonal), palaceTable(palaces[Red], diagonal))

	for _, c := range []Color{Blue, Red} {
		fwd := forward(c)
		enemy := palaces[c.Opposite()]
		rules[c][KindGeneral] = rule{reach: 1, palace: palaceTable(palaces[c], all)}
		rules[c][KindGuard] = rule{reach: 1, palace: palaceTable(palaces[c], all)}
		rules[c][KindHorse] = rule{dirs: horseChains, reach: 1}
		rules[c][KindElephant] = rule{dirs: elephantChains, reach: 1}
		rules[c][KindChariot] = rule{dirs: orthoChains, reach: slideReach, palace: sliderPalace}
		rules[c][KindCannon] = rule{dirs: orthoChains, reach: slideReach, palace: sliderPalace}
		rules[c][KindSoldier] = rule{
			dirs:  []chain{{fwd}, {west}, {east}},
			reach: 1,
			palace: palaceTable(enemy, func(d step) bool {
				return isDiagonal(d) && d.dr == fwd.dr
			}),
		}
	}
}

func ruleFor(pc Piece) *rule {
	return &rules[pc.Color()][pc.Kind()]
}
