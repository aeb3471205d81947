package janggi

type Color int8

const (
	NoColor Color = -1
	Blue    Color = 0 // 先手，下方（0..3 行）
	Red     Color = 1
)

func (c Color) Opposite() Color {
	switch c {
	case Blue:
		return Red
	case Red:
		return Blue
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Red:
		return "red"
	}
	return "none"
}

type PieceKind int8

const (
	KindNone     PieceKind = iota
	KindGeneral            // 將
	KindGuard              // 士
	KindElephant           // 象
	KindHorse              // 馬
	KindChariot            // 車
	KindCannon             // 包
	KindSoldier            // 卒 / 兵
)

var kindNames = [...]string{"none", "general", "guard", "elephant", "horse", "chariot", "cannon", "soldier"}

func (k PieceKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Piece 0=空；>0 蓝；<0 红；abs=PieceKind
type Piece int8

const NoPiece Piece = 0

func MakePiece(c Color, k PieceKind) Piece {
	if k == KindNone || c == NoColor {
		return NoPiece
	}
	if c == Blue {
		return Piece(k)
	}
	return -Piece(k)
}

func (p Piece) Kind() PieceKind {
	if p < 0 {
		return PieceKind(-p)
	}
	return PieceKind(p)
}

func (p Piece) Color() Color {
	if p == 0 {
		return NoColor
	}
	if p > 0 {
		return Blue
	}
	return Red
}

func (p Piece) String() string {
	if p == NoPiece {
		return "empty"
	}
	return p.Color().String() + " " + p.Kind().String()
}

// Square 行列坐标，行 0..9，列 0..8
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Sq(row, col int) Square { return Square{Row: row, Col: col} }

func (s Square) add(d step) Square { return Square{Row: s.Row + d.dr, Col: s.Col + d.dc} }

func (s Square) index() int { return s.Row*Cols + s.Col }

// Result 对局结果，只会从 Ongoing 变成某一方获胜
type Result int8

const (
	Ongoing Result = iota
	BlueWins
	RedWins
)

func (r Result) String() string {
	switch r {
	case BlueWins:
		return "blue_won"
	case RedWins:
		return "red_won"
	}
	return "ongoing"
}

func winFor(c Color) Result {
	if c == Blue {
		return BlueWins
	}
	return RedWins
}
