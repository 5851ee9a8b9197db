package hexchess

import "fmt"

type Color int8

const (
	NoColor Color = -1
	White   Color = 0
	Black   Color = 1
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Opponent 返回对方颜色
func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

type PieceType int8

const (
	PieceNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceTypeNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (pt PieceType) String() string {
	if pt < 0 || int(pt) >= len(pieceTypeNames) {
		return "none"
	}
	return pieceTypeNames[pt]
}

// ParsePieceType 接受 "queen" / "q" 这类写法
func ParsePieceType(s string) (PieceType, bool) {
	for i, name := range pieceTypeNames {
		if i == 0 {
			continue
		}
		if s == name {
			return PieceType(i), true
		}
	}
	if len(s) == 1 {
		if pt, ok := letterToPieceType[rune(s[0])]; ok {
			return pt, true
		}
	}
	return PieceNone, false
}

type Piece int8 // 0=空；>0 白；<0 黑；abs=PieceType

func MakePiece(c Color, pt PieceType) Piece {
	if pt == PieceNone || c == NoColor {
		return 0
	}
	if c == White {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Color() Color {
	if p == 0 {
		return NoColor
	}
	if p > 0 {
		return White
	}
	return Black
}

// Coord 轴向坐标 (q, r)
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

func (c Coord) Add(d Coord) Coord { return Coord{Q: c.Q + d.Q, R: c.R + d.R} }

// Reflect 点对称（黑方视角）
func (c Coord) Reflect() Coord { return Coord{Q: -c.Q, R: -c.R} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Q, c.R) }

type Move struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

func (m Move) String() string { return m.From.String() + "->" + m.To.String() }

type GameStatus int8

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
	Draw
)

func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Position = 棋盘 + 轮到谁走 + 过路兵目标 + 待升变标记 + 吃子记录
type Position struct {
	Board      Board
	SideToMove Color

	EnPassant    Coord
	HasEnPassant bool

	PendingPromotion    Coord
	HasPendingPromotion bool

	Captured []Piece
	Halfmove int
}
