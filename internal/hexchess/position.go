package hexchess

// At 盘外格子当作空
func (p *Position) At(c Coord) Piece {
	idx := IndexOf(c)
	if idx < 0 {
		return 0
	}
	return p.Board.Cells[idx]
}

func (p *Position) Set(c Coord, pc Piece) {
	idx := IndexOf(c)
	if idx < 0 {
		return
	}
	p.Board.Cells[idx] = pc
}

// PlacedPiece 一个有子的格子
type PlacedPiece struct {
	At    Coord
	Piece Piece
}

// Pieces 枚举盘上所有棋子（按下标顺序）
func (p *Position) Pieces() []PlacedPiece {
	out := make([]PlacedPiece, 0, 36)
	for i, pc := range p.Board.Cells {
		if pc == 0 {
			continue
		}
		out = append(out, PlacedPiece{At: cellCoords[i], Piece: pc})
	}
	return out
}

func (p *Position) Clone() *Position {
	np := *p
	if p.Captured != nil {
		np.Captured = make([]Piece, len(p.Captured))
		copy(np.Captured, p.Captured)
	}
	return &np
}

func (p *Position) KingSquare(color Color) (Coord, bool) {
	want := MakePiece(color, King)
	for i, pc := range p.Board.Cells {
		if pc == want {
			return cellCoords[i], true
		}
	}
	return Coord{}, false
}

// Equal 比较所有字段，包括吃子记录
func (p *Position) Equal(o *Position) bool {
	if p.Board != o.Board ||
		p.SideToMove != o.SideToMove ||
		p.HasEnPassant != o.HasEnPassant ||
		p.HasPendingPromotion != o.HasPendingPromotion ||
		p.Halfmove != o.Halfmove {
		return false
	}
	if p.HasEnPassant && p.EnPassant != o.EnPassant {
		return false
	}
	if p.HasPendingPromotion && p.PendingPromotion != o.PendingPromotion {
		return false
	}
	if len(p.Captured) != len(o.Captured) {
		return false
	}
	for i := range p.Captured {
		if p.Captured[i] != o.Captured[i] {
			return false
		}
	}
	return true
}
