package hexchess

// MovePiece 执行走子。合法性由上层检查（LegalMoves / IsLegal），这里只做最基本的校验。
// 兵走到底线时只设置 PendingPromotion，不切换走子方，等 PromotePawn 完成这一手。
func (p *Position) MovePiece(from, to Coord) bool {
	if p.HasPendingPromotion || !OnBoard(from) || !OnBoard(to) || from == to {
		return false
	}
	pc := p.At(from)
	if pc == 0 || pc.Color() != p.SideToMove {
		return false
	}
	side := pc.Color()
	captured := p.At(to)
	if captured != 0 && captured.Color() == side {
		return false
	}

	isPawn := pc.Type() == Pawn
	if victim, ok := p.EnPassantVictim(Move{From: from, To: to}); ok {
		captured = p.At(victim)
		p.Set(victim, 0)
	}
	if captured != 0 {
		p.Captured = append(p.Captured, captured)
	}

	p.Set(to, pc)
	p.Set(from, 0)

	if isPawn || captured != 0 {
		p.Halfmove = 0
	} else {
		p.Halfmove++
	}

	p.EnPassant = Coord{}
	p.HasEnPassant = false
	if isPawn {
		fwd := pawnForward(side)
		skipped := from.Add(fwd)
		if skipped.Add(fwd) == to {
			p.EnPassant = skipped
			p.HasEnPassant = true
		}
		if IsPromotionSquare(to, side) {
			p.PendingPromotion = to
			p.HasPendingPromotion = true
			return true
		}
	}

	p.SideToMove = side.Opponent()
	return true
}

// EnPassantVictim 如果 mv 是吃过路兵，返回被吃兵所在的格子
func (p *Position) EnPassantVictim(mv Move) (Coord, bool) {
	pc := p.At(mv.From)
	if pc.Type() != Pawn || !p.HasEnPassant || mv.To != p.EnPassant || mv.To.Q == mv.From.Q {
		return Coord{}, false
	}
	if p.At(mv.To) != 0 {
		return Coord{}, false
	}
	return enPassantVictim(mv.To, pc.Color()), true
}

// PromotePawn 完成待升变，并切换走子方
func (p *Position) PromotePawn(pt PieceType) bool {
	if !p.HasPendingPromotion {
		return false
	}
	switch pt {
	case Knight, Bishop, Rook, Queen:
	default:
		return false
	}
	at := p.PendingPromotion
	pc := p.At(at)
	if pc.Type() != Pawn {
		return false
	}
	p.Set(at, MakePiece(pc.Color(), pt))
	p.PendingPromotion = Coord{}
	p.HasPendingPromotion = false
	p.SideToMove = pc.Color().Opponent()
	return true
}
