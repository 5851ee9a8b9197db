package hexchess

const fiftyMoveHalfmoves = 100

// Status 当前局面的对局状态（不看历史，重复局面由上层判断）
func (p *Position) Status() GameStatus {
	if !p.hasAnyLegalMove() {
		if p.InCheck(p.SideToMove) {
			return Checkmate
		}
		return Stalemate
	}
	if p.insufficientMaterial() || p.Halfmove >= fiftyMoveHalfmoves {
		return Draw
	}
	return Ongoing
}

func (p *Position) hasAnyLegalMove() bool {
	if p.HasPendingPromotion {
		return true
	}
	for i, pc := range p.Board.Cells {
		if pc == 0 || pc.Color() != p.SideToMove {
			continue
		}
		if len(p.LegalTargets(cellCoords[i])) > 0 {
			return true
		}
	}
	return false
}

// 只剩双王，或者只多一个轻子
func (p *Position) insufficientMaterial() bool {
	minors := 0
	for _, pc := range p.Board.Cells {
		switch pc.Type() {
		case PieceNone, King:
		case Knight, Bishop:
			minors++
		default:
			return false
		}
	}
	return minors <= 1
}
