package engine

import "hexchess/internal/hexchess"

// Undo 记录 Apply 之前被改动的所有字段，Revert 按原样写回。
// 只存字段级快照，不复制整个局面。
type Undo struct {
	move hexchess.Move

	fromPiece hexchess.Piece
	toPiece   hexchess.Piece

	// 吃过路兵时被拿掉的兵
	epVictim      hexchess.Coord
	epVictimPiece hexchess.Piece
	epValid       bool

	sideToMove          hexchess.Color
	enPassant           hexchess.Coord
	hasEnPassant        bool
	pendingPromotion    hexchess.Coord
	hasPendingPromotion bool
	captured            []hexchess.Piece // 原 slice header；append 不会改动 len 以内的元素
	halfmove            int
}

// Apply 在 pos 上原地走 mv，兵到底线自动升后。
// 失败时 pos 不变，返回 false；调用方必须把这个分支当成“没走”。
func Apply(pos *hexchess.Position, mv hexchess.Move) (Undo, bool) {
	u := Undo{
		move:                mv,
		fromPiece:           pos.At(mv.From),
		toPiece:             pos.At(mv.To),
		sideToMove:          pos.SideToMove,
		enPassant:           pos.EnPassant,
		hasEnPassant:        pos.HasEnPassant,
		pendingPromotion:    pos.PendingPromotion,
		hasPendingPromotion: pos.HasPendingPromotion,
		captured:            pos.Captured,
		halfmove:            pos.Halfmove,
	}
	if victim, ok := pos.EnPassantVictim(mv); ok {
		u.epVictim = victim
		u.epVictimPiece = pos.At(victim)
		u.epValid = true
	}

	if !pos.MovePiece(mv.From, mv.To) {
		Revert(pos, u)
		return Undo{}, false
	}
	if pos.HasPendingPromotion {
		mover := u.fromPiece.Color()
		pos.Set(pos.PendingPromotion, hexchess.MakePiece(mover, hexchess.Queen))
		pos.PendingPromotion = hexchess.Coord{}
		pos.HasPendingPromotion = false
		pos.SideToMove = mover.Opponent()
	}
	return u, true
}

// Revert 撤销 Apply，必须严格后进先出
func Revert(pos *hexchess.Position, u Undo) {
	pos.Set(u.move.From, u.fromPiece)
	pos.Set(u.move.To, u.toPiece)
	if u.epValid {
		pos.Set(u.epVictim, u.epVictimPiece)
	}
	pos.SideToMove = u.sideToMove
	pos.EnPassant = u.enPassant
	pos.HasEnPassant = u.hasEnPassant
	pos.PendingPromotion = u.pendingPromotion
	pos.HasPendingPromotion = u.hasPendingPromotion
	pos.Captured = u.captured
	pos.Halfmove = u.halfmove
}
