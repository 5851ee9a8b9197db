package engine

import (
	"sort"

	"hexchess/internal/hexchess"
)

const (
	captureOrderBase   = 10000
	promotionOrderBase = 9000
	centerOrderBonus   = 50
)

// 走法排序分：吃子(MVV-LVA) + 升变 + 占中，可以叠加
func moveOrderScore(pos *hexchess.Position, mv hexchess.Move) int {
	mover := pos.At(mv.From)
	if mover == 0 {
		return 0
	}
	score := 0
	if victim := pos.At(mv.To); victim != 0 {
		score += captureOrderBase + PieceValue(victim.Type())*10 - PieceValue(mover.Type())
	}
	if mover.Type() == hexchess.Pawn && hexchess.IsPromotionSquare(mv.To, mover.Color()) {
		score += promotionOrderBase
	}
	if centerCells[mv.To] {
		score += centerOrderBonus
	}
	return score
}

// OrderMoves 按排序分从高到低稳定排序，同分保持生成顺序；不会丢弃走法。
// 返回新 slice，不改动入参。
func OrderMoves(pos *hexchess.Position, moves []hexchess.Move) []hexchess.Move {
	type scored struct {
		mv    hexchess.Move
		score int
	}
	items := make([]scored, len(moves))
	for i, mv := range moves {
		items[i] = scored{mv: mv, score: moveOrderScore(pos, mv)}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})
	out := make([]hexchess.Move, len(items))
	for i := range items {
		out[i] = items[i].mv
	}
	return out
}
