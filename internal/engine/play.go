package engine

import (
	"context"

	"go.uber.org/zap"

	"hexchess/internal/hexchess"
)

// MoveSummary PlayBestMove 落子后的汇总
type MoveSummary struct {
	Move           hexchess.Move
	EstimatedScore int // 搜索给出的分数
	FinalScore     int // 落子后的静态评估
	TotalMaterial  int
	Phase          float64
	Promoted       bool
	Search         SearchResult
}

// PlayBestMove 搜索并把最佳着法真正走在 pos 上（兵到底线升后）。
// 没有着法或落子失败时返回 false，pos 不变。
func (e *Engine) PlayBestMove(ctx context.Context, pos *hexchess.Position, cfg SearchConfig) (MoveSummary, bool) {
	res := e.Search(ctx, pos, cfg)
	sum := MoveSummary{Search: res}
	if !res.HasMove {
		return sum, false
	}

	before := pos.Clone()
	if !pos.MovePiece(res.BestMove.From, res.BestMove.To) {
		e.log.Error("engine move rejected by board", zap.Stringer("move", res.BestMove))
		*pos = *before
		return sum, false
	}
	if pos.HasPendingPromotion {
		if !pos.PromotePawn(hexchess.Queen) {
			e.log.Error("auto promotion failed", zap.Stringer("move", res.BestMove))
			*pos = *before
			return sum, false
		}
		sum.Promoted = true
	}

	ev := Evaluate(pos)
	sum.Move = res.BestMove
	sum.EstimatedScore = res.Score
	sum.FinalScore = ev.Score
	sum.TotalMaterial = ev.TotalMaterial
	sum.Phase = ev.Phase
	return sum, true
}
