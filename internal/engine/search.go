package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hexchess/internal/hexchess"
)

const (
	// 一个足够大的值，当成正负无穷
	scoreInf = 1_000_000_000

	mateScore    = 20000
	mateDepthRef = 10

	defaultMaxDepth = 3
)

// 搜索配置
type SearchConfig struct {
	MaxDepth  int           // 最大搜索深度（ply）
	TimeLimit time.Duration // 搜索时间上限（0 表示不限制）

	// OnDepth 每结束一层迭代（包括被时间打断的那一层）回调一次
	OnDepth func(DepthReport)
}

// DepthReport 单层迭代加深的结果
type DepthReport struct {
	Depth    int
	BestMove hexchess.Move
	Score    int
	Nodes    int64
	Elapsed  time.Duration
	Complete bool // false 表示这一层只搜了部分根着法
}

// 搜索结果
type SearchResult struct {
	BestMove hexchess.Move // 最佳着法（HasMove=false 时无意义）
	HasMove  bool
	Score    int           // 评估分（正：白方好，负：黑方好）
	Depth    int           // 实际搜索到的深度
	Nodes    int64         // 节点数
	TimeUsed time.Duration // 花费时间
}

// MateScore 被将死一方为极大方时取负。remaining 是剩余深度，越大说明杀得越快。
func MateScore(remaining int, maximizing bool) int {
	m := mateScore - (mateDepthRef - remaining)
	if maximizing {
		return -m
	}
	return m
}

// Search 迭代加深 + alpha-beta。
// 只在每层开始前和每个根着法前检查时间和 ctx，递归内部不检查，
// 所以实际耗时可能超出预算一个根着法的子树。
func (e *Engine) Search(ctx context.Context, pos *hexchess.Position, cfg SearchConfig) SearchResult {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = defaultMaxDepth
	}
	start := time.Now()
	e.nodes = 0

	deadline := time.Time{}
	if cfg.TimeLimit > 0 {
		deadline = start.Add(cfg.TimeLimit)
	}
	expired := func() bool {
		if ctx.Err() != nil {
			return true
		}
		return !deadline.IsZero() && time.Now().After(deadline)
	}

	res := SearchResult{}
	if len(pos.LegalMoves()) == 0 {
		res.TimeUsed = time.Since(start)
		e.log.Debug("no legal moves at root", zap.String("side", pos.SideToMove.String()))
		return res
	}

	maximizing := pos.SideToMove == hexchess.White

	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		if res.HasMove && expired() {
			break
		}

		moves := OrderMoves(pos, pos.LegalMoves())
		if res.HasMove {
			promoteMove(moves, res.BestMove)
		}

		bestMove := hexchess.Move{}
		bestScore := scoreInf
		if maximizing {
			bestScore = -scoreInf
		}
		found := false
		complete := true

		for _, mv := range moves {
			// 至少要有一个根着法的结果，之后才允许超时退出
			if (res.HasMove || found) && expired() {
				complete = false
				break
			}
			undo, ok := Apply(pos, mv)
			if !ok {
				e.log.Warn("apply failed at root, skipping", zap.Stringer("move", mv))
				continue
			}
			score := e.minimax(pos, depth-1, -scoreInf, scoreInf, pos.SideToMove == hexchess.White)
			Revert(pos, undo)

			if !found || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
				bestScore = score
				bestMove = mv
				found = true
			}
		}

		if !found {
			break
		}

		res.BestMove = bestMove
		res.HasMove = true
		res.Score = bestScore
		res.Depth = depth

		report := DepthReport{
			Depth:    depth,
			BestMove: bestMove,
			Score:    bestScore,
			Nodes:    e.nodes,
			Elapsed:  time.Since(start),
			Complete: complete,
		}
		e.log.Debug("depth finished",
			zap.Int("depth", depth),
			zap.Stringer("best", bestMove),
			zap.Int("score", bestScore),
			zap.Int64("nodes", e.nodes),
			zap.Bool("complete", complete),
		)
		if cfg.OnDepth != nil {
			cfg.OnDepth(report)
		}
		if !complete {
			break
		}
	}

	res.Nodes = e.nodes
	res.TimeUsed = time.Since(start)

	nps := int64(0)
	if secs := res.TimeUsed.Seconds(); secs > 0 {
		nps = int64(float64(res.Nodes) / secs)
	}
	e.log.Info("search completed",
		zap.Stringer("best", res.BestMove),
		zap.Int("score", res.Score),
		zap.Int("depth", res.Depth),
		zap.Int64("nodes", res.Nodes),
		zap.Int64("nps", nps),
		zap.Duration("elapsed", res.TimeUsed),
	)
	return res
}

// minimax 标准 alpha-beta；maximizing 表示白方走。
func (e *Engine) minimax(pos *hexchess.Position, depth int, alpha, beta int, maximizing bool) int {
	e.nodes++

	if depth == 0 {
		return Evaluate(pos).Score
	}

	switch pos.Status() {
	case hexchess.Checkmate:
		return MateScore(depth, maximizing)
	case hexchess.Stalemate, hexchess.Draw:
		return 0
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return 0
	}
	moves = OrderMoves(pos, moves)

	searched := false
	var best int
	if maximizing {
		best = -scoreInf
	} else {
		best = scoreInf
	}
	for _, mv := range moves {
		undo, ok := Apply(pos, mv)
		if !ok {
			// 这个分支作废，不参与比较
			continue
		}
		score := e.minimax(pos, depth-1, alpha, beta, !maximizing)
		Revert(pos, undo)
		searched = true

		if maximizing {
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
		} else {
			if score < best {
				best = score
			}
			if score < beta {
				beta = score
			}
		}
		if beta <= alpha {
			break
		}
	}

	if !searched {
		return 0
	}
	return best
}

// 把上一层的最佳着法提到最前面，其余相对顺序不变
func promoteMove(moves []hexchess.Move, mv hexchess.Move) {
	for i := range moves {
		if moves[i] == mv {
			copy(moves[1:i+1], moves[:i])
			moves[0] = mv
			return
		}
	}
}
