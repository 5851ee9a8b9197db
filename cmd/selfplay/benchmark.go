package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hexchess/internal/engine"
	"hexchess/internal/hexchess"
	"hexchess/internal/server/game"
)

type PlayerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

type matchScore struct {
	aWins, bWins, draws int
}

// runMatch 偶数局 A 执白，奇数局 B 执白
func runMatch(ctx context.Context, e *engine.Engine, m *game.Manager, a, b PlayerConfig, games, maxMoves int, log *zap.SugaredLogger) matchScore {
	var s matchScore
	for g := 0; g < games; g++ {
		white, black := a, b
		if g%2 == 1 {
			white, black = b, a
		}

		fmt.Printf("\n=== Game %d: White [%s] vs Black [%s] ===\n", g+1, white.Name, black.Name)
		winner := playGame(ctx, e, m, white, black, maxMoves, log)

		aIsWhite := g%2 == 0
		switch {
		case winner == hexchess.NoColor:
			s.draws++
			fmt.Println("Result: Draw")
		case (winner == hexchess.White) == aIsWhite:
			s.aWins++
			fmt.Printf("Result: %s Wins!\n", a.Name)
		default:
			s.bWins++
			fmt.Printf("Result: %s Wins!\n", b.Name)
		}
	}
	return s
}

// playGame 返回赢家，和棋或出错返回 NoColor
func playGame(ctx context.Context, e *engine.Engine, m *game.Manager, white, black PlayerConfig, maxMoves int, log *zap.SugaredLogger) hexchess.Color {
	st := m.NewGame()

	for ply := 0; ply < maxMoves; ply++ {
		switch st.Status() {
		case hexchess.Checkmate:
			return st.Pos.SideToMove.Opponent()
		case hexchess.Stalemate, hexchess.Draw:
			return hexchess.NoColor
		}

		cfg := white.Cfg
		if st.Pos.SideToMove == hexchess.Black {
			cfg = black.Cfg
		}
		basedOn := st.Pos.CalculateHash()
		res := e.Search(ctx, st.Pos, cfg)
		if !res.HasMove {
			log.Errorf("ply %d: no move from a position with status %v", ply, st.Status())
			return hexchess.NoColor
		}

		next, err := m.ApplyEngineMove(st.ID, basedOn, res.BestMove)
		if err != nil {
			log.Errorf("ply %d: apply %v: %v", ply, res.BestMove, err)
			return hexchess.NoColor
		}
		ev := engine.Evaluate(next.Pos)
		fmt.Printf("%3d %-5s %-16v score=%-6d depth=%d nodes=%-8d time=%v eval=%d\n",
			ply+1, st.Pos.SideToMove, res.BestMove, res.Score, res.Depth, res.Nodes, res.TimeUsed, ev.Score)
		st = next
	}
	return hexchess.NoColor
}
