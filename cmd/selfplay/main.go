package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"hexchess/internal/bootstrap"
	"hexchess/internal/engine"
	"hexchess/internal/server/game"
)

func main() {
	depth := flag.Int("depth", 3, "search depth")
	timeMs := flag.Int("time", 0, "time budget per move in ms (0 = unlimited)")
	maxMoves := flag.Int("maxmoves", 200, "max plies per game")
	games := flag.Int("games", 1, "number of games to play")
	depthB := flag.Int("depth-b", 0, "if > 0, play a match: -depth against -depth-b, colors alternate")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger, err := bootstrap.NewLogger(*level, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	limit := time.Duration(*timeMs) * time.Millisecond
	a := PlayerConfig{
		Name: fmt.Sprintf("Alpha-Beta (Depth %d)", *depth),
		Cfg:  engine.SearchConfig{MaxDepth: *depth, TimeLimit: limit},
	}
	b := a
	if *depthB > 0 {
		b = PlayerConfig{
			Name: fmt.Sprintf("Alpha-Beta (Depth %d)", *depthB),
			Cfg:  engine.SearchConfig{MaxDepth: *depthB, TimeLimit: limit},
		}
	}

	// 搜索日志太吵，只留 warn 以上
	e := engine.NewEngine(engine.WithLogger(logger.WithOptions(zap.IncreaseLevel(zap.WarnLevel))))
	m := game.NewManager()
	score := runMatch(context.Background(), e, m, a, b, *games, *maxMoves, logger.Sugar())

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("A %s: %d\n", a.Name, score.aWins)
	fmt.Printf("B %s: %d\n", b.Name, score.bWins)
	fmt.Printf("Draws: %d\n", score.draws)
}
