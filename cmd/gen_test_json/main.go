package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"hexchess/internal/engine"
	"hexchess/internal/hexchess"
)

// 两阶段：Stage 0 选子（可走的起点），Stage 1 选落点（选定起点后的终点）
type TestCase struct {
	FEN    string           `json:"fen"`
	ToMove string           `json:"to_move"`
	Stage  int              `json:"stage"`
	From   *hexchess.Coord  `json:"from,omitempty"`
	Cells  []hexchess.Coord `json:"cells"`
	Status string           `json:"status"`
	Eval   int              `json:"eval"`
}

func main() {
	numGames := flag.Int("games", 10, "number of random games")
	maxMoves := flag.Int("maxmoves", 300, "max plies per game")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	var testCases []TestCase
	for g := 0; g < *numGames; g++ {
		pos := hexchess.NewInitialPosition()
		for moveCount := 0; moveCount < *maxMoves; moveCount++ {
			legalMoves := pos.LegalMoves()
			if len(legalMoves) == 0 {
				break
			}
			fen := pos.Encode()
			status := pos.Status().String()
			eval := engine.Evaluate(pos).Score

			// --- Stage 0: 能动的棋子 ---
			seen := make(map[hexchess.Coord]bool)
			var froms []hexchess.Coord
			for _, mv := range legalMoves {
				if !seen[mv.From] {
					seen[mv.From] = true
					froms = append(froms, mv.From)
				}
			}
			testCases = append(testCases, TestCase{
				FEN: fen, ToMove: pos.SideToMove.String(), Stage: 0,
				Cells: froms, Status: status, Eval: eval,
			})

			// 随机选一步
			chosen := legalMoves[rng.Intn(len(legalMoves))]

			// --- Stage 1: 选中棋子后的落点 ---
			from := chosen.From
			testCases = append(testCases, TestCase{
				FEN: fen, ToMove: pos.SideToMove.String(), Stage: 1, From: &from,
				Cells: pos.LegalTargets(from), Status: status, Eval: eval,
			})

			if _, ok := engine.Apply(pos, chosen); !ok {
				break
			}
			if pos.Status() == hexchess.Draw {
				break
			}
		}
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, file, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d test cases from %d random games (seed %d) to %s\n", len(testCases), *numGames, *seed, *out)
}
