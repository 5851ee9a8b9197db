package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"hexchess/internal/engine"
	"hexchess/internal/hexchess"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (defaults to the initial position)")
	flag.Parse()

	pos := hexchess.NewInitialPosition()
	if *fen != "" {
		var err error
		if pos, err = hexchess.DecodePosition(*fen); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Println("FEN:", pos.Encode())
	fmt.Println("Status:", pos.Status(), "In check:", pos.InCheck(pos.SideToMove))
	ev := engine.Evaluate(pos)
	fmt.Printf("Eval: score=%d material=%d phase=%.3f\n", ev.Score, ev.TotalMaterial, ev.Phase)
	fmt.Printf("Pawn structure: white=%d black=%d\n",
		engine.PawnStructure(pos, hexchess.White), engine.PawnStructure(pos, hexchess.Black))

	moves := engine.OrderMoves(pos, pos.LegalMoves())
	fmt.Println("Legal moves:", len(moves))
	byPiece := make(map[hexchess.PieceType]int)
	for _, mv := range moves {
		byPiece[pos.At(mv.From).Type()]++
	}
	types := make([]hexchess.PieceType, 0, len(byPiece))
	for pt := range byPiece {
		types = append(types, pt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, pt := range types {
		fmt.Printf("  %-6v %d\n", pt, byPiece[pt])
	}
	for _, mv := range moves {
		fmt.Println(" ", mv)
	}
}
