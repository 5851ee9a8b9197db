package engine

import (
	"testing"

	"hexchess/internal/hexchess"
)

func orderingPosition() *hexchess.Position {
	pos := hexchess.NewEmptyPosition(hexchess.White)
	pos.Set(hexchess.Coord{Q: 2, R: 2}, hexchess.MakePiece(hexchess.White, hexchess.King))
	pos.Set(hexchess.Coord{Q: -2, R: -3}, hexchess.MakePiece(hexchess.Black, hexchess.King))
	pos.Set(hexchess.Coord{Q: 0, R: -4}, hexchess.MakePiece(hexchess.White, hexchess.Pawn))
	pos.Set(hexchess.Coord{Q: 1, R: -5}, hexchess.MakePiece(hexchess.Black, hexchess.Rook))
	pos.Set(hexchess.Coord{Q: -1, R: 3}, hexchess.MakePiece(hexchess.White, hexchess.Knight))
	pos.Set(hexchess.Coord{Q: 0, R: 0}, hexchess.MakePiece(hexchess.Black, hexchess.Bishop))
	return pos
}

func TestMoveOrderScoreComponents(t *testing.T) {
	pos := orderingPosition()
	cases := []struct {
		name string
		mv   hexchess.Move
		want int
	}{
		{"capture with promotion", hexchess.Move{From: hexchess.Coord{Q: 0, R: -4}, To: hexchess.Coord{Q: 1, R: -5}}, 10000 + 5000 - 100 + 9000},
		{"capture in the center", hexchess.Move{From: hexchess.Coord{Q: -1, R: 3}, To: hexchess.Coord{Q: 0, R: 0}}, 10000 + 3300 - 320 + 50},
		{"plain promotion", hexchess.Move{From: hexchess.Coord{Q: 0, R: -4}, To: hexchess.Coord{Q: 0, R: -5}}, 9000},
		{"quiet center", hexchess.Move{From: hexchess.Coord{Q: -1, R: 3}, To: hexchess.Coord{Q: 1, R: 0}}, 50},
		{"quiet edge", hexchess.Move{From: hexchess.Coord{Q: -1, R: 3}, To: hexchess.Coord{Q: 2, R: 1}}, 0},
		{"empty origin", hexchess.Move{From: hexchess.Coord{Q: 3, R: 0}, To: hexchess.Coord{Q: 0, R: 0}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := moveOrderScore(pos, tc.mv); got != tc.want {
				t.Fatalf("got=%d want=%d", got, tc.want)
			}
		})
	}
}

func TestOrderMovesDescendingAndStable(t *testing.T) {
	pos := orderingPosition()
	quietA := hexchess.Move{From: hexchess.Coord{Q: -1, R: 3}, To: hexchess.Coord{Q: 2, R: 1}}
	quietB := hexchess.Move{From: hexchess.Coord{Q: -1, R: 3}, To: hexchess.Coord{Q: -4, R: 4}}
	center := hexchess.Move{From: hexchess.Coord{Q: -1, R: 3}, To: hexchess.Coord{Q: 1, R: 0}}
	promo := hexchess.Move{From: hexchess.Coord{Q: 0, R: -4}, To: hexchess.Coord{Q: 0, R: -5}}
	capturePromo := hexchess.Move{From: hexchess.Coord{Q: 0, R: -4}, To: hexchess.Coord{Q: 1, R: -5}}
	centerCapture := hexchess.Move{From: hexchess.Coord{Q: -1, R: 3}, To: hexchess.Coord{Q: 0, R: 0}}

	in := []hexchess.Move{quietA, center, quietB, promo, centerCapture, capturePromo}
	orig := append([]hexchess.Move(nil), in...)

	got := OrderMoves(pos, in)
	want := []hexchess.Move{capturePromo, centerCapture, promo, center, quietA, quietB}
	if len(got) != len(want) {
		t.Fatalf("len: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got=%v want=%v (all=%v)", i, got[i], want[i], got)
		}
	}
	for i := range orig {
		if in[i] != orig[i] {
			t.Fatalf("input slice was modified at %d", i)
		}
	}
}

func TestOrderMovesKeepsEveryLegalMove(t *testing.T) {
	pos := hexchess.NewInitialPosition()
	legal := pos.LegalMoves()
	ordered := OrderMoves(pos, legal)
	if len(ordered) != len(legal) {
		t.Fatalf("len: got=%d want=%d", len(ordered), len(legal))
	}
	seen := make(map[hexchess.Move]int, len(legal))
	for _, mv := range ordered {
		seen[mv]++
	}
	for _, mv := range legal {
		if seen[mv] != 1 {
			t.Fatalf("move %v appears %d times", mv, seen[mv])
		}
	}
	if got := OrderMoves(pos, nil); len(got) != 0 {
		t.Fatalf("empty input: got=%v", got)
	}
}
