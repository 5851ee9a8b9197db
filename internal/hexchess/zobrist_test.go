package hexchess

import "testing"

func TestHashStableAcrossEncodeDecode(t *testing.T) {
	pos := NewInitialPosition()
	decoded, err := DecodePosition(pos.Encode())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.CalculateHash() != pos.CalculateHash() {
		t.Fatalf("hash mismatch after round trip: got=%d want=%d", decoded.CalculateHash(), pos.CalculateHash())
	}
}

func TestHashDependsOnSideAndEnPassant(t *testing.T) {
	pos := NewInitialPosition()
	base := pos.CalculateHash()

	other := pos.Clone()
	other.SideToMove = Black
	if other.CalculateHash() == base {
		t.Fatalf("side to move should change the hash")
	}

	ep := pos.Clone()
	ep.EnPassant = Coord{Q: 0, R: 0}
	ep.HasEnPassant = true
	if ep.CalculateHash() == base {
		t.Fatalf("en passant target should change the hash")
	}
}

func TestHashRepeatsAfterKnightShuffle(t *testing.T) {
	pos := NewInitialPosition()
	start := pos.CalculateHash()
	seq := []Move{
		{From: Coord{-2, 5}, To: Coord{-3, 3}},
		{From: Coord{2, -5}, To: Coord{3, -3}},
		{From: Coord{-3, 3}, To: Coord{-2, 5}},
		{From: Coord{3, -3}, To: Coord{2, -5}},
	}
	for i, mv := range seq {
		if !pos.IsLegal(mv) {
			t.Fatalf("ply %d: %v should be legal", i, mv)
		}
		if !pos.MovePiece(mv.From, mv.To) {
			t.Fatalf("ply %d: MovePiece(%v) failed", i, mv)
		}
	}
	if got := pos.CalculateHash(); got != start {
		t.Fatalf("hash after returning knights: got=%d want=%d", got, start)
	}
}
