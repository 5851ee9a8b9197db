package hexchess

import (
	"errors"
	"testing"
)

const initialFEN = "bqnrp1/kb2p2/n1b1p3/r3p4/ppppp5/11/5PPPPP/4P3R/3P1B1N/2P2BK/1PRNQB w - 0"

func mustDecode(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := DecodePosition(fen)
	if err != nil {
		t.Fatalf("decode %q: %v", fen, err)
	}
	return pos
}

func TestBoardGeometry(t *testing.T) {
	if got := len(AllCoords()); got != NumCells {
		t.Fatalf("cells: got=%d want=%d", got, NumCells)
	}
	for i, c := range AllCoords() {
		if IndexOf(c) != i {
			t.Fatalf("IndexOf(%v)=%d want %d", c, IndexOf(c), i)
		}
	}
	if IndexOf(Coord{Q: 5, R: 1}) != -1 {
		t.Fatalf("(5,1) is off board")
	}

	cases := []struct {
		c     Coord
		color Color
		want  bool
	}{
		{Coord{0, -5}, White, true},
		{Coord{-3, -2}, White, true},
		{Coord{4, -5}, White, true},
		{Coord{0, 5}, Black, true},
		{Coord{3, 2}, Black, true},
		{Coord{-4, 5}, Black, true},
		{Coord{0, -4}, White, false},
		{Coord{0, -5}, Black, false},
	}
	for _, tc := range cases {
		if got := IsPromotionSquare(tc.c, tc.color); got != tc.want {
			t.Errorf("IsPromotionSquare(%v, %v)=%v want %v", tc.c, tc.color, got, tc.want)
		}
	}
}

func TestInitialPosition(t *testing.T) {
	pos := NewInitialPosition()
	if got := len(pos.Pieces()); got != 36 {
		t.Fatalf("pieces: got=%d want=36", got)
	}
	if got := pos.Encode(); got != initialFEN {
		t.Fatalf("encode:\n got=%s\nwant=%s", got, initialFEN)
	}
	if got := len(pos.LegalMoves()); got != 51 {
		t.Fatalf("legal moves: got=%d want=51", got)
	}
	if pos.Status() != Ongoing {
		t.Fatalf("status: got=%v want=ongoing", pos.Status())
	}
	// 车在 c1/i1，马在 d1/h1
	home := []struct {
		at Coord
		pt PieceType
	}{
		{Coord{-3, 5}, Rook}, {Coord{3, 2}, Rook},
		{Coord{-2, 5}, Knight}, {Coord{2, 3}, Knight},
	}
	for _, h := range home {
		if got := pos.At(h.at); got != MakePiece(White, h.pt) {
			t.Fatalf("white %v: got=%v want=%v", h.at, got, h.pt)
		}
		if got := pos.At(h.at.Reflect()); got != MakePiece(Black, h.pt) {
			t.Fatalf("black %v: got=%v want=%v", h.at.Reflect(), got, h.pt)
		}
	}
	// f 列兵前面被黑兵挡住，只能走一步
	if got := pos.LegalTargets(Coord{0, 1}); len(got) != 1 || got[0] != (Coord{0, 0}) {
		t.Fatalf("f-pawn targets: got=%v", got)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"bqnrp1 w",
		initialFEN[:len(initialFEN)-6] + " x - 0",
		"bqnrp1/kb2p2/n1b1p3/r3p4/ppppp5/12/5PPPPP/4P3R/3P1B1N/2P2BK/1PRNQB w",
		"bqnrp1/kb2p2/n1b1p3/r3p4/ppppp5/10z/5PPPPP/4P3R/3P1B1N/2P2BK/1PRNQB w",
	}
	for _, fen := range bad {
		if _, err := DecodePosition(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("DecodePosition(%q) err=%v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestPromotionLeavesTurnPending(t *testing.T) {
	pos := mustDecode(t, "6/1P5/8/9/10/11/10/7K1/8/7/3k2 w - 0")
	if !pos.MovePiece(Coord{0, -4}, Coord{0, -5}) {
		t.Fatalf("push to last rank failed")
	}
	if !pos.HasPendingPromotion || pos.PendingPromotion != (Coord{0, -5}) {
		t.Fatalf("pending promotion not set: %+v", pos)
	}
	if pos.SideToMove != White {
		t.Fatalf("turn must not flip before promotion")
	}
	if pos.MovePiece(Coord{2, 2}, Coord{2, 1}) {
		t.Fatalf("no move allowed while promotion is pending")
	}
	if pos.PromotePawn(King) {
		t.Fatalf("promotion to king must fail")
	}
	if !pos.PromotePawn(Knight) {
		t.Fatalf("promotion to knight failed")
	}
	if got := pos.At(Coord{0, -5}); got != MakePiece(White, Knight) {
		t.Fatalf("promoted piece: got=%v", got)
	}
	if pos.SideToMove != Black || pos.HasPendingPromotion {
		t.Fatalf("promotion should flip side and clear marker")
	}
}

func TestEnPassant(t *testing.T) {
	pos := mustDecode(t, "4k1/7/8/4p4/6P3/11/10/9/8/7/1K4 b - 0")
	if !pos.MovePiece(Coord{1, -2}, Coord{1, 0}) {
		t.Fatalf("double step failed")
	}
	if !pos.HasEnPassant || pos.EnPassant != (Coord{1, -1}) {
		t.Fatalf("en passant target: got=%v,%v", pos.EnPassant, pos.HasEnPassant)
	}
	if got := pos.Encode(); got != "4k1/7/8/9/6P3/6p4/10/9/8/7/1K4 w 1,-1 0" {
		t.Fatalf("encode with en passant: %s", got)
	}

	mv := Move{From: Coord{2, -1}, To: Coord{1, -1}}
	if !pos.IsLegal(mv) {
		t.Fatalf("en passant capture should be legal")
	}
	if victim, ok := pos.EnPassantVictim(mv); !ok || victim != (Coord{1, 0}) {
		t.Fatalf("victim: got=%v ok=%v", victim, ok)
	}
	if !pos.MovePiece(mv.From, mv.To) {
		t.Fatalf("en passant capture failed")
	}
	if pos.At(Coord{1, 0}) != 0 {
		t.Fatalf("captured pawn still on board")
	}
	if len(pos.Captured) != 1 || pos.Captured[0] != MakePiece(Black, Pawn) {
		t.Fatalf("captured record: %v", pos.Captured)
	}
	if pos.HasEnPassant {
		t.Fatalf("en passant target should be cleared")
	}
}

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want GameStatus
	}{
		{"queen mates in the corner", "5k/7/5Q2/9/10/K10/10/9/8/7/6 b - 0", Checkmate},
		{"queen stalemates the corner", "5k/7/3K4/7Q1/10/11/10/9/8/7/6 b - 0", Stalemate},
		{"king and knight cannot win", "6/7/8/3k5/10/5K5/5N4/9/8/7/6 w - 0", Draw},
		{"fifty move rule", "5k/7/8/9/10/K10/10/9/5Q2/7/6 w - 100", Draw},
		{"opening", initialFEN, Ongoing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustDecode(t, tc.fen)
			if got := pos.Status(); got != tc.want {
				t.Fatalf("status: got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestMovePieceRejectsWrongSide(t *testing.T) {
	pos := NewInitialPosition()
	if pos.MovePiece(Coord{0, -1}, Coord{0, 0}) {
		t.Fatalf("black pawn moved on white's turn")
	}
	if pos.MovePiece(Coord{0, 0}, Coord{0, -1}) {
		t.Fatalf("moving from an empty cell should fail")
	}
	if pos.MovePiece(Coord{0, 5}, Coord{0, 4}) {
		t.Fatalf("capturing own piece should fail")
	}
	if !pos.Equal(NewInitialPosition()) {
		t.Fatalf("failed moves must not touch the position")
	}
}
