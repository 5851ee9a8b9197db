package hexchess

const (
	Radius   = 5
	NumCells = 3*Radius*(Radius+1) + 1 // 91
	span     = 2*Radius + 1
)

type Board struct {
	Cells [NumCells]Piece
}

var (
	cellIndex  [span][span]int
	cellCoords [NumCells]Coord
)

func init() {
	n := 0
	for q := -Radius; q <= Radius; q++ {
		for r := -Radius; r <= Radius; r++ {
			cellIndex[q+Radius][r+Radius] = -1
			if !OnBoard(Coord{Q: q, R: r}) {
				continue
			}
			cellIndex[q+Radius][r+Radius] = n
			cellCoords[n] = Coord{Q: q, R: r}
			n++
		}
	}
	if n != NumCells {
		panic("hexchess: cell table size mismatch")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// OnBoard |q|,|r|,|q+r| 都不超过半径
func OnBoard(c Coord) bool {
	return abs(c.Q) <= Radius && abs(c.R) <= Radius && abs(c.Q+c.R) <= Radius
}

// IndexOf 坐标 -> 数组下标；不在盘上返回 -1
func IndexOf(c Coord) int {
	if !OnBoard(c) {
		return -1
	}
	return cellIndex[c.Q+Radius][c.R+Radius]
}

func CoordOf(idx int) Coord { return cellCoords[idx] }

// AllCoords 按下标顺序返回全部 91 个格子
func AllCoords() []Coord {
	out := make([]Coord, NumCells)
	copy(out, cellCoords[:])
	return out
}

// 某个文件（固定 q）上 r 的范围
func fileBounds(q int) (minR, maxR int) {
	minR, maxR = -Radius, Radius
	if q > 0 {
		maxR = Radius - q
	} else {
		minR = -Radius - q
	}
	return
}

// 某一行（固定 r）上 q 的范围
func rowBounds(r int) (minQ, maxQ int) {
	minQ, maxQ = -Radius, Radius
	if r > 0 {
		maxQ = Radius - r
	} else {
		minQ = -Radius - r
	}
	return
}

// 兵的前进方向：白向 -r，黑向 +r
func pawnForward(c Color) Coord {
	if c == White {
		return Coord{Q: 0, R: -1}
	}
	return Coord{Q: 0, R: 1}
}

// 兵的两个吃子方向（和前进方向相邻的两条边）
func pawnCaptureDirs(c Color) [2]Coord {
	if c == White {
		return [2]Coord{{Q: -1, R: 0}, {Q: 1, R: -1}}
	}
	return [2]Coord{{Q: 1, R: 0}, {Q: -1, R: 1}}
}

// IsPromotionSquare 文件的最后一格（按该方前进方向）
func IsPromotionSquare(c Coord, color Color) bool {
	if !OnBoard(c) {
		return false
	}
	minR, maxR := fileBounds(c.Q)
	switch color {
	case White:
		return c.R == minR
	case Black:
		return c.R == maxR
	}
	return false
}

var whitePawnStarts = []Coord{
	{-4, 5}, {-3, 4}, {-2, 3}, {-1, 2}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1},
}

// IsStartSquare 兵的初始格，可以走两步
func IsStartSquare(c Coord, color Color) bool {
	if color == Black {
		c = c.Reflect()
	} else if color != White {
		return false
	}
	for _, s := range whitePawnStarts {
		if s == c {
			return true
		}
	}
	return false
}

type placement struct {
	at Coord
	pt PieceType
}

// 白方开局摆放；黑方为点对称
var whiteSetup = []placement{
	{Coord{1, 4}, King},
	{Coord{-1, 5}, Queen},
	{Coord{0, 5}, Bishop}, {Coord{0, 4}, Bishop}, {Coord{0, 3}, Bishop},
	{Coord{-3, 5}, Rook}, {Coord{3, 2}, Rook},
	{Coord{-2, 5}, Knight}, {Coord{2, 3}, Knight},
}

func NewInitialPosition() *Position {
	pos := &Position{SideToMove: White}
	for _, pl := range whiteSetup {
		pos.Set(pl.at, MakePiece(White, pl.pt))
		pos.Set(pl.at.Reflect(), MakePiece(Black, pl.pt))
	}
	for _, c := range whitePawnStarts {
		pos.Set(c, MakePiece(White, Pawn))
		pos.Set(c.Reflect(), MakePiece(Black, Pawn))
	}
	return pos
}

// NewEmptyPosition 空棋盘，常用于残局/测试
func NewEmptyPosition(side Color) *Position {
	return &Position{SideToMove: side}
}
