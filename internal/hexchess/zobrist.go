package hexchess

import "sync"

const zobristPieceTypes = 7 // PieceType 范围 [1..6]，0 保留空位不用

var (
	zobristOnce sync.Once

	zobristPieces    [2][zobristPieceTypes][NumCells]uint64
	zobristEnPassant [NumCells]uint64
	zobristSide      uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := 1; pt < zobristPieceTypes; pt++ {
				for i := 0; i < NumCells; i++ {
					zobristPieces[side][pt][i] = next()
				}
			}
		}
		for i := 0; i < NumCells; i++ {
			zobristEnPassant[i] = next()
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece, idx int) uint64 {
	if pc == 0 || idx < 0 || idx >= NumCells {
		return 0
	}
	sideIdx := 0
	if pc.Color() == Black {
		sideIdx = 1
	}
	pt := int(pc.Type())
	if pt <= 0 || pt >= zobristPieceTypes {
		return 0
	}
	return zobristPieces[sideIdx][pt][idx]
}

// CalculateHash 全量计算 Zobrist 哈希：子力 + 走子方 + 过路兵格。
// 用于重复局面判断，搜索本身不用。
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for i, pc := range p.Board.Cells {
		if pc == 0 {
			continue
		}
		h ^= pieceHashKey(pc, i)
	}
	if p.HasEnPassant {
		if idx := IndexOf(p.EnPassant); idx >= 0 {
			h ^= zobristEnPassant[idx]
		}
	}
	if p.SideToMove == Black {
		h ^= zobristSide
	}
	return h
}
