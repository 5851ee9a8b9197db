package engine

import (
	"math"

	"hexchess/internal/hexchess"
)

// ======= 基础子力估值 =======

var pieceValue = [...]int{
	hexchess.PieceNone: 0,
	hexchess.Pawn:      100,
	hexchess.Knight:    320,
	hexchess.Bishop:    330,
	hexchess.Rook:      500,
	hexchess.Queen:     900,
	hexchess.King:      20000, // 只当哨兵用，不计入总子力
}

// PieceValue 子力分（厘兵）
func PieceValue(pt hexchess.PieceType) int {
	if pt < 0 || int(pt) >= len(pieceValue) {
		return 0
	}
	return pieceValue[pt]
}

// 阶段权重：后 4，车 2，轻子 1；起始局面合计 24
var phaseWeight = [...]int{
	hexchess.Knight: 1,
	hexchess.Bishop: 1,
	hexchess.Rook:   2,
	hexchess.Queen:  4,
	hexchess.King:   0,
}

const maxPhase = 24

const tempoBonus = 10

const (
	doubledPawnPenalty  = 15
	isolatedPawnPenalty = 10
	passedPawnBase      = 20
	passedPawnPerRank   = 5
)

// Evaluation 白方视角：正数白方好
type Evaluation struct {
	Score         int
	TotalMaterial int
	Phase         float64
}

// GamePhase 1.0 = 子力齐全（开局/中局），0.0 = 光杆残局
func GamePhase(pos *hexchess.Position) float64 {
	current := 0
	for _, pc := range pos.Board.Cells {
		if pc == 0 {
			continue
		}
		if pt := pc.Type(); int(pt) < len(phaseWeight) {
			current += phaseWeight[pt]
		}
	}
	return math.Min(1.0, float64(current)/maxPhase)
}

// PieceSquareBonus 位置加成。黑方先把坐标点对称再查表；
// 王在中局/残局两张表之间按 phase 插值，黑方取反。
func PieceSquareBonus(pt hexchess.PieceType, at hexchess.Coord, color hexchess.Color, phase float64) float64 {
	if pt == hexchess.King {
		bonus := phase*float64(kingTableMG[at]) + (1-phase)*float64(kingTableEG[at])
		if color == hexchess.White {
			return bonus
		}
		return -bonus
	}
	table, ok := pieceSquareTables[pt]
	if !ok {
		return 0
	}
	if color == hexchess.Black {
		at = at.Reflect()
	}
	return float64(table[at])
}

// PawnStructure 某一方的兵形分：叠兵、孤兵扣分，通路兵加分
func PawnStructure(pos *hexchess.Position, color hexchess.Color) int {
	pawn := hexchess.MakePiece(color, hexchess.Pawn)
	var pawns []hexchess.Coord
	for _, pp := range pos.Pieces() {
		if pp.Piece == pawn {
			pawns = append(pawns, pp.At)
		}
	}

	score := 0
	for i, p := range pawns {
		doubled, hasNeighbor := false, false
		for j, o := range pawns {
			if i == j {
				continue
			}
			if o.Q == p.Q {
				doubled = true
			}
			if o.Q == p.Q-1 || o.Q == p.Q+1 {
				hasNeighbor = true
			}
		}
		if doubled {
			score -= doubledPawnPenalty
		}
		if !hasNeighbor {
			score -= isolatedPawnPenalty
		}
		if isPassedPawn(pos, p, color) {
			score += passedPawnBase + passedPawnPerRank*pawnAdvancement(p, color)
		}
	}
	return score
}

// 前进距离：白兵 r 越小越靠前，黑兵反之
func pawnAdvancement(at hexchess.Coord, color hexchess.Color) int {
	if color == hexchess.White {
		return hexchess.Radius - at.R
	}
	return at.R + hexchess.Radius
}

// 本列和相邻两列、前方所有格子里都没有敌方兵
func isPassedPawn(pos *hexchess.Position, at hexchess.Coord, color hexchess.Color) bool {
	enemyPawn := hexchess.MakePiece(color.Opponent(), hexchess.Pawn)
	step := -1
	if color == hexchess.Black {
		step = 1
	}
	for q := at.Q - 1; q <= at.Q+1; q++ {
		for r := at.R + step; r >= -hexchess.Radius && r <= hexchess.Radius; r += step {
			if pos.At(hexchess.Coord{Q: q, R: r}) == enemyPawn {
				return false
			}
		}
	}
	return true
}

// Evaluate 子力 + 位置表 + 兵形 + 先手
func Evaluate(pos *hexchess.Position) Evaluation {
	phase := GamePhase(pos)

	score := 0.0
	totalMaterial := 0
	for _, pp := range pos.Pieces() {
		pt := pp.Piece.Type()
		color := pp.Piece.Color()
		value := PieceValue(pt)
		if pt != hexchess.King {
			totalMaterial += value
		}
		pieceScore := float64(value) + PieceSquareBonus(pt, pp.At, color, phase)
		if color == hexchess.White {
			score += pieceScore
		} else {
			score -= pieceScore
		}
	}

	total := int(math.Round(score))
	total += PawnStructure(pos, hexchess.White) - PawnStructure(pos, hexchess.Black)

	if pos.SideToMove == hexchess.White {
		total += tempoBonus
	} else {
		total -= tempoBonus
	}

	return Evaluation{
		Score:         total,
		TotalMaterial: totalMaterial,
		Phase:         phase,
	}
}
