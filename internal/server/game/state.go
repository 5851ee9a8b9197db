package game

import (
	"time"

	"hexchess/internal/hexchess"
)

// 同一局面出现这么多次判和
const repetitionLimit = 3

type GameState struct {
	ID        string
	Pos       *hexchess.Position
	History   []uint64 // 每一手之后的局面哈希，含初始局面
	Moves     []hexchess.Move
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *GameState) clone() *GameState {
	c := *g
	c.Pos = g.Pos.Clone()
	c.History = append([]uint64(nil), g.History...)
	c.Moves = append([]hexchess.Move(nil), g.Moves...)
	return &c
}

// Repetitions 当前局面在历史中出现的次数
func (g *GameState) Repetitions() int {
	if len(g.History) == 0 {
		return 0
	}
	cur := g.History[len(g.History)-1]
	n := 0
	for _, h := range g.History {
		if h == cur {
			n++
		}
	}
	return n
}

// Status 在局面状态之外再算上三次重复
func (g *GameState) Status() hexchess.GameStatus {
	st := g.Pos.Status()
	if st == hexchess.Ongoing && g.Repetitions() >= repetitionLimit {
		return hexchess.Draw
	}
	return st
}
