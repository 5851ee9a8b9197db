package httpserver

import (
	"encoding/json"
	"strings"

	"hexchess/internal/engine"
	"hexchess/internal/hexchess"
	"hexchess/internal/server/game"
)

// 前端用的招法结构，坐标是轴向 (q, r)
type MoveDTO struct {
	From      hexchess.Coord `json:"from"`
	To        hexchess.Coord `json:"to"`
	Promotion string         `json:"promotion,omitempty"` // 只有兵到底线时有意义
}

func dtoToMove(m MoveDTO) hexchess.Move {
	return hexchess.Move{From: m.From, To: m.To}
}

func moveToDTO(m hexchess.Move) MoveDTO {
	return MoveDTO{From: m.From, To: m.To}
}

func movesToDTO(ms []hexchess.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

// 空串表示默认（后）
func parsePromotion(s string) (hexchess.PieceType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return hexchess.PieceNone, true
	}
	return hexchess.ParsePieceType(s)
}

// NewGame 请求：可选起始局面
type NewGameRequest struct {
	FEN string `json:"fen,omitempty"`
}

// 对局状态：new_game / play / state 都返回这个
type GameResponse struct {
	GameID      string    `json:"game_id"`
	Position    string    `json:"position"` // FEN 字符串
	ToMove      string    `json:"to_move"`  // "white" / "black"
	LegalMoves  []MoveDTO `json:"legal_moves"`
	Status      string    `json:"status"` // "ongoing" / "checkmate" / "stalemate" / "draw"
	InCheck     bool      `json:"in_check"`
	LastMove    *MoveDTO  `json:"last_move,omitempty"`
	MoveCount   int       `json:"move_count"`
	Repetitions int       `json:"repetitions"`
}

func gameToResponse(g *game.GameState) GameResponse {
	pos := g.Pos
	resp := GameResponse{
		GameID:      g.ID,
		Position:    pos.Encode(),
		ToMove:      pos.SideToMove.String(),
		LegalMoves:  movesToDTO(pos.LegalMoves()),
		Status:      g.Status().String(),
		InCheck:     pos.InCheck(pos.SideToMove),
		MoveCount:   len(g.Moves),
		Repetitions: g.Repetitions(),
	}
	if n := len(g.Moves); n > 0 {
		last := moveToDTO(g.Moves[n-1])
		resp.LastMove = &last
	}
	return resp
}

// Play 请求
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

// AiMoveRequest 让引擎为对局当前局面思考一步
type AiMoveRequest struct {
	GameID   string `json:"game_id"`
	MaxDepth int    `json:"max_depth"`
	TimeMs   int64  `json:"time_ms"`
	Apply    bool   `json:"apply"` // true 时直接落到对局里
}

type AiMoveResponse struct {
	BestMove *MoveDTO     `json:"best_move,omitempty"`
	Score    int          `json:"score"`
	Depth    int          `json:"depth"`
	Nodes    int64        `json:"nodes"`
	TimeMs   int64        `json:"time_ms"`
	Status   string       `json:"status"` // "ok" / "no_moves"
	Applied  bool         `json:"applied"`
	Eval     *EvalDTO     `json:"eval,omitempty"` // 落子后的静态评估
	Game     GameResponse `json:"game"`
}

type EvalDTO struct {
	Score         int     `json:"score"`
	TotalMaterial int     `json:"total_material"`
	Phase         float64 `json:"phase"`
}

func evalToDTO(ev engine.Evaluation) *EvalDTO {
	return &EvalDTO{Score: ev.Score, TotalMaterial: ev.TotalMaterial, Phase: ev.Phase}
}

// websocket 消息外壳
type wsMessage struct {
	Type    string          `json:"type"` // "depth" / "done" / "error" / "ping"
	Payload json.RawMessage `json:"payload,omitempty"`
}

type DepthDTO struct {
	Depth     int     `json:"depth"`
	BestMove  MoveDTO `json:"best_move"`
	Score     int     `json:"score"`
	Nodes     int64   `json:"nodes"`
	ElapsedMs int64   `json:"elapsed_ms"`
	Complete  bool    `json:"complete"`
}

func depthToDTO(r engine.DepthReport) DepthDTO {
	return DepthDTO{
		Depth:     r.Depth,
		BestMove:  moveToDTO(r.BestMove),
		Score:     r.Score,
		Nodes:     r.Nodes,
		ElapsedMs: r.Elapsed.Milliseconds(),
		Complete:  r.Complete,
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}
