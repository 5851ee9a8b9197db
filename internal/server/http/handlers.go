package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"hexchess/internal/bootstrap"
	"hexchess/internal/engine"
	"hexchess/internal/hexchess"
	"hexchess/internal/server/game"
)

// Handler /api/* 路由的实现
type Handler struct {
	cfg   *bootstrap.Config
	log   *zap.SugaredLogger
	games *game.Manager
}

func NewHandler(cfg *bootstrap.Config, log *zap.SugaredLogger, games *game.Manager) *Handler {
	return &Handler{cfg: cfg, log: log, games: games}
}

// 引擎带节点计数，不能并发共用，每次搜索一个
func (h *Handler) newEngine() *engine.Engine {
	return engine.NewEngine(engine.WithLogger(h.log.Desugar()))
}

func (h *Handler) searchConfig(depth int, timeMs int64) engine.SearchConfig {
	return engine.SearchConfig{
		MaxDepth:  h.cfg.ClampDepth(depth),
		TimeLimit: h.cfg.ClampTime(timeMs),
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 允许空 body
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSONError(h.log, w, http.StatusBadRequest, "bad json")
		return
	}

	var g *game.GameState
	if req.FEN == "" {
		g = h.games.NewGame()
	} else {
		var err error
		if g, err = h.games.NewGameFromFEN(req.FEN); err != nil {
			writeJSONError(h.log, w, http.StatusBadRequest, err.Error())
			return
		}
	}
	h.log.Infof("new game %s", g.ID)
	writeJSON(h.log, w, http.StatusOK, gameToResponse(g))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(h.log, w, http.StatusBadRequest, "bad json")
		return
	}
	promo, ok := parsePromotion(req.Move.Promotion)
	if !ok {
		writeJSONError(h.log, w, http.StatusBadRequest, "unknown promotion piece")
		return
	}

	g, err := h.games.Play(req.GameID, dtoToMove(req.Move), promo)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, gameToResponse(g))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(h.log, w, http.StatusBadRequest, "bad json")
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	writeJSON(h.log, w, http.StatusOK, gameToResponse(g))
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(h.log, w, http.StatusBadRequest, "bad json")
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		h.writeGameError(w, err)
		return
	}

	// 快照上的局面是副本，直接在上面搜
	basedOn := g.Pos.CalculateHash()
	res := h.newEngine().Search(r.Context(), g.Pos, h.searchConfig(req.MaxDepth, req.TimeMs))

	resp := AiMoveResponse{
		Score:  res.Score,
		Depth:  res.Depth,
		Nodes:  res.Nodes,
		TimeMs: res.TimeUsed.Milliseconds(),
		Status: "ok",
		Game:   gameToResponse(g),
	}
	if !res.HasMove {
		resp.Status = "no_moves"
		writeJSON(h.log, w, http.StatusOK, resp)
		return
	}
	best := moveToDTO(res.BestMove)
	resp.BestMove = &best

	if req.Apply {
		after, err := h.games.ApplyEngineMove(req.GameID, basedOn, res.BestMove)
		if err != nil {
			h.writeGameError(w, err)
			return
		}
		resp.Applied = true
		resp.Eval = evalToDTO(engine.Evaluate(after.Pos))
		resp.Game = gameToResponse(after)
	}
	h.log.Debugf("ai move %s for game %s: score=%d depth=%d nodes=%d", res.BestMove, req.GameID, res.Score, res.Depth, res.Nodes)
	writeJSON(h.log, w, http.StatusOK, resp)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.log, w, http.StatusOK, map[string]any{"ok": true, "games": h.games.Count()})
}

func (h *Handler) writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		writeJSONError(h.log, w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, game.ErrInvalidPromotion),
		errors.Is(err, hexchess.ErrInvalidFEN):
		writeJSONError(h.log, w, http.StatusBadRequest, err.Error())
	case errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrStalePosition):
		writeJSONError(h.log, w, http.StatusConflict, err.Error())
	default:
		h.log.Errorf("unexpected game error: %v", err)
		writeJSONError(h.log, w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(log *zap.SugaredLogger, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("writeJSON encode error: %v", err)
	}
}

func writeJSONError(log *zap.SugaredLogger, w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
	log.Debugf("writeJSONError: %s", msg)
}
