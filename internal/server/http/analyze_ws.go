package httpserver

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"hexchess/internal/engine"
)

const wsIdlePingInterval = 30 * time.Second

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// serveAnalyze 对对局当前局面做迭代加深，每完成一层推一条 "depth"，最后推 "done" 并关闭。
// 客户端断开时搜索在下一个根着法处停下。
func (h *Handler) serveAnalyze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	g, err := h.games.Get(q.Get("game_id"))
	if err != nil {
		h.writeGameError(w, err)
		return
	}
	depth, err := queryInt(q.Get("max_depth"))
	if err != nil {
		writeJSONError(h.log, w, http.StatusBadRequest, "bad max_depth")
		return
	}
	timeMs, err := queryInt(q.Get("time_ms"))
	if err != nil {
		writeJSONError(h.log, w, http.StatusBadRequest, "bad time_ms")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debugf("analyze upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	send := make(chan []byte, 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		if err := writeWSWithHeartbeat(conn, send); err != nil {
			h.log.Debugf("analyze write: %v", err)
			cancel()
		}
	}()
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	push := func(msg wsMessage) {
		select {
		case send <- mustMarshal(msg):
		case <-ctx.Done():
		}
	}

	cfg := h.searchConfig(int(depth), timeMs)
	cfg.OnDepth = func(rep engine.DepthReport) {
		push(wsMessage{Type: "depth", Payload: mustMarshal(depthToDTO(rep))})
	}
	res := h.newEngine().Search(ctx, g.Pos, cfg)

	done := AiMoveResponse{
		Score:  res.Score,
		Depth:  res.Depth,
		Nodes:  res.Nodes,
		TimeMs: res.TimeUsed.Milliseconds(),
		Status: "ok",
		Game:   gameToResponse(g),
	}
	if res.HasMove {
		best := moveToDTO(res.BestMove)
		done.BestMove = &best
	} else {
		done.Status = "no_moves"
	}
	push(wsMessage{Type: "done", Payload: mustMarshal(done)})
	close(send)
	<-writerDone

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"),
		time.Now().Add(time.Second))
}

func writeWSWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(wsIdlePingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()
	pingPayload := mustMarshal(wsMessage{Type: "ping"})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < wsIdlePingInterval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}

// 空串表示用默认值
func queryInt(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
