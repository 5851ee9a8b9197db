package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"hexchess/internal/bootstrap"
	"hexchess/internal/hexchess"
	"hexchess/internal/server/game"
)

const promotionFEN = "6/1P5/8/9/10/11/10/7K1/8/7/3k2 w - 0"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &bootstrap.Config{SearchDepth: 2, MaxDepthLimit: 4}
	h := NewHandler(cfg, zap.NewNop().Sugar(), game.NewManager())
	srv := httptest.NewServer(NewRouter(h, t.TempDir(), ""))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	resp, err := http.Post(srv.URL+path, "application/json", &buf)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func TestNewGamePlayAndState(t *testing.T) {
	srv := newTestServer(t)

	var g GameResponse
	if code := postJSON(t, srv, "/api/new_game", nil, &g); code != http.StatusOK {
		t.Fatalf("new_game status %d", code)
	}
	if g.GameID == "" || g.ToMove != "white" || g.Status != "ongoing" || len(g.LegalMoves) != 51 {
		t.Fatalf("new game: %+v", g)
	}

	play := PlayRequest{GameID: g.GameID, Move: MoveDTO{From: hexchess.Coord{Q: 0, R: 1}, To: hexchess.Coord{Q: 0, R: 0}}}
	var after GameResponse
	if code := postJSON(t, srv, "/api/play", play, &after); code != http.StatusOK {
		t.Fatalf("play status %d", code)
	}
	if after.ToMove != "black" || after.MoveCount != 1 || after.LastMove == nil || after.LastMove.To != play.Move.To {
		t.Fatalf("after play: %+v", after)
	}

	var state GameResponse
	if code := postJSON(t, srv, "/api/state", StateRequest{GameID: g.GameID}, &state); code != http.StatusOK {
		t.Fatalf("state status %d", code)
	}
	if state.Position != after.Position {
		t.Fatalf("state position mismatch:\n got=%s\nwant=%s", state.Position, after.Position)
	}
}

func TestPlayErrors(t *testing.T) {
	srv := newTestServer(t)
	var g GameResponse
	postJSON(t, srv, "/api/new_game", nil, &g)

	cases := []struct {
		name string
		req  PlayRequest
		want int
	}{
		{"unknown game", PlayRequest{GameID: "nope"}, http.StatusNotFound},
		{"illegal move", PlayRequest{GameID: g.GameID, Move: MoveDTO{From: hexchess.Coord{Q: 0, R: 1}, To: hexchess.Coord{Q: 0, R: -3}}}, http.StatusBadRequest},
		{"bad promotion", PlayRequest{GameID: g.GameID, Move: MoveDTO{From: hexchess.Coord{Q: 0, R: 1}, To: hexchess.Coord{Q: 0, R: 0}, Promotion: "dragon"}}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if code := postJSON(t, srv, "/api/play", tc.req, nil); code != tc.want {
				t.Fatalf("status: got=%d want=%d", code, tc.want)
			}
		})
	}

	if code := postJSON(t, srv, "/api/new_game", NewGameRequest{FEN: "garbage"}, nil); code != http.StatusBadRequest {
		t.Fatalf("bad fen: got=%d", code)
	}
}

func TestAiMoveAppliesPromotion(t *testing.T) {
	srv := newTestServer(t)
	var g GameResponse
	if code := postJSON(t, srv, "/api/new_game", NewGameRequest{FEN: promotionFEN}, &g); code != http.StatusOK {
		t.Fatalf("new_game status %d", code)
	}

	var preview AiMoveResponse
	postJSON(t, srv, "/api/ai_move", AiMoveRequest{GameID: g.GameID, MaxDepth: 2}, &preview)
	if preview.Applied || preview.Game.Position != g.Position {
		t.Fatalf("preview must not change the game: %+v", preview)
	}

	var res AiMoveResponse
	if code := postJSON(t, srv, "/api/ai_move", AiMoveRequest{GameID: g.GameID, MaxDepth: 2, Apply: true}, &res); code != http.StatusOK {
		t.Fatalf("ai_move status %d", code)
	}
	wantTo := hexchess.Coord{Q: 0, R: -5}
	if res.Status != "ok" || res.BestMove == nil || res.BestMove.To != wantTo {
		t.Fatalf("ai move: %+v", res)
	}
	if res.Score != 910 || res.Depth != 2 {
		t.Fatalf("score/depth: %d/%d", res.Score, res.Depth)
	}
	if !res.Applied || res.Eval == nil || res.Eval.Score != 890 || res.Eval.TotalMaterial != 900 {
		t.Fatalf("applied eval: %+v", res.Eval)
	}
	if res.Game.ToMove != "black" || res.Game.MoveCount != 1 {
		t.Fatalf("game after apply: %+v", res.Game)
	}
}

func TestAiMoveNoMoves(t *testing.T) {
	srv := newTestServer(t)
	var g GameResponse
	postJSON(t, srv, "/api/new_game", NewGameRequest{FEN: "5k/7/3K4/7Q1/10/11/10/9/8/7/6 b - 0"}, &g)
	if g.Status != "stalemate" {
		t.Fatalf("status: %s", g.Status)
	}
	var res AiMoveResponse
	postJSON(t, srv, "/api/ai_move", AiMoveRequest{GameID: g.GameID, Apply: true}, &res)
	if res.Status != "no_moves" || res.BestMove != nil || res.Applied {
		t.Fatalf("ai move on stalemate: %+v", res)
	}
}

func TestHealthAndStaticRedirect(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status %d", resp.StatusCode)
	}

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)")
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/web_mobile/" {
		t.Fatalf("redirect: status=%d location=%q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestStaticViewSelection(t *testing.T) {
	srv := newTestServer(t)
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	const iphone = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"

	cases := []struct {
		name       string
		path       string
		ua         string
		cookie     string
		want       string
		wantCookie string
	}{
		{"desktop ua", "/", "Mozilla/5.0 (X11; Linux x86_64)", "", "/web/", ""},
		{"query beats ua", "/?view=pc", iphone, "", "/web/", "web"},
		{"query alias", "/?view=Phone", "", "", "/web_mobile/", "mobile"},
		{"cookie beats ua", "/", iphone, "web", "/web/", ""},
		{"bad cookie falls back to ua", "/", iphone, "tablet", "/web_mobile/", ""},
		{"bare prefix", "/web_mobile", "", "", "/web_mobile/", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, srv.URL+tc.path, nil)
			req.Header.Set("User-Agent", tc.ua)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: viewCookieName, Value: tc.cookie})
			}
			resp, err := client.Do(req)
			if err != nil {
				t.Fatalf("GET %s: %v", tc.path, err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != tc.want {
				t.Fatalf("redirect: status=%d location=%q want=%q", resp.StatusCode, resp.Header.Get("Location"), tc.want)
			}
			got := ""
			for _, c := range resp.Cookies() {
				if c.Name == viewCookieName {
					got = c.Value
				}
			}
			if got != tc.wantCookie {
				t.Fatalf("cookie: got=%q want=%q", got, tc.wantCookie)
			}
		})
	}
}
