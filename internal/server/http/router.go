package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter 挂上 /api/*、/healthz 和静态页面。
// webDir 为空时不挂静态页面。
func NewRouter(h *Handler, webDir, mobileDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.Logger).Group(func(r chi.Router) {
			r.Post("/new_game", h.handleNewGame)
			r.Post("/play", h.handlePlay)
			r.Post("/state", h.handleState)
			r.Post("/ai_move", h.handleAiMove)
		})
		r.Get("/analyze", h.serveAnalyze)
	})

	if webDir != "" {
		RegisterStaticRoutes(r, webDir, mobileDir)
	}
	return r
}
