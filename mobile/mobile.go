package mobile

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"hexchess/internal/bootstrap"
	"hexchess/internal/server/game"
	httpserver "hexchess/internal/server/http"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"
// depth: default search depth, 0 keeps the built-in default
func StartServer(webDir string, port string, depth int) {
	server, logger, err := newServer(webDir, port, depth)
	if err != nil {
		fallback, _ := zap.NewProduction()
		fallback.Error("mobile server setup failed", zap.Error(err))
		return
	}
	log := logger.Sugar()

	// Run in background so it doesn't block the Android UI thread
	go func() {
		defer logger.Sync()
		log.Infof("listening on %s, serving static from %s", server.Addr, webDir)
		if err := server.ListenAndServe(); err != nil {
			log.Errorf("Server Error: %v", err)
		}
	}()
}

// 配置和日志级别与桌面版一样从 HEXCHESS_* 读取
func newServer(webDir, port string, depth int) (*http.Server, *zap.Logger, error) {
	cfg, err := bootstrap.Setup("")
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	logger, err := bootstrap.NewLogger(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}

	if depth > 0 {
		cfg.SearchDepth = cfg.ClampDepth(depth)
	}
	cfg.ServerAddr = "127.0.0.1:" + port
	cfg.WebDir = webDir

	h := httpserver.NewHandler(cfg, logger.Sugar(), game.NewManager())
	return &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           httpserver.NewRouter(h, webDir, webDir),
		ReadHeaderTimeout: 5 * time.Second,
	}, logger, nil
}
