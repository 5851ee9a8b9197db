package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"hexchess/internal/bootstrap"
	"hexchess/internal/server/game"
	httpserver "hexchess/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（某些服务器环境可能无图形界面）
}

func main() {
	cfgPath := flag.String("config", "", "optional config file (yaml/json/env)")
	addr := flag.String("addr", "", "listen address, overrides config")
	webDir := flag.String("web", "", "directory with index.html / js / svg, overrides config")
	mobileDir := flag.String("web-mobile", "", "directory with mobile assets (defaults to -web)")
	open := flag.Bool("open", true, "open the default browser after start")
	flag.Parse()

	cfg, err := bootstrap.Setup(*cfgPath)
	if err != nil {
		fallback, _ := zap.NewProduction()
		fallback.Fatal("failed to setup configuration", zap.Error(err))
	}
	if *addr != "" {
		cfg.ServerAddr = *addr
	}
	if *webDir != "" {
		cfg.WebDir = *webDir
	}

	logger, err := bootstrap.NewLogger(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	log := logger.Sugar()

	h := httpserver.NewHandler(cfg, log, game.NewManager())
	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           httpserver.NewRouter(h, cfg.WebDir, *mobileDir),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("listening on %s, serving static from %s", cfg.ServerAddr, cfg.WebDir)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if *open {
		// 延迟 100ms 打开默认浏览器，否则可能服务器未启动完成
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + cfg.ServerAddr)
		}()
	}

	if err := g.Wait(); err != nil {
		log.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
