// File: cmd/app/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quantum-tutor/internal/config"
	"quantum-tutor/internal/domain"
	aiAdapters "quantum-tutor/internal/infra/adapters/ai"
	"quantum-tutor/internal/infra/logging"
	"quantum-tutor/internal/infra/metrics"
	"quantum-tutor/internal/infra/web"
	"quantum-tutor/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (keyless canned answers)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("[DEV MODE] Enabled")
	}

	metrics.MustRegister()

	// ---- AI Adapter (Groq -> Gemini -> OpenAI) ----
	ai, provider, err := aiAdapters.NewFromConfig(ctx, cfg.AI, cfg.Runtime.Dev)
	if err != nil {
		if errors.Is(err, domain.ErrNoCompletionProvider) {
			log.Fatalf("no AI provider configured: set ai.groq_key, ai.gemini_key or ai.openai_key in %s", *cfgPath)
		}
		log.Fatalf("ai adapter: %v", err)
	}
	if provider == "canned" {
		logger.Warn().Msg("AI adapter: canned (dev mode, no provider key)")
	} else {
		logger.Info().Str("provider", provider).Str("model", cfg.AI.DefaultModel).Msg("AI adapter ready")
	}

	// ---- Session core ----
	tutorUC := usecase.NewTutorUseCase(ai, metrics.NewRecorder(), cfg.Session.MaxHistory, logger)

	// ---- Web server ----
	srv := web.NewServer(tutorUC, logger)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: srv.Router(),
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("tutor dashboard listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
}
