package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/quizforge/backend/internal/api"
	"github.com/quizforge/backend/internal/chunk"
	"github.com/quizforge/backend/internal/extract"
	"github.com/quizforge/backend/internal/generator"
	"github.com/quizforge/backend/internal/id"
	"github.com/quizforge/backend/internal/infrastructure/config"
	"github.com/quizforge/backend/internal/service"
	"github.com/quizforge/backend/internal/store"

	_ "github.com/quizforge/backend/docs" // generated swagger docs
)

// @title           Quizforge API
// @version         1.0
// @description     Turn any document into an interactive quiz: upload, generate with AI, answer, grade, export.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	creds, err := store.NewCredentialStore(cfg.CredentialDBPath)
	if err != nil {
		logger.Error("failed to open credential store", "error", err)
		os.Exit(1)
	}
	defer creds.Close()

	var gen generator.Generator = generator.NewOpenAI(cfg.LLMBaseURL, cfg.LLMModel, creds.APIKey)
	if cfg.LLMStub {
		logger.Warn("LLM stub enabled; serving canned questions")
		gen = &generator.Stub{}
	}
	extractor := extract.New(cfg.ExtractionTimeout, cfg.MaxTextLen, logger)
	splitter := chunk.NewSplitter(cfg.ChunkTargetSize)

	quizSvc := service.NewQuizService(
		store.NewSession(),
		gen,
		extractor,
		splitter,
		id.Random{},
		cfg.RegenWorkers,
		logger,
	)
	defer quizSvc.Close()

	handler := api.NewHandler(quizSvc, creds, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      120 * time.Second, // generation runs are slow
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
