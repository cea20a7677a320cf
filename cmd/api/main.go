package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"logsense/config"
	_ "logsense/docs" // Swagger docs
	analysisHTTP "logsense/internal/analysis/delivery/http"
	"logsense/internal/analysis/usecase"
	"logsense/internal/classifier"
	"logsense/internal/httpserver"
	"logsense/internal/memory"
	"logsense/internal/modelrouter"
	"logsense/pkg/log"
	"logsense/pkg/openrouter"
)

// @title       logsense API
// @description AI-assisted log and code analysis gateway backed by OpenRouter.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting logsense...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Analysis domain
	cls := classifier.New()
	router := modelrouter.New(modelrouter.NewCatalog(), cfg.Analysis.LongTextThreshold)

	store, err := memory.New(cfg.Analysis.HistorySize)
	if err != nil {
		logger.Error(ctx, "Failed to initialize history store: ", err)
		return
	}

	var llm openrouter.IOpenRouter
	if cfg.OpenRouter.APIKey != "" {
		var httpClient *http.Client
		if timeout := cfg.OpenRouter.ParseTimeout(); timeout > 0 {
			httpClient = &http.Client{Timeout: timeout}
		}

		client, orErr := openrouter.New(openrouter.Config{
			APIKey:     cfg.OpenRouter.APIKey,
			BaseURL:    cfg.OpenRouter.BaseURL,
			Referer:    cfg.OpenRouter.Referer,
			Title:      cfg.OpenRouter.Title,
			HTTPClient: httpClient,
		})
		if orErr != nil {
			logger.Error(ctx, "Failed to initialize OpenRouter client: ", orErr)
			return
		}
		llm = client
		logger.Infof(ctx, "OpenRouter client ready (base_url=%s)", cfg.OpenRouter.BaseURL)
	} else {
		logger.Warn(ctx, "OPENROUTER_API_KEY is missing: analyze endpoints disabled, classify-only mode")
	}

	uc := usecase.New(logger, cls, router, llm, store)
	handler := analysisHTTP.New(logger, uc)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AnalysisHandler: handler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
