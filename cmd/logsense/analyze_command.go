package main

import (
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"logsense/internal/analysis"
	"logsense/internal/analysis/usecase"
	"logsense/internal/classifier"
	"logsense/internal/memory"
	"logsense/internal/modelrouter"
	"logsense/pkg/log"
	"logsense/pkg/openrouter"
)

func newAnalyzeCommand(configFile *string) *cobra.Command {
	var file string
	var language string
	var code bool
	var reasoning bool
	var fast bool

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Run the full analysis pipeline against OpenRouter",
		Long: `Classify the input, route it to a model, and forward it to OpenRouter.
Requires OPENROUTER_API_KEY (env, .env, or config.yaml).

Examples:
  logsense analyze -f /var/log/app.log
  logsense analyze --code --language go -f main.go
  logsense analyze --reasoning "why did the deploy roll back?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args, file)
			if err != nil {
				return err
			}

			_ = godotenv.Load()
			cfg, err := loadConfig(*configFile)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if cfg.OpenRouter.APIKey == "" {
				return fmt.Errorf("OPENROUTER_API_KEY is not set")
			}

			logger := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "console"})

			var httpClient *http.Client
			if timeout := cfg.OpenRouter.ParseTimeout(); timeout > 0 {
				httpClient = &http.Client{Timeout: timeout}
			}
			llm, err := openrouter.New(openrouter.Config{
				APIKey:     cfg.OpenRouter.APIKey,
				BaseURL:    cfg.OpenRouter.BaseURL,
				Referer:    cfg.OpenRouter.Referer,
				Title:      cfg.OpenRouter.Title,
				HTTPClient: httpClient,
			})
			if err != nil {
				return err
			}

			store, err := memory.New(1)
			if err != nil {
				return err
			}

			router := modelrouter.New(modelrouter.NewCatalog(), cfg.Analysis.LongTextThreshold)
			uc := usecase.New(logger, classifier.New(), router, llm, store)

			in := analysis.AnalyzeInput{
				Text:     text,
				Language: language,
				Hints: analysis.ContextHints{
					RequiresReasoning: reasoning,
					RequiresSpeed:     fast,
				},
			}

			var out analysis.AnalyzeOutput
			if code {
				out, err = uc.AnalyzeCode(cmd.Context(), in)
			} else {
				out, err = uc.AnalyzeLogs(cmd.Context(), in)
			}
			if err != nil {
				return err
			}

			fmt.Printf("task type: %s\n", out.TaskType)
			fmt.Printf("severity:  %s\n", out.Severity)
			fmt.Printf("model:     %s\n", out.Model)
			fmt.Printf("tokens:    %d\n\n", out.Usage.TotalTokens)
			fmt.Println(out.Analysis)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read input from file instead of arguments")
	cmd.Flags().StringVar(&language, "language", "", "Programming language hint")
	cmd.Flags().BoolVar(&code, "code", false, "Treat input as code rather than logs")
	cmd.Flags().BoolVar(&reasoning, "reasoning", false, "Force the heavy reasoning model")
	cmd.Flags().BoolVar(&fast, "fast", false, "Prefer the fast model")

	return cmd
}
