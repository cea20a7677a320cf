package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Upstream LLM API
	OpenRouter OpenRouterConfig

	// Analysis tuning
	Analysis AnalysisConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// OpenRouterConfig configures the upstream OpenRouter client.
type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Referer string
	Title   string
	Timeout string
}

// AnalysisConfig tunes classification and history behavior.
type AnalysisConfig struct {
	LongTextThreshold int
	HistorySize       int
}

// ParseTimeout returns the OpenRouter HTTP timeout, or zero when unset or
// invalid (the client then applies its own default).
func (c OpenRouterConfig) ParseTimeout() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	return load()
}

// LoadFile loads configuration from an explicit file path instead of the
// default search paths. Unlike Load, a missing file is an error.
func LoadFile(path string) (*Config, error) {
	viper.SetConfigFile(path)

	return load()
}

func load() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenRouter
	cfg.OpenRouter.APIKey = expandEnvVar(viper.GetString("openrouter.api_key"))
	cfg.OpenRouter.BaseURL = viper.GetString("openrouter.base_url")
	cfg.OpenRouter.Referer = viper.GetString("openrouter.referer")
	cfg.OpenRouter.Title = viper.GetString("openrouter.title")
	cfg.OpenRouter.Timeout = viper.GetString("openrouter.timeout")
	if key := viper.GetString("openrouter_api_key"); key != "" {
		cfg.OpenRouter.APIKey = key
	}

	// Analysis
	cfg.Analysis.LongTextThreshold = viper.GetInt("analysis.long_text_threshold")
	cfg.Analysis.HistorySize = viper.GetInt("analysis.history_size")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// OpenRouter defaults
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("openrouter.title", "logsense")
	viper.SetDefault("openrouter.timeout", "60s")

	// Analysis defaults
	viper.SetDefault("analysis.long_text_threshold", 8000)
	viper.SetDefault("analysis.history_size", 500)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
