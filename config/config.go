package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Storage
	Database DatabaseConfig

	// Generation service
	LLM LLMConfig

	// Chat behavior
	Chat ChatConfig
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

type CORSConfig struct {
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Path string
}

// LLMConfig selects and configures the generation provider.
type LLMConfig struct {
	Provider string // "gemini" or "openai"
	APIKey   string
	Model    string
	BaseURL  string

	// Generation options, passed through to the provider unmodified.
	MaxOutputTokens int
	Temperature     float64
	TopK            int
}

type ChatConfig struct {
	HistoryLimit int
}

// Load loads configuration using Viper.
// A .env file is read first so local runs pick up API keys; then
// config.yaml — searched in ./config, ., /etc/app/ — and finally the
// environment override anything.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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

	// Split allowed origins since viper might not parse the array from env
	var origins []string
	if raw := viper.GetString("cors.allowed_origins"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	// Storage
	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("database_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	// Generation service
	cfg.LLM.Provider = viper.GetString("llm.provider")
	cfg.LLM.APIKey = expandEnvVar(viper.GetString("llm.api_key"))
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.MaxOutputTokens = viper.GetInt("llm.max_output_tokens")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.TopK = viper.GetInt("llm.top_k")

	// Flat env fallbacks for the common deployments
	if cfg.LLM.APIKey == "" {
		switch cfg.LLM.Provider {
		case "gemini":
			cfg.LLM.APIKey = viper.GetString("gemini_api_key")
		case "openai":
			cfg.LLM.APIKey = viper.GetString("openai_api_key")
		}
	}

	// Chat behavior
	cfg.Chat.HistoryLimit = viper.GetInt("chat.history_limit")

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

	viper.SetDefault("database.path", "carcare.db")

	// LLM defaults
	viper.SetDefault("llm.provider", "gemini")
	viper.SetDefault("llm.max_output_tokens", 150)
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.top_k", 40)

	viper.SetDefault("chat.history_limit", 20)
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
