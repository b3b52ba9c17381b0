package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the docs assistant backend
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Server    ServerConfig    `mapstructure:"server"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Search    SearchConfig    `mapstructure:"search"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address string `mapstructure:"address"`
	// Threads is accepted for parity with the native backend; the Go
	// runtime schedules request handling itself, so it is informational.
	Threads int `mapstructure:"threads"`
}

func (s ServerConfig) Validate() error {
	if strings.TrimSpace(s.Address) == "" {
		return fmt.Errorf("server.address required")
	}
	return nil
}

// LLMConfig contains settings for the external llama-server instance
type LLMConfig struct {
	ServerURL   string        `mapstructure:"server_url"`
	Model       string        `mapstructure:"model"`
	CtxSize     int           `mapstructure:"ctx_size"`
	Threads     int           `mapstructure:"threads"`
	GPULayers   int           `mapstructure:"gpu_layers"`
	Temperature float64       `mapstructure:"temperature"`
	TopP        float64       `mapstructure:"top_p"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

func (l LLMConfig) Validate() error {
	if strings.TrimSpace(l.ServerURL) == "" {
		return fmt.Errorf("llm.server_url required")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be > 0")
	}
	return nil
}

// SearchConfig contains Algolia documentation search settings.
// AppID and APIKey may be empty, in which case search is disabled and
// every query resolves to an empty result set.
type SearchConfig struct {
	AppID     string        `mapstructure:"app_id"`
	APIKey    string        `mapstructure:"api_key"`
	IndexName string        `mapstructure:"index_name"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// Enabled reports whether search credentials are configured.
func (s SearchConfig) Enabled() bool {
	return strings.TrimSpace(s.AppID) != "" && strings.TrimSpace(s.APIKey) != ""
}

// TelemetryConfig contains metrics settings
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig loads config from file, falling back to defaults plus
// DOCASSIST_* environment overrides when no config file is present.
func LoadConfig(path string) *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("json")

	viper.SetDefault("general.debug", false)
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.threads", 4)
	viper.SetDefault("llm.server_url", "http://localhost:8080")
	viper.SetDefault("llm.model", "mistral-7b-local")
	viper.SetDefault("llm.ctx_size", 4096)
	viper.SetDefault("llm.threads", 4)
	viper.SetDefault("llm.gpu_layers", 0)
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.top_p", 0.9)
	viper.SetDefault("llm.max_tokens", 512)
	viper.SetDefault("llm.timeout", 120*time.Second)
	// empty-string defaults so env-only credentials bind through Unmarshal
	viper.SetDefault("search.app_id", "")
	viper.SetDefault("search.api_key", "")
	viper.SetDefault("search.index_name", "iqm_docs")
	viper.SetDefault("search.timeout", 10*time.Second)
	viper.SetDefault("telemetry.enabled", true)

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("DOCASSIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		// env-only operation is fine
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	if err := config.Server.Validate(); err != nil {
		panic(err)
	}
	if err := config.LLM.Validate(); err != nil {
		panic(err)
	}
	return &config
}

// Print logs the resolved configuration, masking the search API key.
func (c *Config) Print(logger *log.Logger) {
	logger.Printf("listen address: %s (threads: %d)", c.Server.Address, c.Server.Threads)
	logger.Printf("llama-server: %s (model: %s, ctx: %d, threads: %d, gpu layers: %d)",
		c.LLM.ServerURL, c.LLM.Model, c.LLM.CtxSize, c.LLM.Threads, c.LLM.GPULayers)
	if c.Search.Enabled() {
		logger.Printf("algolia search enabled (app: %s, index: %s)", c.Search.AppID, c.Search.IndexName)
	} else {
		logger.Printf("algolia search disabled: no credentials configured")
	}
}
