package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultLLMURL is the compiled-in prediction endpoint, used when no
// deployment configuration supplies one.
const DefaultLLMURL = "https://flowiseai-railway-production-dd26.up.railway.app/api/v1/prediction/49824ea4-9fb4-4480-b651-611cd1c9c29e"

// DefaultLLMTimeout bounds the wait for one generation round trip.
const DefaultLLMTimeout = 30 * time.Second

type Config struct {
	LLMURL     string
	Addr       string
	LogLevel   string
	LLMTimeout time.Duration
}

// fileConfig is the optional relay.yaml overlay. File values apply only
// where the environment did not set one, so env stays the deployment
// override.
type fileConfig struct {
	LLMURL   string `yaml:"llm_url"`
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
}

func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		LLMURL:     os.Getenv("LLM_URL"),
		Addr:       os.Getenv("RELAY_ADDR"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		LLMTimeout: DefaultLLMTimeout,
	}

	if data, err := os.ReadFile("relay.yaml"); err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err == nil {
			if cfg.LLMURL == "" {
				cfg.LLMURL = fc.LLMURL
			}
			if cfg.Addr == "" {
				cfg.Addr = fc.Addr
			}
			if cfg.LogLevel == "" {
				cfg.LogLevel = fc.LogLevel
			}
		}
	}

	if cfg.LLMURL == "" {
		cfg.LLMURL = DefaultLLMURL
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8000"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "error"
	}
	return cfg
}

// Level parses the configured log level, falling back to error on garbage.
func (c Config) Level() zapcore.Level {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.ErrorLevel
	}
	return level
}
