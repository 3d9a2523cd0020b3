package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

// chdir mirrors t.Chdir (Go 1.24+) for older toolchains: change into dir
// and restore the previous working directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func clearEnv(t *testing.T) {
	for _, key := range []string{"LLM_URL", "RELAY_ADDR", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg := LoadConfig()
	if cfg.LLMURL != DefaultLLMURL {
		t.Errorf("expected default LLM URL, got %q", cfg.LLMURL)
	}
	if cfg.Addr != ":8000" {
		t.Errorf("expected default addr :8000, got %q", cfg.Addr)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("expected default log level error, got %q", cfg.LogLevel)
	}
	if cfg.LLMTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.LLMTimeout)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("LLM_URL", "http://localhost:3000/api/v1/prediction/xyz")
	t.Setenv("RELAY_ADDR", ":9000")

	cfg := LoadConfig()
	if cfg.LLMURL != "http://localhost:3000/api/v1/prediction/xyz" {
		t.Errorf("env LLM_URL not applied, got %q", cfg.LLMURL)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("env RELAY_ADDR not applied, got %q", cfg.Addr)
	}
}

func TestLoadConfig_YAMLOverlay(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	yaml := "llm_url: http://file-configured/predict\nlog_level: info\n"
	if err := os.WriteFile(filepath.Join(dir, "relay.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write relay.yaml: %v", err)
	}

	cfg := LoadConfig()
	if cfg.LLMURL != "http://file-configured/predict" {
		t.Errorf("yaml llm_url not applied, got %q", cfg.LLMURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("yaml log_level not applied, got %q", cfg.LogLevel)
	}
	// addr untouched by the file, falls back to the default
	if cfg.Addr != ":8000" {
		t.Errorf("expected default addr, got %q", cfg.Addr)
	}
}

func TestLoadConfig_EnvBeatsYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	yaml := "llm_url: http://file-configured/predict\n"
	if err := os.WriteFile(filepath.Join(dir, "relay.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write relay.yaml: %v", err)
	}
	t.Setenv("LLM_URL", "http://env-configured/predict")

	cfg := LoadConfig()
	if cfg.LLMURL != "http://env-configured/predict" {
		t.Errorf("env should win over yaml, got %q", cfg.LLMURL)
	}
}

func TestLevel(t *testing.T) {
	if got := (Config{LogLevel: "info"}).Level(); got != zapcore.InfoLevel {
		t.Errorf("expected info level, got %v", got)
	}
	if got := (Config{LogLevel: "garbage"}).Level(); got != zapcore.ErrorLevel {
		t.Errorf("expected error fallback, got %v", got)
	}
}
