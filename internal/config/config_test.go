package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate runs the test in an empty directory with no config home.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.LLM.Provider != "gemini" || cfg.LLM.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("llm = %+v", cfg.LLM)
	}
	if cfg.LLM.Timeout != 30*time.Second || cfg.LLM.Retry.MaxAttempts != 3 {
		t.Errorf("llm timeout/retry = %v/%d", cfg.LLM.Timeout, cfg.LLM.Retry.MaxAttempts)
	}
	if cfg.Generation.Throttle != 500*time.Millisecond || cfg.Generation.MaxBatch != 10 || cfg.Generation.Language != "ko" {
		t.Errorf("generation = %+v", cfg.Generation)
	}
	if cfg.Practice.FreeDailyLimit != 3 {
		t.Errorf("free limit = %d", cfg.Practice.FreeDailyLimit)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	yaml := `
server:
  addr: ":9090"
  mode: debug
llm:
  provider: openai
  timeout: 45s
generation:
  throttle: 1s
practice:
  free_daily_limit: 5
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("JWT_SECRET", "shh")
	t.Setenv("THINKWISE_SERVER_ADDR", ":7070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("env should override file: addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.Mode != "debug" || cfg.LLM.Provider != "openai" || cfg.LLM.Timeout != 45*time.Second {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Generation.Throttle != time.Second || cfg.Practice.FreeDailyLimit != 5 {
		t.Errorf("generation/practice = %+v / %+v", cfg.Generation, cfg.Practice)
	}
	if cfg.LLM.Gemini.APIKey != "g-key" || cfg.LLM.OpenAI.APIKey != "o-key" || cfg.Auth.JWTSecret != "shh" {
		t.Errorf("bound env vars not applied: %+v", cfg.LLM)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("ANTHROPIC_API_KEY")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ANTHROPIC_API_KEY=from-dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("ANTHROPIC_API_KEY") })

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LLM.Anthropic.APIKey != "from-dotenv" {
		t.Errorf("anthropic key = %q", cfg.LLM.Anthropic.APIKey)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	isolate(t)
	base, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad mode", func(c *Config) { c.Server.Mode = "prod" }, "server.mode"},
		{"batch too large", func(c *Config) { c.Generation.MaxBatch = 11 }, "max_batch"},
		{"bad language", func(c *Config) { c.Generation.Language = "fr" }, "default_language"},
		{"zero limit", func(c *Config) { c.Practice.FreeDailyLimit = 0 }, "free_daily_limit"},
		{"zero timeout", func(c *Config) { c.LLM.Timeout = 0 }, "llm.timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *base
			tt.mutate(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.want)
			}
		})
	}
}
