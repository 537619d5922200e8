// Package config loads ThinkWise settings from an optional YAML file, a
// .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/llm"
	"github.com/thinkwise-edu/thinkwise/internal/logging"
	"github.com/thinkwise-edu/thinkwise/internal/problemgen"
)

// EnvPrefix is prepended to every environment key, e.g. THINKWISE_SERVER_ADDR.
const EnvPrefix = "THINKWISE"

// Config is the full application configuration.
type Config struct {
	Server     ServerConfig      `mapstructure:"server"`
	Database   DatabaseConfig    `mapstructure:"database"`
	Auth       AuthConfig        `mapstructure:"auth"`
	LLM        llm.Config        `mapstructure:"llm"`
	Generation problemgen.Config `mapstructure:"generation"`
	Practice   PracticeConfig    `mapstructure:"practice"`
	Log        logging.Options   `mapstructure:"log"`
}

type ServerConfig struct {
	Addr           string        `mapstructure:"addr"`
	Mode           string        `mapstructure:"mode"` // gin mode: debug, release or test
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	// Path is the SQLite file. Empty means store.DefaultDBPath.
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type PracticeConfig struct {
	FreeDailyLimit int `mapstructure:"free_daily_limit"`
}

// envBindings maps config keys to the conventional variable names that
// deployments already use.
var envBindings = map[string]string{
	"llm.gemini.api_key":     "GEMINI_API_KEY",
	"llm.gemini.model":       "GEMINI_MODEL",
	"llm.openai.api_key":     "OPENAI_API_KEY",
	"llm.anthropic.api_key":  "ANTHROPIC_API_KEY",
	"llm.openrouter.api_key": "OPENROUTER_API_KEY",
	"auth.jwt_secret":        "JWT_SECRET",
}

// Load reads configuration. path is an explicit config file; when empty,
// thinkwise.yaml is looked up in the working directory and in
// $XDG_CONFIG_HOME/thinkwise. A .env file in the working directory is
// loaded first when present; it never overrides variables already set.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("thinkwise")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := configHome(); dir != "" {
			v.AddConfigPath(filepath.Join(dir, "thinkwise"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	llmDefaults := llm.DefaultConfig()
	genDefaults := problemgen.DefaultConfig()

	defaults := map[string]any{
		"server.addr":            ":8080",
		"server.mode":            "release",
		"server.read_timeout":    15 * time.Second,
		"server.write_timeout":   5 * time.Minute,
		"server.allowed_origins": []string{"http://localhost:3000"},

		"database.path": "",

		"auth.jwt_secret": "",
		"auth.token_ttl":  7 * 24 * time.Hour,

		"llm.provider":            llmDefaults.Provider,
		"llm.gemini.api_key":      "",
		"llm.gemini.model":        llmDefaults.Gemini.Model,
		"llm.gemini.base_url":     "",
		"llm.openai.api_key":      "",
		"llm.openai.model":        llmDefaults.OpenAI.Model,
		"llm.openai.base_url":     "",
		"llm.openrouter.api_key":  "",
		"llm.openrouter.model":    llmDefaults.OpenRouter.Model,
		"llm.openrouter.base_url": "",
		"llm.openrouter.app_name": llmDefaults.OpenRouter.AppName,
		"llm.openrouter.site_url": "",
		"llm.anthropic.api_key":   "",
		"llm.anthropic.model":     llmDefaults.Anthropic.Model,
		"llm.anthropic.base_url":  "",
		"llm.retry.max_attempts":  llmDefaults.Retry.MaxAttempts,
		"llm.retry.initial_wait":  llmDefaults.Retry.InitialWait,
		"llm.retry.max_wait":      llmDefaults.Retry.MaxWait,
		"llm.retry.multiplier":    llmDefaults.Retry.Multiplier,
		"llm.timeout":             llmDefaults.Timeout,

		"generation.max_tokens":       genDefaults.MaxTokens,
		"generation.temperature":      genDefaults.Temperature,
		"generation.throttle":         genDefaults.Throttle,
		"generation.max_batch":        genDefaults.MaxBatch,
		"generation.default_language": genDefaults.Language,

		"practice.free_daily_limit": 3,

		"log.level":        "info",
		"log.file":         "",
		"log.max_size_mb":  50,
		"log.max_backups":  5,
		"log.max_age_days": 30,
		"log.development":  false,
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
}

// Validate rejects inconsistent settings. Missing LLM credentials are not
// an error here: the server runs without them and reports the problem when
// generation is requested.
func (c *Config) Validate() error {
	var errs []error

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode %q must be debug, release or test", c.Server.Mode))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if c.LLM.Timeout <= 0 {
		errs = append(errs, errors.New("llm.timeout must be positive"))
	}
	if c.LLM.Retry.MaxAttempts < 1 {
		errs = append(errs, errors.New("llm.retry.max_attempts must be at least 1"))
	}
	if c.Generation.MaxBatch < 1 || c.Generation.MaxBatch > 10 {
		errs = append(errs, fmt.Errorf("generation.max_batch %d must be between 1 and 10", c.Generation.MaxBatch))
	}
	if c.Generation.Throttle < 0 {
		errs = append(errs, errors.New("generation.throttle must not be negative"))
	}
	if c.Generation.Temperature < 0 || c.Generation.Temperature > 1 {
		errs = append(errs, errors.New("generation.temperature must be between 0 and 1"))
	}
	if !exercise.Language(c.Generation.Language).Valid() {
		errs = append(errs, fmt.Errorf("generation.default_language %q must be ko or en", c.Generation.Language))
	}
	if c.Practice.FreeDailyLimit < 1 {
		errs = append(errs, errors.New("practice.free_daily_limit must be at least 1"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}
