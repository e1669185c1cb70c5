package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Defaults for an unconfigured run. The content directory has no default of
// its own: it follows output_dir so generated files are indexed.
const (
	DefaultApp            = "Warriors of Christ"
	DefaultOutputDir      = "output"
	DefaultTrackerPath    = "content_tracker.json"
	DefaultRequestTimeout = 60 * time.Second
	DefaultConfigName     = "devotional"
)

// Config holds everything read from the environment at startup.
// Provider constructors receive their credentials from here.
type Config struct {
	App            string        `mapstructure:"app"`
	OutputDir      string        `mapstructure:"output_dir"`
	ContentDir     string        `mapstructure:"content_dir"`
	TrackerPath    string        `mapstructure:"tracker_path"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	Groq     ProviderConfig `mapstructure:"groq"`
	OpenAI   ProviderConfig `mapstructure:"openai"`
	DeepSeek ProviderConfig `mapstructure:"deepseek"`

	// Optional local fallback through the claude CLI, tried last
	ClaudeCLI   bool   `mapstructure:"claude_cli"`
	ClaudeModel string `mapstructure:"claude_model"`

	// Editor command for the TUI; empty uses $EDITOR
	Editor string `mapstructure:"editor"`
}

// ProviderConfig holds one provider's credential and model override
type ProviderConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// envBindings maps config keys to environment variables
var envBindings = map[string]string{
	"app":              "DEVOTIONAL_APP",
	"output_dir":       "DEVOTIONAL_OUTPUT_DIR",
	"content_dir":      "DEVOTIONAL_CONTENT_DIR",
	"tracker_path":     "DEVOTIONAL_TRACKER",
	"request_timeout":  "DEVOTIONAL_REQUEST_TIMEOUT",
	"groq.api_key":     "GROQ_API_KEY",
	"groq.model":       "GROQ_MODEL",
	"openai.api_key":   "OPENAI_API_KEY",
	"openai.model":     "OPENAI_MODEL",
	"deepseek.api_key": "DEEPSEEK_API_KEY",
	"deepseek.model":   "DEEPSEEK_MODEL",
	"claude_cli":       "DEVOTIONAL_CLAUDE_CLI",
	"claude_model":     "DEVOTIONAL_CLAUDE_MODEL",
	"editor":           "DEVOTIONAL_EDITOR",
}

// Load reads configuration once: defaults, then an optional config file,
// then environment variables. An empty path looks for devotional.yaml in
// the working directory (or the file named by DEVOTIONAL_CONFIG).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if path == "" {
		path = os.Getenv("DEVOTIONAL_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Only an explicitly named file is required to exist
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = cfg.OutputDir
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app", DefaultApp)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("tracker_path", DefaultTrackerPath)
	v.SetDefault("request_timeout", DefaultRequestTimeout)
	v.SetDefault("claude_cli", false)
	v.SetDefault("claude_model", "haiku")
}
