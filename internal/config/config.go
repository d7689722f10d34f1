package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"vidquiz/internal/transcript"
	"vidquiz/internal/verify"
)

// Pipeline holds the tunable settings of a pipeline run that are not
// provider credentials: question budgets, context sizing, verifier
// policy, and storage location. Provider config stays in internal/llm.
type Pipeline struct {
	// MaxQuestions caps how many questions a run plans for.
	MaxQuestions int

	// WindowRadius is the transcript context half-width in seconds.
	WindowRadius int

	// VerifyConcurrency bounds parallel verification calls.
	VerifyConcurrency int64

	// VerifyDelay is an optional pause before each verification call.
	VerifyDelay time.Duration

	// DBPath is the SQLite database location. Empty means the default
	// data directory.
	DBPath string
}

// Default returns the recommended pipeline settings.
func Default() Pipeline {
	return Pipeline{
		MaxQuestions:      10,
		WindowRadius:      transcript.DefaultWindowRadius,
		VerifyConcurrency: verify.DefaultConfig().Concurrency,
	}
}

// Load reads pipeline settings from an optional YAML file merged with
// VIDQUIZ_* environment variables. A missing file is not an error; the
// defaults stand.
func Load(path string) (Pipeline, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("vidquiz")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vidquiz")
	}

	v.SetEnvPrefix("VIDQUIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("pipeline.max_questions", def.MaxQuestions)
	v.SetDefault("pipeline.window_radius", def.WindowRadius)
	v.SetDefault("verify.concurrency", def.VerifyConcurrency)
	v.SetDefault("verify.delay", "0s")
	v.SetDefault("storage.db_path", "")

	if err := v.ReadInConfig(); err != nil {
		// An explicit file must exist; the default search may come up
		// empty.
		var notFound viper.ConfigFileNotFoundError
		if path != "" {
			return Pipeline{}, fmt.Errorf("read config file: %w", err)
		}
		if !errors.As(err, &notFound) {
			return Pipeline{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Pipeline{
		MaxQuestions:      v.GetInt("pipeline.max_questions"),
		WindowRadius:      v.GetInt("pipeline.window_radius"),
		VerifyConcurrency: v.GetInt64("verify.concurrency"),
		VerifyDelay:       v.GetDuration("verify.delay"),
		DBPath:            v.GetString("storage.db_path"),
	}

	if err := cfg.Validate(); err != nil {
		return Pipeline{}, err
	}
	return cfg, nil
}

// Validate checks the settings are usable.
func (c Pipeline) Validate() error {
	if c.MaxQuestions < 1 {
		return fmt.Errorf("max_questions must be at least 1, got %d", c.MaxQuestions)
	}
	if c.WindowRadius < 1 {
		return fmt.Errorf("window_radius must be at least 1, got %d", c.WindowRadius)
	}
	if c.VerifyConcurrency < 1 {
		return fmt.Errorf("verify concurrency must be at least 1, got %d", c.VerifyConcurrency)
	}
	if c.VerifyDelay < 0 {
		return fmt.Errorf("verify delay must not be negative")
	}
	return nil
}
