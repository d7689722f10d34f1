package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxQuestions)
	assert.Equal(t, 30, cfg.WindowRadius)
	assert.Equal(t, int64(2), cfg.VerifyConcurrency)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vidquiz.yaml")
	content := []byte(`
pipeline:
  max_questions: 5
  window_radius: 45
verify:
  concurrency: 4
  delay: 250ms
storage:
  db_path: /tmp/test.db
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxQuestions)
	assert.Equal(t, 45, cfg.WindowRadius)
	assert.Equal(t, int64(4), cfg.VerifyConcurrency)
	assert.Equal(t, 250*time.Millisecond, cfg.VerifyDelay)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("VIDQUIZ_PIPELINE_MAX_QUESTIONS", "3")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.MaxQuestions)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Pipeline)
		wantErr bool
	}{
		{"defaults", func(*Pipeline) {}, false},
		{"zero questions", func(c *Pipeline) { c.MaxQuestions = 0 }, true},
		{"zero radius", func(c *Pipeline) { c.WindowRadius = 0 }, true},
		{"zero concurrency", func(c *Pipeline) { c.VerifyConcurrency = 0 }, true},
		{"negative delay", func(c *Pipeline) { c.VerifyDelay = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
