package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajesh180675/advanced-analysis/pkg/finstruct/vocab"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port default = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Server.BodyLimit() != "10M" {
		t.Errorf("Server.BodyLimit() = %q, want %q", cfg.Server.BodyLimit(), "10M")
	}
	if cfg.Analysis.MaxTrendSeries != 5 || cfg.Analysis.FallbackTrendSeries != 3 {
		t.Errorf("trend defaults = %d/%d, want 5/3", cfg.Analysis.MaxTrendSeries, cfg.Analysis.FallbackTrendSeries)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FINSTRUCT_PORT", "9090")
	t.Setenv("FINSTRUCT_HOST", "127.0.0.1")
	t.Setenv("FINSTRUCT_LOG_LEVEL", "debug")
	t.Setenv("FINSTRUCT_LOG_FORMAT", "json")
	t.Setenv("FINSTRUCT_MAX_UPLOAD_MB", "25")
	t.Setenv("FINSTRUCT_VOCABULARY", "/etc/finstruct/vocab.yaml")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Address())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "25M", cfg.Server.BodyLimit())
	assert.Equal(t, "/etc/finstruct/vocab.yaml", cfg.Analysis.VocabularyPath)
}

func TestConfig_InvalidPortIgnored(t *testing.T) {
	t.Setenv("FINSTRUCT_PORT", "http")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfig_LayersFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	local := filepath.Join(dir, "local.toml")

	require.NoError(t, os.WriteFile(base, []byte(`
[server]
port = 7000
max_upload_mb = 4

[output]
pretty = true
`), 0o644))
	require.NoError(t, os.WriteFile(local, []byte(`
[server]
port = 7001

[analysis]
max_trend_series = 2
`), 0o644))

	cfg, err := LoadConfig(base, filepath.Join(dir, "missing.toml"), local)
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Server.MaxUploadMB)
	assert.True(t, cfg.Output.Pretty)
	assert.Equal(t, 2, cfg.Analysis.MaxTrendSeries)
	assert.Equal(t, 3, cfg.Analysis.FallbackTrendSeries)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nport="), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestPipelineOptions(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Analysis.MaxTrendSeries = 2

	opts, err := cfg.PipelineOptions(NewSilentLogger())
	require.NoError(t, err)
	assert.NotNil(t, opts.Logger)
	assert.Nil(t, opts.Vocabulary)
	assert.Equal(t, 2, opts.Limits().MaxSeries)

	data, err := vocab.Default().YAML()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg.Analysis.VocabularyPath = path
	opts, err = cfg.PipelineOptions(nil)
	require.NoError(t, err)
	assert.NotNil(t, opts.Vocabulary)

	cfg.Analysis.VocabularyPath = filepath.Join(t.TempDir(), "absent.yaml")
	_, err = cfg.PipelineOptions(nil)
	assert.Error(t, err)
}
