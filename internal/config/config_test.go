package config_test

import (
	"furl/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.False(t, cfg.Domain.Strict)
	require.False(t, cfg.Domain.PrivateNeedsRoot)
	require.Equal(t, "last-label", cfg.Domain.SuffixMode)
	require.Equal(t, config.DedupAdjacent, cfg.Dedup.Mode)
	require.True(t, cfg.Input.Stdin)
	require.Equal(t, 1<<20, cfg.Input.MaxTokenSize)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("FURL_DOMAIN_STRICT", "true")
	t.Setenv("FURL_DEDUP_MODE", "cluster")
	t.Setenv("FURL_DOMAIN_SUFFIX_MODE", "public")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.True(t, cfg.Domain.Strict)
	require.Equal(t, config.DedupCluster, cfg.Dedup.Mode)
	require.Equal(t, "public", cfg.Domain.SuffixMode)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: development
domain:
  privateNeedsRoot: true
http:
  addr: "127.0.0.1:9090"
  readTimeout: 5s
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.True(t, cfg.Domain.PrivateNeedsRoot)
	require.Equal(t, "127.0.0.1:9090", cfg.HTTP.Addr)
	require.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	// untouched sections keep their defaults
	require.Equal(t, config.DedupAdjacent, cfg.Dedup.Mode)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("FURL_DEDUP_MODE", "transitive")
	_, err := config.Load("")
	require.ErrorContains(t, err, "dedup mode")
}

func TestValidate(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	cfg.Domain.SuffixMode = "psl"
	require.ErrorContains(t, cfg.Validate(), "suffix mode")

	cfg.Domain.SuffixMode = "public"
	cfg.Input.MaxTokenSize = 0
	require.ErrorContains(t, cfg.Validate(), "max token size")
}
