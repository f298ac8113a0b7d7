package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultDBPath, cfg.Server.DBPath)
	assert.Equal(t, DefaultFeedLimit, cfg.Blog.FeedLimit)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkwell.yaml")
	content := `server:
  addr: ":9090"
  db_path: "/tmp/blog-data"
blog:
  feed_limit: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/tmp/blog-data", cfg.Server.DBPath)
	assert.Equal(t, 5, cfg.Blog.FeedLimit)
}

func TestLoadFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkwell.yaml")
	content := `server:
  addr: ":9090"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, DefaultDBPath, cfg.Server.DBPath)
	assert.Equal(t, DefaultFeedLimit, cfg.Blog.FeedLimit)
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkwell.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("INKWELL_CONFIG", "/etc/inkwell/config.yaml")
	assert.Equal(t, "/etc/inkwell/config.yaml", GetConfigPath())

	t.Setenv("INKWELL_CONFIG", "")
	assert.Equal(t, "inkwell.yaml", GetConfigPath())
}

func TestNegativeFeedLimitNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkwell.yaml")
	content := `blog:
  feed_limit: -3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Blog.FeedLimit)
}
