package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docsdk/pkg/config"
)

type prefixedConfig struct {
	ServerURL string `env:"SERVER_URL"`
	Leeway    int    `env:"LEEWAY" envDefault:"0"`
	IgnoreSSL bool   `env:"IGNORE_SSL"`
}

type requiredConfig struct {
	Secret string `env:"CFGTEST_REQUIRED_SECRET,required"`
}

func TestLoadWithPrefix(t *testing.T) {
	config.ResetCache()
	t.Setenv("CFGTEST_A_SERVER_URL", "http://docs.local")
	t.Setenv("CFGTEST_A_LEEWAY", "15")
	t.Setenv("CFGTEST_A_IGNORE_SSL", "true")

	var cfg prefixedConfig
	require.NoError(t, config.LoadWithPrefix("CFGTEST_A_", &cfg))
	assert.Equal(t, "http://docs.local", cfg.ServerURL)
	assert.Equal(t, 15, cfg.Leeway)
	assert.True(t, cfg.IgnoreSSL)

	// Served from cache even after the environment changes.
	t.Setenv("CFGTEST_A_SERVER_URL", "http://changed.local")
	var cached prefixedConfig
	require.NoError(t, config.LoadWithPrefix("CFGTEST_A_", &cached))
	assert.Equal(t, "http://docs.local", cached.ServerURL)

	var reloaded prefixedConfig
	require.NoError(t, config.ForceReload("CFGTEST_A_", &reloaded))
	assert.Equal(t, "http://changed.local", reloaded.ServerURL)
}

func TestLoadWithPrefix_SeparateCacheEntries(t *testing.T) {
	config.ResetCache()
	t.Setenv("CFGTEST_B_SERVER_URL", "http://b.local")
	t.Setenv("CFGTEST_C_SERVER_URL", "http://c.local")

	var b, c prefixedConfig
	require.NoError(t, config.LoadWithPrefix("CFGTEST_B_", &b))
	require.NoError(t, config.LoadWithPrefix("CFGTEST_C_", &c))
	assert.Equal(t, "http://b.local", b.ServerURL)
	assert.Equal(t, "http://c.local", c.ServerURL)
}

func TestLoad_RequiredMissing(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("CFGTEST_REQUIRED_SECRET")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("CFGTEST_REQUIRED_SECRET", "s3cr3t")
	var retry requiredConfig
	require.NoError(t, config.Load(&retry))
	assert.Equal(t, "s3cr3t", retry.Secret)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *prefixedConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("CFGTEST_SERVER_URL")
	os.Unsetenv("CFGTEST_LEEWAY")
	t.Cleanup(func() {
		os.Unsetenv("CFGTEST_SERVER_URL")
		os.Unsetenv("CFGTEST_LEEWAY")
	})
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg prefixedConfig
	require.NoError(t, config.LoadWithPrefix("CFGTEST_", &cfg))
	assert.Equal(t, "https://docs.example.com/", cfg.ServerURL)
	assert.Equal(t, 30, cfg.Leeway)

	err := config.LoadEnv("testdata/missing.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("CFGTEST_REQUIRED_SECRET")
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
