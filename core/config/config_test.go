package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrhq/zephyr/core/config"
)

type serverEnv struct {
	Addr string `env:"TEST_CFG_ADDR" envDefault:":8080"`
	Root string `env:"TEST_CFG_ROOT" envDefault:"./public"`
}

type requiredEnv struct {
	Token string `env:"TEST_CFG_MISSING_TOKEN,required"`
}

type cachedEnv struct {
	Value string `env:"TEST_CFG_CACHED" envDefault:"initial"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults_applied", func(t *testing.T) {
		var cfg serverEnv
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "./public", cfg.Root)
	})

	t.Run("required_variable_missing", func(t *testing.T) {
		var cfg requiredEnv
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParseFailed)
	})

	t.Run("nil_pointer", func(t *testing.T) {
		var cfg *serverEnv
		err := config.Load(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrNilConfig)
	})
}

func TestLoadCaching(t *testing.T) {
	t.Setenv("TEST_CFG_CACHED", "first")

	var a cachedEnv
	require.NoError(t, config.Load(&a))
	assert.Equal(t, "first", a.Value)

	// Changing the environment after the first load must not be visible:
	// the type is cached for the process lifetime.
	t.Setenv("TEST_CFG_CACHED", "second")

	var b cachedEnv
	require.NoError(t, config.Load(&b))
	assert.Equal(t, a, b)
}

func TestMustLoad(t *testing.T) {
	t.Run("panics_on_missing_required", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredEnv
			config.MustLoad(&cfg)
		})
	})

	t.Run("loads_defaults", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg serverEnv
			config.MustLoad(&cfg)
		})
	})
}
