package config_test

import (
	"testing"

	"github.com/dmitrymomot/clientenv/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	type serverConfig struct {
		Addr  string `env:"TEST_CLIENTENV_ADDR" envDefault:":8080"`
		Debug bool   `env:"TEST_CLIENTENV_DEBUG" envDefault:"false"`
	}

	t.Setenv("TEST_CLIENTENV_ADDR", ":9090")
	t.Setenv("TEST_CLIENTENV_DEBUG", "true")

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.Debug)

	// Second load of the same type returns the cached value even if the
	// environment changed in between.
	t.Setenv("TEST_CLIENTENV_ADDR", ":7070")
	var again serverConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, ":9090", again.Addr)
}

func TestLoadDefaults(t *testing.T) {
	type defaultsConfig struct {
		Label string `env:"TEST_CLIENTENV_UNSET_LABEL" envDefault:"clientenv"`
	}

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "clientenv", cfg.Label)
}

func TestLoadNilPointer(t *testing.T) {
	err := config.Load[struct{}](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadParseError(t *testing.T) {
	type badConfig struct {
		Count int `env:"TEST_CLIENTENV_COUNT"`
	}

	t.Setenv("TEST_CLIENTENV_COUNT", "not-a-number")

	var cfg badConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}
