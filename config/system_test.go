package config

import (
	"testing"
	"time"

	"FormLab/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := load()
	require.NoError(t, err)

	assert.Equal(t, "memory", c.StoreDriver)
	assert.Equal(t, 3*time.Second, c.FlagWindow)
	assert.Equal(t, core.Policy{ImageRequired: true}, c.Policy())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_HTTP_PORT", "9090")
	t.Setenv("APP_STORE_DRIVER", "sqlite")
	t.Setenv("APP_SQLITE_PATH", "test.db")
	t.Setenv("APP_NEW_FLAG_WINDOW", "500ms")
	t.Setenv("APP_COUNTRY_MUST_EXIST", "true")
	t.Setenv("APP_AGE_MIN", "18")
	t.Setenv("APP_AGE_MAX", "99")

	cfg := Load()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "test.db", cfg.SQLitePath)
	assert.Equal(t, 500*time.Millisecond, cfg.FlagWindow)
	assert.Equal(t, core.Policy{ImageRequired: true, CountryMustExist: true, AgeMin: 18, AgeMax: 99}, cfg.Policy())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("window", func(t *testing.T) {
		t.Setenv("APP_NEW_FLAG_WINDOW", "soon")
		_, err := load()
		assert.ErrorContains(t, err, "new_flag_window")
	})
	t.Run("age range", func(t *testing.T) {
		t.Setenv("APP_AGE_MIN", "50")
		t.Setenv("APP_AGE_MAX", "20")
		_, err := load()
		assert.EqualError(t, err, "invalid age range 50..20")
	})
}
