package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 10, cfg.Database.MaxConcurrency)
	assert.Equal(t, 8, cfg.Estimator.UTCOffsetHours)
	assert.Equal(t, 3, cfg.Estimator.DefaultLeadTimeDays)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("ESTIMATOR_UTC_OFFSET_HOURS", "-5")
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_URL", "file:replenish.db")

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := fromViper(v)

	assert.Equal(t, -5, cfg.Estimator.UTCOffsetHours)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "file:replenish.db", cfg.Database.URL)
}
