// AngelaMos | 2026
// config_test.go

package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()

	k := koanf.New(".")
	require.NoError(t, loadDefaults(k))

	c := &Config{}
	require.NoError(t, k.Unmarshal("", c))

	c.Database.URL = "postgres://localhost/studio"
	c.Redis.URL = "redis://localhost:6379"
	return c
}

func TestDefaultsValidateOnceURLsAreSet(t *testing.T) {
	c := validConfig(t)

	require.NoError(t, validate(c))
	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, 12*time.Hour, c.JWT.AccessTokenExpire)
	assert.True(t, c.Database.MigrateOnStart)
	assert.Equal(t, 120, c.RateLimit.ShopWrites)
	assert.Equal(t, "0.0.0.0:8080", c.Server.Address())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{
			name:   "missing database url",
			mutate: func(c *Config) { c.Database.URL = "" },
			errMsg: "DATABASE_URL",
		},
		{
			name:   "missing redis url",
			mutate: func(c *Config) { c.Redis.URL = "" },
			errMsg: "REDIS_URL",
		},
		{
			name: "wildcard origin with credentials",
			mutate: func(c *Config) {
				c.CORS.AllowCredentials = true
				c.CORS.AllowedOrigins = []string{"*"}
			},
			errMsg: "CORS wildcard",
		},
		{
			name: "insecure otel in production",
			mutate: func(c *Config) {
				c.App.Environment = "production"
				c.Otel.Enabled = true
				c.Otel.Insecure = true
			},
			errMsg: "OTEL_INSECURE",
		},
		{
			name:   "no shop write budget",
			mutate: func(c *Config) { c.RateLimit.ShopWrites = 0 },
			errMsg: "shop_writes",
		},
		{
			name:   "unknown timezone",
			mutate: func(c *Config) { c.App.Timezone = "Mars/Olympus" },
			errMsg: "app.timezone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig(t)
			tt.mutate(c)

			err := validate(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestEnvKeyReplacer(t *testing.T) {
	assert.Equal(t, "database.url", envKeyReplacer("DATABASE_URL"))
	assert.Equal(t, "app.timezone", envKeyReplacer("APP_TIMEZONE"))
	assert.Equal(t, "rate_limit.shop_writes", envKeyReplacer("RATE_LIMIT_SHOP_WRITES"))
	assert.Empty(t, envKeyReplacer("HOME"))
}

func TestLocation(t *testing.T) {
	app := AppConfig{Timezone: "Asia/Kolkata"}
	assert.Equal(t, "Asia/Kolkata", app.Location().String())

	app.Timezone = "nowhere"
	assert.Equal(t, time.UTC, app.Location())
}
