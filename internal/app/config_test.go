package app

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := configFrom(testViper(nil))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "development", cfg.LogMode())
	assert.Equal(t, 30*24*time.Hour, cfg.JWTExpire)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.False(t, cfg.MetricsEnabled)
	assert.False(t, cfg.Otel.Enabled)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestConfigOverrides(t *testing.T) {
	cfg, err := configFrom(testViper(map[string]any{
		"NODE_ENV":                   "production",
		"PORT":                       8080,
		"JWT_SECRET":                 "s3cret",
		"JWT_EXPIRE":                 "12h",
		"CORS_ORIGINS":               "https://a.example.org, https://b.example.org",
		"METRICS_ENABLED":            "true",
		"OTEL_ENABLED":               true,
		"OTEL_EXPORTER_OTLP_HEADERS": "api-key=abc",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.Production())
	assert.Equal(t, "production", cfg.LogMode())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpire)
	assert.Equal(t, []string{"https://a.example.org", "https://b.example.org"}, cfg.CORSOrigins)
	assert.True(t, cfg.MetricsEnabled)
	assert.True(t, cfg.Otel.Enabled)
	assert.Equal(t, "production", cfg.Otel.Environment)
	assert.Equal(t, map[string]string{"api-key": "abc"}, cfg.Otel.Headers)
}

func TestConfigRejectsBadValues(t *testing.T) {
	_, err := configFrom(testViper(map[string]any{"NODE_ENV": "production"}))
	assert.ErrorContains(t, err, "JWT_SECRET")

	_, err = configFrom(testViper(map[string]any{"JWT_EXPIRE": "soon"}))
	assert.ErrorContains(t, err, "JWT_EXPIRE")

	_, err = configFrom(testViper(map[string]any{"PORT": 70000}))
	assert.ErrorContains(t, err, "PORT")
}
