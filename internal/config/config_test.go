package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDefaults(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"linkpulse"}
	defer func() { os.Args = oldArgs }()

	opts := Parse()

	assert.Equal(t, "localhost:8080", opts.Port)
	assert.Equal(t, "http://localhost:8080", opts.ResultHostname)
	assert.Empty(t, opts.DatabaseDSN)
	assert.Empty(t, opts.RedisAddr)
	assert.Equal(t, "supersecretkey", opts.JWTSecret)
	assert.False(t, opts.EnableHTTPS)
}

func TestParseEnvOverrides(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"linkpulse"}
	defer func() { os.Args = oldArgs }()

	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("BASE_URL", "https://lnk.example")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost/links")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_PASSWORD", "redispass")
	t.Setenv("JWT_SECRET", "envsecret")
	t.Setenv("TRUSTED_SUBNET", "10.0.0.0/8")
	t.Setenv("ENABLE_HTTPS", "true")

	opts := Parse()

	assert.Equal(t, "0.0.0.0:9090", opts.Port)
	assert.Equal(t, "https://lnk.example", opts.ResultHostname)
	assert.Equal(t, "postgres://u:p@localhost/links", opts.DatabaseDSN)
	assert.Equal(t, "localhost:6379", opts.RedisAddr)
	assert.Equal(t, "redispass", opts.RedisPassword)
	assert.Equal(t, "envsecret", opts.JWTSecret)
	assert.Equal(t, "10.0.0.0/8", opts.TrustedSubnet)
	assert.True(t, opts.EnableHTTPS)
}
