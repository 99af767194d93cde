package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev-token", cfg.APIToken)
	assert.Contains(t, cfg.DBConnStr, "dbname=payroute")
	assert.Equal(t, 5, cfg.ShutdownGraceSeconds)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_API_TOKEN", "secret")

	cfg, err := Load(zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "secret", cfg.APIToken)
}
