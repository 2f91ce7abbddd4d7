package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerohr/console/pkg/constants"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIURL, EnvAPIToken, EnvTimeout, EnvPerPage, EnvHorizonDays,
		EnvUpcomingDays, EnvDownloadDir, EnvRefreshSchedule, EnvViewerID, EnvPort, EnvJWTSecret, EnvSeed} {
		t.Setenv(key, "")
	}
}

func TestLoadClient_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3001", cfg.APIURL)
	assert.Empty(t, cfg.Token)
	assert.Equal(t, constants.DefaultTimeout, cfg.Timeout)
	assert.Equal(t, constants.DefaultPerPage, cfg.PerPage)
	assert.Equal(t, constants.DefaultHorizonDays, cfg.HorizonDays)
	assert.Equal(t, constants.DefaultUpcomingDays, cfg.UpcomingDays)
	assert.Equal(t, constants.DefaultRefreshSpec, cfg.RefreshSchedule)
	assert.NotEmpty(t, cfg.DownloadDir)
}

func TestLoadClient_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIURL, "https://hr.example.com")
	t.Setenv(EnvAPIToken, "tok")
	t.Setenv(EnvTimeout, "3s")
	t.Setenv(EnvPerPage, "50")
	t.Setenv(EnvHorizonDays, "14")
	t.Setenv(EnvUpcomingDays, "5")
	t.Setenv(EnvDownloadDir, "/tmp/exports")
	t.Setenv(EnvRefreshSchedule, "@every 1m")
	t.Setenv(EnvViewerID, "u-1")

	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, Client{
		APIURL:          "https://hr.example.com",
		Token:           "tok",
		ViewerID:        "u-1",
		Timeout:         3 * time.Second,
		PerPage:         50,
		HorizonDays:     14,
		UpcomingDays:    5,
		DownloadDir:     "/tmp/exports",
		RefreshSchedule: "@every 1m",
	}, cfg)
}

func TestLoadClient_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvTimeout, "soon"},
		{EnvPerPage, "many"},
		{EnvHorizonDays, "1.5"},
		{EnvUpcomingDays, "week"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := LoadClient()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadServer(t *testing.T) {
	clearEnv(t)
	cfg := LoadServer()
	assert.Equal(t, "3001", cfg.Port)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.True(t, cfg.Seed)

	t.Setenv(EnvPort, "8080")
	t.Setenv(EnvJWTSecret, "s3cret")
	t.Setenv(EnvSeed, "false")
	assert.Equal(t, Server{Port: "8080", JWTSecret: "s3cret", Seed: false}, LoadServer())
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AERO_VIEWER_ID=from-file\nAERO_API_TOKEN=file-token\n"), 0o600))
	t.Setenv(EnvAPIToken, "env-token")
	os.Unsetenv(EnvViewerID)
	t.Cleanup(func() { os.Unsetenv(EnvViewerID) })

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	LoadDotEnv()

	assert.Equal(t, "from-file", os.Getenv(EnvViewerID))
	assert.Equal(t, "env-token", os.Getenv(EnvAPIToken))
}
