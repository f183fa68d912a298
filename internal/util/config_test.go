package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"DATABASE_URL", "PORT", "LOG_LEVEL", "CACHE_TTL", "SQS_QUEUE_URL", "AWS_REGION", "AWS_PROFILE"} {
			t.Setenv(k, "")
		}
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		require.Equal(t, defaultDatabaseURL, cfg.DatabaseURL)
		require.Equal(t, 5001, cfg.Port)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, 10*time.Minute, cfg.CacheTTL)
		require.Equal(t, "us-east-1", cfg.AwsRegion)
		require.Equal(t, "", cfg.SqsQueueURL)
	})

	t.Run("env file and overrides", func(t *testing.T) {
		for _, k := range []string{"DATABASE_URL", "PORT", "LOG_LEVEL", "CACHE_TTL", "SQS_QUEUE_URL"} {
			t.Setenv(k, "")
			os.Unsetenv(k)
		}
		t.Setenv("LOG_LEVEL", "debug")

		envFile := filepath.Join(t.TempDir(), "test.env")
		contents := "PORT=8080\nCACHE_TTL=30s\nLOG_LEVEL=warn\nSQS_QUEUE_URL=https://sqs.us-east-1.amazonaws.com/1/trades\n"
		require.NoError(t, os.WriteFile(envFile, []byte(contents), 0o600))

		cfg, err := LoadConfig(envFile)
		require.NoError(t, err)
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, 30*time.Second, cfg.CacheTTL)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, "https://sqs.us-east-1.amazonaws.com/1/trades", cfg.SqsQueueURL)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("PORT", "abc")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
	})
}

func TestSet(t *testing.T) {
	s := NewSet()
	s.Add("MSFT")
	s.Add("AAPL")
	s.Add("MSFT")
	require.Equal(t, 2, s.Length())
	require.Equal(t, []string{"AAPL", "MSFT"}, s.List())
}
