package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFlags_Overrides(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"test", "-a", "https://portal.example.com/api", "-t", "5", "-d", "custom.db"}

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	require.Equal(t, "https://portal.example.com/api", cfg.ServerBaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, "custom.db", cfg.DatabasePath)
}

func TestParseFlags_DefaultsKept(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"test", "-unrelated", "value"}

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	require.Equal(t, "http://127.0.0.1:8000/api", cfg.ServerBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
