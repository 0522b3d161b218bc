package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_RequiresAddress(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "Address is a required configuration field")
}

func TestNewConfig_AppliesLoggingDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Address: "1.2.3.4"})

	require.NoError(t, err)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestNewConfig_RejectsBadLoggingValues(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{Address: "1.2.3.4", LogFormat: "xml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log-format")

	_, err = NewConfig(Config{Address: "1.2.3.4", LogLevel: "verbose"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log-level")
}
