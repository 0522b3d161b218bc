package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/ipcloak/internal/addr"
)

func TestAppRun_WritesAllForms(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cfg, err := NewConfig(Config{Address: "127.0.0.1"})
	require.NoError(t, err)
	out := &bytes.Buffer{}
	logOut := &bytes.Buffer{}

	// --- Act ---
	runErr := NewApp(out, logOut, cfg).Run(context.Background())

	// --- Assert ---
	require.NoError(t, runErr)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 21)
	require.Equal(t, "2130706433", lines[0])
}

func TestAppRun_InvalidAddressWritesNothing(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cfg, err := NewConfig(Config{Address: "999.1.1.1"})
	require.NoError(t, err)
	out := &bytes.Buffer{}
	logOut := &bytes.Buffer{}

	// --- Act ---
	runErr := NewApp(out, logOut, cfg).Run(context.Background())

	// --- Assert ---
	require.ErrorIs(t, runErr, addr.ErrInvalidAddress)
	require.Empty(t, out.String(), "no partial output on parse failure")
}

func TestAppRun_DecorationAppliedToEveryLine(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cfg, err := NewConfig(Config{Address: "192.168.100.1", Prefix: "[", Postfix: "]"})
	require.NoError(t, err)
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := NewApp(out, &bytes.Buffer{}, cfg).Run(context.Background())

	// --- Assert ---
	require.NoError(t, runErr)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 21)
	for i, line := range lines {
		require.True(t, strings.HasPrefix(line, "["), "line %d", i+1)
		require.True(t, strings.HasSuffix(line, "]"), "line %d", i+1)
	}
}
