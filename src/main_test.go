package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sandrolain/greet/src/cli"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GREET_LOG_LEVEL", "GREET_NO_COLOR", "NO_COLOR", "TERM", "LC_ALL", "LC_CTYPE", "LANG"} {
		t.Setenv(k, "")
	}
}

func TestRunScenarios(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
	}{
		{"name only", []string{"Alice"}, cli.ExitOK, "Hello, Alice!\n"},
		{"custom greeting", []string{"Bob", "--greeting=Hi"}, cli.ExitOK, "Hi, Bob!\n"},
		{"caps", []string{"Carol", "--caps"}, cli.ExitOK, "HELLO, CAROL!\n"},
		{"greeting and caps", []string{"Dan", "--greeting=Yo", "--caps"}, cli.ExitOK, "YO, DAN!\n"},
		{"no name", []string{}, cli.ExitUsage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)
			require.Equal(t, tt.code, code)
			require.Equal(t, tt.stdout, stdout.String())
			if tt.code == cli.ExitOK {
				require.Empty(t, stderr.String())
			} else {
				require.Contains(t, stderr.String(), "Usage:")
			}
		})
	}
}

func TestRunDebugLogsGoToStderr(t *testing.T) {
	clearEnv(t)
	t.Setenv("GREET_LOG_LEVEL", "debug")
	var stdout, stderr bytes.Buffer

	code := run([]string{"Alice"}, &stdout, &stderr)
	require.Equal(t, cli.ExitOK, code)
	require.Equal(t, "Hello, Alice!\n", stdout.String())
	require.Contains(t, stderr.String(), "parsed arguments")
}

func TestRunLocaleFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("LANG", "tr_TR.UTF-8")
	var stdout, stderr bytes.Buffer

	code := run([]string{"istanbul", "--caps"}, &stdout, &stderr)
	require.Equal(t, cli.ExitOK, code)
	require.Equal(t, "HELLO, İSTANBUL!\n", stdout.String())
}

func TestRunInvalidEnvConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("GREET_LOG_LEVEL", "verbose")
	var stdout, stderr bytes.Buffer

	code := run([]string{"Alice"}, &stdout, &stderr)
	require.Equal(t, cli.ExitFailure, code)
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "failed to load environment configuration")
}

func TestRunNoEscapeCodesWhenStderrIsNotTerminal(t *testing.T) {
	clearEnv(t)
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("GREET_LOG_LEVEL", "debug")

	var stdout, stderr bytes.Buffer
	code := run([]string{}, &stdout, &stderr)
	require.Equal(t, cli.ExitUsage, code)
	require.Contains(t, stderr.String(), "Error: ")
	require.NotContains(t, stderr.String(), "\x1b[")

	stdout.Reset()
	stderr.Reset()
	code = run([]string{"Alice"}, &stdout, &stderr)
	require.Equal(t, cli.ExitOK, code)
	require.Contains(t, stderr.String(), "parsed arguments")
	require.NotContains(t, stderr.String(), "\x1b[")
}

func TestIsTerminal(t *testing.T) {
	require.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "err.log"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	require.False(t, isTerminal(f))
}
