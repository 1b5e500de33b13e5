package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/biocycle/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fixClock pins now to t for the duration of the test.
func fixClock(tb testing.TB, t time.Time) {
	tb.Helper()
	prev := now
	now = func() time.Time { return t }
	tb.Cleanup(func() { now = prev })
}

// writeConfig stores body as a config file and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	return path
}

// run executes the CLI with a private config path and isolated env.
func run(t *testing.T, configPath, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvBirthDate, "")
	t.Setenv(config.EnvEpsilon, "")
	t.Setenv(config.EnvLogLevel, "error")
	if configPath == "" {
		configPath = filepath.Join(t.TempDir(), "absent.yaml")
	}

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", configPath}, args...))

	err = root.Execute()

	return out.String(), errOut.String(), err
}
