package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func testConfigPath() string {
	return filepath.Join("..", "..", "test", "test_config.yaml")
}

func TestRootCommandCSV(t *testing.T) {
	out, err := execute(t, "--config", testConfigPath(), "--log-level", "error")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# annuity\n"))
	assert.Contains(t, out, "# bond\n")
	assert.NotContains(t, out, "# inactive")
	assert.Equal(t, 2, strings.Count(out, "year,beginning balance"))
}

func TestRootCommandPretty(t *testing.T) {
	out, err := execute(t, "--config", testConfigPath(), "--output-format", "pretty", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "--- Results for scenario annuity ---")
	assert.Contains(t, out, "(coverage binding)")
	assert.Contains(t, out, "Warning: Scenario 'bond'")
}

func TestRootCommandErrors(t *testing.T) {
	_, err := execute(t, "--config", testConfigPath(), "--output-format", "json", "--log-level", "error")
	assert.ErrorContains(t, err, "expected output format")

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to load configuration")

	_, err = execute(t, "--config", testConfigPath(), "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestServeCommandRejectsBadServerConfig(t *testing.T) {
	_, err := execute(t, "serve", "--server-config", testConfigPath(), "--max-upload-size", "1TB")
	assert.Error(t, err)
}
