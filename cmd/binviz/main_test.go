package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	serr "binviz/internal/errors"
	"binviz/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// runCLI executes the root command with a private config path.
func runCLI(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	return runCLIWithConfig(t, cfgPath, stdin, args...)
}

func runCLIWithConfig(t *testing.T, cfgPath string, stdin []byte, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != nil {
		cmd.SetIn(bytes.NewReader(stdin))
	}
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return testutils.StripANSI(out.String()), err
}

func TestDecimalCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{name: "five", args: []string{"decimal", "5"}, want: "Binary representation: 00000101"},
		{name: "max", args: []string{"decimal", "255"}, want: "Binary representation: 11111111"},
		{name: "fraction truncates", args: []string{"decimal", "3.9"}, want: "Binary representation: 00000011"},
		{name: "negative", args: []string{"decimal", "--", "-1"}, wantErr: serr.MsgDecimalRange},
		{name: "too large", args: []string{"decimal", "256"}, wantErr: serr.MsgDecimalRange},
		{name: "not a number", args: []string{"decimal", "abc"}, wantErr: serr.MsgDecimalRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, nil, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, serr.UserMessage(err))
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "2⁷")
		})
	}
}

func TestDecimalYAMLOutput(t *testing.T) {
	out, err := runCLI(t, nil, "-o", "yaml", "decimal", "200")
	require.NoError(t, err)

	var got decimalResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, decimalResult{Input: "200", Binary: "11001000"}, got)
}

func TestTextCommand(t *testing.T) {
	out, err := runCLI(t, nil, "text", "Hi")
	require.NoError(t, err)
	assert.Contains(t, out, "Full binary string:")
	assert.Contains(t, out, "01001000 01101001")

	out, err = runCLI(t, nil, "-o", "yaml", "text", "a", "b")
	require.NoError(t, err)
	var got textResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "a b", got.Input)
	assert.Equal(t, "01100001 00100000 01100010", got.Binary)
	require.Len(t, got.Entries, 3)
	assert.Equal(t, uint16(' '), got.Entries[1].CodeUnit)

	_, err = runCLI(t, nil, "text")
	require.Error(t, err)
	assert.Equal(t, serr.MsgEmptyText, serr.UserMessage(err))

	_, err = runCLI(t, nil, "text", "--latin1", "€")
	require.Error(t, err)
	assert.Contains(t, serr.UserMessage(err), "outside the 0-255 range")

	out, err = runCLI(t, nil, "text", "€")
	require.NoError(t, err)
	assert.Contains(t, out, "10000010101100")
}

func TestImageCommand(t *testing.T) {
	files := testutils.WriteDefaultFiles(t, t.TempDir())

	out, err := runCLI(t, nil, "image", files["bytes.png"])
	require.NoError(t, err)
	assert.Contains(t, out, "00000000 11111111 00010000")
	assert.NotContains(t, out, "...")
	assert.Contains(t, out, "bytes.png (3 B")

	out, err = runCLI(t, nil, "image", "--always-ellipsis", files["bytes.png"])
	require.NoError(t, err)
	assert.Contains(t, out, "00000000 11111111 00010000...")

	out, err = runCLI(t, nil, "-o", "yaml", "image", "--limit", "17", files["bytes.png"])
	require.NoError(t, err)
	assert.Contains(t, out, `dump: 00000000 11111111...`)
	assert.Contains(t, out, "truncated: true")

	out, err = runCLI(t, []byte("Hi"), "image", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "01001000 01101001")
	assert.Contains(t, out, "(2 B, text/plain")
}

func TestImageCommandErrors(t *testing.T) {
	_, err := runCLI(t, nil, "image")
	require.Error(t, err)
	assert.Equal(t, serr.MsgNoFile, serr.UserMessage(err))

	_, err = runCLI(t, nil, "image", filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.Equal(t, serr.MsgReadFile, serr.UserMessage(err))

	_, err = runCLI(t, nil, "image", "--limit", "0", "x.png")
	require.Error(t, err)
	assert.True(t, serr.IsInvalidConfig(err))
}

func TestOutputFlagValidation(t *testing.T) {
	_, err := runCLI(t, nil, "-o", "json", "decimal", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestConfigCommands(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := runCLIWithConfig(t, cfgPath, nil, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+cfgPath)
	assert.FileExists(t, cfgPath)

	_, err = runCLIWithConfig(t, cfgPath, nil, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCLIWithConfig(t, cfgPath, nil, "config", "init", "--force")
	require.NoError(t, err)

	out, err = runCLIWithConfig(t, cfgPath, nil, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "preview_limit: 1000")
	assert.Contains(t, out, "code_units: widen")
}

func TestInvalidConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("text:\n  code_units: ascii\n"), 0644))

	_, err := runCLIWithConfig(t, cfgPath, nil, "decimal", "1")
	require.Error(t, err)
	assert.True(t, serr.IsInvalidConfig(err))
}

func TestThemesCommand(t *testing.T) {
	out, err := runCLI(t, nil, "themes")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "* default", lines[0])
	assert.Contains(t, out, "  ocean")

	out, err = runCLI(t, nil, "themes", "--preview")
	require.NoError(t, err)
	assert.Contains(t, out, "1   0   1   0   0   1   0   1")
}
