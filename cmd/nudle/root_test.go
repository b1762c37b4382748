package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nudle/internal/config"
)

// writeConfig creates a config whose theme and log files live in a temp dir.
func writeConfig(t *testing.T, themeDefault string) (configPath, themePath string) {
	t.Helper()
	dir := t.TempDir()
	themePath = filepath.Join(dir, "theme.yaml")
	configPath = filepath.Join(dir, "config.yaml")

	content := `version: "1.0.0"
start_url: /
brand: nudle
theme:
  default: ` + themeDefault + `
  file: ` + themePath + `
  watch: false
logging:
  level: debug
  file: ` + filepath.Join(dir, "logs", "nudle.log") + `
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath, themePath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootRefusesNonTerminal(t *testing.T) {
	_, err := execute(t, "cats")
	assert.ErrorIs(t, err, errNotTerminal)
}

func TestRootAcceptsQueryWords(t *testing.T) {
	_, err := execute(t, "hello", "world")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "unknown command")
	assert.ErrorIs(t, err, errNotTerminal, "query words reach the TUI launcher")

	_, err = execute(t, "version")
	assert.NoError(t, err, "subcommands still take precedence")
}

func TestStartLocation(t *testing.T) {
	cfg := config.Default()
	cfg.StartURL = "/search?q=start"

	tests := []struct {
		name    string
		url     string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "configured start", want: "/search?q=start"},
		{name: "url flag", url: "/search?q=cats", want: "/search?q=cats"},
		{name: "query args", args: []string{"hello", "world"}, want: "/search?q=hello%20world"},
		{name: "query args trimmed", args: []string{"  cats  "}, want: "/search?q=cats"},
		{name: "blank query", args: []string{"  "}, wantErr: true},
		{name: "both", url: "/", args: []string{"cats"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := startLocation(&rootFlags{url: tt.url}, tt.args, cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenSessionWritesLogFile(t *testing.T) {
	configPath, _ := writeConfig(t, "dark")

	s, err := openSession(&rootFlags{configPath: configPath}, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "dark", s.Theme.Current().String())

	s.Logger.Info("hello")
	data, err := os.ReadFile(s.Config.Logging.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), s.ID)
}

func TestOpenSessionWarnsWhenLogFileUnavailable(t *testing.T) {
	configPath, _ := writeConfig(t, "light")
	// A regular file where the log directory should be.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(configPath), "logs"), nil, 0o644))

	warn := &bytes.Buffer{}
	s, err := openSession(&rootFlags{configPath: configPath}, warn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.Contains(t, warn.String(), "logging disabled")
	assert.Contains(t, warn.String(), "create log directory")
}

func TestOpenSessionMissingExplicitConfig(t *testing.T) {
	_, err := openSession(&rootFlags{configPath: filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	assert.Error(t, err)
}

func TestOpenSessionAutoThemeUsesDetector(t *testing.T) {
	original := detectBackground
	t.Cleanup(func() { detectBackground = original })
	detectBackground = func() bool { return true }

	configPath, _ := writeConfig(t, "auto")
	s, err := openSession(&rootFlags{configPath: configPath}, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.Equal(t, "dark", s.Theme.Current().String())
}
