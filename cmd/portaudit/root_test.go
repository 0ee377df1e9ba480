package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, sourceDir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	content := []byte("source_dir: " + sourceDir + "\ninclude_dir: /b\nsrc_dir: /c\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func resetRootFlags() {
	configFile = ""
	strict = false
	debug = false
}

func TestNewRootOpts_Defaults(t *testing.T) {
	resetRootFlags()
	t.Setenv("PORTAUDIT_CONFIG", "")
	t.Setenv("PORTAUDIT_STRICT", "")

	o, err := newRootOpts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/opt/ports/NeoSwift/Sources/NeoSwift", o.Config.SourceDir)
	assert.False(t, o.Config.Strict)
}

func TestNewRootOpts_EnvConfigFallback(t *testing.T) {
	resetRootFlags()
	path := writeConfigFile(t, "env.yaml", "/from-env")
	t.Setenv("PORTAUDIT_CONFIG", path)

	o, err := newRootOpts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/from-env", o.Config.SourceDir)
}

func TestNewRootOpts_FlagWinsOverEnv(t *testing.T) {
	resetRootFlags()
	t.Setenv("PORTAUDIT_CONFIG", writeConfigFile(t, "env.yaml", "/from-env"))
	configFile = writeConfigFile(t, "flag.yaml", "/from-flag")

	o, err := newRootOpts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/from-flag", o.Config.SourceDir)
}

func TestNewRootOpts_EnvStrict(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "true", value: "true", want: true},
		{name: "one", value: "1", want: true},
		{name: "false", value: "false", want: false},
		{name: "garbage", value: "yes-please", want: false},
		{name: "empty", value: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetRootFlags()
			t.Setenv("PORTAUDIT_CONFIG", "")
			t.Setenv("PORTAUDIT_STRICT", tt.value)

			o, err := newRootOpts(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, o.Config.Strict)
		})
	}
}

func TestNewRootOpts_BadEnvConfig(t *testing.T) {
	resetRootFlags()
	t.Setenv("PORTAUDIT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := newRootOpts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}
