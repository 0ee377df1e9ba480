package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_UsageError(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no_args", args: nil},
		{name: "one_arg", args: []string{"/src"}},
		{name: "two_args", args: []string{"/src", "/include"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			status := run(tt.args, &buf, false, false)

			assert.Equal(t, 1, status)
			assert.Equal(t, usage+"\n", buf.String(), "usage must be the only output")
		})
	}
}

func TestRun_EmptyTranslatedTrees(t *testing.T) {
	root := t.TempDir()
	sourceDir := filepath.Join(root, "repo", "Sources", "NeoSwift")
	includeDir := filepath.Join(root, "cpp", "include")
	srcDir := filepath.Join(root, "cpp", "src")

	require.NoError(t, os.MkdirAll(filepath.Join(sourceDir, "wallet"), 0o755))
	require.NoError(t, os.MkdirAll(includeDir, 0o755))
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(sourceDir, "wallet", "Account.swift"), []byte("x"), 0o644))

	var buf bytes.Buffer
	status := run([]string{sourceDir, includeDir, srcDir}, &buf, false, false)

	require.Equal(t, 0, status)
	out := buf.String()
	assert.Contains(t, out, "Total source files: 1\n")
	assert.Contains(t, out, "Total translated headers: 0\n")
	assert.Contains(t, out, "-> wallet/account.hpp\n")
	assert.Contains(t, out, "-> wallet/account.cpp\n")
}

func TestRun_MissingSourceDir(t *testing.T) {
	root := t.TempDir()
	includeDir := filepath.Join(root, "include")
	srcDir := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(includeDir, 0o755))
	require.NoError(t, os.MkdirAll(srcDir, 0o755))

	var buf bytes.Buffer
	status := run([]string{filepath.Join(root, "missing"), includeDir, srcDir}, &buf, false, false)

	assert.Equal(t, 1, status)
	assert.Empty(t, buf.String(), "no report on a failed scan")
}
