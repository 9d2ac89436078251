package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "base_level: 3\nlinks: false\nnumbered: true\ncommonmark: true\noutput: TOC.md\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	opts := options{baseLevel: 1}
	cfg.apply(&opts, func(string) bool { return false })
	assert.Equal(t, options{
		baseLevel:  3,
		noLinks:    true,
		numbered:   true,
		commonMark: true,
		outputPath: "TOC.md",
	}, opts)
}

func TestConfigFlagsWin(t *testing.T) {
	path := writeConfig(t, "base_level: 3\nnumbered: true\n")

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	opts := options{baseLevel: 2}
	cfg.apply(&opts, func(name string) bool { return name == "base-level" })
	assert.Equal(t, 2, opts.baseLevel)
	assert.True(t, opts.numbered)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Nil(t, cfg.BaseLevel)
}

func TestLoadConfigUnknownField(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "base_levle: 2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mdindex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
