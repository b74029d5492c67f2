// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestDirs(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home
}

func TestSaveAndLoadConfig(t *testing.T) {
	setTestDirs(t)

	require.NoError(t, SaveConfig(Config{ProjectsRoot: "~/code/rust"}))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "~/code/rust", cfg.ProjectsRoot)
}

func TestLoadConfig_MissingFileIsEmptyConfig(t *testing.T) {
	setTestDirs(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	setTestDirs(t)

	path, err := DefaultConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte("projects_root: [oops"), 0640))

	_, err = LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestResolvePath(t *testing.T) {
	home := setTestDirs(t)

	resolved, err := ResolvePath("~/code/rust")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "code", "rust"), resolved)

	passthrough, err := ResolvePath("/opt/rust")
	require.NoError(t, err)
	assert.Equal(t, "/opt/rust", passthrough)
}
