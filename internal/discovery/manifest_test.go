// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0640))
	return path
}

func TestParseManifest_FullPackageTable(t *testing.T) {
	path := writeManifest(t, `[package]
name = "my-crate"
version = "1.2.3"
edition = "2021"
description = "Does one thing well"
license = "MIT"

[dependencies]
tokio = { version = "1", features = ["full"] }

[profile.release]
lto = true
`)

	m, err := ParseManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "my-crate", m.Package.Name)
	assert.Equal(t, "Does one thing well", m.Package.Description)
}

func TestParseManifest_DescriptionAbsent(t *testing.T) {
	path := writeManifest(t, `[package]
name = "quiet-crate"
version = "0.1.0"
`)

	m, err := ParseManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "quiet-crate", m.Package.Name)
	assert.Empty(t, m.Package.Description)
}

func TestParseManifest_Malformed(t *testing.T) {
	path := writeManifest(t, "[package\nname =")

	_, err := ParseManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}

func TestParseManifest_FileMissing(t *testing.T) {
	_, err := ParseManifest(filepath.Join(t.TempDir(), ManifestFileName))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}
