// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Manifest models the subset of a Cargo.toml consulted during a scan.
// All other tables and keys are ignored by the decoder.
type Manifest struct {
	Package PackageMeta `toml:"package"`
}

// PackageMeta is the [package] table of a Cargo.toml.
type PackageMeta struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// ParseManifest reads and decodes a Cargo.toml file.
func ParseManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return m, nil
}
