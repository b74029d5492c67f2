// SPDX-License-Identifier: Apache-2.0

// Package discovery provides functionality for finding Cargo project
// directories under a root directory. It handles scanning the root,
// detecting manifests, and extracting project metadata from them.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"crate-manager/internal/config"
	"crate-manager/internal/logger"
)

// ManifestFileName is the per-project manifest consulted for metadata.
const ManifestFileName = "Cargo.toml"

// releaseSubdir is where cargo places release artifacts, relative to the
// project directory.
var releaseSubdir = filepath.Join("target", "release")

// Project represents a discovered Cargo project: a directory directly under
// the scan root that contains a Cargo.toml.
type Project struct {
	Name        string `json:"name"`        // Declared package name, or the directory name as a fallback
	Description string `json:"description"` // Optional; empty when the manifest declares none
	Path        string `json:"path"`        // Absolute path to the project directory
}

// BuildOutputPath returns the conventional location of the project's release
// build artifacts.
func (p Project) BuildOutputPath() string {
	return filepath.Join(p.Path, releaseSubdir)
}

// DisplayDescription returns the description, or the "No description"
// placeholder when the manifest declares none.
func (p Project) DisplayDescription() string {
	if p.Description == "" {
		return "No description"
	}
	return p.Description
}

// GetProjectsRootDirectory finds the root directory to scan for Cargo
// projects, checking the config override first, then defaults.
func GetProjectsRootDirectory() (string, error) {
	logger.Debug("Determining projects root directory")

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warn("Could not load config to check projects_root", "error", err)
	} else if cfg.ProjectsRoot != "" {
		logger.Debug("Using configured projects root", "configured_path", cfg.ProjectsRoot)

		rootPath, resolveErr := config.ResolvePath(cfg.ProjectsRoot)
		if resolveErr != nil {
			logger.Warn("Could not resolve configured projects_root path",
				"configured_path", cfg.ProjectsRoot,
				"error", resolveErr)
			rootPath = cfg.ProjectsRoot // Use original path for Stat check
		}

		info, statErr := os.Stat(rootPath)
		if statErr == nil && info.IsDir() {
			logger.Info("Using configured projects root directory",
				"path", rootPath,
				"resolved_from", cfg.ProjectsRoot)
			return rootPath, nil
		}

		// If the configured path is invalid, return an error. Do not fall back.
		if statErr != nil {
			logger.Error("Configured projects_root is invalid",
				"configured_path", cfg.ProjectsRoot,
				"resolved_path", rootPath,
				"error", statErr)
			return "", fmt.Errorf("configured projects_root '%s' is invalid: %w", cfg.ProjectsRoot, statErr)
		}
		logger.Error("Configured projects_root is not a directory",
			"configured_path", cfg.ProjectsRoot,
			"resolved_path", rootPath)
		return "", fmt.Errorf("configured projects_root '%s' is not a directory", cfg.ProjectsRoot)
	}

	logger.Debug("No projects root configured, checking default locations")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Error("Could not get user home directory for default lookup", "error", err)
		return "", fmt.Errorf("could not get user home directory for default lookup: %w", err)
	}

	possibleDirs := []string{
		filepath.Join(homeDir, "rust"),
		filepath.Join(homeDir, "rust-projects"),
	}

	for _, dir := range possibleDirs {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			logger.Info("Using default projects root directory", "path", dir)
			return dir, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Error checking default directory", "directory", dir, "error", err)
		}
	}

	logger.Error("No valid projects root directory found",
		"checked_config", cfg.ProjectsRoot != "",
		"checked_defaults", possibleDirs)
	return "", fmt.Errorf("could not find a valid projects root directory (checked config 'projects_root' and defaults: ~/rust, ~/rust-projects)")
}

// FindProjects scans the immediate subdirectories of rootDir and returns one
// Project per subdirectory containing a Cargo.toml. Directories without a
// manifest are skipped. A manifest that fails to parse, or that declares no
// package name, is not fatal: the directory name stands in for the package
// name and the description stays empty.
//
// The returned slice preserves directory-listing order; os.ReadDir yields
// entries sorted by filename, so the order is stable on a given filesystem.
func FindProjects(rootDir string) ([]Project, error) {
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read projects root directory %s: %w", rootDir, err)
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		logger.Warn("Could not make projects root absolute", "root_dir", rootDir, "error", err)
		absRoot = rootDir
	}

	var projects []Project
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		projectPath := filepath.Join(absRoot, entry.Name())
		manifestPath := filepath.Join(projectPath, ManifestFileName)

		if _, err := os.Stat(manifestPath); err != nil {
			if !os.IsNotExist(err) {
				logger.Warn("Could not stat manifest", "path", manifestPath, "error", err)
			}
			continue
		}

		manifest, err := ParseManifest(manifestPath)
		if err != nil {
			logger.Warn("Manifest unparsable, falling back to directory name",
				"path", manifestPath, "error", err)
			manifest = Manifest{}
		}

		name := manifest.Package.Name
		if name == "" {
			name = entry.Name()
		}

		projects = append(projects, Project{
			Name:        name,
			Description: manifest.Package.Description,
			Path:        projectPath,
		})
	}

	logger.Debug("Project scan completed", "root_dir", absRoot, "project_count", len(projects))
	return projects, nil
}

// FindProjectByName scans the configured root and returns the first project
// whose declared name matches.
func FindProjectByName(name string) (Project, error) {
	rootDir, err := GetProjectsRootDirectory()
	if err != nil {
		return Project{}, err
	}

	projects, err := FindProjects(rootDir)
	if err != nil {
		return Project{}, err
	}

	for _, p := range projects {
		if p.Name == name {
			return p, nil
		}
	}
	return Project{}, fmt.Errorf("no project named '%s' found under %s", name, rootDir)
}
