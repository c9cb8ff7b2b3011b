// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches standard directories for an errc configuration file.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation of file discovery
// - 2026-10-12 v0.2.0: User config directory, errc file names

package config

import (
	"os"
	"path/filepath"
	"strings"

	errcerr "github.com/msto63/errc/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Defaults   map[string]interface{}
	Required   bool // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches the working directory, the user config
// directory and /etc/errc for errc.{toml,yaml,yml}.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "errc"))
	}
	paths = append(paths, "/etc/errc")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"errc"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "ERRC",
	}
}

// Discover finds and loads the first configuration file. When none exists and
// the file is not required, an empty configuration carrying the defaults and
// the environment prefix is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err == nil {
		return LoadWithOptions(path, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
	}

	if options.Required {
		return nil, err
	}

	cfg := New(options.EnvPrefix)
	applyDefaults(cfg.data, options.Defaults)
	return cfg, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, configPath := range candidates {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", errcerr.Newf("no configuration file found in: %s", strings.Join(candidates, ", ")).
		WithCode(errcerr.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns every path discovery would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	filenames := options.Filenames
	if len(filenames) == 0 {
		filenames = []string{"errc"}
	}
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = []string{".toml", ".yaml", ".yml"}
	}

	var paths []string
	for _, dir := range options.Paths {
		for _, name := range filenames {
			for _, ext := range extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}
