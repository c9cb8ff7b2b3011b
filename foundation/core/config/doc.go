// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads errc settings from TOML and YAML files
//              with environment variable overrides and defaults.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-12 v0.2.0: Removed hot-reload and struct binding

/*
Package config loads configuration for the errc tool.

Configuration files are TOML or YAML; the format is detected from the file
extension. Keys are addressed with dot notation and every getter accepts an
optional default:

	cfg, err := config.LoadWithOptions("errc.toml", config.LoadOptions{
		EnvPrefix: "ERRC",
		Defaults:  map[string]interface{}{"output.precision": 5},
	})
	if err != nil {
		return err
	}
	mode := cfg.GetString("default_error.mode", "zero")
	prec := cfg.GetInt("output.precision", 5)

# Environment Overrides

When an EnvPrefix is set, every getter consults the environment first. The
key default_error.mode with prefix ERRC maps to ERRC_DEFAULT_ERROR_MODE.

# Discovery

Discover and FindConfigFile search a list of directories for errc.toml,
errc.yaml or errc.yml. Discover returns an empty configuration when nothing
is found and the file is optional.

# Errors

Loading failures are *error.Error values: CodeNotFound for a missing file,
CodeConfigError for read failures and CodeInvalidFormat for parse failures.
*/
package config
