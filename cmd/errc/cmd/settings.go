package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/errc/foundation/core/config"
	errcerr "github.com/msto63/errc/foundation/core/error"
	errcerrors "github.com/msto63/errc/foundation/core/errors"
	"github.com/msto63/errc/foundation/core/log"
	"github.com/msto63/errc/foundation/utils/uncertain"
)

// Configuration keys
const (
	keyDefaultErrorMode = "default_error.mode"
	keyPrecision        = "output.precision"
	keyPlain            = "output.plain"
	keyLogLevel         = "log.level"
	keyLogFormat        = "log.format"

	envPrefix = "ERRC"
)

// settings is the resolved configuration of one invocation. Flags override
// the environment, which overrides the configuration file.
type settings struct {
	mode      uncertain.Mode
	precision int
	plain     bool
	logLevel  log.Level
	logFormat log.Format
}

func defaultValues() map[string]interface{} {
	return map[string]interface{}{
		keyDefaultErrorMode: uncertain.ModeZero.String(),
		keyPrecision:        uncertain.DefaultPrecision,
		keyPlain:            false,
		keyLogLevel:         log.DefaultLevel().String(),
		keyLogFormat:        log.FormatText.String(),
	}
}

// loadConfig loads the file named by --config or the first discovered one
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  defaultValues(),
		})
	}

	opts := config.DefaultDiscoveryOptions()
	opts.EnvPrefix = envPrefix
	opts.Defaults = defaultValues()
	return config.Discover(opts)
}

func resolveSettings(cmd *cobra.Command, flags *rootFlags) (settings, error) {
	cfg, err := loadConfig(flags.configFile)
	if err != nil {
		return settings{}, err
	}

	changed := cmd.Flags().Changed
	stringSetting := func(flag, key, value string) string {
		if changed(flag) {
			return value
		}
		return cfg.GetString(key)
	}

	var s settings

	s.mode, err = uncertain.ParseMode(stringSetting("default-error", keyDefaultErrorMode, flags.defaultError))
	if err != nil {
		return settings{}, err
	}
	if s.mode == uncertain.ModeFunc {
		return settings{}, errcerrors.InvalidConfig(errcerrors.ModuleCLI, "resolveSettings",
			keyDefaultErrorMode, "func", "a custom function cannot be configured from the command line")
	}

	if changed("precision") {
		s.precision = flags.precision
	} else if s.precision, err = intSetting(cfg, keyPrecision); err != nil {
		return settings{}, err
	}
	if s.precision < 0 || s.precision > 17 {
		return settings{}, errcerrors.InvalidConfig(errcerrors.ModuleCLI, "resolveSettings",
			keyPrecision, s.precision, "must be between 0 and 17")
	}

	s.logLevel, err = log.ParseLevel(stringSetting("log-level", keyLogLevel, flags.logLevel))
	if err != nil {
		return settings{}, errcerr.Wrap(err, "invalid log level").WithCode(errcerr.CodeInvalidConfig)
	}
	s.logFormat, err = log.ParseFormat(stringSetting("log-format", keyLogFormat, flags.logFormat))
	if err != nil {
		return settings{}, errcerr.Wrap(err, "invalid log format").WithCode(errcerr.CodeInvalidConfig)
	}

	plain, err := boolSetting(cfg, keyPlain)
	if err != nil {
		return settings{}, err
	}
	s.plain = flags.plain || plain || !stdoutIsTerminal()

	return s, nil
}

// intSetting parses key strictly; a value that is not an integer is rejected
// instead of falling back to the default.
func intSetting(cfg *config.Config, key string) (int, error) {
	raw := strings.TrimSpace(cfg.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errcerrors.InvalidConfig(errcerrors.ModuleCLI, "resolveSettings",
			key, raw, "must be an integer")
	}
	return n, nil
}

func boolSetting(cfg *config.Config, key string) (bool, error) {
	raw := strings.TrimSpace(cfg.GetString(key))
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errcerrors.InvalidConfig(errcerrors.ModuleCLI, "resolveSettings",
			key, raw, "must be a boolean")
	}
	return b, nil
}
