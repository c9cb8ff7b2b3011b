package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	errcerr "github.com/msto63/errc/foundation/core/error"
	"github.com/msto63/errc/foundation/core/log"
	"github.com/msto63/errc/foundation/utils/uncertain"
	"github.com/msto63/errc/internal/calc"
)

// rootFlags holds the persistent flag values of one command tree
type rootFlags struct {
	configFile   string
	defaultError string
	precision    int
	logLevel     string
	logFormat    string
	plain        bool
}

// app is the state shared by subcommands once flags and config are resolved
type app struct {
	settings settings
	logger   *log.Logger
	registry *calc.Registry
	out      printer
}

// base returns an operand carrying the configured default-error policy
func (a *app) base() calc.Operand {
	var v calc.Operand
	// ModeFunc is rejected while resolving settings, so this cannot fail
	_ = v.SetDefaultMode(a.settings.mode, nil)
	return v
}

// NewRootCmd builds the errc command tree
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	state := &app{}

	rootCmd := &cobra.Command{
		Use:   "errc",
		Short: "errc - calculator with uncertainty propagation",
		Long: `errc evaluates arithmetic and mathematical functions on measured
quantities and propagates their uncertainties to first order.

Operands are written as value±error, value+-error or value+/-error.
A bare number receives the default uncertainty:
  zero - no uncertainty
  half - half a unit in the last decimal place (0.03 → ±0.005)

Configuration is read from --config or errc.toml / errc.yaml in the
current directory, the user config directory or /etc/errc. Environment
variables such as ERRC_DEFAULT_ERROR_MODE override the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd, flags)
			if err != nil {
				return err
			}

			logger := log.NewWithConfig(log.Config{
				Level:  s.logLevel,
				Format: s.logFormat,
				Output: cmd.ErrOrStderr(),
				Name:   "errc",
			})
			log.SetDefault(logger)

			registry, err := calc.NewRegistry(calc.Options{
				Logger:              logger,
				EnableAbbreviations: true,
			})
			if err != nil {
				return err
			}

			*state = app{
				settings: s,
				logger:   logger,
				registry: registry,
				out:      printer{plain: s.plain},
			}

			logger.Debug("settings resolved", log.Fields{
				"mode":      s.mode.String(),
				"precision": s.precision,
				"plain":     s.plain,
			})
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default: discovered errc.toml/errc.yaml)")
	pf.StringVar(&flags.defaultError, "default-error", uncertain.ModeZero.String(), "default uncertainty of bare numbers: zero|half")
	pf.IntVarP(&flags.precision, "precision", "p", uncertain.DefaultPrecision, "fractional digits in output")
	pf.StringVar(&flags.logLevel, "log-level", log.DefaultLevel().String(), "log level: trace|debug|info|warn|error")
	pf.StringVar(&flags.logFormat, "log-format", log.FormatText.String(), "log format: json|text|console|logfmt")
	pf.BoolVar(&flags.plain, "plain", false, "disable colored output")

	rootCmd.AddCommand(
		newEvalCmd(state),
		newUlpCmd(state),
		newListCmd(state),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the errc command line
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps err to the process exit status
func ExitCode(err error) int {
	var e *errcerr.Error
	if errors.As(err, &e) {
		return e.Code().ExitCode()
	}
	return 1
}

func printError(w io.Writer, err error) {
	p := printer{plain: !stdoutIsTerminal()}
	fmt.Fprintf(w, "%s %v\n", p.render(errorStyle, "Error:"), err)
}
