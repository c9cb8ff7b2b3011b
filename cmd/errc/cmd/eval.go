package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/errc/foundation/core/log"
	"github.com/msto63/errc/internal/calc"
)

func newEvalCmd(state *app) *cobra.Command {
	var bounds bool

	evalCmd := &cobra.Command{
		Use:   "eval <operation> <operand>...",
		Short: "Evaluates an operation on uncertain operands",
		Long: `Evaluates an operation and prints the result with its propagated
uncertainty. Run "errc list" for the available operations. Unique
prefixes of operation names are accepted.

Examples:
  errc eval sin 1.23+-0.038
  errc eval mul 10.2±12.4 2±0.12
  errc eval --default-error half div 10 0.03`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, state, args[0], args[1:], bounds)
		},
	}

	evalCmd.Flags().BoolVarP(&bounds, "bounds", "b", false, "also print the interval nominal ± uncertainty")
	// operands such as -1+-0.1 must not be taken for flags
	evalCmd.Flags().SetInterspersed(false)

	return evalCmd
}

func runEval(cmd *cobra.Command, state *app, name string, rawArgs []string, bounds bool) error {
	operands, err := calc.ParseOperands(rawArgs, state.base())
	if err != nil {
		return err
	}

	result, err := state.registry.Evaluate(name, operands)
	if err != nil {
		return err
	}

	prec := state.settings.precision
	p := state.out
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "%s %s %s\n",
		p.render(nominalStyle, strconv.FormatFloat(result.Nominal, 'f', prec, 64)),
		p.render(mutedStyle, "±"),
		p.render(uncertaintyStyle, strconv.FormatFloat(result.Uncertainty, 'f', prec, 64)),
	)

	if bounds {
		fmt.Fprintf(w, "%s [%s, %s]\n",
			p.render(mutedStyle, "interval"),
			strconv.FormatFloat(result.Min(), 'f', prec, 64),
			strconv.FormatFloat(result.Max(), 'f', prec, 64),
		)
	}

	if err := result.Validate(); err != nil {
		state.logger.LogError(err, log.Fields{
			"operation": name,
			"operands":  strings.Join(rawArgs, " "),
		})
		return err
	}

	return nil
}
