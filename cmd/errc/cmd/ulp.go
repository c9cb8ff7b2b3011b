package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	errcerrors "github.com/msto63/errc/foundation/core/errors"
	"github.com/msto63/errc/foundation/utils/uncertain"
)

func newUlpCmd(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ulp <number>...",
		Short: "Prints the half-unit uncertainty implied by each number",
		Long: `Prints half a unit in the last decimal place of each number, the
uncertainty a bare number receives with --default-error half.

Example:
  errc ulp 10 0.03 0   # 5, 0.005, 0.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := state.out
			w := cmd.OutOrStdout()

			for _, arg := range args {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return errcerrors.InvalidFormat(errcerrors.ModuleCLI, "ulp", arg, "a decimal number", err)
				}
				h := uncertain.HalfUnit[float64, float64](x)
				fmt.Fprintf(w, "%s %s %s\n",
					p.render(nominalStyle, arg),
					p.render(mutedStyle, "±"),
					p.render(uncertaintyStyle, strconv.FormatFloat(h, 'g', -1, 64)),
				)
			}
			return nil
		},
	}
}
