package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := state.out
			w := cmd.OutOrStdout()

			aliases := make(map[string][]string)
			for alias, name := range state.registry.Aliases() {
				aliases[name] = append(aliases[name], alias)
			}

			fmt.Fprintln(w, p.render(titleStyle, "Operations"))

			category := ""
			for _, op := range state.registry.Operations() {
				if op.Category != category {
					category = op.Category
					fmt.Fprintln(w, p.render(categoryStyle, category))
				}

				line := fmt.Sprintf("  %s %-8s %s", p.render(nameStyle, fmt.Sprintf("%-6s", op.Name)), op.Usage, op.Description)
				if a := aliases[op.Name]; len(a) > 0 {
					sort.Strings(a)
					line += p.render(mutedStyle, " (alias "+strings.Join(a, ", ")+")")
				}
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}
}
