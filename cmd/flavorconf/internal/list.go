package internal

import (
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/spf13/cobra"

	"github.com/cm4all/flavorconf/internal/flavor"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the compiled-in flavors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := tabby.NewCustom(tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0))
			t.AddHeader("FLAVOR", "OPTIONS", "ENVIRONMENT")
			for _, f := range flavor.Default().List() {
				t.AddLine(f.Name, strings.Join(f.Options, " "), formatEnv(f.Env))
			}
			t.Print()
			return nil
		},
	}
}

func formatEnv(vars map[string]string) string {
	pairs := make([]string, 0, len(vars))
	for _, k := range slices.Sorted(maps.Keys(vars)) {
		pairs = append(pairs, k+"="+vars[k])
	}
	return strings.Join(pairs, " ")
}
