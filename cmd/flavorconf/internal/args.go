package internal

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newArgsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "args",
		Short: "Print the generator invocation of each flavor",
		Long: `Args prints, for each selected flavor, the environment overrides and the
command line flavorconf would run, without touching the build directories.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			o := newOrchestrator(cfg, cmd.OutOrStdout())
			steps, err := o.Plan()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, s := range steps {
				f, _ := o.Catalog.Lookup(s.Flavor)
				words := make([]string, 0, len(f.Env)+len(s.Args))
				for _, k := range slices.Sorted(maps.Keys(f.Env)) {
					words = append(words, k+"="+quote(f.Env[k]))
				}
				for _, a := range s.Args {
					words = append(words, quote(a))
				}
				fmt.Fprintf(w, "# %s\n%s\n", s.Flavor, strings.Join(words, " "))
			}
			return nil
		},
	}
}

func quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`") {
		return s
	}
	return strconv.Quote(s)
}
