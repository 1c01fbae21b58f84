package internal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cm4all/flavorconf/internal/layout"
	"github.com/cm4all/flavorconf/pkgs/buildsys"
	"github.com/cm4all/flavorconf/pkgs/buildsys/meson"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flavorconf",
		Short: "Set up one meson build directory per build flavor",
		Long: `flavorconf recreates output/<flavor> below the source root for every
compiled-in build flavor (debug, asan, release, lto, clang) and runs meson
for each, in that order, stopping at the first failure.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.String("source-root", "", "Project root (default: parent of the executable's directory)")
	pf.String("prefix-root", layout.DefaultPrefixRoot, "Directory holding the per-flavor installation prefixes")
	pf.String("generator", meson.DefaultBinary, "Generator executable")
	pf.StringSlice("only", nil, "Configure only these flavors")
	pf.BoolP("verbose", "v", false, "Enable debug logging")

	f := cmd.Flags()
	f.Bool("dry-run", false, "Print the generator command lines without running them")
	f.Bool("strict-reset", false, "Abort if a stale build directory cannot be removed")
	f.String("min-version", "", "Fail unless the generator reports at least this version")

	v := newViper(pf, f)

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := log.Linfo
		if v.GetBool("verbose") {
			level = log.Ldebug
		}
		log.SetOutputLevel(level)
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runConfigure(cmd, v)
	}

	cmd.AddCommand(newListCmd(), newArgsCmd(v))
	return cmd
}

func runConfigure(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	o := newOrchestrator(cfg, cmd.OutOrStdout())

	if cfg.MinVersion != "" && !cfg.DryRun {
		have, err := meson.Version(ctx, o.Generator)
		if err != nil {
			return err
		}
		if err := meson.CheckVersion(have, cfg.MinVersion); err != nil {
			return err
		}
		log.Debugf("%s %s", o.Generator, have)
	}

	log.Debugf("source root %s", cfg.SourceRoot)
	_, err = o.Run(ctx)
	return err
}

// exitCode propagates the generator's exit status when it failed on its own.
func exitCode(err error) int {
	var exitErr *buildsys.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}

// Execute runs the command line and exits the process on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "flavorconf:", err)
		os.Exit(exitCode(err))
	}
}
