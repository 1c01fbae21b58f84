package internal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cm4all/flavorconf/internal/env"
	"github.com/cm4all/flavorconf/internal/flavor"
	"github.com/cm4all/flavorconf/internal/layout"
	"github.com/cm4all/flavorconf/internal/orchestrate"
	"github.com/cm4all/flavorconf/internal/output"
	"github.com/cm4all/flavorconf/pkgs/buildsys"
)

const envPrefix = "FLAVORCONF"

// Config is the resolved command line and FLAVORCONF_* environment.
type Config struct {
	SourceRoot  string
	PrefixRoot  string
	Generator   string
	Only        []string
	DryRun      bool
	StrictReset bool
	MinVersion  string
	Verbose     bool
}

func newViper(flags ...*pflag.FlagSet) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, fs := range flags {
		// Only fails for a nil flag set.
		_ = v.BindPFlags(fs)
	}
	return v
}

func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		SourceRoot:  v.GetString("source-root"),
		PrefixRoot:  v.GetString("prefix-root"),
		Generator:   v.GetString("generator"),
		Only:        splitList(v.GetStringSlice("only")),
		DryRun:      v.GetBool("dry-run"),
		StrictReset: v.GetBool("strict-reset"),
		MinVersion:  v.GetString("min-version"),
		Verbose:     v.GetBool("verbose"),
	}
	if cfg.SourceRoot == "" {
		exe, err := os.Executable()
		if err != nil {
			return cfg, fmt.Errorf("failed to locate executable: %w", err)
		}
		if cfg.SourceRoot, err = layout.ResolveSourceRoot(exe); err != nil {
			return cfg, err
		}
	}
	if cfg.PrefixRoot == "" {
		cfg.PrefixRoot = layout.DefaultPrefixRoot
	}
	return cfg, nil
}

func newOrchestrator(cfg Config, stdout io.Writer) *orchestrate.Orchestrator {
	return &orchestrate.Orchestrator{
		Catalog: flavor.Default(),
		Only:    cfg.Only,
		Layout: layout.Layout{
			SourceRoot: cfg.SourceRoot,
			PrefixRoot: cfg.PrefixRoot,
			Product:    layout.DefaultProduct,
		},
		Generator:   cfg.Generator,
		Global:      flavor.GlobalOptions(),
		Base:        env.Current(),
		Runner:      &buildsys.ExecRunner{},
		Progress:    output.New(stdout),
		StrictReset: cfg.StrictReset,
		DryRun:      cfg.DryRun,
	}
}

// splitList also accepts comma separated values, as FLAVORCONF_ONLY does not
// go through flag parsing.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
