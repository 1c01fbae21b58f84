// Package env models a process environment as an explicit value.
package env

import (
	"maps"
	"os"
	"slices"
	"strings"
)

// Snapshot is a copy of a process environment. Methods never modify the
// receiver, so one Snapshot can be shared by every flavor of a run.
type Snapshot map[string]string

// FromEnviron parses KEY=VALUE pairs. Entries without '=' are dropped; for
// repeated keys the last one wins, matching exec.Cmd.
func FromEnviron(environ []string) Snapshot {
	s := make(Snapshot, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			s[k] = v
		}
	}
	return s
}

// Current snapshots the environment of this process.
func Current() Snapshot {
	return FromEnviron(os.Environ())
}

// Overlay returns a fresh Snapshot holding s with overrides applied on top.
func (s Snapshot) Overlay(overrides map[string]string) Snapshot {
	out := make(Snapshot, len(s)+len(overrides))
	maps.Copy(out, s)
	maps.Copy(out, overrides)
	return out
}

// Environ renders s as sorted KEY=VALUE pairs suitable for exec.Cmd.Env.
func (s Snapshot) Environ() []string {
	keys := slices.Sorted(maps.Keys(s))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+s[k])
	}
	return out
}
