// Package meson assembles meson setup command lines.
package meson

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/mod/semver"
)

// DefaultBinary is the generator looked up in PATH when none is configured.
const DefaultBinary = "meson"

// Arguments returns the full argv for configuring buildDir from sourceRoot:
//
//	binary sourceRoot buildDir global... options... --prefix prefix
//
// Options are kept exactly as given, without reordering or deduplication.
func Arguments(binary, sourceRoot, buildDir string, global, options []string, prefix string) []string {
	args := make([]string, 0, 5+len(global)+len(options))
	args = append(args, binary, sourceRoot, buildDir)
	args = append(args, global...)
	args = append(args, options...)
	return append(args, "--prefix", prefix)
}

// Version runs `binary --version` and returns the canonical semantic version
// it reports, e.g. "v1.3.2".
func Version(ctx context.Context, binary string) (string, error) {
	out, err := exec.CommandContext(ctx, binary, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("failed to query %s version: %w", binary, err)
	}
	return ParseVersion(string(out))
}

// ParseVersion canonicalizes the first word of a --version output.
func ParseVersion(out string) (string, error) {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty version output")
	}
	v := fields[0]
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid version %q", fields[0])
	}
	return semver.Canonical(v), nil
}

// CheckVersion returns an error if have is older than min. Both may omit the
// leading "v".
func CheckVersion(have, min string) error {
	h, err := ParseVersion(have)
	if err != nil {
		return err
	}
	m, err := ParseVersion(min)
	if err != nil {
		return fmt.Errorf("minimum version: %w", err)
	}
	if semver.Compare(h, m) < 0 {
		return fmt.Errorf("generator version %s is older than required %s", h, m)
	}
	return nil
}
