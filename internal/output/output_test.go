package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestProgressLines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Flavor("release")
	p.Command([]string{"meson", "/src", "/src/output/release"})
	p.Failed("release", errors.New("meson exited with status 1"))
	p.Done(2)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"release",
		"meson /src /src/output/release",
		"release: meson exited with status 1",
		"configured 2 flavor(s)",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), buf.String())
	}
	for i := range want {
		// Non-terminal writers get no escape codes, but be tolerant.
		if !strings.Contains(lines[i], want[i]) {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
