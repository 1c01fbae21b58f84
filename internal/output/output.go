// Package output prints run progress for humans.
//
// Styles are bound to the destination writer, so colors are dropped when the
// writer is not a terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Progress writes one line per event of a run.
type Progress struct {
	w io.Writer

	flavorStyle  lipgloss.Style
	stepStyle    lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

func New(w io.Writer) *Progress {
	r := lipgloss.NewRenderer(w)
	return &Progress{
		w:            w,
		flavorStyle:  r.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true),
		stepStyle:    r.NewStyle().Foreground(lipgloss.Color("240")),
		successStyle: r.NewStyle().Foreground(lipgloss.Color("green")).Bold(true),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("red")).Bold(true),
	}
}

// Flavor announces that name is about to be configured.
func (p *Progress) Flavor(name string) {
	fmt.Fprintln(p.w, p.flavorStyle.Render(name))
}

// Command shows a command line without running it.
func (p *Progress) Command(argv []string) {
	fmt.Fprintln(p.w, p.stepStyle.Render("   "+strings.Join(argv, " ")))
}

func (p *Progress) Done(configured int) {
	fmt.Fprintln(p.w, p.successStyle.Render(fmt.Sprintf("configured %d flavor(s)", configured)))
}

func (p *Progress) Failed(name string, err error) {
	fmt.Fprintln(p.w, p.errorStyle.Render(fmt.Sprintf("%s: %v", name, err)))
}
