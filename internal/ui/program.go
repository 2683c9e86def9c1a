package ui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/tablist/internal/tablist"
)

// Run starts the interactive program on the alternate screen with mouse support.
func Run(sw *tablist.Switcher, opts Options) error {
	model := NewTabsModel(sw, opts)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// Printer provides methods for printing rendered groups to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintGroup prints the tab bar and visible panel of a group
func (p *Printer) PrintGroup(v tablist.View) {
	p.Println(RenderGroup(v, p.width))
}

// PrintMarkup prints the class/display listing of a group
func (p *Printer) PrintMarkup(v tablist.View) {
	p.Println(RenderMarkup(v))
}

// PrintError prints a failure line for a rejected operation
func (p *Printer) PrintError(err error) {
	p.Println(ErrorStatusStyle.Render(FailureMarker + " " + err.Error()))
}
