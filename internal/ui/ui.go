package ui

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette used by the banner and help screens.
var (
	ColorBanner = lipgloss.Color("11") // bright yellow
	ColorUsage  = lipgloss.Color("14") // bright cyan
)

// Printer writes the banner and help text, colored when the destination is a
// terminal.
type Printer struct {
	w       io.Writer
	colors  bool
	banner  lipgloss.Style
	heading lipgloss.Style
}

// NewPrinter returns a Printer for w. Colors are off when noColor is set,
// NO_COLOR is present in the environment, or w is not a terminal.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	if w == nil {
		w = os.Stdout
	}
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		colors:  !noColor && ColorEnabled(w),
		banner:  r.NewStyle().Bold(true).Foreground(ColorBanner),
		heading: r.NewStyle().Bold(true).Foreground(ColorUsage),
	}
}

// ColorEnabled reports whether ANSI colors should be written to w.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	// Legacy Windows consoles print raw escape sequences.
	if runtime.GOOS == "windows" && os.Getenv("WT_SESSION") == "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Banner prints the banner art.
func (p *Printer) Banner(art string) {
	if p.colors {
		fmt.Fprintln(p.w, p.banner.Render(art))
		return
	}
	fmt.Fprintln(p.w, art)
}

// Help prints a usage heading followed by body.
func (p *Printer) Help(heading, body string) {
	if p.colors {
		heading = p.heading.Render(heading)
	}
	fmt.Fprintf(p.w, "%s\n%s", heading, body)
}
