// Package console renders a human-readable summary of one benchmark run.
// It is display-only: the machine-consumed table row never passes through
// here.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/luabench/luabench/internal/bench"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle   = lipgloss.NewStyle().Faint(true)
	measuredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	skippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Summary writes a per-interpreter table of means, standard deviations,
// and 99% confidence half-widths for one benchmark run.
func Summary(w io.Writer, script string, results []bench.Result) {
	caser := cases.Title(language.English)
	fmt.Fprintln(w, titleStyle.Render(caser.String("benchmark summary")+": "+script))

	nameWidth := runewidth.StringWidth("interpreter")
	for _, res := range results {
		if n := runewidth.StringWidth(res.Interpreter.Name); n > nameWidth {
			nameWidth = n
		}
	}

	header := pad("interpreter", nameWidth) + fmt.Sprintf("  %10s  %10s  %10s", "mean (s)", "std.dev", "conf 99%")
	fmt.Fprintln(w, headerStyle.Render(header))

	for _, res := range results {
		name := pad(res.Interpreter.Name, nameWidth)
		if res.Sample.IsUnavailable() {
			fmt.Fprintln(w, skippedStyle.Render(name+fmt.Sprintf("  %10s  %10s  %10s", "-", "-", "-")))
			continue
		}
		line := name + fmt.Sprintf("  %10.4f  %10.4f  %10.4f",
			res.Sample.Mean, res.StdDev, res.Sample.Confidence)
		fmt.Fprintln(w, measuredStyle.Render(line))
	}
}

// pad right-pads s to width terminal cells. Uses go-runewidth so names
// with East Asian Wide characters still align.
func pad(s string, width int) string {
	if n := width - runewidth.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
