package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 33

// printer writes console output, styling headings for the writer's terminal.
type printer struct {
	w       io.Writer
	heading lipgloss.Style
	rule    lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)

	return &printer{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		rule:    r.NewStyle().Faint(true),
	}
}

func (p *printer) Heading(title string) {
	fmt.Fprintln(p.w, p.heading.Render(title))
}

func (p *printer) Rule() {
	fmt.Fprintln(p.w, p.rule.Render(strings.Repeat("=", ruleWidth)))
}

func (p *printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// FormatLCA renders an LCA answer the way the demonstrations print it.
func FormatLCA(x, y, z int) string {
	return fmt.Sprintf("Lowest Common Ancestor of %d & %d is %d", x, y, z)
}

// joinInts renders keys space-separated.
func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
