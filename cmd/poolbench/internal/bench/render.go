package bench

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	nameStyle   = lipgloss.NewStyle().Bold(true)
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Render formats scenario results as a small styled report.
func Render(results []Result) string {
	var b strings.Builder
	for _, r := range results {
		status := passStyle.Render("PASS")
		if !r.Passed {
			status = failStyle.Render("FAIL")
		}
		fmt.Fprintf(&b, "%s  %-12s %s\n", status, nameStyle.Render(r.Name), detailStyle.Render(r.Detail))
	}
	return b.String()
}
