package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/auditsplit-go/pkg/auditsplit"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	flaggedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	clearStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// renderSummary formats the run report for the terminal.
func renderSummary(report *auditsplit.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s: %d workbook(s) written to %s",
		report.Source, len(report.Outputs), report.OutputDir)))
	b.WriteString("\n")

	width := 0
	for _, out := range report.Outputs {
		width = max(width, lipgloss.Width(out.Leader))
	}

	for _, out := range report.Outputs {
		status := clearStyle.Render("clear")
		if out.Flagged {
			status = flaggedStyle.Render("DNC")
		}
		leader := lipgloss.NewStyle().Width(width).Render(out.Leader)
		fmt.Fprintf(&b, "  %s  %4d row(s)  %s  %s\n", leader, out.Rows, status, dimStyle.Render(out.Path))
	}

	for _, f := range report.Failures {
		fmt.Fprintf(&b, "  %s %s: %s\n", failStyle.Render("FAILED"), f.Leader, f.Error)
	}

	return b.String()
}
