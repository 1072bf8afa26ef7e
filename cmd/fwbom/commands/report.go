package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/fwbom/internal/core/domain"
)

var (
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")
	colorWhite = lipgloss.Color("#FFFFFF")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(colorIris).
			Foreground(colorWhite)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // Amber
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	noteStyle = lipgloss.NewStyle().
			Foreground(colorSlate).
			Faint(true)
)

var reportKinds = []domain.WarningKind{
	domain.WarningExtraction,
	domain.WarningEdgeResolution,
	domain.WarningMergeConflict,
	domain.WarningConfiguration,
}

// renderReport formats the warnings of a run grouped by kind. It returns the
// empty string when there is nothing to report.
func renderReport(r *domain.Report) string {
	if r == nil || (len(r.Warnings) == 0 && len(r.MissingCPE) == 0 && len(r.Excluded) == 0) {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d warnings", len(r.Warnings))))
	b.WriteString("\n")

	for _, kind := range reportKinds {
		ws := r.Of(kind)
		if len(ws) == 0 {
			continue
		}
		b.WriteString(kindStyle.Render(fmt.Sprintf("%s (%d)", kind, len(ws))))
		b.WriteString("\n")
		for _, w := range ws {
			b.WriteString(itemStyle.Render(describe(w)))
			b.WriteString("\n")
		}
	}

	if len(r.MissingCPE) > 0 {
		b.WriteString(noteStyle.Render(fmt.Sprintf("%d packages without CPE identifier", len(r.MissingCPE))))
		b.WriteString("\n")
	}
	if len(r.Excluded) > 0 {
		b.WriteString(noteStyle.Render("excluded: " + strings.Join(r.Excluded, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}

func describe(w domain.Warning) string {
	pkg := w.Package
	if pkg == "" {
		pkg = "<unnamed>"
	}
	if w.Field != "" {
		pkg += " [" + w.Field + "]"
	}
	return pkg + ": " + w.Detail
}
