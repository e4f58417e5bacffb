package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	cellStyle = lipgloss.NewStyle()

	bestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	nameWidth = 14
	cellWidth = 14
)

// report renders results as a workload x subject table of ns/op.
// The fastest subject in each row is highlighted. With plain set no
// styling is applied.
func report(w io.Writer, cfg config, runID string, results []result) {
	style := func(s lipgloss.Style) lipgloss.Style {
		if cfg.plain {
			return lipgloss.NewStyle()
		}
		return s
	}

	var subjectNames, workloadNames []string
	byKey := make(map[[2]string]float64, len(results))
	for _, r := range results {
		if !contains(subjectNames, r.subject) {
			subjectNames = append(subjectNames, r.subject)
		}
		if !contains(workloadNames, r.workload) {
			workloadNames = append(workloadNames, r.workload)
		}
		byKey[[2]string{r.workload, r.subject}] = r.nsPerOp
	}

	var b strings.Builder
	b.WriteString(style(titleStyle).Render(fmt.Sprintf("nativebench  n=%d  rounds=%d  alloc=%s", cfg.n, cfg.rounds, cfg.allocator)))
	b.WriteString("\n\n")

	header := []string{style(headerStyle).Width(nameWidth).Render("ns/op")}
	for _, s := range subjectNames {
		header = append(header, style(headerStyle).Width(cellWidth).Align(lipgloss.Right).Render(s))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteByte('\n')

	for _, wl := range workloadNames {
		best := ""
		for _, s := range subjectNames {
			v, ok := byKey[[2]string{wl, s}]
			if ok && (best == "" || v < byKey[[2]string{wl, best}]) {
				best = s
			}
		}

		row := []string{style(cellStyle).Width(nameWidth).Render(wl)}
		for _, s := range subjectNames {
			cs := style(cellStyle)
			if s == best {
				cs = style(bestStyle)
			}
			text := "-"
			if v, ok := byKey[[2]string{wl, s}]; ok {
				text = fmt.Sprintf("%.2f", v)
			}
			row = append(row, cs.Width(cellWidth).Align(lipgloss.Right).Render(text))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(style(footerStyle).Render("run " + runID))
	b.WriteByte('\n')

	fmt.Fprint(w, b.String())
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
