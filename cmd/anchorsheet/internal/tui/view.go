package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sheetRows is the presented sheet height in whole rows.
func (m *Model) sheetRows() int {
	rows := int(math.Round(m.sheet.Presentation().ContainerHeight))
	return min(max(rows, 0), m.height)
}

// sheetTop is the first terminal row covered by the sheet.
func (m *Model) sheetTop() int {
	return m.height - m.sheetRows()
}

func (m *Model) View() string {
	if m.quitting || m.width == 0 || m.height == 0 {
		return ""
	}
	rows := m.sheetRows()
	lines := make([]string, 0, m.height)
	lines = append(lines, m.renderMap(m.height-rows)...)
	lines = append(lines, m.renderSheet(rows)...)
	return m.zones.Scan(strings.Join(lines, "\n"))
}

func (m *Model) status() string {
	snap := m.sheet.Snapshot()
	shown := "hidden"
	if snap.IsMainContentShown {
		shown = "shown"
	}
	s := fmt.Sprintf("height %.1f/%d  offset %.1f  content %s  stops %v  %s",
		snap.ContainerHeight, m.height, snap.ContentOffset, shown, snap.Stops, snap.Mode)
	if m.selected != "" {
		s += "  selected " + m.selected
	}
	return s
}

// renderMap draws the backdrop: a status bar and a stylised map with a river.
func (m *Model) renderMap(rows int) []string {
	if rows <= 0 {
		return nil
	}
	out := make([]string, 0, rows)
	out = append(out, statusStyle.Width(m.width).MaxWidth(m.width).MaxHeight(1).Render(m.status()))
	for y := 1; y < rows; y++ {
		river := min(max(m.width/3+int(6*math.Sin(float64(y)/4)), 0), m.width)
		end := min(river+3, m.width)
		row := mapStyle.Render(mapCells(0, river, y)) +
			waterStyle.Render(strings.Repeat("~", end-river)) +
			mapStyle.Render(mapCells(end, m.width, y))
		out = append(out, row)
	}
	return out
}

// mapCells returns the street grid between columns from and to.
func mapCells(from, to, y int) string {
	var b strings.Builder
	for x := from; x < to; x++ {
		if y%6 == 0 || x%14 == 0 {
			b.WriteString("·")
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// renderSheet draws the header and as much content as fits in rows.
func (m *Model) renderSheet(rows int) []string {
	if rows <= 0 {
		return nil
	}
	width := m.width
	header := []string{
		handleStyle.Width(width).Render("━━━━━"),
		m.zones.Mark(searchZone, searchStyle.Width(width).Render(m.search.View())),
		separatorStyle.Render(strings.Repeat("─", max(0, width-2))),
	}
	out := make([]string, 0, rows)
	for i := 0; i < rows && i < len(header); i++ {
		out = append(out, header[i])
	}

	p := m.sheet.Presentation()
	skip := int(math.Round(-p.ContentOffset))
	markers := m.cfg.AnchorVisibility.Visible(m.cfg.Environment)
	for i := skip; len(out) < rows; i++ {
		if i < 0 || i >= len(m.lines) {
			out = append(out, "")
			continue
		}
		line := m.renderLine(m.lines[i], width)
		if markers && m.isAnchorLine(i) {
			line = markerStyle.Render("◆") + line
		}
		switch {
		case p.ContentOpacity <= 0.05:
			line = ""
		case p.ContentOpacity < 1:
			line = fadedStyle.Render(line)
		}
		out = append(out, line)
	}
	return out
}

func (m *Model) isAnchorLine(i int) bool {
	for _, a := range m.anchorLines {
		if a == i {
			return true
		}
	}
	return false
}

func (m *Model) renderLine(l contentLine, width int) string {
	switch l.kind {
	case lineTitle:
		title := titleStyle.Render(l.text)
		if l.link == "" {
			return title
		}
		gap := max(1, width-lipgloss.Width(title)-lipgloss.Width(l.link)-1)
		return title + strings.Repeat(" ", gap) + linkStyle.Render(l.link)
	case lineSeparator:
		return separatorStyle.Render(l.text)
	case lineRow:
		style := rowStyle
		if l.label != "" && l.label == m.selected {
			style = selectedRowStyle
		}
		text := style.Render(l.text)
		if l.zone != "" {
			text = m.zones.Mark(l.zone, text)
		}
		return text
	default:
		return ""
	}
}
