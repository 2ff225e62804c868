package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// headerRows is the height of the sheet header: drag handle, search field
// and separator.
const headerRows = 3

type lineKind int

const (
	lineBlank lineKind = iota
	lineTitle
	lineSeparator
	lineRow
)

// contentLine is one terminal row of sheet content.
type contentLine struct {
	kind  lineKind
	text  string
	link  string
	zone  string
	label string
}

type place struct {
	icon     string
	title    string
	subtitle string
}

type section struct {
	title   string
	seeAll  bool
	inline  bool
	places  []place
	trailer string
}

var sections = []section{
	{
		title:  "Favourites",
		seeAll: true,
		inline: true,
		places: []place{
			{icon: "⌂", title: "Home", subtitle: "Add"},
			{icon: "▣", title: "Work", subtitle: "Add"},
			{icon: "+", title: "Add"},
		},
	},
	{
		title: "Collections",
		places: []place{
			{icon: "▤", title: "My Places", subtitle: "4 Places"},
			{icon: "▤", title: "Vyšší Brod", subtitle: "4 Places"},
		},
		trailer: "+ New Collection",
	},
	{
		title:  "Recents",
		seeAll: true,
		places: []place{
			{icon: "⚑", title: "Dropped Pin", subtitle: "Near Český Krumlov"},
			{icon: "☕", title: "Café Louvre", subtitle: "Národní 22, Praha"},
			{icon: "⌂", title: "Home", subtitle: "Set up your home address"},
			{icon: "⛰", title: "Šumava", subtitle: "National park"},
			{icon: "⚓", title: "Lipno nad Vltavou", subtitle: "Marina"},
			{icon: "✈", title: "Václav Havel Airport", subtitle: "Terminal 2"},
			{icon: "⚑", title: "Dropped Pin", subtitle: "Near Vyšší Brod"},
			{icon: "☕", title: "Kavárna Slavia", subtitle: "Smetanovo nábř. 2, Praha"},
		},
	},
}

// buildContent lays out every section for the given width. Anchors sit
// between sections; anchorLines holds the content row of each, in order.
func buildContent(width int) (lines []contentLine, anchorLines []int) {
	for i, sec := range sections {
		if i > 0 {
			anchorLines = append(anchorLines, len(lines))
		}
		lines = append(lines, titleLine(sec))
		lines = append(lines, contentLine{kind: lineSeparator, text: strings.Repeat("─", max(0, width-2))})
		if sec.inline {
			lines = append(lines, inlineLines(sec)...)
		} else {
			for j, p := range sec.places {
				if j > 0 {
					lines = append(lines, contentLine{kind: lineSeparator, text: strings.Repeat("─", max(0, width-4))})
				}
				lines = append(lines, contentLine{
					kind:  lineRow,
					text:  fmt.Sprintf("%s %-22s %s", p.icon, p.title, p.subtitle),
					zone:  fmt.Sprintf("row_%d_%d", i, j),
					label: p.title,
				})
			}
		}
		if sec.trailer != "" {
			lines = append(lines, contentLine{kind: lineRow, text: sec.trailer})
		}
		lines = append(lines, contentLine{kind: lineBlank})
	}
	return lines, anchorLines
}

func titleLine(sec section) contentLine {
	l := contentLine{kind: lineTitle, text: sec.title}
	if sec.seeAll {
		l.link = "See All"
	}
	return l
}

// inlineLines renders places side by side: icons and titles on one row,
// subtitles on the next.
func inlineLines(sec section) []contentLine {
	cell := lipgloss.NewStyle().Width(12)
	var top, bottom []string
	for _, p := range sec.places {
		top = append(top, cell.Render(p.icon+" "+p.title))
		bottom = append(bottom, cell.Render("  "+p.subtitle))
	}
	return []contentLine{
		{kind: lineRow, text: strings.Join(top, ""), zone: "favourites", label: sec.title},
		{kind: lineRow, text: strings.Join(bottom, "")},
	}
}
