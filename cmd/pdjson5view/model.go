package main

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/json5kit/pdjson5"
)

type model struct {
	filename string
	events   []viewEvent
	parseErr *pdjson5.SyntaxError

	cursor int
	height int
	width  int

	styles styles
}

type styles struct {
	header   lipgloss.Style
	footer   lipgloss.Style
	cursor   lipgloss.Style
	name     lipgloss.Style
	str      lipgloss.Style
	num      lipgloss.Style
	keyword  lipgloss.Style
	brace    lipgloss.Style
	errStyle lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		footer:   lipgloss.NewStyle().Faint(true),
		cursor:   lipgloss.NewStyle().Reverse(true),
		name:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		str:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		num:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		keyword:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		brace:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		errStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

func newModel(filename string, events []viewEvent, parseErr *pdjson5.SyntaxError) *model {
	return &model{
		filename: filename,
		events:   events,
		parseErr: parseErr,
		height:   24,
		width:    80,
		styles:   newStyles(),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.listHeight())
		case "pgdown":
			m.move(m.listHeight())
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = len(m.events) - 1
		}
	}
	return m, nil
}

func (m *model) move(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.events)-1 {
		m.cursor = len(m.events) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) listHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (m *model) View() tea.View {
	var b strings.Builder

	b.WriteString(m.styles.header.Render(fmt.Sprintf("%s — %d events", m.filename, len(m.events))))
	b.WriteByte('\n')

	listH := m.listHeight()
	start := 0
	if len(m.events) > listH {
		start = m.cursor - listH/2
		if start < 0 {
			start = 0
		}
		if start > len(m.events)-listH {
			start = len(m.events) - listH
		}
	}
	end := start + listH
	if end > len(m.events) {
		end = len(m.events)
	}

	for i := start; i < end; i++ {
		line := m.renderEvent(m.events[i])
		if i == m.cursor {
			line = m.styles.cursor.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if m.parseErr != nil {
		b.WriteString(m.styles.errStyle.Render(fmt.Sprintf("%d:%d: %s", m.parseErr.Line, m.parseErr.Column, m.parseErr.Msg)))
		b.WriteByte('\n')
	}

	b.WriteString(m.styles.footer.Render("↑/↓ move · pgup/pgdn page · g/G ends · q quit"))

	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}

func (m *model) renderEvent(ev viewEvent) string {
	indent := strings.Repeat("  ", ev.depth)
	loc := fmt.Sprintf("%4d:%-3d", ev.line, ev.col)

	var rendered string
	switch ev.kind {
	case pdjson5.KindObjectStart, pdjson5.KindObjectEnd, pdjson5.KindArrayStart, pdjson5.KindArrayEnd:
		rendered = m.styles.brace.Render(ev.kind.String())
	case pdjson5.KindName:
		rendered = m.styles.name.Render(ev.kind.String() + " " + ev.payload)
	case pdjson5.KindString:
		rendered = m.styles.str.Render(fmt.Sprintf("%s %q", ev.kind, ev.payload))
	case pdjson5.KindNumber:
		rendered = m.styles.num.Render(ev.kind.String() + " " + ev.payload)
	case pdjson5.KindTrue, pdjson5.KindFalse, pdjson5.KindNull:
		rendered = m.styles.keyword.Render(ev.kind.String())
	default:
		rendered = ev.kind.String()
	}

	return loc + "  " + indent + rendered
}
