package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"pathfinder/internal/fswalk"
)

type progressModel struct {
	title   string
	events  <-chan fswalk.Progress
	spinner spinner.Model
	last    fswalk.Progress
	width   int
	done    bool
	stopped bool // quit by the user before events closed
}

type eventMsg fswalk.Progress
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that shows a running walk.
// It quits when events is closed.
func NewProgressModel(title string, events <-chan fswalk.Progress) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		width:   80,
	}
}

// Interrupted reports whether m was closed by the user while the walk was
// still running.
func Interrupted(m tea.Model) bool {
	pm, ok := m.(*progressModel)
	return ok && pm.stopped && !pm.done
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.last = fswalk.Progress(msg)
		return m, m.listenForEvent()
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.stopped = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *progressModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	header := m.title
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString(" ")
	b.WriteString(countStyle.Render(fmt.Sprintf("%d dirs, %d entries", m.last.Dirs, m.last.Entries)))
	b.WriteString("\n")
	if !m.done && m.last.Dir != "" {
		b.WriteString("  ")
		b.WriteString(truncate(m.last.Dir, m.width-4))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

// truncate keeps the tail of a path, which is the part that changes.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	marker := "..."
	if width <= len(marker) {
		marker = ""
	}
	budget := width - len(marker)
	runes := []rune(value)
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if w > budget {
			break
		}
		budget -= w
		start--
	}
	return marker + string(runes[start:])
}
