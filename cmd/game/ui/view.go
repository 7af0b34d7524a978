package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"templeescape/internal/session"
)

const (
	headerHeight = 3
	inputHeight  = 4
)

var (
	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	guidanceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("94")).
			Bold(true).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func (m Model) View() string {
	chatPanel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)

	inputPanel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Width(max(m.width-4, 10))

	hint := "Enter to act · PgUp/PgDn to scroll · Ctrl+C to quit"
	if m.finished {
		hint = "The adventure is over. Press any key to leave."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		chatPanel.Render(m.viewport.View()),
		inputPanel.Render(m.input.View()),
		hintStyle.Render(hint),
	)
}

func (m Model) header() string {
	inventory := m.session.Inventory()
	carrying := "nothing"
	if len(inventory) > 0 {
		carrying = strings.Join(inventory, ", ")
	}
	return headerStyle.Render("ESCAPE THE FORGOTTEN TEMPLE") + "\n" +
		hintStyle.Render("Room: "+m.session.Room()+" · Carrying: "+carrying) + "\n"
}

func renderHistory(entries []session.Entry, width int) string {
	var content strings.Builder
	for _, entry := range entries {
		text := session.Wrap(entry.Text, width)
		switch entry.Kind {
		case session.PlayerEntry:
			content.WriteString(userStyle.Render(text))
		case session.GuidanceEntry:
			content.WriteString(guidanceStyle.Render(text))
		default:
			content.WriteString(messageStyle.Render(text))
		}
		content.WriteString("\n\n")
	}
	return content.String()
}
