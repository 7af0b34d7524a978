package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"templeescape/internal/session"
)

type Model struct {
	ctx      context.Context
	session  *session.Session
	input    textinput.Model
	viewport viewport.Model
	width    int
	height   int
	finished bool
}

func NewModel(ctx context.Context, sess *session.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter command..."
	ti.Prompt = promptStyle.Render("> ")
	ti.CharLimit = 200
	ti.Focus()

	return Model{
		ctx:      ctx,
		session:  sess,
		input:    ti,
		viewport: viewport.New(80, 20),
	}
}

// Finished reports whether the game reached a terminal state.
func (m Model) Finished() bool {
	return m.finished
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, openingCmd(m.session))
}

type openingMsg struct{}

type turnMsg struct {
	turn session.Turn
}

func openingCmd(sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		sess.Opening()
		return openingMsg{}
	}
}

func playTurn(ctx context.Context, sess *session.Session, line string) tea.Cmd {
	return func() tea.Msg {
		return turnMsg{turn: sess.Turn(ctx, line)}
	}
}

func endInput(ctx context.Context, sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		sess.EndInput(ctx)
		return tea.Quit()
	}
}
