package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case openingMsg:
		m.refresh()
		return m, nil
	case turnMsg:
		return m.handleTurn(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.viewport.Width = max(msg.Width-4, 10)
	m.viewport.Height = max(msg.Height-headerHeight-inputHeight, 3)
	m.input.Width = max(msg.Width-8, 10)
	m.refresh()
	return m, nil
}

func (m Model) handleTurn(msg turnMsg) (tea.Model, tea.Cmd) {
	if msg.turn.Status.Terminal() {
		m.finished = true
		m.input.Blur()
	}
	m.refresh()
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, endInput(m.ctx, m.session)
	}
	if m.finished {
		return m, tea.Quit
	}

	switch msg.Type {
	case tea.KeyEnter:
		line := m.input.Value()
		m.input.Reset()
		return m, playTurn(m.ctx, m.session, line)
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	m.viewport.SetContent(renderHistory(m.session.History(), m.viewport.Width-2))
	m.viewport.GotoBottom()
}
