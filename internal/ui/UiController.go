package ui

import (
	"strings"

	"github.com/Mshel/bfsnake/internal/game"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Engine is the side of the game loop the UI talks to.
type Engine interface {
	Send(cmd game.Command) bool
	Updates() <-chan tea.Msg
}

var loadingStyle = lipgloss.NewStyle().Faint(true)

// ControllerModel is the root bubbletea model: top bar, board and help.
type ControllerModel struct {
	engine   Engine
	keys     KeyMap
	help     help.Model
	snapshot *game.Snapshot

	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(engine Engine, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		engine:       engine,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.listenForGameUpdates()
}

func (m ControllerModel) listenForGameUpdates() tea.Cmd {
	updates := m.engine.Updates()
	return func() tea.Msg {
		return <-updates
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case game.GameTickMsg:
		m.snapshot = &msg.Snapshot
		return m, m.listenForGameUpdates()

	case game.GameOverMsg:
		m.snapshot = &msg.Snapshot
		log.Debug("Showing game over", "cause", msg.Snapshot.Cause)
		return m, m.listenForGameUpdates()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.press(m.topBar().ButtonAt(msg.X, msg.Y))
		return m, nil
	}

	return m, nil
}

func (m ControllerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		m.press(RestartButton)
	case key.Matches(msg, m.keys.Pause):
		m.press(PauseButton)
	case key.Matches(msg, m.keys.Up):
		m.turn(game.Up)
	case key.Matches(msg, m.keys.Down):
		m.turn(game.Down)
	case key.Matches(msg, m.keys.Left):
		m.turn(game.Left)
	case key.Matches(msg, m.keys.Right):
		m.turn(game.Right)
	}
	return m, nil
}

func (m ControllerModel) turn(dir game.Direction) {
	m.engine.Send(game.Command{Kind: game.TurnCommand, Direction: dir})
}

func (m ControllerModel) press(button Button) {
	switch button {
	case RestartButton:
		log.Debug("Restart pressed")
		m.engine.Send(game.Command{Kind: game.RestartCommand})
	case PauseButton:
		log.Debug("Pause pressed")
		m.engine.Send(game.Command{Kind: game.TogglePauseCommand})
	}
}

func (m ControllerModel) topBar() TopBar {
	bar := TopBar{}
	if m.snapshot != nil {
		bar.Paused = m.snapshot.Paused
		bar.Width = m.snapshot.Cols * CellWidth
	}
	return bar
}

func (m ControllerModel) View() string {
	if m.snapshot == nil {
		return loadingStyle.Render("Game Loading...")
	}

	var sb strings.Builder
	sb.WriteString(m.topBar().View())
	sb.WriteString("\n")
	sb.WriteString(renderBoard(*m.snapshot))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
