package ui

import "github.com/charmbracelet/lipgloss"

type Button int

const (
	NoButton Button = iota
	RestartButton
	PauseButton
)

const buttonGap = 1

var (
	topBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ecf0f1"))

	barButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true)

	restartButtonStyle = barButtonStyle.Background(lipgloss.Color("#2ecc71"))
	pauseButtonStyle   = barButtonStyle.Background(lipgloss.Color("#e74c3c"))
	resumeButtonStyle  = barButtonStyle.Background(lipgloss.Color("#3498db"))

	gapStyle = lipgloss.NewStyle().Background(lipgloss.Color("#ecf0f1"))
)

// TopBar is the single row holding the Restart and Pause/Resume buttons.
type TopBar struct {
	Paused bool
	Width  int
}

func (b TopBar) restartLabel() string {
	return restartButtonStyle.Render("Restart")
}

func (b TopBar) pauseLabel() string {
	if b.Paused {
		return resumeButtonStyle.Render("Resume")
	}
	return pauseButtonStyle.Render("Pause")
}

func (b TopBar) View() string {
	gap := gapStyle.Render(" ")
	row := lipgloss.JoinHorizontal(lipgloss.Top, b.restartLabel(), gap, b.pauseLabel())
	return topBarStyle.Width(max(b.Width, lipgloss.Width(row))).Render(row)
}

// ButtonAt maps a click on the bar row to a button. The bar is always
// drawn at row 0, starting at column 0.
func (b TopBar) ButtonAt(x, y int) Button {
	if y != 0 || x < 0 {
		return NoButton
	}

	restartWidth := lipgloss.Width(b.restartLabel())
	if x < restartWidth {
		return RestartButton
	}

	pauseStart := restartWidth + buttonGap
	if x >= pauseStart && x < pauseStart+lipgloss.Width(b.pauseLabel()) {
		return PauseButton
	}
	return NoButton
}
