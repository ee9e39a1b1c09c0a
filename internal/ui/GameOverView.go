package ui

import "github.com/charmbracelet/lipgloss"

const gameOverText = "Game Over!"

var gameOverStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#ffffff")).
	Background(lipgloss.Color("#000000")).
	Bold(true).
	Align(lipgloss.Center)

// overlayGameOver swaps the middle board row for the game over banner.
// The rest of the board stays as it was on the final tick.
func overlayGameOver(rows []string, width int) []string {
	if len(rows) == 0 {
		return []string{gameOverStyle.Render(gameOverText)}
	}

	out := make([]string, len(rows))
	copy(out, rows)
	out[len(rows)/2] = gameOverStyle.Width(max(width, len(gameOverText))).Render(gameOverText)
	return out
}
