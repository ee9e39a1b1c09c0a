package ui

import (
	"strings"

	"github.com/Mshel/bfsnake/internal/game"
	"github.com/charmbracelet/lipgloss"
)

// CellWidth is how many terminal columns one board cell takes. Two columns
// keep cells roughly square.
const CellWidth = 2

var (
	cellBlock = strings.Repeat(" ", CellWidth)

	voidCell   = lipgloss.NewStyle().Background(lipgloss.Color("#000000")).Render(cellBlock)
	playerCell = lipgloss.NewStyle().Background(lipgloss.Color("#2ecc71")).Render(cellBlock)
	aiCell     = lipgloss.NewStyle().Background(lipgloss.Color("#ffa500")).Render(cellBlock)
	foodCell   = lipgloss.NewStyle().Background(lipgloss.Color("#e74c3c")).Render(cellBlock)
)

type cellKind int

const (
	voidKind cellKind = iota
	foodKind
	aiKind
	playerKind
)

// renderBoardRows draws the board one string per row. Later layers win:
// the player is drawn over the AI, the AI over food.
func renderBoardRows(snap game.Snapshot) []string {
	cells := make([][]cellKind, snap.Rows)
	for row := range cells {
		cells[row] = make([]cellKind, snap.Cols)
	}

	paint := func(p game.Point, kind cellKind) {
		if p.Y < 0 || p.Y >= snap.Rows || p.X < 0 || p.X >= snap.Cols {
			return
		}
		if kind > cells[p.Y][p.X] {
			cells[p.Y][p.X] = kind
		}
	}

	paint(snap.Food, foodKind)
	for _, p := range snap.AI {
		paint(p, aiKind)
	}
	for _, p := range snap.Player {
		paint(p, playerKind)
	}

	rows := make([]string, snap.Rows)
	for row := range cells {
		var line strings.Builder
		for _, kind := range cells[row] {
			switch kind {
			case playerKind:
				line.WriteString(playerCell)
			case aiKind:
				line.WriteString(aiCell)
			case foodKind:
				line.WriteString(foodCell)
			default:
				line.WriteString(voidCell)
			}
		}
		rows[row] = line.String()
	}
	return rows
}

func renderBoard(snap game.Snapshot) string {
	rows := renderBoardRows(snap)
	if snap.Over {
		rows = overlayGameOver(rows, snap.Cols*CellWidth)
	}
	return strings.Join(rows, "\n")
}
