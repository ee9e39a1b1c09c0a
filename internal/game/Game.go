package game

import (
	"math/rand"
	"slices"
)

// CollisionType says why a game ended.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	OpponentCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case OpponentCollision:
		return "opponent"
	default:
		return "none"
	}
}

// Game is the whole mutable state of one round. It is not safe for
// concurrent use; GameManager owns it from a single goroutine.
type Game struct {
	Grid   Grid
	Player *Snake
	AI     *Bot
	Food   Point
	Paused bool
	Over   bool
	Cause  CollisionType
	Tick   int
	// number of times the AI snake was sent back to its spawn
	AIResets int

	rng *rand.Rand
}

func NewGame(cfg Config, rng *rand.Rand) *Game {
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		cfg.Cols, cfg.Rows = MapColCount, MapRowCount
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	g := &Game{
		Grid: NewGrid(cfg.Cols, cfg.Rows),
		rng:  rng,
	}
	g.Restart()
	return g
}

// Restart throws away the round and starts a fresh one.
func (g *Game) Restart() {
	g.Player = NewSnake(g.spawnBody(playerSpawn), Right)
	g.resetAI()
	g.Food = spawnFood(g.rng, g.Grid, g.Player, g.AI.Snake)
	g.Paused = false
	g.Over = false
	g.Cause = NoCollision
	g.Tick = 0
	g.AIResets = 0
}

// resetAI puts the AI snake back on its spawn, keeping its strategy.
func (g *Game) resetAI() {
	var strategy Strategy = BFSStrategy{}
	if g.AI != nil && g.AI.BotStrategy != nil {
		strategy = g.AI.BotStrategy
	}
	g.AI = NewBot(g.spawnBody(aiSpawn), Left, strategy)
}

func (g *Game) spawnBody(body []Point) []Point {
	result := make([]Point, len(body))
	for i, p := range body {
		result[i] = g.Grid.Wrap(p)
	}
	return result
}

// SetHeading asks the player snake to turn. Reversals are ignored.
func (g *Game) SetHeading(dir Direction) bool {
	if g.Over {
		return false
	}
	return g.Player.UpdateDirection(dir)
}

// TogglePause flips the paused flag and returns the new value. A finished
// game cannot be paused.
func (g *Game) TogglePause() bool {
	if g.Over {
		return g.Paused
	}
	g.Paused = !g.Paused
	return g.Paused
}

// Step advances the round by one tick: player move, AI move, then the
// player collision check. It reports whether the round ended on this tick.
func (g *Game) Step() bool {
	if g.Paused || g.Over {
		return false
	}
	g.Tick++

	g.movePlayer()
	g.moveAI()

	if cause := g.checkCollision(); cause != NoCollision {
		g.Over = true
		g.Cause = cause
		return true
	}
	return false
}

func (g *Game) movePlayer() {
	head := g.Player.NextHead()
	ate := head == g.Food
	g.Player.MoveTo(head, g.Player.Heading, ate)
	if ate {
		g.Food = spawnFood(g.rng, g.Grid, g.Player, g.AI.Snake)
	}
}

func (g *Game) moveAI() {
	next, ok := g.AI.BotStrategy.NextStep(g.Grid, g.AI.Snake, g.Food)
	if !ok {
		return
	}
	dir, _ := g.Grid.DirectionTo(g.AI.Head(), next)
	ate := next == g.Food
	g.AI.MoveTo(next, dir, ate)

	if g.Player.Occupies(next, 0) {
		g.resetAI()
		g.AIResets++
		return
	}

	if ate {
		g.Food = spawnFood(g.rng, g.Grid, g.Player, g.AI.Snake)
	}
}

func (g *Game) checkCollision() CollisionType {
	head := g.Player.Head()
	switch {
	case !g.Grid.Contains(head):
		return WallCollision
	case g.Player.Occupies(head, 1):
		return SelfCollision
	case g.AI.Occupies(head, 0):
		return OpponentCollision
	default:
		return NoCollision
	}
}

// Snapshot is a detached copy of the game for rendering.
type Snapshot struct {
	Cols     int
	Rows     int
	Player   []Point
	AI       []Point
	Food     Point
	Heading  Direction
	Paused   bool
	Over     bool
	Cause    CollisionType
	Tick     int
	AIResets int
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Cols:     g.Grid.Width,
		Rows:     g.Grid.Height,
		Player:   slices.Clone(g.Player.Body),
		AI:       slices.Clone(g.AI.Body),
		Food:     g.Food,
		Heading:  g.Player.Heading,
		Paused:   g.Paused,
		Over:     g.Over,
		Cause:    g.Cause,
		Tick:     g.Tick,
		AIResets: g.AIResets,
	}
}
