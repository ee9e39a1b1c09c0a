package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(DefaultConfig(), rand.New(rand.NewSource(42)))
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t)

	assert.Equal(t, playerSpawn, g.Player.Body)
	assert.Equal(t, aiSpawn, g.AI.Body)
	assert.Equal(t, Right, g.Player.Heading)
	assert.True(t, g.Grid.Contains(g.Food))
	assert.False(t, g.Player.Occupies(g.Food, 0))
	assert.False(t, g.AI.Occupies(g.Food, 0))
	assert.False(t, g.Paused)
	assert.False(t, g.Over)
}

func TestStepPlayerEatsAndGrows(t *testing.T) {
	g := newTestGame(t)
	g.Food = Point{X: 6, Y: 5}

	over := g.Step()

	require.False(t, over)
	assert.Equal(t, 4, g.Player.Len())
	assert.Equal(t, Point{X: 6, Y: 5}, g.Player.Head())
	assert.True(t, g.Grid.Contains(g.Food))
	assert.NotEqual(t, Point{X: 6, Y: 5}, g.Food)
}

func TestStepAIFollowsFood(t *testing.T) {
	g := newTestGame(t)
	g.Food = Point{X: 10, Y: 2}
	before := GetWrappedDistance(g.Grid, g.AI.Head(), g.Food)

	g.Step()

	assert.Equal(t, 3, g.AI.Len())
	assert.Equal(t, Point{X: 10, Y: 9}, g.AI.Head())
	assert.Equal(t, before-1, GetWrappedDistance(g.Grid, g.AI.Head(), g.Food))
}

func TestStepAIWrapsAroundEdges(t *testing.T) {
	g := newTestGame(t)
	g.AI.Snake = NewSnake([]Point{{X: 0, Y: 15}, {X: 1, Y: 15}, {X: 2, Y: 15}}, Left)
	g.Food = Point{X: 18, Y: 15}

	g.Step()

	assert.Equal(t, Point{X: 19, Y: 15}, g.AI.Head())
}

func TestStepAIEatsFood(t *testing.T) {
	g := newTestGame(t)
	g.Food = Point{X: 9, Y: 10}

	g.Step()

	assert.Equal(t, 4, g.AI.Len())
	assert.Equal(t, Point{X: 9, Y: 10}, g.AI.Head())
	assert.NotEqual(t, Point{X: 9, Y: 10}, g.Food)
}

func TestStepAIResetsOnPlayer(t *testing.T) {
	g := newTestGame(t)
	g.Player = NewSnake([]Point{{X: 9, Y: 11}, {X: 9, Y: 12}, {X: 9, Y: 13}}, Up)
	g.Food = Point{X: 5, Y: 10}

	over := g.Step()

	require.False(t, over)
	assert.Equal(t, aiSpawn, g.AI.Body)
	assert.Equal(t, 1, g.AIResets)
	assert.Equal(t, Point{X: 9, Y: 10}, g.Player.Head())
}

func TestStepGameOver(t *testing.T) {
	tests := []struct {
		name   string
		player *Snake
		food   Point
		want   CollisionType
	}{
		{
			name:   "leaves the board",
			player: NewSnake([]Point{{X: 19, Y: 5}, {X: 18, Y: 5}, {X: 17, Y: 5}}, Right),
			food:   Point{X: 0, Y: 19},
			want:   WallCollision,
		},
		{
			name:   "leaves through the top",
			player: NewSnake([]Point{{X: 3, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}}, Up),
			food:   Point{X: 0, Y: 19},
			want:   WallCollision,
		},
		{
			name: "bites itself",
			player: NewSnake([]Point{
				{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 4}, {X: 5, Y: 4}, {X: 4, Y: 4},
			}, Up),
			food: Point{X: 0, Y: 19},
			want: SelfCollision,
		},
		{
			name:   "runs into the opponent",
			player: NewSnake([]Point{{X: 10, Y: 11}, {X: 10, Y: 12}, {X: 10, Y: 13}}, Up),
			food:   Point{X: 9, Y: 10},
			want:   OpponentCollision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.Player = tt.player
			g.Food = tt.food

			require.True(t, g.Step())
			assert.True(t, g.Over)
			assert.Equal(t, tt.want, g.Cause)

			tick := g.Tick
			assert.False(t, g.Step(), "a finished game must not advance")
			assert.Equal(t, tick, g.Tick)
		})
	}
}

func TestSetHeading(t *testing.T) {
	g := newTestGame(t)

	assert.False(t, g.SetHeading(Left))
	assert.True(t, g.SetHeading(Up))
	assert.False(t, g.SetHeading(Left), "two presses in one tick must not reverse")

	g.Step()
	assert.Equal(t, Point{X: 5, Y: 4}, g.Player.Head())
	assert.True(t, g.SetHeading(Left))
}

func TestPauseFreezesState(t *testing.T) {
	g := newTestGame(t)
	g.Food = Point{X: 0, Y: 19}

	require.True(t, g.TogglePause())
	before := g.Snapshot()

	assert.False(t, g.Step())
	assert.Equal(t, before, g.Snapshot())

	require.False(t, g.TogglePause())
	g.Step()
	assert.Equal(t, 1, g.Tick)
}

func TestRestartResetsEverything(t *testing.T) {
	g := newTestGame(t)
	g.Player = NewSnake([]Point{{X: 19, Y: 5}, {X: 18, Y: 5}, {X: 17, Y: 5}}, Right)
	require.True(t, g.Step())

	g.Restart()

	assert.False(t, g.Over)
	assert.False(t, g.Paused)
	assert.Equal(t, NoCollision, g.Cause)
	assert.Equal(t, 0, g.Tick)
	assert.Equal(t, playerSpawn, g.Player.Body)
	assert.Equal(t, aiSpawn, g.AI.Body)
	assert.Equal(t, Right, g.Player.Heading)
}

func TestFinishedGameIgnoresInput(t *testing.T) {
	g := newTestGame(t)
	g.Player = NewSnake([]Point{{X: 19, Y: 5}, {X: 18, Y: 5}, {X: 17, Y: 5}}, Right)
	require.True(t, g.Step())

	assert.False(t, g.SetHeading(Up))
	assert.False(t, g.TogglePause())
}

func TestSpawnFoodAvoidsSnakes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grid := NewGrid(4, 4)

	// leave a single free cell
	body := grid.Cells()
	free := Point{X: 2, Y: 3}
	occupied := make([]Point, 0, len(body))
	for _, p := range body {
		if p != free {
			occupied = append(occupied, p)
		}
	}
	snake := NewSnake(occupied, Right)

	for i := 0; i < 20; i++ {
		assert.Equal(t, free, spawnFood(rng, grid, snake))
	}
}

func TestSpawnFoodOnFullBoardStaysOnGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grid := NewGrid(3, 3)
	snake := NewSnake(grid.Cells(), Right)

	for i := 0; i < 20; i++ {
		assert.True(t, grid.Contains(spawnFood(rng, grid, snake)))
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	snap.Player[0] = Point{X: 99, Y: 99}
	assert.Equal(t, Point{X: 5, Y: 5}, g.Player.Head())
}

type holdStill struct{}

func (holdStill) NextStep(_ Grid, bot *Snake, _ Point) (Point, bool) {
	return bot.Head(), false
}

func TestStepUsesBotStrategy(t *testing.T) {
	g := newTestGame(t)
	g.AI.BotStrategy = holdStill{}
	g.Food = Point{X: 0, Y: 19}

	g.Step()

	assert.Equal(t, aiSpawn, g.AI.Body)
}

func TestBFSStrategyStepsTowardFood(t *testing.T) {
	grid := NewGrid(20, 20)
	bot := NewBot(aiSpawn, Left, BFSStrategy{})

	next, ok := bot.BotStrategy.NextStep(grid, bot.Snake, Point{X: 10, Y: 13})
	require.True(t, ok)
	assert.Equal(t, Point{X: 10, Y: 11}, next)

	_, ok = bot.BotStrategy.NextStep(grid, bot.Snake, bot.Head())
	assert.False(t, ok)
}
