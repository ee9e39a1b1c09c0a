package game

// Strategy picks the next cell for a bot-controlled snake.
type Strategy interface {
	NextStep(grid Grid, bot *Snake, food Point) (Point, bool)
}

// BFSStrategy reruns a full breadth-first search from the head to the food
// every tick and takes one step along it.
type BFSStrategy struct{}

func (BFSStrategy) NextStep(grid Grid, bot *Snake, food Point) (Point, bool) {
	return NextStep(grid, bot.Head(), food)
}

type Bot struct {
	BotStrategy Strategy
	*Snake
}

func NewBot(body []Point, heading Direction, strategy Strategy) *Bot {
	return &Bot{
		BotStrategy: strategy,
		Snake:       NewSnake(body, heading),
	}
}
