package game

import "time"

const (
	GameTickDuration = 150 * time.Millisecond
	MapColCount      = 20
	MapRowCount      = 20
	// commands queued between two ticks before senders block
	commandBufferSize = 16
	updateBufferSize  = 8
)

// Config holds the knobs the runner may set. A Seed of 0 means a
// time-based seed is picked by the caller.
type Config struct {
	Cols         int
	Rows         int
	TickDuration time.Duration
	Seed         int64
}

func DefaultConfig() Config {
	return Config{
		Cols:         MapColCount,
		Rows:         MapRowCount,
		TickDuration: GameTickDuration,
	}
}

var (
	playerSpawn = []Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	aiSpawn     = []Point{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 12, Y: 10}}
)
