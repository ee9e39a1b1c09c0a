package game

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type CommandKind int

const (
	TurnCommand CommandKind = iota
	RestartCommand
	TogglePauseCommand
)

type Command struct {
	Kind      CommandKind
	Direction Direction
}

// GameTickMsg carries the state after a tick or an applied command.
type GameTickMsg struct {
	Snapshot Snapshot
}

// GameOverMsg is published once, on the tick that ends the round.
type GameOverMsg struct {
	Snapshot Snapshot
}

type GameManager struct {
	CommandChannel chan Command
	UpdateChannel  chan tea.Msg

	game         *Game
	tickDuration time.Duration
	isRunning    atomic.Bool
	logger       *log.Logger
}

func NewGameManager(cfg Config, rng *rand.Rand, logger *log.Logger) *GameManager {
	if cfg.TickDuration <= 0 {
		cfg.TickDuration = GameTickDuration
	}
	if logger == nil {
		logger = log.Default()
	}

	return &GameManager{
		CommandChannel: make(chan Command, commandBufferSize),
		UpdateChannel:  make(chan tea.Msg, updateBufferSize),
		game:           NewGame(cfg, rng),
		tickDuration:   cfg.TickDuration,
		logger:         logger.WithPrefix("game"),
	}
}

// Send queues a command for the loop without blocking the caller. It
// returns false when the queue is full and the command was dropped.
func (gm *GameManager) Send(cmd Command) bool {
	select {
	case gm.CommandChannel <- cmd:
		return true
	default:
		gm.logger.Warn("Command dropped, queue full", "kind", cmd.Kind)
		return false
	}
}

// StartGameLoop steps the game every tick until ctx is cancelled. The
// ticker is stopped while the game is paused or over.
func (gm *GameManager) StartGameLoop(ctx context.Context) {
	if !gm.isRunning.CompareAndSwap(false, true) {
		return
	}
	defer gm.isRunning.Store(false)

	gm.logger.Info("Game loop started.", "tick", gm.tickDuration)
	defer gm.logger.Info("Game loop stopped.")

	ticker := time.NewTicker(gm.tickDuration)
	defer ticker.Stop()

	if !gm.publish(ctx, GameTickMsg{Snapshot: gm.game.Snapshot()}) {
		return
	}

	for {
		var msg tea.Msg
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			if gm.game.Paused || gm.game.Over {
				continue
			}
			if gm.game.Step() {
				ticker.Stop()
				gm.logger.Info("Game over", "cause", gm.game.Cause, "tick", gm.game.Tick,
					"length", gm.game.Player.Len())
				msg = GameOverMsg{Snapshot: gm.game.Snapshot()}
			} else {
				msg = GameTickMsg{Snapshot: gm.game.Snapshot()}
			}

		case cmd := <-gm.CommandChannel:
			gm.processCommand(cmd, ticker)
			msg = GameTickMsg{Snapshot: gm.game.Snapshot()}
		}

		if !gm.publish(ctx, msg) {
			return
		}
	}
}

func (gm *GameManager) processCommand(cmd Command, ticker *time.Ticker) {
	switch cmd.Kind {
	case TurnCommand:
		if !gm.game.SetHeading(cmd.Direction) {
			gm.logger.Debug("Heading change ignored", "direction", cmd.Direction)
		}

	case TogglePauseCommand:
		if gm.game.Over {
			return
		}
		if gm.game.TogglePause() {
			ticker.Stop()
			gm.logger.Debug("Paused", "tick", gm.game.Tick)
		} else {
			ticker.Reset(gm.tickDuration)
			gm.logger.Debug("Resumed", "tick", gm.game.Tick)
		}

	case RestartCommand:
		gm.game.Restart()
		ticker.Reset(gm.tickDuration)
		gm.logger.Info("Game restarted")
	}
}

func (gm *GameManager) publish(ctx context.Context, msg tea.Msg) bool {
	select {
	case gm.UpdateChannel <- msg:
		return true
	case <-ctx.Done():
		return false
	}
}

func (gm *GameManager) Updates() <-chan tea.Msg {
	return gm.UpdateChannel
}
