package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"gridsnake/game"
)

// Sender delivers one outgoing message to the player. *Conn implements it.
type Sender interface {
	Send(msg interface{}) error
}

// GameLoop drives one player's game at the configured tick rate. Every
// engine call happens on the goroutine running Run; the read loop and the
// food timer only post events to it.
type GameLoop struct {
	id    string
	cfg   game.Config
	out   Sender
	board *Leaderboard

	joins   chan string
	keys    chan game.Direction
	restart chan struct{}
	events  chan func()

	name   string
	engine *game.Engine
}

// NewGameLoop creates an idle session. Nothing is simulated until the
// player joins.
func NewGameLoop(id string, cfg game.Config, out Sender, board *Leaderboard) *GameLoop {
	return &GameLoop{
		id:      id,
		cfg:     cfg,
		out:     out,
		board:   board,
		joins:   make(chan string, 1),
		keys:    make(chan game.Direction, 8),
		restart: make(chan struct{}, 1),
		events:  make(chan func(), 4),
	}
}

// Join starts a game under the given display name. While a game is
// running it only renames the player.
func (gl *GameLoop) Join(name string) {
	select {
	case gl.joins <- name:
	default:
	}
}

// Key steers the snake. Keys that do not map to a direction are ignored,
// and so are presses that arrive faster than the loop drains them.
func (gl *GameLoop) Key(key string) {
	d, ok := game.DirectionForKey(key)
	if !ok {
		return
	}
	select {
	case gl.keys <- d:
	default:
	}
}

// Restart replaces a finished game with a fresh one.
func (gl *GameLoop) Restart() {
	select {
	case gl.restart <- struct{}{}:
	default:
	}
}

// Run is the fixed-timestep loop. It returns nil when ctx is cancelled and
// an error if the engine reports a defect.
func (gl *GameLoop) Run(ctx context.Context) error {
	defer gl.board.Remove(gl.id)

	sched := &loopScheduler{events: gl.events, done: ctx.Done()}
	ticker := time.NewTicker(gl.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case name := <-gl.joins:
			gl.name = name
			if gl.engine == nil || gl.engine.GameOver() {
				if err := gl.start(sched); err != nil {
					return err
				}
			}

		case <-gl.restart:
			if gl.engine != nil && gl.engine.GameOver() {
				if err := gl.start(sched); err != nil {
					return err
				}
			}

		case d := <-gl.keys:
			if gl.engine != nil {
				// d came from DirectionForKey, so it is always valid.
				_ = gl.engine.SetDirection(d)
			}

		case f := <-gl.events:
			f()

		case <-ticker.C:
			if err := gl.tick(); err != nil {
				return err
			}
		}
	}
}

// start discards the previous engine, if any, and sends the opening frame.
func (gl *GameLoop) start(sched game.Scheduler) error {
	engine, err := game.NewEngine(gl.cfg, game.WithScheduler(sched))
	if err != nil {
		return fmt.Errorf("session %s: new game: %w", gl.id, err)
	}
	gl.engine = engine
	gl.board.Update(gl.id, gl.name, 0)
	log.Printf("game started: %s (%s)", gl.name, gl.id)
	gl.send(NewStateMsg(engine.Snapshot(), gl.board.Top()))
	return nil
}

// tick executes a single game update and reports it to the player. The
// crashing tick has already cleared the body, so it sends only the final
// score and the page keeps showing the last frame.
func (gl *GameLoop) tick() error {
	if gl.engine == nil || gl.engine.GameOver() {
		return nil
	}
	snap, err := gl.engine.Tick()
	if err != nil {
		return fmt.Errorf("session %s: %w", gl.id, err)
	}
	gl.board.Update(gl.id, gl.name, snap.Score)

	if snap.GameOver {
		log.Printf("game over: %s (%s) scored %d", gl.name, gl.id, snap.Score)
		gl.send(OverMsg{Type: MsgOver, Score: snap.Score})
		return nil
	}
	gl.send(NewStateMsg(snap, gl.board.Top()))
	return nil
}

func (gl *GameLoop) send(msg interface{}) {
	if err := gl.out.Send(msg); err != nil {
		log.Printf("send error to %s: %v", gl.id, err)
	}
}

// loopScheduler fires callbacks on real timers but hands them to the
// session goroutine instead of running them on the timer's goroutine.
type loopScheduler struct {
	events chan<- func()
	done   <-chan struct{}
}

func (s *loopScheduler) AfterFunc(d time.Duration, f func()) game.Timer {
	return time.AfterFunc(d, func() {
		select {
		case s.events <- f:
		case <-s.done:
		}
	})
}
