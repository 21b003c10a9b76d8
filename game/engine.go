package game

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// Rand picks spawn sites. *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type options struct {
	rng   Rand
	sched Scheduler
	body  []Position
	// customBody distinguishes WithBody() with no segments from no option.
	customBody bool
	dir        Direction
}

// Option customises a new Engine.
type Option func(*options)

// WithRand sets the source used to pick food and obstacle sites.
func WithRand(r Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithScheduler sets where the delayed food respawn runs. The default is a
// ManualScheduler nobody advances, so presenters that want food to come
// back must supply one.
func WithScheduler(s Scheduler) Option {
	return func(o *options) { o.sched = s }
}

// WithBody replaces the starting snake. Segments are listed tail first.
func WithBody(body ...Position) Option {
	return func(o *options) {
		o.body = body
		o.customBody = true
	}
}

// WithDirection sets the starting heading (default Right).
func WithDirection(d Direction) Option {
	return func(o *options) { o.dir = d }
}

// Engine is one game session. It is created Running and becomes terminal
// once GameOver reports true; start a new Engine to play again.
type Engine struct {
	cfg   Config
	grid  *Grid
	body  *Queue
	dir   Direction
	rng   Rand
	sched Scheduler

	score     int
	gameOver  bool
	tick      uint64
	obstacles int
	foodTimer Timer

	// err is sticky: once the grid and body disagree, every later tick is
	// refused.
	err error
}

// NewEngine builds a running game: the body is painted, and one food item
// sits on a random empty cell.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{dir: Right}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.dir.Valid() {
		return nil, fmt.Errorf("%w: starting direction %v", ErrInvalidDirection, o.dir)
	}
	if o.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		o.rng = rand.New(rand.NewSource(seed))
	}
	if o.sched == nil {
		o.sched = NewManualScheduler()
	}
	if !o.customBody {
		o.body = defaultBody(cfg)
	}

	grid, err := NewGrid(cfg.Height, cfg.Width)
	if err != nil {
		return nil, err
	}
	grid.Fill(CellEmpty)

	e := &Engine{
		cfg:   cfg,
		grid:  grid,
		body:  NewQueue(len(o.body) * 2),
		dir:   o.dir,
		rng:   o.rng,
		sched: o.sched,
	}
	if err := e.seedBody(o.body); err != nil {
		return nil, err
	}
	if err := e.paintBody(CellSnake); err != nil {
		return nil, err
	}
	if _, err := e.spawn(CellFood); err != nil {
		return nil, err
	}
	return e, nil
}

func defaultBody(cfg Config) []Position {
	body := make([]Position, cfg.InitialLength)
	for i := range body {
		body[i] = Position{Row: cfg.StartRow, Col: wrap(cfg.StartCol+i, cfg.Width)}
	}
	return body
}

func (e *Engine) seedBody(body []Position) error {
	if len(body) == 0 {
		return fmt.Errorf("%w: empty starting body", ErrInvalidConfig)
	}
	for _, p := range body {
		if !e.grid.InBounds(p.Row, p.Col) {
			return fmt.Errorf("%w: starting segment (%d,%d)", ErrOutOfBounds, p.Row, p.Col)
		}
		if e.body.Contains(p) {
			return fmt.Errorf("%w: duplicate starting segment (%d,%d)", ErrInvalidConfig, p.Row, p.Col)
		}
		e.body.Enqueue(p)
	}
	return nil
}

// Config returns the constants the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Score returns the points collected so far.
func (e *Engine) Score() int { return e.score }

// GameOver reports whether the snake has crashed.
func (e *Engine) GameOver() bool { return e.gameOver }

// Direction returns the heading the next tick will use.
func (e *Engine) Direction() Direction { return e.dir }

// Len returns the number of body segments.
func (e *Engine) Len() int { return e.body.Len() }

// Head returns the newest segment. A one-segment snake that crashes is
// left with an empty body, and Head then reports ErrEmptyQueue.
func (e *Engine) Head() (Position, error) {
	return e.body.PeekBack()
}

// Body returns the segments tail first.
func (e *Engine) Body() []Position { return e.body.Slice() }

// Err returns the defect that stopped the engine, if any.
func (e *Engine) Err() error { return e.err }

// SetDirection turns the snake. A request for the reverse of the current
// heading is dropped without error, as is a repeat of the current heading.
func (e *Engine) SetDirection(d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(d))
	}
	if d == e.dir.Opposite() {
		return nil
	}
	e.dir = d
	return nil
}

// Tick advances the game one step and returns what to paint. After the
// game is over Tick changes nothing and returns the terminal snapshot.
// A non-nil error means the grid and body went out of sync; the engine
// refuses to continue after that.
func (e *Engine) Tick() (Snapshot, error) {
	if e.err != nil {
		return e.Snapshot(), e.err
	}
	if e.gameOver {
		return e.Snapshot(), nil
	}
	if err := e.step(); err != nil {
		e.err = fmt.Errorf("tick %d: %w", e.tick, err)
		e.cancelFood()
		return e.Snapshot(), e.err
	}
	return e.Snapshot(), nil
}

func (e *Engine) step() error {
	e.tick++

	if err := e.paintBody(CellEmpty); err != nil {
		return fmt.Errorf("clear body: %w", err)
	}

	head, err := e.body.PeekBack()
	if err != nil {
		return fmt.Errorf("read head: %w", err)
	}
	next := e.dir.Step(head, e.cfg.Height, e.cfg.Width)

	// Assume no growth until food says otherwise.
	tail, err := e.body.Dequeue()
	if err != nil {
		return fmt.Errorf("drop tail: %w", err)
	}

	if e.body.Contains(next) {
		e.finish()
		return nil
	}

	cell, err := e.grid.Get(next.Row, next.Col)
	if err != nil {
		return fmt.Errorf("read next cell: %w", err)
	}
	if cell == CellObstacle {
		e.finish()
		return nil
	}

	if cell == CellFood {
		e.score += e.cfg.PointsPerFood
		e.body.Enqueue(tail)
		if e.cfg.MaxObstacles == 0 || e.obstacles < e.cfg.MaxObstacles {
			placed, err := e.spawn(CellObstacle, next)
			if err != nil {
				return fmt.Errorf("place obstacle: %w", err)
			}
			if placed {
				e.obstacles++
			}
		}
		e.scheduleFood()
	}

	e.body.Enqueue(next)

	if err := e.paintBody(CellSnake); err != nil {
		return fmt.Errorf("paint body: %w", err)
	}
	return nil
}

func (e *Engine) finish() {
	e.gameOver = true
	e.cancelFood()
}

func (e *Engine) paintBody(c Cell) error {
	for seg := range e.body.All() {
		if err := e.grid.Set(seg.Row, seg.Col, c); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) scheduleFood() {
	e.cancelFood()
	e.foodTimer = e.sched.AfterFunc(e.cfg.FoodRespawnDelay, e.respawnFood)
}

func (e *Engine) cancelFood() {
	if e.foodTimer != nil {
		e.foodTimer.Stop()
		e.foodTimer = nil
	}
}

// respawnFood runs on the scheduler once the respawn delay is over.
func (e *Engine) respawnFood() {
	e.foodTimer = nil
	if e.gameOver || e.err != nil || e.grid.Count(CellFood) > 0 {
		return
	}
	if _, err := e.spawn(CellFood); err != nil {
		e.err = fmt.Errorf("respawn food: %w", err)
	}
}

// spawn puts c on a uniformly random empty cell that no body segment and
// none of reserved occupies. It reports false when the board is full.
func (e *Engine) spawn(c Cell, reserved ...Position) (bool, error) {
	taken := make(map[Position]struct{}, e.body.Len()+len(reserved))
	for seg := range e.body.All() {
		taken[seg] = struct{}{}
	}
	for _, p := range reserved {
		taken[p] = struct{}{}
	}

	sites := e.grid.EmptyPositions()
	free := sites[:0]
	for _, p := range sites {
		if _, ok := taken[p]; !ok {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return false, nil
	}
	site := free[e.rng.Intn(len(free))]
	return true, e.grid.Set(site.Row, site.Col, c)
}

// Snapshot projects the current state for a presenter.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:      e.tick,
		Height:    e.cfg.Height,
		Width:     e.cfg.Width,
		Cells:     e.grid.Cells(),
		Score:     e.score,
		Length:    e.body.Len(),
		Direction: e.dir,
		GameOver:  e.gameOver,
	}
}
