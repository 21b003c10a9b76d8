package main

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Sender that hands every message to the test.
type recorder struct {
	msgs chan interface{}
}

func newRecorder() *recorder {
	return &recorder{msgs: make(chan interface{}, 1024)}
}

func (r *recorder) Send(msg interface{}) error {
	select {
	case r.msgs <- msg:
	default:
	}
	return nil
}

func (r *recorder) next(t *testing.T) interface{} {
	t.Helper()
	select {
	case msg := <-r.msgs:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message from game loop")
		return nil
	}
}

func runLoop(t *testing.T, gl *GameLoop) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, gl.Run(ctx))
	}()
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
}

func TestGameLoop_JoinTickAndOver(t *testing.T) {
	cfg := lineConfig().Game
	board := NewLeaderboard(10)
	out := newRecorder()
	gl := NewGameLoop("p1", cfg, out, board)
	runLoop(t, gl)

	gl.Join("neo")
	start, ok := out.next(t).(StateMsg)
	require.True(t, ok)
	assert.EqualValues(t, 0, start.Tick)
	assert.Equal(t, "1112", start.Grid)

	// First tick eats the only food on the row.
	tick, ok := out.next(t).(StateMsg)
	require.True(t, ok)
	assert.EqualValues(t, 1, tick.Tick)
	assert.Equal(t, "1111", tick.Grid)
	assert.Equal(t, 10, tick.Score)
	assert.Equal(t, []LeaderboardEntry{{ID: "p1", Name: "neo", Score: 10}}, tick.Leaderboard)

	// Tick 2 wraps onto the re-enqueued tail. The crash is reported
	// with the final score alone, never with the cleared board.
	over, ok := out.next(t).(OverMsg)
	require.True(t, ok)
	assert.Equal(t, MsgOver, over.Type)
	assert.Equal(t, 10, over.Score)

	select {
	case msg := <-out.msgs:
		t.Fatalf("unexpected message after game over %#v", msg)
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, []LeaderboardEntry{{ID: "p1", Name: "neo", Score: 10}}, board.Top())
}

func TestGameLoop_KeysSteerTheSnake(t *testing.T) {
	cfg := lineConfig().Game
	cfg.Height = 5
	cfg.Width = 10
	cfg.TickInterval = 20 * time.Millisecond
	out := newRecorder()
	gl := NewGameLoop("p1", cfg, out, NewLeaderboard(10))
	runLoop(t, gl)

	gl.Join("neo")
	_, ok := out.next(t).(StateMsg)
	require.True(t, ok)

	gl.Key("q") // not a direction
	gl.Key("s")
	// Once the key lands, the head leaves row 0 for row 1.
	for {
		msg := out.next(t)
		if state, ok := msg.(StateMsg); ok && strings.Contains(state.Grid[10:20], "1") {
			break
		}
		_, over := msg.(OverMsg)
		require.False(t, over, "snake crashed before turning")
	}
}

func TestGameLoop_RestartOnlyAfterOver(t *testing.T) {
	cfg := lineConfig().Game
	cfg.TickInterval = time.Hour
	out := newRecorder()
	gl := NewGameLoop("p1", cfg, out, NewLeaderboard(10))
	runLoop(t, gl)

	gl.Join("neo")
	_, ok := out.next(t).(StateMsg)
	require.True(t, ok)

	// A running game ignores restart, and a second join only renames.
	gl.Restart()
	gl.Join("trinity")
	select {
	case msg := <-out.msgs:
		t.Fatalf("unexpected message %#v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestGameLoop_RemovesFromBoardOnExit(t *testing.T) {
	board := NewLeaderboard(10)
	out := newRecorder()
	gl := NewGameLoop("p1", lineConfig().Game, out, board)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gl.Run(ctx) }()

	gl.Join("neo")
	out.next(t)
	require.Len(t, board.Top(), 1)

	cancel()
	require.NoError(t, <-done)
	assert.Empty(t, board.Top())
}

func TestLoopScheduler_PostsToEvents(t *testing.T) {
	events := make(chan func(), 1)
	done := make(chan struct{})
	s := &loopScheduler{events: events, done: done}

	ran := false
	s.AfterFunc(time.Millisecond, func() { ran = true })
	select {
	case f := <-events:
		f()
	case <-time.After(2 * time.Second):
		t.Fatal("callback never posted")
	}
	assert.True(t, ran)

	timer := s.AfterFunc(time.Hour, func() {})
	assert.True(t, timer.Stop())
	close(done)
}
