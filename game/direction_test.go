package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsnake/game"
)

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, game.Down, game.Up.Opposite())
	assert.Equal(t, game.Up, game.Down.Opposite())
	assert.Equal(t, game.Right, game.Left.Opposite())
	assert.Equal(t, game.Left, game.Right.Opposite())
}

func TestDirection_Valid(t *testing.T) {
	for _, d := range []game.Direction{game.Up, game.Down, game.Left, game.Right} {
		assert.True(t, d.Valid(), d.String())
	}
	assert.False(t, game.Direction(0).Valid())
	assert.False(t, game.Direction(5).Valid())
	assert.Equal(t, "direction(0)", game.Direction(0).String())
}

func TestDirection_StepWraps(t *testing.T) {
	const h, w = 20, 30
	cases := []struct {
		name string
		dir  game.Direction
		from game.Position
		want game.Position
	}{
		{"UpFromTopRow", game.Up, pos(0, 7), pos(h-1, 7)},
		{"DownFromBottomRow", game.Down, pos(h-1, 7), pos(0, 7)},
		{"LeftFromFirstCol", game.Left, pos(3, 0), pos(3, w-1)},
		{"RightFromLastCol", game.Right, pos(3, w-1), pos(3, 0)},
		{"Interior", game.Right, pos(3, 4), pos(3, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.dir.Step(tc.from, h, w))
		})
	}
}

func TestDirectionForKey(t *testing.T) {
	cases := map[string]game.Direction{
		"ArrowUp": game.Up, "w": game.Up,
		"ArrowDown": game.Down, "s": game.Down,
		"ArrowLeft": game.Left, "a": game.Left,
		"ArrowRight": game.Right, "d": game.Right, "D": game.Right,
	}
	for key, want := range cases {
		got, ok := game.DirectionForKey(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	for _, key := range []string{"Enter", " ", "q", ""} {
		_, ok := game.DirectionForKey(key)
		assert.False(t, ok, "key %q should be ignored", key)
	}
}
