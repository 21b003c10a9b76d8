package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// RestartKey is the key identifier that starts a new game after game over.
const RestartKey = "r"

// keyNames translates raylib key codes into the same identifiers a browser
// reports, so game.DirectionForKey serves both presenters.
var keyNames = map[int32]string{
	rl.KeyUp:    "ArrowUp",
	rl.KeyDown:  "ArrowDown",
	rl.KeyLeft:  "ArrowLeft",
	rl.KeyRight: "ArrowRight",
	rl.KeyW:     "w",
	rl.KeyA:     "a",
	rl.KeyS:     "s",
	rl.KeyD:     "d",
	rl.KeyR:     RestartKey,
}

// PressedKeys drains the keys pressed since the last frame, oldest first.
// Keys without an identifier are dropped.
func PressedKeys() []string {
	var keys []string
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if name, ok := keyNames[key]; ok {
			keys = append(keys, name)
		}
	}
	return keys
}
