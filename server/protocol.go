package main

import "gridsnake/game"

// Protocol uses single-character JSON keys to keep per-tick frames small.
//
// Message type constants (value of "t" field):
//   Client → Server:
//     "j" = join    {"t":"j","n":"PlayerName"}
//     "k" = key     {"t":"k","k":"ArrowLeft"}   (raw KeyboardEvent.key)
//     "r" = restart {"t":"r"}
//   Server → Client:
//     "w" = welcome {"t":"w","i":"id","h":20,"w":30,"ms":100}
//     "s" = state   {"t":"s","n":12,"g":"000120...","p":30,"l":[leaderboard]}
//     "o" = over    {"t":"o","p":30}
//     "e" = error   {"t":"e","m":"Server full"}
//
// The grid string "g" holds one digit per cell in row-major order:
// 0 empty, 1 snake, 2 food, 3 obstacle.

// Message type identifiers
const (
	MsgJoin    = "j"
	MsgKey     = "k"
	MsgRestart = "r"
	MsgWelcome = "w"
	MsgState   = "s"
	MsgOver    = "o"
	MsgError   = "e"
)

// ClientMessage is any incoming message from the browser.
type ClientMessage struct {
	Type string `json:"t"`
	Name string `json:"n,omitempty"`
	Key  string `json:"k,omitempty"`
}

// WelcomeMsg is sent once, right after the WebSocket upgrade, so the page
// can lay out the board before the first state arrives.
type WelcomeMsg struct {
	Type   string `json:"t"`
	ID     string `json:"i"`
	Height int    `json:"h"`
	Width  int    `json:"w"`
	TickMS int64  `json:"ms"`
}

// StateMsg is the per-tick render snapshot.
type StateMsg struct {
	Type        string             `json:"t"`
	Tick        uint64             `json:"n"`
	Grid        string             `json:"g"`
	Score       int                `json:"p"`
	Leaderboard []LeaderboardEntry `json:"l,omitempty"`
}

// OverMsg tells the player the run ended and carries the final score.
type OverMsg struct {
	Type  string `json:"t"`
	Score int    `json:"p"`
}

// ErrorMsg is sent right before the server closes a connection.
type ErrorMsg struct {
	Type    string `json:"t"`
	Message string `json:"m"`
}

// LeaderboardEntry is a single leaderboard row.
// {"i":"id","n":"name","p":score}
type LeaderboardEntry struct {
	ID    string `json:"i"`
	Name  string `json:"n"`
	Score int    `json:"p"`
}

// NewStateMsg converts an engine snapshot to its wire form.
func NewStateMsg(snap game.Snapshot, leaderboard []LeaderboardEntry) StateMsg {
	return StateMsg{
		Type:        MsgState,
		Tick:        snap.Tick,
		Grid:        encodeCells(snap.Cells),
		Score:       snap.Score,
		Leaderboard: leaderboard,
	}
}

func encodeCells(cells []game.Cell) string {
	b := make([]byte, len(cells))
	for i, c := range cells {
		b[i] = '0' + byte(c)
	}
	return string(b)
}
