package main

import (
	"sort"
	"sync"
)

// Leaderboard tracks the score of every live session and ranks them.
type Leaderboard struct {
	mu      sync.RWMutex
	size    int
	entries map[string]LeaderboardEntry
}

// NewLeaderboard returns a board that reports at most size rows.
func NewLeaderboard(size int) *Leaderboard {
	return &Leaderboard{
		size:    size,
		entries: make(map[string]LeaderboardEntry),
	}
}

// Update records the current score of session id.
func (lb *Leaderboard) Update(id, name string, score int) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.entries[id] = LeaderboardEntry{ID: id, Name: name, Score: score}
}

// Remove drops a session that disconnected.
func (lb *Leaderboard) Remove(id string) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	delete(lb.entries, id)
}

// Top returns the best sessions, highest score first. Ties are broken by
// name, then ID, so the order is stable between ticks.
func (lb *Leaderboard) Top() []LeaderboardEntry {
	lb.mu.RLock()
	entries := make([]LeaderboardEntry, 0, len(lb.entries))
	for _, e := range lb.entries {
		entries = append(entries, e)
	}
	lb.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].ID < entries[j].ID
	})
	if len(entries) > lb.size {
		entries = entries[:lb.size]
	}
	return entries
}
