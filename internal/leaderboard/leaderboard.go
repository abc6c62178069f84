package leaderboard

import (
	"sort"
	"sync"
	"time"
)

// Entry is a player's single best recorded score.
type Entry struct {
	PlayerID   string    `json:"player_id"`
	Username   string    `json:"username"`
	Score      int       `json:"score"`
	SpeedLevel int       `json:"speed_level"`
	Timestamp  time.Time `json:"timestamp"`
}

// Board is the global ranked table, kept sorted descending by score. At
// most one entry per player. Every mutation re-sorts the whole table;
// O(P log P), fine at the player counts this server sees.
type Board struct {
	mu      sync.Mutex
	entries []Entry
}

func NewBoard() *Board {
	return &Board{}
}

// Upsert records a score for a player. An existing entry is replaced only
// when the new score is strictly greater; the stored best is monotonic.
func (b *Board) Upsert(playerID, username string, score, speedLevel int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.entries {
		if b.entries[i].PlayerID == playerID {
			if score > b.entries[i].Score {
				b.entries[i] = Entry{
					PlayerID:   playerID,
					Username:   username,
					Score:      score,
					SpeedLevel: speedLevel,
					Timestamp:  time.Now(),
				}
				b.sortLocked()
			}
			return
		}
	}

	b.entries = append(b.entries, Entry{
		PlayerID:   playerID,
		Username:   username,
		Score:      score,
		SpeedLevel: speedLevel,
		Timestamp:  time.Now(),
	})
	b.sortLocked()
}

// sortLocked keeps ties in the order their scores were first achieved.
func (b *Board) sortLocked() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
}

// TopN returns the first n entries of the sorted order.
func (b *Board) TopN(n int) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n > len(b.entries) {
		n = len(b.entries)
	}
	top := make([]Entry, n)
	copy(top, b.entries[:n])
	return top
}

// RankOf returns the player's 1-based rank: one more than the number of
// entries with a strictly greater score. 0 when the player has no entry.
func (b *Board) RankOf(playerID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	var entry *Entry
	for i := range b.entries {
		if b.entries[i].PlayerID == playerID {
			entry = &b.entries[i]
			break
		}
	}
	if entry == nil {
		return 0
	}

	rank := 1
	for i := range b.entries {
		if b.entries[i].Score > entry.Score {
			rank++
		}
	}
	return rank
}

func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
