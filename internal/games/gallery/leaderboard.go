package gallery

import "slices"

// Entry is one leaderboard line.
type Entry struct {
	Name  string
	Score int
}

// Leaderboard keeps the best scores, highest first, capped at a fixed size.
// Equal scores keep insertion order: an existing entry stays ahead of a
// newcomer with the same score.
type Leaderboard struct {
	capacity int
	entries  []Entry
}

// NewLeaderboard creates a leaderboard and records the seed entries in order.
func NewLeaderboard(capacity int, seed ...Entry) *Leaderboard {
	if capacity <= 0 {
		capacity = 5
	}
	b := &Leaderboard{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity+1),
	}
	for _, e := range seed {
		b.Record(e.Name, e.Score)
	}
	return b
}

// Record inserts an entry and truncates to capacity.
// Returns the zero-based rank of the new entry, or -1 if it did not make the cut.
func (b *Leaderboard) Record(name string, score int) int {
	// Position after every entry with a score >= the new one keeps ties stable
	rank := len(b.entries)
	for i, e := range b.entries {
		if score > e.Score {
			rank = i
			break
		}
	}

	b.entries = slices.Insert(b.entries, rank, Entry{Name: name, Score: score})
	if len(b.entries) > b.capacity {
		b.entries = b.entries[:b.capacity]
	}

	if rank >= b.capacity {
		return -1
	}
	return rank
}

// Qualifies reports whether a final score earns a name-entry prompt: either
// the board has a free slot or the score beats the current lowest entry.
func (b *Leaderboard) Qualifies(score int) bool {
	if len(b.entries) < b.capacity {
		return true
	}
	return score > b.entries[len(b.entries)-1].Score
}

// Entries returns a copy of the current entries, best first.
func (b *Leaderboard) Entries() []Entry {
	return slices.Clone(b.entries)
}

// Len returns the number of entries.
func (b *Leaderboard) Len() int {
	return len(b.entries)
}

// Capacity returns the maximum number of entries.
func (b *Leaderboard) Capacity() int {
	return b.capacity
}
