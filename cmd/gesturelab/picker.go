package main

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/list"
)

// nearestIndex returns the index of the item whose title best matches query,
// preferring substring hits and falling back to edit distance. Returns -1 for
// an empty query or list.
func nearestIndex(items []list.Item, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(items) == 0 {
		return -1
	}
	best := -1
	bestScore := 0
	for i, it := range items {
		entry, ok := it.(recordingItem)
		if !ok {
			continue
		}
		score := matchScore(strings.ToLower(entry.rec.Name), q)
		if label := strings.ToLower(entry.rec.Gesture.String()); label != "" {
			if s := matchScore(label, q); s > score {
				score = s
			}
		}
		if best == -1 || score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// matchScore ranks label against q: exact > prefix > substring > near by edit
// distance. Higher is better.
func matchScore(label, q string) int {
	switch {
	case label == q:
		return 1000
	case strings.HasPrefix(label, q):
		return 900 - len(label)
	case strings.Contains(label, q):
		return 700 - strings.Index(label, q)
	}
	return -levenshtein.ComputeDistance(label, q)
}
