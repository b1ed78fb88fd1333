package match

// Selection is the winning candidate of a query.
type Selection struct {
	Index int    // ordinal in the candidate list
	Path  string // the candidate path
	Score int    // aggregate score across all tokens
}

// Select returns the best-scored candidate. Ties go to the shorter
// path (fewer bytes), then to the lexicographically smaller path, so
// the result is deterministic regardless of map iteration order.
// ok is false only when scores is empty.
func Select(scores ScoreMap, candidates []string) (best Selection, ok bool) {
	best = Selection{Index: -1}
	for idx, score := range scores {
		cand := Selection{Index: idx, Path: candidates[idx], Score: score}
		if best.Index < 0 || precedes(cand, best) {
			best = cand
		}
	}
	if best.Index < 0 {
		return Selection{}, false
	}
	return best, true
}

// precedes reports whether a orders before b: higher score, then
// shorter path, then lexicographically smaller path.
func precedes(a, b Selection) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if len(a.Path) != len(b.Path) {
		return len(a.Path) < len(b.Path)
	}
	return a.Path < b.Path
}
