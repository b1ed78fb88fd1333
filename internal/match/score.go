package match

// ScoreMap maps candidate ordinals to accumulated match scores.
type ScoreMap map[int]int

// MatchToken scores one token against every candidate independently.
// Candidates the token does not match are absent from the result.
func MatchToken(tok Token, candidates []string) ScoreMap {
	scores := make(ScoreMap)
	if tok.IsGlob() {
		for i, cand := range candidates {
			if GlobMatch(string(tok), cand) {
				scores[i] = globScore
			}
		}
		return scores
	}
	for i, cand := range candidates {
		if score, ok := FuzzyScore(string(tok), cand); ok {
			scores[i] = score
		}
	}
	return scores
}

// Aggregate folds per-token scores into one cumulative map holding only
// the candidates matched by every token, with their per-token scores
// summed. A candidate must match ALL tokens; there is no partial
// credit.
//
// When a token matches no candidate at all, the fold stops and that
// token is returned as failed with a nil map. When the running
// intersection empties, the map is nil and failed is empty.
func Aggregate(tokens []Token, candidates []string) (cumulative ScoreMap, failed Token) {
	if len(tokens) == 0 {
		return ScoreMap{}, ""
	}

	cumulative = MatchToken(tokens[0], candidates)
	if len(cumulative) == 0 {
		return nil, tokens[0]
	}

	for _, tok := range tokens[1:] {
		scores := MatchToken(tok, candidates)
		if len(scores) == 0 {
			return nil, tok
		}
		for idx, total := range cumulative {
			score, ok := scores[idx]
			if !ok {
				delete(cumulative, idx)
				continue
			}
			cumulative[idx] = total + score
		}
		if len(cumulative) == 0 {
			return nil, ""
		}
	}
	return cumulative, ""
}
