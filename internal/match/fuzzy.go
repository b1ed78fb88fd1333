package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Scoring weights for the subsequence scan. The run bonus must stay
// larger than any position bonus plus the gap penalty so that
// contiguous matches outrank gapped matches landing on boundaries.
const (
	scoreBase         = 2  // every matched rune
	bonusRun          = 10 // rune extends a contiguous run
	bonusPathStart    = 8  // match at the start of the path
	bonusSegmentStart = 6  // match right after a path separator
	bonusWordStart    = 4  // match right after -, _, . or space
	penaltyGap        = 1  // charged once per gap between matches
	bonusExactSegment = 16 // token equals one whole path segment
	bonusExactPath    = 32 // token equals the entire path
)

// folder strips diacritics: NFKD decomposition followed by removal of
// combining marks.
var folder = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Fold normalizes s for matching: compatibility-decomposed, combining
// marks stripped, lowercased.
func Fold(s string) string {
	folded, _, err := transform.String(folder, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// FuzzyScore reports whether token occurs as an ordered subsequence of
// path after folding, and the score of the greedy left-to-right
// alignment. Scores of matched candidates are always positive.
func FuzzyScore(token, path string) (int, bool) {
	tok := []rune(Fold(token))
	cand := []rune(Fold(path))
	if len(tok) == 0 || len(tok) > len(cand) {
		return 0, false
	}

	score := 0
	ti := 0
	lastMatch := -1
	for ci := 0; ci < len(cand) && ti < len(tok); ci++ {
		if cand[ci] != tok[ti] {
			continue
		}
		score += scoreBase
		switch {
		case ci == 0:
			score += bonusPathStart
		case lastMatch == ci-1:
			score += bonusRun
		case cand[ci-1] == '/':
			score += bonusSegmentStart
		case isWordBoundary(cand[ci-1]):
			score += bonusWordStart
		}
		if lastMatch >= 0 && ci > lastMatch+1 {
			score -= penaltyGap
		}
		lastMatch = ci
		ti++
	}
	if ti < len(tok) {
		return 0, false
	}

	foldedTok := string(tok)
	foldedCand := string(cand)
	if foldedCand == foldedTok {
		score += bonusExactPath
	}
	if hasExactSegment(foldedCand, foldedTok) {
		score += bonusExactSegment
	}
	return score, true
}

func isWordBoundary(r rune) bool {
	switch r {
	case '-', '_', '.', ' ':
		return true
	}
	return false
}

func hasExactSegment(folded, token string) bool {
	for _, seg := range strings.Split(folded, "/") {
		if seg == token {
			return true
		}
	}
	return false
}
