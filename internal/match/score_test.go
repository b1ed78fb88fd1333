package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTokenFuzzy(t *testing.T) {
	candidates := []string{"src/main.x", "src/git/mod.x", "README"}

	scores := MatchToken(Token("src"), candidates)

	assert.Contains(t, scores, 0)
	assert.Contains(t, scores, 1)
	assert.NotContains(t, scores, 2)
	for idx, score := range scores {
		assert.Greater(t, score, 0, "candidate %q", candidates[idx])
	}
}

func TestAggregateIntersectionAndSum(t *testing.T) {
	candidates := []string{"src/main.x", "src/git/mod.x", "docs/mod.md", "README"}
	tokens := []Token{"src", "mod"}

	perToken := make([]ScoreMap, len(tokens))
	for i, tok := range tokens {
		perToken[i] = MatchToken(tok, candidates)
	}

	cumulative, failed := Aggregate(tokens, candidates)
	require.Empty(t, failed)
	require.NotEmpty(t, cumulative)

	for idx := range candidates {
		inAll := true
		sum := 0
		for _, scores := range perToken {
			score, ok := scores[idx]
			if !ok {
				inAll = false
				break
			}
			sum += score
		}
		got, ok := cumulative[idx]
		assert.Equal(t, inAll, ok, "candidate %q", candidates[idx])
		if inAll {
			assert.Equal(t, sum, got, "candidate %q", candidates[idx])
		}
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	candidates := []string{"src/main.x", "src/git/mod.x", "docs/mod.md", "README.md"}
	orders := [][]Token{
		{"src", "mod", "x"},
		{"mod", "x", "src"},
		{"x", "src", "mod"},
	}

	want, failed := Aggregate(orders[0], candidates)
	require.Empty(t, failed)
	require.NotEmpty(t, want)

	for _, tokens := range orders[1:] {
		got, failed := Aggregate(tokens, candidates)
		require.Empty(t, failed)
		assert.Equal(t, want, got)
	}
}

func TestAggregateFailedToken(t *testing.T) {
	candidates := []string{"foo.txt", "bar.txt"}

	cumulative, failed := Aggregate([]Token{"foo", "zzz"}, candidates)

	assert.Nil(t, cumulative)
	assert.Equal(t, Token("zzz"), failed)
}

func TestAggregateFailedFirstToken(t *testing.T) {
	cumulative, failed := Aggregate([]Token{"*.md"}, []string{"foo.txt", "bar.txt"})

	assert.Nil(t, cumulative)
	assert.Equal(t, Token("*.md"), failed)
}

func TestAggregateEmptiedIntersection(t *testing.T) {
	// Both tokens match somewhere, but never the same candidate.
	cumulative, failed := Aggregate([]Token{"alpha", "beta"}, []string{"alpha.txt", "beta.txt"})

	assert.Nil(t, cumulative)
	assert.Empty(t, failed)
}

func TestAggregateNoMatchIsFinal(t *testing.T) {
	// Once a token fails, later tokens cannot revive the query.
	candidates := []string{"foo.txt", "bar.txt"}

	cumulative, failed := Aggregate([]Token{"zzz", "foo", "bar", "txt"}, candidates)

	assert.Nil(t, cumulative)
	assert.Equal(t, Token("zzz"), failed)
}

func TestAggregateNoTokens(t *testing.T) {
	cumulative, failed := Aggregate(nil, []string{"foo.txt"})

	assert.Empty(t, cumulative)
	assert.Empty(t, failed)
}

func TestQuerySelection(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		tokens     []Token
		wantPath   string
		wantNone   bool
	}{
		{
			name:       "fuzzy tokens pick the deep path",
			candidates: []string{"src/main.x", "src/git/mod.x", "README"},
			tokens:     []Token{"src", "mod"},
			wantPath:   "src/git/mod.x",
		},
		{
			name:       "contiguous match beats segment boundary",
			candidates: []string{"a/b.x", "ab.x"},
			tokens:     []Token{"ab"},
			wantPath:   "ab.x",
		},
		{
			name:       "glob matching nothing",
			candidates: []string{"foo.txt", "bar.txt"},
			tokens:     []Token{"*.md"},
			wantNone:   true,
		},
		{
			name:       "mixed glob and fuzzy tokens",
			candidates: []string{"docs/guide.md", "docs/api.md", "src/guide.go"},
			tokens:     []Token{"*/*.md", "guide"},
			wantPath:   "docs/guide.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cumulative, failed := Aggregate(tt.tokens, tt.candidates)
			if tt.wantNone {
				assert.Nil(t, cumulative)
				return
			}
			require.Empty(t, failed)
			best, ok := Select(cumulative, tt.candidates)
			require.True(t, ok)
			assert.Equal(t, tt.wantPath, best.Path)
		})
	}
}
