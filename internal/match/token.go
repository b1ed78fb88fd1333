// Package match ranks candidate paths against free-text query tokens.
package match

import "strings"

// globChars are the metacharacters that mark a token as a glob pattern.
const globChars = "*?["

// Token is a single query word. Tokens containing glob metacharacters
// are matched as shell-style patterns against the full path; all other
// tokens are matched as case-insensitive fuzzy subsequences.
type Token string

// IsGlob reports whether the token is matched as a glob pattern.
func (t Token) IsGlob() bool {
	return strings.ContainsAny(string(t), globChars)
}

// Tokenize splits raw CLI arguments into query tokens. Every argument
// is split on whitespace, so `add src main` and `add "src main"`
// produce the same token list.
func Tokenize(args []string) []Token {
	var tokens []Token
	for _, arg := range args {
		for _, field := range strings.Fields(arg) {
			tokens = append(tokens, Token(field))
		}
	}
	return tokens
}

// Join returns the tokens joined with sep, for display in messages.
func Join(tokens []Token, sep string) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = string(tok)
	}
	return strings.Join(parts, sep)
}
