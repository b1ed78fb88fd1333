package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenIsGlob(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		want  bool
	}{
		{name: "plain word", token: "src", want: false},
		{name: "star", token: "*.md", want: true},
		{name: "question mark", token: "mod.?", want: true},
		{name: "character class", token: "[ab]c", want: true},
		{name: "dots and dashes are not globs", token: "some-file.txt", want: false},
		{name: "unclosed class is still a glob", token: "[ab", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.IsGlob())
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []Token
	}{
		{name: "separate args", args: []string{"src", "main"}, want: []Token{"src", "main"}},
		{name: "quoted multi-word arg", args: []string{"src main"}, want: []Token{"src", "main"}},
		{name: "mixed args", args: []string{"src  main", "rs"}, want: []Token{"src", "main", "rs"}},
		{name: "no args", args: nil, want: nil},
		{name: "blank arg", args: []string{"   "}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.args))
		})
	}
}

func TestJoin(t *testing.T) {
	tokens := []Token{"src", "main", "rs"}
	assert.Equal(t, "src main rs", Join(tokens, " "))
	assert.Equal(t, "src+main+rs", Join(tokens, "+"))
	assert.Equal(t, "", Join(nil, " "))
}
