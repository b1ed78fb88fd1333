package match

import "path"

// globScore is the flat score awarded to every glob match. Globs
// filter the candidate set; ranking among survivors is left to the
// fuzzy tokens and the selection tie-breaks.
const globScore = 1

// GlobMatch reports whether pattern matches candidate as an anchored
// shell-style glob over the full path. * and ? never cross a path
// separator. A malformed pattern matches nothing.
func GlobMatch(pattern, candidate string) bool {
	ok, err := path.Match(pattern, candidate)
	return err == nil && ok
}
