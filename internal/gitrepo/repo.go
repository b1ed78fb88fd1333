// Package gitrepo enumerates and stages working-tree files through go-git.
package gitrepo

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/filemode"
)

// Repo is an open git repository and its working tree.
type Repo struct {
	repo *git.Repository
	wt   *git.Worktree
	root string
}

// Open opens the repository at dir. No upward discovery is performed:
// dir itself must contain the .git directory.
func Open(dir string) (*Repo, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, &AccessError{Op: "open", Dir: dir, Err: err}
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, &AccessError{Op: "open", Dir: dir, Err: err}
	}
	return &Repo{repo: repo, wt: wt, root: wt.Filesystem.Root()}, nil
}

// Root returns the absolute path of the working tree root.
func (r *Repo) Root() string {
	return r.root
}

// Candidate is a working-tree path eligible for staging. Code is the
// worktree-side porcelain status letter: '?' untracked, 'M' modified,
// 'D' deleted, 'R' renamed.
type Candidate struct {
	Path string
	Code byte
}

// Candidates returns the unstaged and untracked working-tree entries,
// relative to the root and lexically sorted. Submodules, ignored files,
// unmodified files, and files whose only change is already staged are
// all excluded.
func (r *Repo) Candidates() ([]Candidate, error) {
	status, err := r.wt.Status()
	if err != nil {
		return nil, &AccessError{Op: "status", Dir: r.root, Err: err}
	}
	submodules, err := r.submodulePaths()
	if err != nil {
		return nil, err
	}

	var cands []Candidate
	for path, fs := range status {
		if !worktreeChanged(fs.Worktree) {
			continue
		}
		if submodules[path] {
			continue
		}
		cands = append(cands, Candidate{Path: path, Code: byte(fs.Worktree)})
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].Path < cands[j].Path })
	return cands, nil
}

// worktreeChanged reports whether code marks a worktree-side change
// that can be staged: untracked, modified, deleted, or renamed.
func worktreeChanged(code git.StatusCode) bool {
	switch code {
	case git.Untracked, git.Modified, git.Deleted, git.Renamed:
		return true
	}
	return false
}

// submodulePaths returns the paths recorded as gitlinks in the index.
func (r *Repo) submodulePaths() (map[string]bool, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, &AccessError{Op: "index", Dir: r.root, Err: err}
	}
	subs := make(map[string]bool)
	for _, entry := range idx.Entries {
		if entry.Mode == filemode.Submodule {
			subs[entry.Name] = true
		}
	}
	return subs, nil
}

// Paths extracts the path strings from candidates, in order.
func Paths(cands []Candidate) []string {
	paths := make([]string, len(cands))
	for i, c := range cands {
		paths[i] = c.Path
	}
	return paths
}

// Stage adds the given paths to the index. Absolute paths are
// relativized against the root; relative paths are used as-is.
// Deleted files are staged as deletions.
func (r *Repo) Stage(paths ...string) error {
	for _, p := range paths {
		rel, err := r.relativize(p)
		if err != nil {
			return err
		}
		if _, err := r.wt.Add(rel); err != nil {
			return &IndexWriteError{Path: rel, Err: err}
		}
	}
	return nil
}

// relativize converts p to a slash-separated path relative to the root.
func (r *Repo) relativize(p string) (string, error) {
	if !filepath.IsAbs(p) {
		return filepath.ToSlash(p), nil
	}
	rel, err := filepath.Rel(r.root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &OutsideRepoError{Path: p, Root: r.root}
	}
	return filepath.ToSlash(rel), nil
}

// FileMode classifies the git mode of an index entry.
type FileMode string

const (
	ModeRegular    FileMode = "regular"
	ModeExecutable FileMode = "executable"
	ModeSymlink    FileMode = "symlink"
	ModeSubmodule  FileMode = "submodule"
	ModeOther      FileMode = "other"
)

// FileEntry is one tracked path in the index.
type FileEntry struct {
	Path string
	Mode FileMode
}

// IndexEntries lists the index contents in index order.
func (r *Repo) IndexEntries() ([]FileEntry, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, &AccessError{Op: "index", Dir: r.root, Err: err}
	}
	entries := make([]FileEntry, 0, len(idx.Entries))
	for _, e := range idx.Entries {
		entries = append(entries, FileEntry{Path: e.Name, Mode: decodeMode(e.Mode)})
	}
	return entries, nil
}

// decodeMode maps a git filemode to its classification.
func decodeMode(m filemode.FileMode) FileMode {
	switch m {
	case filemode.Regular:
		return ModeRegular
	case filemode.Executable:
		return ModeExecutable
	case filemode.Symlink:
		return ModeSymlink
	case filemode.Submodule:
		return ModeSubmodule
	default:
		return ModeOther
	}
}
