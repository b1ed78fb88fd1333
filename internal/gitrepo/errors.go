package gitrepo

import "fmt"

// AccessError indicates the repository could not be opened or read.
type AccessError struct {
	Op  string // "open", "status" or "index"
	Dir string // the repository directory
	Err error
}

func (e *AccessError) Error() string {
	switch e.Op {
	case "status":
		return fmt.Sprintf("collecting git statuses for %s: %v", e.Dir, e.Err)
	case "index":
		return fmt.Sprintf("reading index for repo %s: %v", e.Dir, e.Err)
	default:
		return fmt.Sprintf("opening git repository at %s: %v", e.Dir, e.Err)
	}
}

func (e *AccessError) Unwrap() error { return e.Err }

// OutsideRepoError indicates an absolute path does not lie inside the
// repository it is being staged into.
type OutsideRepoError struct {
	Path string // the offending path
	Root string // the repository root
}

func (e *OutsideRepoError) Error() string {
	return fmt.Sprintf("path %s is not inside repository %s", e.Path, e.Root)
}

// IndexWriteError indicates a path could not be staged.
type IndexWriteError struct {
	Path string // the path being staged
	Err  error
}

func (e *IndexWriteError) Error() string {
	return fmt.Sprintf("adding %s to index: %v", e.Path, e.Err)
}

func (e *IndexWriteError) Unwrap() error { return e.Err }
