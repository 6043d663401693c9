package ledger

import "fmt"

// LoadError reports a fatal problem reading the input: missing file,
// unreadable content, or a malformed header. Column is set when a required
// input column is absent.
type LoadError struct {
	Path   string
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("load %s: missing required column %q", e.Path, e.Column)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a fatal problem writing the output file.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string { return fmt.Sprintf("save %s: %v", e.Path, e.Err) }

func (e *SaveError) Unwrap() error { return e.Err }

// StateError signals that a pipeline stage was invoked before its
// prerequisite stage had produced data. This is a programmer error, not a
// data problem.
type StateError struct {
	Op       string // the stage that was called
	Requires string // the stage that must run first
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s called before %s has produced data", e.Op, e.Requires)
}
