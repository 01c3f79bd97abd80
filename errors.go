package folicon

import (
	"errors"
	"fmt"
)

// Failure kinds. Wrapped with %w so callers can match with errors.Is.
var (
	ErrAppDataDir    = errors.New("folicon: cannot resolve app data directory")
	ErrCacheIO       = errors.New("folicon: cache I/O failure")
	ErrDecode        = errors.New("folicon: cached image decode failure")
	ErrSerialization = errors.New("folicon: manifest serialization failure")
	ErrProvider      = errors.New("folicon: icon provider failure")
	ErrRender        = errors.New("folicon: render failure")
)

// ApplyError reports a per-folder icon apply failure. Batch operations
// record it in the failing folder's result slot; sibling folders are
// unaffected.
type ApplyError struct {
	Path string
	Err  error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("folicon: customize folder %q: %v", e.Path, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }

// ResetError reports a per-folder icon reset failure.
type ResetError struct {
	Path string
	Err  error
}

func (e *ResetError) Error() string {
	return fmt.Sprintf("folicon: reset folder %q: %v", e.Path, e.Err)
}

func (e *ResetError) Unwrap() error { return e.Err }

// NoResultError reports that a batch operation produced no result for a
// non-empty input. This cannot happen under the documented batch contracts;
// the single-folder convenience calls surface it instead of treating it as
// a silent success.
type NoResultError struct {
	Op string
}

func (e *NoResultError) Error() string {
	return fmt.Sprintf("folicon: %s returned no result for non-empty input", e.Op)
}
