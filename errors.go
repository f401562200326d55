package wadlevel

import (
	"errors"
	"fmt"
)

// Errors returned while opening archives and building levels. Use errors.Is
// to test for them; most are wrapped with the offending name or offset.
var (
	ErrNotFound             = errors.New("archive not found")
	ErrOutOfRange           = errors.New("read out of range")
	ErrBadIdentification    = errors.New("bad identification")
	ErrLumpNotFound         = errors.New("lump not found")
	ErrNotLevelMarker       = errors.New("not a level marker")
	ErrMalformedMarkerGroup = errors.New("malformed level marker group")
	ErrMissingLump          = errors.New("missing level lump")
	ErrLevelNotFound        = errors.New("level not found")
)

// RangeError reports a read of Length bytes at Offset from a buffer of Size bytes.
type RangeError struct {
	Offset int
	Length int
	Size   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("read out of range: %d bytes at offset %d, buffer is %d bytes", e.Length, e.Offset, e.Size)
}

// Is makes errors.Is(err, ErrOutOfRange) true for any *RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// LevelError records why a single level could not be built.
type LevelError struct {
	Name string
	Err  error
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("level %s: %v", e.Name, e.Err)
}

func (e *LevelError) Unwrap() error {
	return e.Err
}

// checkRange returns a *RangeError unless [off, off+n) lies within a buffer of size bytes.
func checkRange(off, n, size int) error {
	if off < 0 || n < 0 || off > size || n > size-off {
		return &RangeError{Offset: off, Length: n, Size: size}
	}
	return nil
}
