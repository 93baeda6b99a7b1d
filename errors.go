package bitreg

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every *ErrIndexOutOfRange via errors.Is.
	ErrOutOfRange = errors.New("bit index out of range")

	// ErrUnsupportedWidth is returned when a width is not one of 8, 16, 32, 64 or 128.
	ErrUnsupportedWidth = errors.New("unsupported register width")
)

// ErrIndexOutOfRange indicates a bit index at or beyond the register width.
//
// Register operations never return it; they report out-of-range indices as a
// false result. It is produced by Validate for callers that want strict checks.
type ErrIndexOutOfRange struct {
	Index uint
	Width uint
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bit index %d out of range for %d-bit register", e.Index, e.Width)
}

func (e *ErrIndexOutOfRange) Is(target error) bool { return target == ErrOutOfRange }

// ParseWidth checks that w names a supported register width.
func ParseWidth(w uint) (uint, error) {
	switch w {
	case 8, 16, 32, 64, 128:
		return w, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedWidth, w)
	}
}
