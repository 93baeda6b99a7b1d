package conv

import (
	"fmt"
	"math"
	"strconv"
)

// IntToUint converts int to uint safely.
func IntToUint(v int) (uint, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint (negative)", v)
	}
	return uint(v), nil
}

// Uint64ToUint converts uint64 to uint safely.
func Uint64ToUint(v uint64) (uint, error) {
	// On 64-bit systems this is always false
	if v > uint64(math.MaxUint) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint (too large)", v)
	}
	return uint(v), nil
}

// ParseIndex parses a base-10 bit index.
func ParseIndex(s string) (uint, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bit index %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid bit index %q: negative", s)
	}
	return Uint64ToUint(uint64(v))
}

// ParseIndices parses every element of args with ParseIndex.
func ParseIndices(args []string) ([]uint, error) {
	out := make([]uint, 0, len(args))
	for _, a := range args {
		idx, err := ParseIndex(a)
		if err != nil {
			return nil, err
		}
		out = append(out, idx)
	}
	return out, nil
}
