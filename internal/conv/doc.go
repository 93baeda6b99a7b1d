// Package conv provides safe integer conversion utilities for bit indices.
//
// These functions perform bounds checking so that negative or oversized
// values coming from untrusted input (command line arguments, config) are
// rejected instead of wrapping around into a valid-looking bit index.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices bounded by a register width), use direct type casts instead.
package conv
