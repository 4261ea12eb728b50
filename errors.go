package sm64

import (
	"errors"
	"fmt"
)

// ValidROMHash is the lowercase hex SHA-1 digest of the only accepted
// ROM image, Super Mario 64 (USA).
const ValidROMHash = "9bef1128717f958171a4afac3ed78ee2bb4e86ce"

// ErrInvalidMarioPosition is returned by CreateMario when there is no
// surface beneath the requested spawn coordinates.
var ErrInvalidMarioPosition = errors.New("invalid Mario position, ensure coordinates are above a surface")

// ErrLibraryInUse is returned by New when another Sm64 is still live in
// this process. The native library holds process-wide state and cannot
// be initialized twice.
var ErrLibraryInUse = errors.New("libsm64 is already initialized in this process")

// InvalidROMError is returned by New when the supplied bytes are not
// the Super Mario 64 (USA) ROM.
type InvalidROMError struct {
	// Hash is the observed lowercase hex SHA-1 digest.
	Hash string
}

func (e *InvalidROMError) Error() string {
	return fmt.Sprintf("invalid Super Mario 64 rom: found hash '%s', expected hash '%s'", e.Hash, ValidROMHash)
}
