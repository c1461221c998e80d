package smchash

import (
	"errors"
	"fmt"
)

// ErrInvalidSecretLength is returned by NewSecretFromSlice when the input
// slice does not have exactly nine entries.
var ErrInvalidSecretLength = errors.New("smchash: secret must have exactly 9 entries")

func errInvalidSecretEntry(i int, reason string) error {
	return fmt.Errorf("smchash: secret entry %d invalid: %s", i, reason)
}

func errInvalidSecretPair(i, j int) error {
	return fmt.Errorf("smchash: secret entries %d and %d are within the minimum Hamming distance", i, j)
}
