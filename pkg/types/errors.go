package types

import "errors"

// ErrNotFound is returned by repositories and services when no record has
// the requested id.
var ErrNotFound = errors.New("record not found")
