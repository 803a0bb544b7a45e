package repositories

import "errors"

// ErrNotFound is returned by every repository implementation when a
// lookup matches no record. Callers test for it with errors.Is.
var ErrNotFound = errors.New("record not found")
