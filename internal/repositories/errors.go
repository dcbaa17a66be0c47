package repositories

import "errors"

// ErrNotFound is returned when a write touched zero rows.
var ErrNotFound = errors.New("record not found")
