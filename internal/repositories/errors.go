package repositories

import "errors"

// ErrNotFound is wrapped by repository methods when no record matches.
// Callers should test with errors.Is.
var ErrNotFound = errors.New("not found")
