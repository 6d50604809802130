package arrayops

import "errors"

// ErrEmptyInput indicates an operation that needs at least one element
// was given an empty slice.
var ErrEmptyInput = errors.New("arrayops: input slice must be non-empty")
