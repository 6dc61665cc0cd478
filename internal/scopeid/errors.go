package scopeid

import "errors"

// ErrInvalidIdentifier is returned when a leaf identifier is empty or
// contains the reserved separator. This signals misuse by whoever authored
// the composition unit, so callers are expected to fail fast rather than
// coerce the identifier into something well-formed.
var ErrInvalidIdentifier = errors.New("scopeid: invalid identifier")
