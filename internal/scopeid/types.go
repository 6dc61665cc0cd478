package scopeid

import (
	"fmt"
	"regexp"
)

// Separator is the reserved character that joins scope path segments into a
// qualified identifier. It is disallowed inside every leaf identifier so
// that qualified identifiers remain unambiguous.
const Separator = "-"

// leafRegex matches a valid leaf identifier. The separator is deliberately
// absent from the character class.
var leafRegex = regexp.MustCompile(`^[a-zA-Z0-9_.]+$`)

// ValidateLeaf reports whether name can be used as a leaf identifier.
// A leaf must be non-empty and must not contain the reserved separator.
func ValidateLeaf(name string) error {
	if name == "" {
		return fmt.Errorf("%w: identifier cannot be empty", ErrInvalidIdentifier)
	}
	if !leafRegex.MatchString(name) {
		return fmt.Errorf("%w: %q must match %s and cannot contain the reserved separator %q",
			ErrInvalidIdentifier, name, leafRegex.String(), Separator)
	}
	return nil
}

// Path is the ordered sequence of identifiers from the application root to
// a composition unit. The root scope is the empty path. Paths are derived,
// never mutated: Child returns a fresh Path and leaves the receiver intact.
type Path []string

// Root returns the empty scope path.
func Root() Path {
	return Path{}
}

// NewPath builds a Path from the given segments, validating each one.
func NewPath(segments ...string) (Path, error) {
	p := make(Path, 0, len(segments))
	for _, s := range segments {
		if err := ValidateLeaf(s); err != nil {
			return nil, err
		}
		p = append(p, s)
	}
	return p, nil
}

// MustPath is like NewPath but panics on an invalid segment. It is intended
// for compile-time-constant paths in module code and tests.
func MustPath(segments ...string) Path {
	p, err := NewPath(segments...)
	if err != nil {
		panic(err)
	}
	return p
}
