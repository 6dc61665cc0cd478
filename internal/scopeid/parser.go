package scopeid

import (
	"fmt"
	"strings"
)

// Parse creates a Path by splitting a canonical qualified identifier back
// into its segments, validating each one. Parsing a qualified identifier
// and re-joining it is the identity, which is what makes nested composition
// equivalent to direct multi-segment composition.
func Parse(qualified string) (Path, error) {
	if qualified == "" {
		return nil, fmt.Errorf("%w: identifier cannot be empty", ErrInvalidIdentifier)
	}

	segments := strings.Split(qualified, Separator)
	path := make(Path, 0, len(segments))
	for _, segment := range segments {
		if err := ValidateLeaf(segment); err != nil {
			return nil, fmt.Errorf("invalid segment in %q: %w", qualified, err)
		}
		path = append(path, segment)
	}
	return path, nil
}
