package scopeid

import (
	"slices"
	"strings"
)

// String serializes the Path into its canonical joined representation.
// The root path serializes to the empty string.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// IsRoot reports whether the path is the application root (empty) scope.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Equal checks for equality between two paths segment by segment.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// Child derives a new path by appending a validated leaf identifier.
// The receiver is not modified.
func (p Path) Child(leaf string) (Path, error) {
	if err := ValidateLeaf(leaf); err != nil {
		return nil, err
	}
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = leaf
	return child, nil
}

// Join derives a new path by appending every segment of other. Both paths
// are assumed already validated, so no re-validation happens here.
func (p Path) Join(other Path) Path {
	joined := make(Path, 0, len(p)+len(other))
	joined = append(joined, p...)
	joined = append(joined, other...)
	return joined
}

// Qualify composes the qualified identifier for a leaf under this path.
// For the root path the qualified identifier is the leaf itself.
func (p Path) Qualify(leaf string) (string, error) {
	return Compose(p, leaf)
}

// Compose produces the globally unique qualified identifier for leaf under
// the given scope path. It is pure and deterministic: equal inputs always
// yield equal outputs, and distinct scope paths with identical leaves yield
// distinct outputs. An empty or separator-bearing leaf fails with
// ErrInvalidIdentifier.
func Compose(path Path, leaf string) (string, error) {
	if err := ValidateLeaf(leaf); err != nil {
		return "", err
	}
	if len(path) == 0 {
		return leaf, nil
	}
	return path.String() + Separator + leaf, nil
}

// MustCompose is like Compose but panics on an invalid leaf.
func MustCompose(path Path, leaf string) string {
	id, err := Compose(path, leaf)
	if err != nil {
		panic(err)
	}
	return id
}
