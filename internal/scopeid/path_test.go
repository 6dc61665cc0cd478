package scopeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	testCases := []struct {
		name       string
		path       Path
		leaf       string
		expectErr  bool
		expectedID string
	}{
		{
			name:       "root scope yields bare leaf",
			path:       Root(),
			leaf:       "hist1",
			expectedID: "hist1",
		},
		{
			name:       "single-segment scope",
			path:       MustPath("hist1"),
			leaf:       "var",
			expectedID: "hist1-var",
		},
		{
			name:       "multi-segment scope",
			path:       MustPath("dash", "hist1"),
			leaf:       "bins",
			expectedID: "dash-hist1-bins",
		},
		{
			name:      "error - empty leaf",
			path:      MustPath("hist1"),
			leaf:      "",
			expectErr: true,
		},
		{
			name:      "error - leaf contains separator",
			path:      Root(),
			leaf:      "x-y",
			expectErr: true,
		},
		{
			name:      "error - leaf with whitespace",
			path:      Root(),
			leaf:      "a b",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := Compose(tc.path, tc.leaf)
			if tc.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidIdentifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)
		})
	}
}

func TestCompose_Deterministic(t *testing.T) {
	path := MustPath("dash", "hist1")
	first, err := Compose(path, "plot")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Compose(path, "plot")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// Distinct scope paths with the same leaf must never collide, and distinct
// leaves under one path must never collide.
func TestCompose_NoCollisions(t *testing.T) {
	a, err := Compose(MustPath("hist1"), "var")
	require.NoError(t, err)
	b, err := Compose(MustPath("hist2"), "var")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	c, err := Compose(MustPath("hist1"), "bins")
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	// Deeper nesting with the same leaf is also distinct.
	d, err := Compose(MustPath("dash", "hist1"), "var")
	require.NoError(t, err)
	assert.NotEqual(t, a, d)
}

// Flattening nested composition matches direct multi-segment composition:
// qualifying [a, b] with "c" equals joining [a] with the parsed "b-c" path
// and taking its canonical form.
func TestCompose_FlatteningEquivalence(t *testing.T) {
	direct, err := Compose(MustPath("a", "b"), "c")
	require.NoError(t, err)

	suffix, err := Parse("b-c")
	require.NoError(t, err)
	flattened := MustPath("a").Join(suffix)

	assert.Equal(t, direct, flattened.String())
}

func TestPath_Child(t *testing.T) {
	root := Root()
	child, err := root.Child("dash")
	require.NoError(t, err)
	grandchild, err := child.Child("hist1")
	require.NoError(t, err)

	assert.Equal(t, "dash", child.String())
	assert.Equal(t, "dash-hist1", grandchild.String())

	// Derivation must not mutate the parent.
	assert.True(t, root.IsRoot())
	assert.Equal(t, "dash", child.String())

	_, err = child.Child("bad-leaf")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestPath_String(t *testing.T) {
	assert.Equal(t, "", Root().String())
	assert.Equal(t, "hist1", MustPath("hist1").String())
	assert.Equal(t, "dash-hist1", MustPath("dash", "hist1").String())
}

func TestPath_Equal(t *testing.T) {
	assert.True(t, MustPath("a", "b").Equal(MustPath("a", "b")))
	assert.False(t, MustPath("a", "b").Equal(MustPath("a")))
	assert.False(t, MustPath("a", "b").Equal(MustPath("a", "c")))
	assert.True(t, Root().Equal(Path{}))
}

func TestMustCompose_PanicsOnInvalidLeaf(t *testing.T) {
	assert.Panics(t, func() { MustCompose(Root(), "x-y") })
	assert.Panics(t, func() { MustPath("ok", "not ok") })
}
