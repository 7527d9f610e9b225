package ptree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertFindRoundTrip(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)

	ref, inserted := tr.Insert(`C:\Origin1`, "container-1")
	require.True(t, inserted)
	data, ok := tr.Data(ref)
	require.True(t, ok)
	require.Equal(t, "container-1", data)

	found := tr.Find(`C:\Origin1`)
	require.True(t, tr.Valid(found))
	data, ok = tr.Data(found)
	require.True(t, ok)
	require.Equal(t, "container-1", data)
}

func TestInsertDoesNotOverwrite(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)

	_, inserted := tr.Insert(`C:\Origin1`, "first")
	require.True(t, inserted)

	ref, inserted := tr.Insert(`C:\Origin1`, "second")
	require.False(t, inserted)

	data, _ := tr.Data(ref)
	require.Equal(t, "first", data)
}

func TestUpdateOverwrites(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)
	tr.Insert(`C:\Origin1`, "first")
	tr.Update(`C:\Origin1`, "second")

	data, ok := tr.Data(tr.Find(`C:\Origin1`))
	require.True(t, ok)
	require.Equal(t, "second", data)
}

func TestFindMissingReturnsInvalid(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)
	require.False(t, tr.Valid(tr.Find(`C:\Missing`)))
}

func TestEraseRemovesDataAndPrunesAncestors(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)
	tr.Insert(`C:\A\B`, "leaf")

	require.True(t, tr.Erase(`C:\A\B`))
	require.False(t, tr.Valid(tr.Find(`C:\A\B`)))
	// intermediate "C:\A" never had data and B was its only child; both
	// should be pruned, so traversal to either no longer succeeds.
	require.False(t, tr.Valid(tr.TraverseTo(`C:\A\B`)))
}

func TestEraseKeepsAncestorWithData(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)
	tr.Insert(`C:\A`, "mid")
	tr.Insert(`C:\A\B`, "leaf")

	require.True(t, tr.Erase(`C:\A\B`))
	require.True(t, tr.Valid(tr.Find(`C:\A`)))
}

func TestEraseKeepsAncestorWithSurvivingChildren(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)
	tr.Insert(`C:\A\B`, "b")
	tr.Insert(`C:\A\C`, "c")

	require.True(t, tr.Erase(`C:\A\B`))
	// "C:\A" has no data but still has child "C", so traversal survives.
	require.True(t, tr.Valid(tr.TraverseTo(`C:\A`)))
	require.True(t, tr.Valid(tr.Find(`C:\A\C`)))
}

func TestEraseWithoutDataReturnsFalse(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)
	require.False(t, tr.Erase(`C:\Nope`))
}

func TestTraverseToIntermediateNodeWithoutData(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)
	tr.Insert(`C:\A\B\C`, "leaf")

	ref := tr.TraverseTo(`C:\A\B`)
	require.True(t, tr.Valid(ref))
	_, ok := tr.Data(ref)
	require.False(t, ok)
}

func TestLongestMatchingPrefix(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)
	tr.Insert(`C:\Origin1`, "r1")
	tr.Insert(`C:\Origin1\Origin2`, "r2")

	ref := tr.LongestMatchingPrefix(`C:\Origin1\Origin2\file.txt`)
	data, ok := tr.Data(ref)
	require.True(t, ok)
	require.Equal(t, "r2", data)

	ref = tr.LongestMatchingPrefix(`C:\Origin1\somethingelse\file.txt`)
	data, ok = tr.Data(ref)
	require.True(t, ok)
	require.Equal(t, "r1", data)
}

func TestLongestMatchingPrefixNoMatch(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)
	tr.Insert(`C:\Origin1`, "r1")

	ref := tr.LongestMatchingPrefix(`D:\Other\file.txt`)
	require.False(t, tr.Valid(ref))
}

func TestLongestMatchingPrefixRootHasData(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)
	tr.Insert("", "root-data")
	tr.Insert(`C:\Origin1`, "r1")

	ref := tr.LongestMatchingPrefix(`D:\Unrelated`)
	data, ok := tr.Data(ref)
	require.True(t, ok)
	require.Equal(t, "root-data", data)
}

func TestEmptyRootReturnsInvalidForAllQueries(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)
	require.False(t, tr.Valid(tr.Find(`C:\Anything`)))
	require.False(t, tr.Valid(tr.LongestMatchingPrefix(`C:\Anything`)))
}

func TestKeyOfOnlyDelimitersIsEmptyKey(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)
	a, _ := tr.Insert(`\\\`, "only-delims")
	b, _ := tr.Insert(``, "also-empty")

	require.Equal(t, a, b)
	data, ok := tr.Data(a)
	require.True(t, ok)
	require.Equal(t, "only-delims", data)
}

func TestMultipleDelimiters(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`, `/`)
	tr.Insert(`C:\Origin1/Sub`, "mixed")

	ref := tr.Find(`C:\Origin1\Sub`)
	require.True(t, tr.Valid(ref))
}

func TestChildrenAndParent(t *testing.T) {
	t.Parallel()

	tr := New[string](`\`)
	root := tr.Find(``)
	tr.Insert(`C:\A`, "a")
	tr.Insert(`C:\B`, "b")

	// root ref is 0 even without data; use TraverseTo for a stable handle.
	rootRef := tr.TraverseTo(``)
	require.False(t, tr.Valid(root)) // root has no data yet
	children := tr.Children(rootRef)
	// both keys share the "C:" component, so the root has one child.
	require.Len(t, children, 1)

	for _, c := range children {
		require.Equal(t, rootRef, tr.Parent(c))
	}
}
