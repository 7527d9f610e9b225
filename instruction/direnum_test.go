package instruction

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/pathwinder/core/rules"
)

func mustRule(t *testing.T, name string) rules.FilesystemRule {
	t.Helper()
	r, err := rules.NewFilesystemRule(name, `C:\Origin`, `C:\Target`, nil, rules.Simple)
	require.NoError(t, err)
	return r
}

func TestPatternSourceSingleRule(t *testing.T) {
	r := mustRule(t, "x")
	ps := SingleRulePatternSource(r)
	require.Equal(t, PatternSourceSingleRule, ps.Kind())
	require.Equal(t, "x", ps.Rule().Name())
	require.Equal(t, SingleRuleOnly, ps.MatchCondition())
}

func TestPatternSourceContainer(t *testing.T) {
	c := rules.NewRelatedFilesystemRuleContainer()
	require.NoError(t, c.Insert(mustRule(t, "x")))

	ps := RuleContainerPatternSource(c, MatchByPositionInvertAllPriorToSelected, 2)
	require.Equal(t, PatternSourceRuleContainer, ps.Kind())
	require.Same(t, c, ps.Container())
	require.Equal(t, 2, ps.RuleIndex())
}

func TestPatternSourceNone(t *testing.T) {
	ps := NoPatternSource()
	require.Equal(t, PatternSourceNone, ps.Kind())
}

func TestEnumerateDirectories(t *testing.T) {
	entry := NewSingleDirectoryEnumeration(RealOpenedPathSource, NoPatternSource(), false)
	i := EnumerateDirectories([]SingleDirectoryEnumeration{entry})

	require.Len(t, i.DirectoriesToEnumerate(), 1)
	require.Nil(t, i.NamesToInsert())
	require.Equal(t, RealOpenedPathSource, i.DirectoriesToEnumerate()[0].PathSource())
}

func TestEnumerateDirectoriesAndInsertRuleOriginDirectoryNames(t *testing.T) {
	entry := NewSingleDirectoryEnumeration(AssociatedPathSource, NoPatternSource(), true)
	insertion := NewSingleDirectoryNameInsertion(mustRule(t, "sub"))

	i := EnumerateDirectoriesAndInsertRuleOriginDirectoryNames(
		[]SingleDirectoryEnumeration{entry},
		[]SingleDirectoryNameInsertion{insertion},
	)

	require.Len(t, i.DirectoriesToEnumerate(), 1)
	require.Len(t, i.NamesToInsert(), 1)
	require.Equal(t, "sub", i.NamesToInsert()[0].Rule().Name())
	require.True(t, i.DirectoriesToEnumerate()[0].InvertMatches())
}

func TestUseOnlyRuleOriginDirectoryNames(t *testing.T) {
	insertion := NewSingleDirectoryNameInsertion(mustRule(t, "sub"))
	i := UseOnlyRuleOriginDirectoryNames([]SingleDirectoryNameInsertion{insertion})

	require.Nil(t, i.DirectoriesToEnumerate())
	require.Len(t, i.NamesToInsert(), 1)
}
