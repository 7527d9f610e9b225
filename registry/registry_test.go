package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pathwinder/core/fsquery"
	"github.com/pathwinder/core/rules"
)

func TestAddRuleAndFinalize(t *testing.T) {
	reg := New(WithFileSystemQuerier(fsquery.NeverQuerier{}))

	_, err := reg.AddRule("r1", `C:\Origin1`, `C:\Target1`, []string{"*.txt"}, rules.Simple)
	require.NoError(t, err)

	finalized, err := reg.Finalize()
	require.NoError(t, err)
	require.NotEmpty(t, finalized.GenerationID())

	rule, ok := finalized.RuleByName("r1")
	require.True(t, ok)
	require.Equal(t, `C:\Origin1`, rule.OriginDirectory())
}

func TestAddRuleDuplicateName(t *testing.T) {
	reg := New(WithFileSystemQuerier(fsquery.NeverQuerier{}))

	_, err := reg.AddRule("r1", `C:\Origin1`, `C:\Target1`, nil, rules.Simple)
	require.NoError(t, err)

	_, err = reg.AddRule("r1", `C:\Origin2`, `C:\Target2`, nil, rules.Simple)
	require.ErrorIs(t, err, ErrDuplicateRuleName)
}

func TestAddRuleAfterFinalizeFails(t *testing.T) {
	reg := New(WithFileSystemQuerier(fsquery.NeverQuerier{}))
	_, err := reg.Finalize()
	require.NoError(t, err)

	_, err = reg.AddRule("r1", `C:\Origin1`, `C:\Target1`, nil, rules.Simple)
	require.ErrorIs(t, err, ErrAlreadyFinalized)
}

func TestFinalizeTwiceFails(t *testing.T) {
	reg := New(WithFileSystemQuerier(fsquery.NeverQuerier{}))
	_, err := reg.Finalize()
	require.NoError(t, err)

	_, err = reg.Finalize()
	require.ErrorIs(t, err, ErrAlreadyFinalized)
}

func TestSharedOriginAllowed(t *testing.T) {
	reg := New(WithFileSystemQuerier(fsquery.NeverQuerier{}))

	_, err := reg.AddRule("r1", `C:\Origin`, `C:\Target1`, []string{"*.a"}, rules.Simple)
	require.NoError(t, err)

	_, err = reg.AddRule("r2", `C:\Origin`, `C:\Target2`, []string{"*.b"}, rules.Simple)
	require.NoError(t, err)

	finalized, err := reg.Finalize()
	require.NoError(t, err)

	container := finalized.Tree()
	_ = container
	require.Len(t, finalized.AllRules(), 2)
}

func TestFinalizeRejectsTargetCollidesWithOtherOrigin(t *testing.T) {
	reg := New(WithFileSystemQuerier(fsquery.NeverQuerier{}))

	_, err := reg.AddRule("r1", `C:\A`, `C:\ATarget`, nil, rules.Simple)
	require.NoError(t, err)

	_, err = reg.AddRule("r2", `C:\ATarget`, `C:\B`, nil, rules.Simple)
	require.NoError(t, err)

	_, err = reg.Finalize()
	require.ErrorIs(t, err, ErrTargetCollision)
}

func TestFinalizeRejectsOriginEqualsOtherTarget(t *testing.T) {
	reg := New(WithFileSystemQuerier(fsquery.NeverQuerier{}))

	_, err := reg.AddRule("r1", `C:\A`, `C:\Shared`, nil, rules.Simple)
	require.NoError(t, err)

	_, err = reg.AddRule("r2", `C:\Shared`, `C:\B`, nil, rules.Simple)
	require.NoError(t, err)

	_, err = reg.Finalize()
	require.ErrorIs(t, err, ErrTargetCollision)
}

func TestFinalizeAllowsOriginParentAsAnotherRuleOrigin(t *testing.T) {
	reg := New(WithFileSystemQuerier(fsquery.NeverQuerier{}))

	_, err := reg.AddRule("parent", `C:\Base`, `C:\BaseTarget`, nil, rules.Simple)
	require.NoError(t, err)

	_, err = reg.AddRule("child", `C:\Base\Sub`, `C:\SubTarget`, nil, rules.Simple)
	require.NoError(t, err)

	_, err = reg.Finalize()
	require.NoError(t, err)
}

func TestFinalizeRejectsMissingOriginParent(t *testing.T) {
	reg := New(WithFileSystemQuerier(fsquery.NeverQuerier{}))

	_, err := reg.AddRule("orphan", `C:\NoSuchBase\Sub`, `C:\Target`, nil, rules.Simple)
	require.NoError(t, err)

	_, err = reg.Finalize()
	require.ErrorIs(t, err, ErrMissingOriginParent)
}

func TestHasDirectoryQueries(t *testing.T) {
	reg := New(WithFileSystemQuerier(fsquery.NeverQuerier{}))

	_, err := reg.AddRule("r1", `C:\Origin1`, `C:\Target1`, nil, rules.Simple)
	require.NoError(t, err)

	require.True(t, reg.HasOriginDirectory(`c:\origin1`))
	require.True(t, reg.HasTargetDirectory(`C:\Target1`))
	require.True(t, reg.HasDirectory(`C:\Target1`))
	require.False(t, reg.HasDirectory(`C:\Nope`))
}

func TestAddRuleFromConfigSection(t *testing.T) {
	reg := New(WithFileSystemQuerier(fsquery.NeverQuerier{}))

	rule, err := reg.AddRuleFromConfigSection("r1", ConfigSection{
		OriginDirectory: `C:\Origin1`,
		TargetDirectory: `C:\Target1`,
		FilePattern:     []string{"*.sav"},
		RedirectMode:    "Overlay",
	})
	require.NoError(t, err)
	require.Equal(t, rules.Overlay, rule.Mode())
}

func TestAddRuleFromConfigSectionMissingField(t *testing.T) {
	reg := New(WithFileSystemQuerier(fsquery.NeverQuerier{}))

	_, err := reg.AddRuleFromConfigSection("r1", ConfigSection{TargetDirectory: `C:\Target1`})
	require.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestParseRedirectModeUnknown(t *testing.T) {
	_, err := ParseRedirectMode("Bogus")
	require.ErrorIs(t, err, ErrUnknownRedirectMode)
}
