package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveSingleEnvDomain(t *testing.T) {
	t.Setenv("PATHWINDER_TEST_VAR", "hello")

	r := New()
	v, err := r.ResolveSingle("ENV::PATHWINDER_TEST_VAR")
	require.NoError(t, err)
	require.Equal(t, "hello", v)
}

func TestResolveSingleDefaultDomainIsEnv(t *testing.T) {
	t.Setenv("PATHWINDER_TEST_VAR2", "world")

	r := New()
	v, err := r.ResolveSingle("PATHWINDER_TEST_VAR2")
	require.NoError(t, err)
	require.Equal(t, "world", v)
}

func TestResolveSingleUnknownDomain(t *testing.T) {
	r := New()
	_, err := r.ResolveSingle("NOPE::X")
	require.ErrorIs(t, err, ErrUnknownDomain)
}

func TestResolveSingleUnknownName(t *testing.T) {
	r := New()
	_, err := r.ResolveSingle("ENV::PATHWINDER_DEFINITELY_UNSET_XYZ")
	require.ErrorIs(t, err, ErrUnknownName)
}

func TestResolveSingleUnparseableReference(t *testing.T) {
	r := New()
	_, err := r.ResolveSingle("A::B::C")
	require.ErrorIs(t, err, ErrUnparseableReference)
}

func TestResolveSingleIsIdempotentAndCached(t *testing.T) {
	t.Setenv("PATHWINDER_TEST_VAR3", "first")

	r := New()
	v1, err := r.ResolveSingle("ENV::PATHWINDER_TEST_VAR3")
	require.NoError(t, err)

	// Mutate the environment; cached result must not change.
	t.Setenv("PATHWINDER_TEST_VAR3", "second")
	v2, err := r.ResolveSingle("ENV::PATHWINDER_TEST_VAR3")
	require.NoError(t, err)

	require.Equal(t, v1, v2)
	require.Equal(t, "first", v2)
}

func TestBuiltinDomain(t *testing.T) {
	r := New(WithBuiltinValues(map[string]string{
		"ExecutableBaseName": "myapp.exe",
	}))

	v, err := r.ResolveSingle("BUILTIN::ExecutableBaseName")
	require.NoError(t, err)
	require.Equal(t, "myapp.exe", v)

	_, err = r.ResolveSingle("BUILTIN::Missing")
	require.ErrorIs(t, err, ErrUnknownName)
}

func TestFolderIDDomainCustomLookup(t *testing.T) {
	r := New(WithKnownFolderLookup(func(name string) (string, bool) {
		if name == "Profile" {
			return `C:\Users\tester`, true
		}

		return "", false
	}))

	v, err := r.ResolveSingle("FOLDERID::Profile")
	require.NoError(t, err)
	require.Equal(t, `C:\Users\tester`, v)
}

func TestConfDomainSimple(t *testing.T) {
	r := New()
	r.SetDefinitions(map[string]string{"Greeting": "hello"})

	v, err := r.ResolveSingle("CONF::Greeting")
	require.NoError(t, err)
	require.Equal(t, "hello", v)
}

func TestConfDomainRecursiveReference(t *testing.T) {
	t.Setenv("PATHWINDER_TEST_BASE", "root")

	r := New()
	r.SetDefinitions(map[string]string{
		"Base":   "%ENV::PATHWINDER_TEST_BASE%",
		"Nested": "prefix-%CONF::Base%-suffix",
	})

	v, err := r.ResolveSingle("CONF::Nested")
	require.NoError(t, err)
	require.Equal(t, "prefix-root-suffix", v)
}

func TestConfDomainCycleDetectedAndStateRecovers(t *testing.T) {
	t.Setenv("COMPUTERNAME_TEST", "HOST1")

	r := New()
	r.SetDefinitions(map[string]string{
		"A": "%CONF::B%",
		"B": "%CONF::A%",
	})

	_, err := r.ResolveSingle("CONF::A")
	require.ErrorIs(t, err, ErrCycleDetected)

	// Unrelated resolution afterwards must still succeed (invariant 5).
	v, err := r.ResolveSingle("ENV::COMPUTERNAME_TEST")
	require.NoError(t, err)
	require.Equal(t, "HOST1", v)
}

func TestResolveAllLiteralAndReferences(t *testing.T) {
	t.Setenv("PATHWINDER_TEST_DIR", `C:\Target`)

	r := New()
	got, err := r.ResolveAll(`prefix-%ENV::PATHWINDER_TEST_DIR%-suffix`)
	require.NoError(t, err)
	require.Equal(t, `prefix-C:\Target-suffix`, got)
}

func TestResolveAllDoublePercentEmitsLiteral(t *testing.T) {
	r := New()
	got, err := r.ResolveAll(`100%%done`)
	require.NoError(t, err)
	require.Equal(t, `100%done`, got)
}

func TestResolveAllUnmatchedDelimiters(t *testing.T) {
	r := New()
	_, err := r.ResolveAll(`prefix-%ENV::X-suffix`)
	require.ErrorIs(t, err, ErrUnmatchedDelimiters)
}

func TestResolveAllEscapesCharsInExpansionOnly(t *testing.T) {
	t.Setenv("PATHWINDER_TEST_PATH", `C:\A\B`)

	r := New()
	got, err := r.ResolveAll(`lit\eral-%ENV::PATHWINDER_TEST_PATH%`, EscapeOptions{Chars: `\`})
	require.NoError(t, err)
	// Literal portion ("lit\eral-") is untouched; only the expansion's
	// backslashes are escaped.
	require.Equal(t, `lit\eral-C:\\A\\B`, got)
}

func TestResolveAllNoReferencesIsPassthrough(t *testing.T) {
	r := New()
	got, err := r.ResolveAll(`plain text, no percent signs`)
	require.NoError(t, err)
	require.Equal(t, `plain text, no percent signs`, got)
}

func TestResultLengthBoundEnforced(t *testing.T) {
	t.Setenv("PATHWINDER_TEST_LONG", "0123456789")

	r := New(WithMaxResultLength(5))
	_, err := r.ResolveSingle("ENV::PATHWINDER_TEST_LONG")
	require.ErrorIs(t, err, ErrResultTooLong)
}

func TestCanonicalizeRelative(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"no-dots", `C:\A\B\C`, `C:\A\B\C`},
		{"single-dot", `C:\A\.\B`, `C:\A\B`},
		{"parent", `C:\A\B\..\C`, `C:\A\C`},
		{"root-only", `C:`, `C:`},
		{"collapse-to-root", `C:\A\..`, `C:\`},
		{"empty", ``, ``},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CanonicalizeRelative(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCanonicalizeRelativeEscapesRoot(t *testing.T) {
	t.Parallel()

	_, err := CanonicalizeRelative(`C:\A\..\..`)
	require.ErrorIs(t, err, ErrPathEscapesRoot)
}
