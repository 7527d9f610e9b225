package strs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamespacePrefix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		prefix string
	}{
		{"none", `C:\Dir\file.txt`, ""},
		{"nt-device", `\??\C:\Dir`, `\??\`},
		{"win32-device", `\\?\C:\Dir`, `\\?\`},
		{"dos-device", `\\.\C:\Dir`, `\\.\`},
		{"case-insensitive", `\??\c:\dir`, `\??\`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.prefix, NamespacePrefix(tc.input))
		})
	}
}

func TestTrimNamespacePrefix(t *testing.T) {
	t.Parallel()

	prefix, body := TrimNamespacePrefix(`\??\C:\Dir\file.txt`)
	require.Equal(t, `\??\`, prefix)
	require.Equal(t, `C:\Dir\file.txt`, body)

	prefix, body = TrimNamespacePrefix(`C:\Dir\file.txt`)
	require.Empty(t, prefix)
	require.Equal(t, `C:\Dir\file.txt`, body)
}

func TestHasDriveLetterPrefix(t *testing.T) {
	t.Parallel()

	require.True(t, HasDriveLetterPrefix(`C:\Dir`))
	require.True(t, HasDriveLetterPrefix(`c:`))
	require.False(t, HasDriveLetterPrefix(`Dir\file`))
	require.False(t, HasDriveLetterPrefix(``))
	require.False(t, HasDriveLetterPrefix(`C`))
}

func TestIsVolumeRoot(t *testing.T) {
	t.Parallel()

	require.True(t, IsVolumeRoot(`C:\`))
	require.False(t, IsVolumeRoot(`C:`))
	require.False(t, IsVolumeRoot(`C:\Dir`))
}

func TestRemoveTrailing(t *testing.T) {
	t.Parallel()

	require.Equal(t, `C:\Dir`, RemoveTrailing(`C:\Dir\\\`, '\\'))
	require.Equal(t, ``, RemoveTrailing(`\\\`, '\\'))
	require.Equal(t, `C:\Dir`, RemoveTrailing(`C:\Dir`, '\\'))
}

func TestParentOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		parent string
	}{
		{"simple", `C:\Dir\Sub\file.txt`, `C:\Dir\Sub`},
		{"trailing-sep", `C:\Dir\Sub\`, `C:\Dir`},
		{"one-level", `C:\Dir`, `C:\`},
		{"volume-root", `C:\`, ""},
		{"drive-only", `C:`, ""},
		{"no-separator", `file.txt`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.parent, ParentOf(tc.input))
		})
	}
}

func TestBaseName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", `C:\Dir\Sub`, "Sub"},
		{"trailing-sep", `C:\Dir\Sub\`, "Sub"},
		{"no-separator", `file.txt`, "file.txt"},
		{"drive-only", `C:`, "C:"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, BaseName(tc.input))
		})
	}
}

func TestEqualFold(t *testing.T) {
	t.Parallel()

	require.True(t, EqualFold(`C:\Dir`, `c:\dir`))
	require.False(t, EqualFold(`C:\Dir`, `C:\Dir2`))
	require.True(t, EqualFold("", ""))
}

func TestHasPrefixFold(t *testing.T) {
	t.Parallel()

	require.True(t, HasPrefixFold(`C:\Dir\file.txt`, `c:\dir`))
	require.False(t, HasPrefixFold(`C:\Dir`, `C:\Dir\Sub`))
}

func TestToLowerASCII(t *testing.T) {
	t.Parallel()

	require.Equal(t, `c:\dir\file.txt`, ToLowerASCII(`C:\Dir\FILE.txt`))
}

func TestTokenizeNullDelimited(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"a", "b", "c"}, TokenizeNullDelimited("a\x00b\x00c\x00"))
	require.Nil(t, TokenizeNullDelimited(""))
}
