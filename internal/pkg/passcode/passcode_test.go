package passcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := Hash("4321")
	require.NoError(t, err)
	require.NotEqual(t, "4321", hashed)

	require.True(t, Verify("4321", hashed))
	require.False(t, Verify("1234", hashed))
}

func TestIsHashed(t *testing.T) {
	hashed, err := Hash("123456")
	require.NoError(t, err)
	require.True(t, IsHashed(hashed))

	// Legacy plaintext values never look like a hash
	for _, plain := range []string{"1234", "123456", "$2a$", ""} {
		require.False(t, IsHashed(plain), "plain %q misread as hash", plain)
	}
}

func TestMatches_BothRepresentations(t *testing.T) {
	hashed, err := Hash("4321")
	require.NoError(t, err)

	// Hashed row
	require.True(t, Matches("4321", hashed))
	require.False(t, Matches("0000", hashed))

	// Legacy plaintext row the migration has not reached
	require.True(t, Matches("4321", "4321"))
	require.False(t, Matches("0000", "4321"))

	// Empty stored value never matches
	require.False(t, Matches("", ""))
}

func TestValidLength(t *testing.T) {
	cases := []struct {
		plain string
		want  bool
	}{
		{"123", false},
		{"1234", true},
		{"12345", true},
		{"123456", true},
		{"1234567", false},
		{"", false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, ValidLength(tc.plain), "passcode %q", tc.plain)
	}
}
