package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, ch := range code {
			require.True(t, ch >= '0' && ch <= '9', "code %q is not numeric", code)
		}
		seen[code] = true
	}
	// 100 draws from a million values colliding down to a handful would
	// mean a broken source.
	assert.Greater(t, len(seen), 90)
}

func TestHashTokenDeterministic(t *testing.T) {
	a := hashToken("123456")
	b := hashToken("123456")
	c := hashToken("654321")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // sha256 hex
}

func TestNewResetTokenUnique(t *testing.T) {
	assert.NotEqual(t, newResetToken(), newResetToken())
}
