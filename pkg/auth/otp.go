package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// generateCode returns a uniformly random 6-digit verification code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// newResetToken returns a high-entropy single-use token suitable for
// embedding in a public URL.
func newResetToken() string {
	return uuid.NewString()
}

// hashToken is the one-way digest stored in place of raw codes and tokens.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
