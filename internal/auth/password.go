package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. The stored form is "hex(digest).hex(salt)", which is the
// format the historical database already contains, so it must not change.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16
)

// HashPassword derives a salted scrypt digest of the password. Hashing the
// same password twice yields different stored forms (fresh salt per call).
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	digest, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	return hex.EncodeToString(digest) + "." + hex.EncodeToString(salt), nil
}

// VerifyPassword recomputes the digest with the embedded salt and compares it
// in constant time. Any malformed stored form yields false, never a panic.
func VerifyPassword(supplied, stored string) bool {
	parts := strings.SplitN(stored, ".", 2)
	if len(parts) != 2 {
		return false
	}

	digest, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}

	suppliedDigest, err := scrypt.Key([]byte(supplied), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}

	if len(digest) != len(suppliedDigest) {
		return false
	}
	return subtle.ConstantTimeCompare(digest, suppliedDigest) == 1
}
