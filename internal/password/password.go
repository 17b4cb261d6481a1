// Package password hashes and verifies account passwords with salted PBKDF2-HMAC-SHA256.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Algorithm is the tag stored in front of every encoded credential.
	Algorithm = "pbkdf2_sha256"
	// Iterations of the key derivation.
	Iterations = 120000

	saltBytes = 16
	keyLength = sha256.Size
)

// Unusable is stored for accounts created without a password. It never verifies.
const Unusable = "AUTH_DISABLED"

// Hash returns "<algorithm>$<salt>$<digest>" for the given password.
func Hash(password string) (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)

	return strings.Join([]string{Algorithm, salt, derive(password, salt)}, "$"), nil
}

// Verify reports whether password matches the encoded credential.
// Malformed credentials and unknown algorithms simply do not match.
func Verify(password, encoded string) bool {
	parts := strings.SplitN(encoded, "$", 3)
	if len(parts) != 3 || parts[0] != Algorithm || parts[1] == "" || parts[2] == "" {
		return false
	}

	candidate := derive(password, parts[1])
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(parts[2])) == 1
}

func derive(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), Iterations, keyLength, sha256.New)
	return hex.EncodeToString(key)
}
