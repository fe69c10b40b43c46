// Package password wraps bcrypt hashing for user credentials.
package password

import "golang.org/x/crypto/bcrypt"

// cost matches the work factor the accounts were originally hashed with.
// Changing it only affects new hashes; bcrypt verifies with the parameters
// embedded in each digest.
const cost = 10

// Hash produces a salted one-way digest of plaintext.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. Mismatches and malformed
// digests both report false; Verify never panics or returns an error.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
