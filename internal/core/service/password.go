package service

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor. Raising it slows every login, so it
// only moves with an explicit ops decision.
const hashCost = 10

// PasswordHasher derives and verifies salted bcrypt hashes. Each Hash call
// draws a fresh salt, so two hashes of the same password never match
// byte-for-byte.
type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

// Hash derives a self-contained hash string embedding algorithm, salt and
// cost. Length policy on the plaintext is the caller's job.
func (PasswordHasher) Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// hash verifies as false rather than erroring, so a caller cannot tell a
// corrupted record apart from a wrong password.
func (PasswordHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
