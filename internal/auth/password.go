package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost matches the work factor used for all existing hashes.
const DefaultBcryptCost = 10

// HashPassword returns the bcrypt hash of a plaintext password. It is called
// only when the password field is actually being set or changed.
func HashPassword(plaintext string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
