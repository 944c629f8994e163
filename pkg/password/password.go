package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Cost is fixed so every stored hash carries the same work factor.
const Cost = bcrypt.DefaultCost

// HashPassword salts and hashes a plaintext password. The salt is drawn
// fresh on every call, so hashing the same input twice gives different output.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash reports whether password matches hash. A malformed hash
// is a failed check, not an error.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
