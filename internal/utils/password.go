package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost trades hash strength against login latency. Admin logins are
// rare, so we run above the library default.
const bcryptCost = 14

// HashPassword returns the bcrypt hash of an account password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches the stored hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
