package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// dummyPasswordHash is compared against when a login names an unknown email,
// so unknown and known accounts cost the same bcrypt work.
var dummyPasswordHash = func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("ark-dummy-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
}()

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckDummyPassword burns one bcrypt comparison and always reports false.
func CheckDummyPassword(password string) bool {
	_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
	return false
}
