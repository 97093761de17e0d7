package passcode

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	// MinLength and MaxLength bound a valid plaintext passcode
	MinLength = 4
	MaxLength = 6

	// hashLength is the length of a bcrypt encoded hash
	hashLength = 60
)

// bcrypt version prefixes embedded in every encoded hash
var hashPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// Hash hashes a passcode using bcrypt
func Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a plaintext passcode with a bcrypt hash
func Verify(plain, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	return err == nil
}

// IsHashed reports whether a stored passcode already carries the bcrypt
// marker. Legacy plaintext passcodes are 4-6 characters, so the prefix
// and length test together cannot misclassify either form.
func IsHashed(stored string) bool {
	if len(stored) != hashLength {
		return false
	}
	for _, prefix := range hashPrefixes {
		if strings.HasPrefix(stored, prefix) {
			return true
		}
	}
	return false
}

// Matches verifies a plaintext passcode against the stored value in
// either representation: bcrypt hash post-migration, direct equality for
// a legacy plaintext row the migration sweep has not reached yet.
func Matches(plain, stored string) bool {
	if IsHashed(stored) {
		return Verify(plain, stored)
	}
	return stored != "" && stored == plain
}

// ValidLength checks the 4-6 character passcode rule
func ValidLength(plain string) bool {
	return len(plain) >= MinLength && len(plain) <= MaxLength
}
