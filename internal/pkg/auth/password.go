package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the fallback password hashing work factor.
const DefaultBcryptCost = 12

// PasswordKind tags how a stored password value is encoded.
type PasswordKind int

const (
	// PasswordHashed is a bcrypt hash.
	PasswordHashed PasswordKind = iota
	// PasswordLegacy is a plaintext value carried over from old records.
	// Kept only so those accounts can still log in; new writes are always hashed.
	PasswordLegacy
)

// StoredPassword is the tagged variant for a password column value, making the
// hashed-versus-legacy ambiguity explicit instead of branching on a prefix at
// every call site.
type StoredPassword struct {
	Kind  PasswordKind
	Value string
}

// ParseStoredPassword classifies a raw password column value.
func ParseStoredPassword(value string) StoredPassword {
	if strings.HasPrefix(value, "$2") {
		return StoredPassword{Kind: PasswordHashed, Value: value}
	}
	return StoredPassword{Kind: PasswordLegacy, Value: value}
}

// Verify reports whether the plaintext matches the stored value. Hashed values
// go through bcrypt's constant-time comparison; legacy values are compared
// directly. A plaintext equal to the raw hash string never matches a hashed
// value.
func (p StoredPassword) Verify(plaintext string) bool {
	switch p.Kind {
	case PasswordHashed:
		return bcrypt.CompareHashAndPassword([]byte(p.Value), []byte(plaintext)) == nil
	case PasswordLegacy:
		return subtle.ConstantTimeCompare([]byte(p.Value), []byte(plaintext)) == 1
	}
	return false
}

// PasswordHasher hashes passwords with a configurable work factor.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher with the given bcrypt cost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash hashes a plaintext password
func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Cost returns the configured work factor.
func (h *PasswordHasher) Cost() int {
	return h.cost
}
