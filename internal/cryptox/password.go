// Package cryptox derives and checks salted password hashes for accounts.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	HashSize = 32
)

// NewSalt returns SaltSize random bytes.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword derives an argon2id hash of password with salt.
func HashPassword(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, HashSize)
}

// VerifyPassword reports whether password hashes to hash under salt.
// The comparison runs in constant time.
func VerifyPassword(password []byte, salt []byte, hash []byte) bool {
	candidate := HashPassword(password, salt)
	defer common.WipeByteArray(candidate)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
