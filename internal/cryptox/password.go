// Package cryptox implements credential hashing for the user directory.
//
// Passwords are never stored in recoverable form: each one is hashed with
// Argon2id using a fresh random salt, and the salt is kept alongside the
// derived key so the hash can be recomputed at login time.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/easeshop/easeshop/internal/common"
)

const (
	saltSize = 16

	// Argon2id parameters: time=1, memory=64MiB, threads=4, key length 32.
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32

	scheme = "argon2id"
)

func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// HashPassword derives an Argon2id hash from password with a fresh random
// salt and returns it encoded as "argon2id$<salt hex>$<key hex>".
func HashPassword(password []byte) (string, error) {
	salt := common.GenerateRandByteArray(saltSize)
	key := deriveKey(password, salt)
	return fmt.Sprintf("%s$%s$%s", scheme, hex.EncodeToString(salt), hex.EncodeToString(key)), nil
}

// VerifyPassword reports whether password matches the encoded hash produced
// by HashPassword. Malformed encodings verify as false.
func VerifyPassword(encoded string, password []byte) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != scheme {
		return false
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}

	got := deriveKey(password, salt)
	return subtle.ConstantTimeCompare(want, got) == 1
}
