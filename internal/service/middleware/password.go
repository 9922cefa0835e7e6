package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters; the derived key length matches the stored hex width.
const (
	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltBytes    = 16
)

func deriveKey(password string, salt string) ([]byte, error) {
	return scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
}

// HashPassword returns "saltHex:derivedKeyHex".
func HashPassword(password string) (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(buf)
	key, err := deriveKey(password, salt)
	if err != nil {
		return "", err
	}
	return salt + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword recomputes the derived key with the stored salt and compares
// in constant time. A malformed stored value is a plain false, never an error.
func VerifyPassword(password string, stored string) bool {
	salt, keyHex, found := strings.Cut(stored, ":")
	if !found || salt == "" || keyHex == "" {
		return false
	}
	storedKey, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}
	key, err := deriveKey(password, salt)
	if err != nil {
		return false
	}
	if len(storedKey) != len(key) {
		return false
	}
	return subtle.ConstantTimeCompare(storedKey, key) == 1
}
