// Package cryptox seals short strings, such as the client session token,
// under a passphrase.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/argon2"
)

const (
	sealVersion byte = 1
	saltSize         = 16
	keySize          = 32
)

// ErrMalformed is returned by OpenString for input that is not a sealed value
// or that fails authentication under the given passphrase.
var ErrMalformed = errors.New("malformed sealed value")

// DeriveKey stretches a passphrase into an AES-256 key with argon2id.
func DeriveKey(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, keySize)
}

// GenerateRandByteArray returns size bytes from crypto/rand. It panics if the
// system source fails, which leaves nothing sensible to continue with.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// Encrypt seals plaintext with AES-GCM under key and a fresh 12-byte nonce.
// The key must be 16, 24 or 32 bytes long.
func Encrypt(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = GenerateRandByteArray(aesgcm.NonceSize())
	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)

	return ciphertext, nonce, nil
}

// Decrypt opens ciphertext produced by Encrypt.
func Decrypt(ciphertext, nonce, key []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aesgcm.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// SealString encrypts plaintext under a key derived from passphrase and a
// random salt. The result is base64(version | salt | nonce | ciphertext) and
// is safe to keep in a text column.
func SealString(plaintext, passphrase string) (string, error) {
	salt := GenerateRandByteArray(saltSize)
	key := DeriveKey([]byte(passphrase), salt)

	ciphertext, nonce, err := Encrypt([]byte(plaintext), key)
	if err != nil {
		return "", err
	}

	buf := make([]byte, 0, 1+len(salt)+len(nonce)+len(ciphertext))
	buf = append(buf, sealVersion)
	buf = append(buf, salt...)
	buf = append(buf, nonce...)
	buf = append(buf, ciphertext...)

	return base64.StdEncoding.EncodeToString(buf), nil
}

// OpenString reverses SealString. Any decoding or authentication failure is
// reported as ErrMalformed.
func OpenString(sealed, passphrase string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", ErrMalformed
	}

	// 12 is the GCM standard nonce size, 16 the tag size
	if len(raw) < 1+saltSize+12+16 || raw[0] != sealVersion {
		return "", ErrMalformed
	}

	salt := raw[1 : 1+saltSize]
	nonce := raw[1+saltSize : 1+saltSize+12]
	ciphertext := raw[1+saltSize+12:]

	plaintext, err := Decrypt(ciphertext, nonce, DeriveKey([]byte(passphrase), salt))
	if err != nil {
		return "", ErrMalformed
	}
	return string(plaintext), nil
}
