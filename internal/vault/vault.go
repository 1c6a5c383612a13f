// Package vault keeps custodial ledger secrets encrypted at rest.
//
// Ciphertexts are base64url([nonce(12) || sealed || tag(16)]) produced by AES-256-GCM
// under a key derived once from the configured passphrase with HKDF-SHA256.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"golang.org/x/crypto/hkdf"
)

const (
	keySize = 32
	kdfInfo = "paytrace custodial secret v1"
)

var (
	ErrEmptyPassphrase = errors.New("vault passphrase is empty")
	errShortCiphertext = errors.New("ciphertext too short")
)

type Vault struct {
	aead cipher.AEAD
}

func New(passphrase string) (*Vault, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(passphrase), nil, []byte(kdfInfo)), key); err != nil {
		return nil, fmt.Errorf("derive vault key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}
	return &Vault{aead: aead}, nil
}

func (v *Vault) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, v.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", &domain.CryptoError{Op: "encrypt", Err: err}
	}
	sealed := v.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.URLEncoding.EncodeToString(sealed), nil
}

func (v *Vault) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", &domain.CryptoError{Op: "decrypt", Err: err}
	}
	ns := v.aead.NonceSize()
	if len(raw) < ns+v.aead.Overhead() {
		return "", &domain.CryptoError{Op: "decrypt", Err: errShortCiphertext}
	}
	plain, err := v.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", &domain.CryptoError{Op: "decrypt", Err: err}
	}
	return string(plain), nil
}
