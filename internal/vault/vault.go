// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// ErrDecryptionFailed is returned whenever a ciphertext cannot be decrypted,
// whatever the underlying cause. Decryption fails closed: no partial
// plaintext is ever returned.
var ErrDecryptionFailed = errors.New("decryption failed")

// keyVersionV1 tags ciphertexts produced with the current process key.
// The tag reserves room for key rotation without a hard migration.
const keyVersionV1 = byte(0x01)

type VaultInterface interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

var _ VaultInterface = (*Vault)(nil)

// Vault encrypts tenant secrets at rest with AES-256-GCM under a
// process-wide symmetric key.
//
// Ciphertext layout: 1 byte key version | GCM nonce | sealed payload.
type Vault struct {
	aead cipher.AEAD
}

// NewVault builds a vault from a hex encoded 32 byte key.
func NewVault(hexKey string) (*Vault, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("encryption key is not valid hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCM: %w", err)
	}

	return &Vault{aead: aead}, nil
}

func (v *Vault) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, v.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	out := make([]byte, 0, 1+len(nonce)+len(plaintext)+v.aead.Overhead())
	out = append(out, keyVersionV1)
	out = append(out, nonce...)

	return v.aead.Seal(out, nonce, plaintext, nil), nil
}

func (v *Vault) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < 1+v.aead.NonceSize() {
		return nil, ErrDecryptionFailed
	}

	if ciphertext[0] != keyVersionV1 {
		return nil, ErrDecryptionFailed
	}

	nonce := ciphertext[1 : 1+v.aead.NonceSize()]
	sealed := ciphertext[1+v.aead.NonceSize():]

	plaintext, err := v.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		// Tampering and key mismatch are indistinguishable on purpose.
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
