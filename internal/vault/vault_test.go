// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vault

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

const testKey = "6368616e676520746869732070617373776f726420746f206120736563726574"

func newTestVault(t *testing.T) *Vault {
	t.Helper()

	v, err := NewVault(testKey)
	if err != nil {
		t.Fatalf("failed to create vault: %v", err)
	}
	return v
}

func TestNewVault_KeyValidation(t *testing.T) {
	testCases := []struct {
		name   string
		hexKey string
	}{
		{name: "not hex", hexKey: "zzzz"},
		{name: "too short", hexKey: hex.EncodeToString([]byte("short"))},
		{name: "too long", hexKey: strings.Repeat("ab", 33)},
		{name: "empty", hexKey: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewVault(tc.hexKey); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestVault_RoundTrip(t *testing.T) {
	v := newTestVault(t)

	testCases := []struct {
		name      string
		plaintext []byte
	}{
		{name: "simple", plaintext: []byte("crm-api-key-12345")},
		{name: "empty", plaintext: []byte{}},
		{name: "null bytes", plaintext: []byte{0, 1, 0, 2, 0}},
		{name: "binary", plaintext: bytes.Repeat([]byte{0xff, 0x00}, 512)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ciphertext, err := v.Encrypt(tc.plaintext)
			if err != nil {
				t.Fatalf("encrypt failed: %v", err)
			}

			if bytes.Contains(ciphertext, tc.plaintext) && len(tc.plaintext) > 4 {
				t.Error("ciphertext contains plaintext")
			}

			got, err := v.Decrypt(ciphertext)
			if err != nil {
				t.Fatalf("decrypt failed: %v", err)
			}

			if !bytes.Equal(got, tc.plaintext) {
				t.Errorf("round trip mismatch: got %q, want %q", got, tc.plaintext)
			}
		})
	}
}

func TestVault_EncryptIsNonDeterministic(t *testing.T) {
	v := newTestVault(t)

	a, err := v.Encrypt([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := v.Encrypt([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(a, b) {
		t.Error("two encryptions of the same plaintext produced identical ciphertexts")
	}
}

func TestVault_DecryptFailsClosed(t *testing.T) {
	v := newTestVault(t)

	ciphertext, err := v.Encrypt([]byte("confidential"))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("single flipped bit", func(t *testing.T) {
		for i := range ciphertext {
			tampered := append([]byte(nil), ciphertext...)
			tampered[i] ^= 0x01

			if _, err := v.Decrypt(tampered); !errors.Is(err, ErrDecryptionFailed) {
				t.Fatalf("flip at byte %d: expected ErrDecryptionFailed, got %v", i, err)
			}
		}
	})

	t.Run("truncated", func(t *testing.T) {
		if _, err := v.Decrypt(ciphertext[:5]); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("expected ErrDecryptionFailed, got %v", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := v.Decrypt(nil); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("expected ErrDecryptionFailed, got %v", err)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := NewVault(strings.Repeat("00", 32))
		if err != nil {
			t.Fatal(err)
		}

		if _, err := other.Decrypt(ciphertext); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("expected ErrDecryptionFailed, got %v", err)
		}
	})

	t.Run("unknown key version", func(t *testing.T) {
		tampered := append([]byte(nil), ciphertext...)
		tampered[0] = 0x7f

		if _, err := v.Decrypt(tampered); !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("expected ErrDecryptionFailed, got %v", err)
		}
	})
}
