// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/crm-gateway/internal/crm"
	"github.com/canonical/crm-gateway/internal/storage"
	"github.com/canonical/crm-gateway/internal/types"
)

type AuthenticatorInterface interface {
	// Authenticate resolves a raw API key into a verified tenant identity.
	// It fails with ErrInvalidCredential for unknown keys and with
	// ErrTenantSuspended when the owning tenant is not active.
	Authenticate(ctx context.Context, rawAPIKey string) (*types.TenantAuthResult, error)
	// GetTenantConfig returns the decrypted configuration for a tenant,
	// or nil when the tenant id does not exist.
	GetTenantConfig(ctx context.Context, tenantID string) (*types.TenantConfig, error)
	// MintAPIKey creates a fresh raw API key for the tenant and stores
	// only its salted hash. The raw key is returned exactly once.
	MintAPIKey(ctx context.Context, tenantID string, policy storage.RotationPolicy) (string, error)
}

// DirectoryInterface is the slice of the tenant directory the authenticator needs.
type DirectoryInterface interface {
	FindAPIKeyRecord(ctx context.Context, keyHash []byte) (*types.APIKeyRecord, error)
	CreateAPIKeyRecord(ctx context.Context, tenantID string, keyHash []byte, policy storage.RotationPolicy) (*types.APIKeyRecord, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetInstallationByID(ctx context.Context, id string) (*types.OAuthInstallation, error)
	UpsertInstallation(ctx context.Context, inst *types.OAuthInstallation) (*types.OAuthInstallation, error)
}

type VaultInterface interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// TokenRefresherInterface refreshes an expired OAuth installation token.
type TokenRefresherInterface interface {
	RefreshToken(ctx context.Context, refreshToken string) (*crm.TokenResult, error)
}
