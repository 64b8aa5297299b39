// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/crm-gateway/internal/storage"
	"github.com/canonical/crm-gateway/internal/types"
)

type ServiceInterface interface {
	// Signup creates a tenant and mints its first API key in one
	// transaction. The raw key is returned exactly once.
	Signup(ctx context.Context, subdomain, plan, crmAPIKey string) (*SignupResult, error)
	// RotateAPIKey mints a replacement API key for the tenant under the
	// given rotation policy.
	RotateAPIKey(ctx context.Context, tenantID string, policy storage.RotationPolicy) (string, error)
	SuspendTenant(ctx context.Context, tenantID string) error
	ReactivateTenant(ctx context.Context, tenantID string) error
	GetTenantConfig(ctx context.Context, tenantID string) (*types.TenantConfig, error)
}

// DirectoryInterface is the slice of the tenant directory the service needs.
type DirectoryInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, status types.TenantStatus) error
}

// AuthenticatorInterface is the slice of the tenant authenticator the
// service needs for key minting and config resolution.
type AuthenticatorInterface interface {
	MintAPIKey(ctx context.Context, tenantID string, policy storage.RotationPolicy) (string, error)
	GetTenantConfig(ctx context.Context, tenantID string) (*types.TenantConfig, error)
}

type VaultInterface interface {
	Encrypt(plaintext []byte) ([]byte, error)
}
