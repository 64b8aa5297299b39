// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/crm-gateway/internal/types"
)

// RotationPolicy states what happens to existing key records when a new
// API key is minted for a tenant.
type RotationPolicy int

const (
	// RotationRevokeExisting revokes all previous keys in the same
	// transaction, so only the new key authenticates afterwards.
	RotationRevokeExisting RotationPolicy = iota
	// RotationKeepExisting leaves previous keys valid, allowing a
	// grace period during rollover.
	RotationKeepExisting
)

type StorageInterface interface {
	FindAPIKeyRecord(ctx context.Context, keyHash []byte) (*types.APIKeyRecord, error)
	CreateAPIKeyRecord(ctx context.Context, tenantID string, keyHash []byte, policy RotationPolicy) (*types.APIKeyRecord, error)

	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error)
	GetTenantByCRMLocationID(ctx context.Context, locationID string) (*types.Tenant, error)
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, status types.TenantStatus) error

	GetInstallationByID(ctx context.Context, id string) (*types.OAuthInstallation, error)
	UpsertInstallation(ctx context.Context, inst *types.OAuthInstallation) (*types.OAuthInstallation, error)
	LinkOAuthInstallation(ctx context.Context, tenantID, installationID string) error
}
