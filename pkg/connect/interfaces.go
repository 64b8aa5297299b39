// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connect

import (
	"context"

	"github.com/canonical/crm-gateway/internal/crm"
	"github.com/canonical/crm-gateway/internal/types"
)

type ServiceInterface interface {
	// BeginAuthorization issues a single-use state token bound to the
	// given tenant id (empty for a first-time installation) and returns
	// the CRM authorization URL carrying it.
	BeginAuthorization(ctx context.Context, tenantID string) (string, error)
	// CompleteAuthorization consumes the state token, exchanges the
	// authorization code and persists the linked installation. It fails
	// with ErrInvalidOrExpiredState or ErrCodeExchangeFailed; neither
	// leaves partial state behind.
	CompleteAuthorization(ctx context.Context, state, code string) (*Result, error)
}

// StateStoreInterface is the slice of the OAuth state store the linker needs.
type StateStoreInterface interface {
	Issue(tenantID string) (string, error)
	Verify(token string) (string, bool)
}

// DirectoryInterface is the slice of the tenant directory the linker needs.
type DirectoryInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByCRMLocationID(ctx context.Context, locationID string) (*types.Tenant, error)
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	UpsertInstallation(ctx context.Context, inst *types.OAuthInstallation) (*types.OAuthInstallation, error)
	LinkOAuthInstallation(ctx context.Context, tenantID, installationID string) error
}

type VaultInterface interface {
	Encrypt(plaintext []byte) ([]byte, error)
}

type CRMClientInterface interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*crm.TokenResult, error)
}
