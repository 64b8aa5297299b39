// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/crm-gateway/internal/types"
)

// DirectoryInterface defines the directory operations required by the
// webhooks package. It is a subset of the internal/storage interface.
type DirectoryInterface interface {
	GetTenantByCRMLocationID(ctx context.Context, locationID string) (*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, status types.TenantStatus) error
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleUninstall(ctx context.Context, locationID string) error
}
