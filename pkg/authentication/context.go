// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/crm-gateway/internal/types"
)

// Define a private custom type to avoid collisions
type contextKey struct{}

var tenantContextKey = contextKey{}

// WithTenant returns a new context carrying the authenticated tenant identity.
func WithTenant(ctx context.Context, result *types.TenantAuthResult) context.Context {
	return context.WithValue(ctx, tenantContextKey, result)
}

// TenantFromContext retrieves the authenticated tenant identity.
// Returns nil and false when no authentication took place.
func TenantFromContext(ctx context.Context) (*types.TenantAuthResult, bool) {
	result, ok := ctx.Value(tenantContextKey).(*types.TenantAuthResult)
	return result, ok
}
