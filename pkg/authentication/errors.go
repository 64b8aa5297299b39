// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
)

var (
	// ErrInvalidCredential covers unknown and malformed API keys alike,
	// so callers cannot distinguish which part of the credential failed.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrTenantSuspended means the key matched but the tenant is not active.
	ErrTenantSuspended = errors.New("tenant is suspended")
)
