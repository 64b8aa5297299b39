// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import "errors"

var (
	// ErrSubdomainTaken is returned when a signup names a subdomain that
	// already belongs to another tenant.
	ErrSubdomainTaken = errors.New("subdomain is already taken")
	// ErrInvalidTransition is returned for status changes that do not
	// follow the active <-> suspended cycle.
	ErrInvalidTransition = errors.New("invalid status transition")
)
