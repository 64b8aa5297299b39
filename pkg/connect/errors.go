// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connect

import "errors"

var (
	// ErrInvalidOrExpiredState covers unknown, replayed and expired state
	// tokens alike. Callers restart the flow from BeginAuthorization.
	ErrInvalidOrExpiredState = errors.New("invalid or expired state")
	// ErrCodeExchangeFailed is returned when the CRM rejects the
	// authorization code or stays unreachable past the retry budget.
	ErrCodeExchangeFailed = errors.New("code exchange failed")
)
