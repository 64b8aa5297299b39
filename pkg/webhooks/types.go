// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// CRMEvent is the envelope the CRM posts to our webhook endpoint.
type CRMEvent struct {
	Type       string `json:"type"`
	LocationID string `json:"location_id"`
	CompanyID  string `json:"company_id"`
}

const eventTypeUninstall = "UNINSTALL"
