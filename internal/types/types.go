// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type TenantStatus string

const (
	StatusActive    TenantStatus = "active"
	StatusSuspended TenantStatus = "suspended"
	StatusPending   TenantStatus = "pending"
)

type AuthMethod string

const (
	AuthMethodDirect AuthMethod = "direct"
	AuthMethodOAuth  AuthMethod = "oauth"
)

type Tenant struct {
	ID            string       `db:"id"`
	Subdomain     string       `db:"subdomain"`
	CRMLocationID string       `db:"crm_location_id"`
	Plan          string       `db:"plan"`
	Status        TenantStatus `db:"status"`
	// EncryptedCRMKey is set for direct-auth tenants only.
	EncryptedCRMKey []byte `db:"encrypted_crm_key"`
	// InstallationID references an OAuthInstallation for oauth tenants only.
	InstallationID string    `db:"installation_id"`
	CreatedAt      time.Time `db:"created_at"`
}

// AuthMethod derives the tenant's credential resolution path. Exactly one
// of EncryptedCRMKey and InstallationID is expected to be set.
func (t *Tenant) AuthMethod() AuthMethod {
	if t.InstallationID != "" {
		return AuthMethodOAuth
	}
	return AuthMethodDirect
}

// APIKeyRecord holds the salted one-way hash of a tenant bearer credential.
// The raw key is never persisted.
type APIKeyRecord struct {
	ID        string     `db:"id"`
	TenantID  string     `db:"tenant_id"`
	KeyHash   []byte     `db:"key_hash"`
	RevokedAt *time.Time `db:"revoked_at"`
	CreatedAt time.Time  `db:"created_at"`
}

// OAuthInstallation is the result of a completed 3-legged OAuth flow.
// Tokens are stored encrypted by the vault.
type OAuthInstallation struct {
	ID                    string    `db:"id"`
	CRMLocationID         string    `db:"crm_location_id"`
	CRMCompanyID          string    `db:"crm_company_id"`
	EncryptedAccessToken  []byte    `db:"encrypted_access_token"`
	EncryptedRefreshToken []byte    `db:"encrypted_refresh_token"`
	TokenExpiry           time.Time `db:"token_expiry"`
	CreatedAt             time.Time `db:"created_at"`
}

// TenantAuthResult is returned by a successful API key authentication.
type TenantAuthResult struct {
	TenantID   string
	AuthMethod AuthMethod
}

// TenantConfig is the fully resolved, decrypted configuration for one tenant.
type TenantConfig struct {
	TenantID      string
	Subdomain     string
	CRMLocationID string
	Plan          string
	AuthMethod    AuthMethod
	// CRMAccessToken is the decrypted credential to call the CRM with,
	// either the stored API key or the installation's access token.
	// It must never be logged or serialized.
	CRMAccessToken string
}
