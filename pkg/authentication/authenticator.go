// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/crm-gateway/internal/logging"
	"github.com/canonical/crm-gateway/internal/monitoring"
	"github.com/canonical/crm-gateway/internal/storage"
	"github.com/canonical/crm-gateway/internal/tracing"
	"github.com/canonical/crm-gateway/internal/types"
)

// rawKeyPrefix marks keys minted by this service so that support can tell
// them apart from CRM keys pasted by mistake.
const rawKeyPrefix = "crmgw_"

var _ AuthenticatorInterface = (*Authenticator)(nil)

type Authenticator struct {
	directory DirectoryInterface
	vault     VaultInterface
	refresher TokenRefresherInterface
	salt      []byte

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthenticator(
	directory DirectoryInterface,
	vault VaultInterface,
	refresher TokenRefresherInterface,
	apiKeySalt string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Authenticator {
	return &Authenticator{
		directory: directory,
		vault:     vault,
		refresher: refresher,
		salt:      []byte(apiKeySalt),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// hashKey computes the salted one-way hash stored and compared for API keys.
// The raw key never leaves this function unhashed.
func (a *Authenticator) hashKey(rawAPIKey string) []byte {
	mac := hmac.New(sha256.New, a.salt)
	mac.Write([]byte(rawAPIKey))
	return mac.Sum(nil)
}

func (a *Authenticator) Authenticate(ctx context.Context, rawAPIKey string) (*types.TenantAuthResult, error) {
	ctx, span := a.tracer.Start(ctx, "authentication.Authenticator.Authenticate")
	defer span.End()

	if rawAPIKey == "" {
		a.logger.Security().AuthFailure("empty_credential", "api_key")
		return nil, ErrInvalidCredential
	}

	hash := a.hashKey(rawAPIKey)

	record, err := a.directory.FindAPIKeyRecord(ctx, hash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.logger.Security().AuthFailure("unknown_credential", "api_key")
			return nil, ErrInvalidCredential
		}
		return nil, fmt.Errorf("failed to look up api key: %w", err)
	}

	// The directory matched on the hash already; re-check in constant
	// time so the comparison cost never depends on the stored value.
	if !hmac.Equal(hash, record.KeyHash) {
		a.logger.Security().AuthFailure("hash_mismatch", "api_key")
		return nil, ErrInvalidCredential
	}

	tenant, err := a.directory.GetTenantByID(ctx, record.TenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// key record without a tenant: treat as unknown credential
			a.logger.Security().AuthFailure("orphaned_credential", "api_key")
			return nil, ErrInvalidCredential
		}
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	if tenant.Status != types.StatusActive {
		a.logger.Security().AuthFailure("tenant_not_active", "api_key")
		return nil, ErrTenantSuspended
	}

	a.logger.Security().AuthSuccess(tenant.ID, "api_key")

	return &types.TenantAuthResult{
		TenantID:   tenant.ID,
		AuthMethod: tenant.AuthMethod(),
	}, nil
}

// GetTenantConfig resolves the tenant's decrypted CRM credential. A nil,
// nil return means the tenant id does not exist; this is a post
// authentication lookup, not an authentication failure.
func (a *Authenticator) GetTenantConfig(ctx context.Context, tenantID string) (*types.TenantConfig, error) {
	ctx, span := a.tracer.Start(ctx, "authentication.Authenticator.GetTenantConfig")
	defer span.End()

	tenant, err := a.directory.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	cfg := &types.TenantConfig{
		TenantID:      tenant.ID,
		Subdomain:     tenant.Subdomain,
		CRMLocationID: tenant.CRMLocationID,
		Plan:          tenant.Plan,
		AuthMethod:    tenant.AuthMethod(),
	}

	switch cfg.AuthMethod {
	case types.AuthMethodDirect:
		// Signed up without a CRM key and not yet connected; the
		// config carries no credential until one exists.
		if len(tenant.EncryptedCRMKey) == 0 {
			break
		}

		key, err := a.vault.Decrypt(tenant.EncryptedCRMKey)
		if err != nil {
			a.logger.Errorf("failed to decrypt CRM key for tenant %s: %v", tenant.ID, err)
			return nil, err
		}
		cfg.CRMAccessToken = string(key)

	case types.AuthMethodOAuth:
		token, err := a.resolveInstallationToken(ctx, tenant)
		if err != nil {
			return nil, err
		}
		cfg.CRMAccessToken = token
	}

	return cfg, nil
}

// resolveInstallationToken returns the installation's decrypted access
// token, refreshing and persisting it first when expired.
func (a *Authenticator) resolveInstallationToken(ctx context.Context, tenant *types.Tenant) (string, error) {
	inst, err := a.directory.GetInstallationByID(ctx, tenant.InstallationID)
	if err != nil {
		return "", fmt.Errorf("failed to load installation for tenant %s: %w", tenant.ID, err)
	}

	if time.Now().Before(inst.TokenExpiry) {
		accessToken, err := a.vault.Decrypt(inst.EncryptedAccessToken)
		if err != nil {
			a.logger.Errorf("failed to decrypt access token for installation %s: %v", inst.ID, err)
			return "", err
		}
		return string(accessToken), nil
	}

	refreshToken, err := a.vault.Decrypt(inst.EncryptedRefreshToken)
	if err != nil {
		a.logger.Errorf("failed to decrypt refresh token for installation %s: %v", inst.ID, err)
		return "", err
	}

	result, err := a.refresher.RefreshToken(ctx, string(refreshToken))
	if err != nil {
		return "", fmt.Errorf("failed to refresh installation token: %w", err)
	}

	encryptedAccess, err := a.vault.Encrypt([]byte(result.AccessToken))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt access token: %w", err)
	}

	inst.EncryptedAccessToken = encryptedAccess
	inst.TokenExpiry = result.Expiry

	if result.RefreshToken != "" {
		encryptedRefresh, err := a.vault.Encrypt([]byte(result.RefreshToken))
		if err != nil {
			return "", fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
		inst.EncryptedRefreshToken = encryptedRefresh
	}

	if _, err := a.directory.UpsertInstallation(ctx, inst); err != nil {
		return "", fmt.Errorf("failed to persist refreshed tokens: %w", err)
	}

	return result.AccessToken, nil
}

func (a *Authenticator) MintAPIKey(ctx context.Context, tenantID string, policy storage.RotationPolicy) (string, error) {
	ctx, span := a.tracer.Start(ctx, "authentication.Authenticator.MintAPIKey")
	defer span.End()

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}

	rawKey := rawKeyPrefix + base64.RawURLEncoding.EncodeToString(buf)

	if _, err := a.directory.CreateAPIKeyRecord(ctx, tenantID, a.hashKey(rawKey), policy); err != nil {
		return "", fmt.Errorf("failed to store api key record: %w", err)
	}

	return rawKey, nil
}
