// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connect

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/crm-gateway/internal/db"
	"github.com/canonical/crm-gateway/internal/logging"
	"github.com/canonical/crm-gateway/internal/monitoring"
	"github.com/canonical/crm-gateway/internal/storage"
	"github.com/canonical/crm-gateway/internal/tracing"
	"github.com/canonical/crm-gateway/internal/types"
)

// Result is what a completed authorization resolves to.
type Result struct {
	TenantID       string `json:"tenant_id"`
	InstallationID string `json:"installation_id"`
	CRMLocationID  string `json:"crm_location_id"`
	TenantCreated  bool   `json:"tenant_created"`
}

type Service struct {
	states    StateStoreInterface
	directory DirectoryInterface
	vault     VaultInterface
	crmClient CRMClientInterface
	db        db.DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	states StateStoreInterface,
	directory DirectoryInterface,
	vault VaultInterface,
	crmClient CRMClientInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		states:    states,
		directory: directory,
		vault:     vault,
		crmClient: crmClient,
		db:        dbClient,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

func (s *Service) BeginAuthorization(ctx context.Context, tenantID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "connect.Service.BeginAuthorization")
	defer span.End()

	if tenantID != "" {
		if _, err := s.directory.GetTenantByID(ctx, tenantID); err != nil {
			return "", fmt.Errorf("failed to resolve tenant: %w", err)
		}
	}

	state, err := s.states.Issue(tenantID)
	if err != nil {
		return "", fmt.Errorf("failed to issue state token: %w", err)
	}

	return s.crmClient.AuthCodeURL(state), nil
}

func (s *Service) CompleteAuthorization(ctx context.Context, state, code string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "connect.Service.CompleteAuthorization")
	defer span.End()

	// Verify consumes the token, so a failed exchange below cannot be
	// replayed with the same state.
	tenantID, ok := s.states.Verify(state)
	if !ok {
		s.logger.Security().StateTokenRejected("invalid_or_expired")
		return nil, ErrInvalidOrExpiredState
	}

	token, err := s.crmClient.ExchangeCode(ctx, code)
	if err != nil {
		s.logger.Errorf("authorization code exchange failed: %v", err)
		return nil, ErrCodeExchangeFailed
	}

	encryptedAccess, err := s.vault.Encrypt([]byte(token.AccessToken))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt access token: %w", err)
	}
	encryptedRefresh, err := s.vault.Encrypt([]byte(token.RefreshToken))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	result := &Result{CRMLocationID: token.LocationID}

	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		installation, err := s.directory.UpsertInstallation(ctx, &types.OAuthInstallation{
			CRMLocationID:         token.LocationID,
			CRMCompanyID:          token.CompanyID,
			EncryptedAccessToken:  encryptedAccess,
			EncryptedRefreshToken: encryptedRefresh,
			TokenExpiry:           token.Expiry,
		})
		if err != nil {
			return fmt.Errorf("failed to persist installation: %w", err)
		}
		result.InstallationID = installation.ID

		if tenantID == "" {
			// A re-install for a known location relinks the existing
			// tenant; the installation upsert above already rotated
			// its tokens in place.
			existing, err := s.directory.GetTenantByCRMLocationID(ctx, token.LocationID)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("failed to look up tenant by location: %w", err)
			}
			if existing != nil {
				if err := s.directory.LinkOAuthInstallation(ctx, existing.ID, installation.ID); err != nil {
					return fmt.Errorf("failed to link installation: %w", err)
				}
				result.TenantID = existing.ID
				return nil
			}

			tenant, err := s.directory.CreateTenant(ctx, &types.Tenant{
				Subdomain:      token.LocationID,
				CRMLocationID:  token.LocationID,
				Plan:           "free",
				Status:         types.StatusActive,
				InstallationID: installation.ID,
			})
			if err != nil {
				return fmt.Errorf("failed to create tenant: %w", err)
			}
			result.TenantID = tenant.ID
			result.TenantCreated = true
			return nil
		}

		if err := s.directory.LinkOAuthInstallation(ctx, tenantID, installation.ID); err != nil {
			return fmt.Errorf("failed to link installation: %w", err)
		}
		result.TenantID = tenantID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().InstallationLinked(result.TenantID, result.InstallationID)

	return result, nil
}
