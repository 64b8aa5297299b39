// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

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

// SignupResult carries the freshly minted raw API key. It is returned to
// the caller once and never persisted or logged.
type SignupResult struct {
	Tenant *types.Tenant
	APIKey string
}

type Service struct {
	directory     DirectoryInterface
	authenticator AuthenticatorInterface
	vault         VaultInterface
	db            db.DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	directory DirectoryInterface,
	authenticator AuthenticatorInterface,
	vault VaultInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		directory:     directory,
		authenticator: authenticator,
		vault:         vault,
		db:            dbClient,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

func (s *Service) Signup(ctx context.Context, subdomain, plan, crmAPIKey string) (*SignupResult, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.Signup")
	defer span.End()

	if _, err := s.directory.GetTenantBySubdomain(ctx, subdomain); err == nil {
		return nil, ErrSubdomainTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check subdomain: %w", err)
	}

	newTenant := &types.Tenant{
		Subdomain: subdomain,
		Plan:      plan,
		Status:    types.StatusActive,
	}

	if crmAPIKey != "" {
		encrypted, err := s.vault.Encrypt([]byte(crmAPIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt CRM key: %w", err)
		}
		newTenant.EncryptedCRMKey = encrypted
	}

	result := &SignupResult{}

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		created, err := s.directory.CreateTenant(ctx, newTenant)
		if err != nil {
			if storage.IsDuplicateKeyError(err) {
				return ErrSubdomainTaken
			}
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		rawKey, err := s.authenticator.MintAPIKey(ctx, created.ID, storage.RotationRevokeExisting)
		if err != nil {
			return fmt.Errorf("failed to mint API key: %w", err)
		}

		result.Tenant = created
		result.APIKey = rawKey
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("provisioned tenant %s on plan %s", result.Tenant.ID, plan)

	return result, nil
}

func (s *Service) RotateAPIKey(ctx context.Context, tenantID string, policy storage.RotationPolicy) (string, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RotateAPIKey")
	defer span.End()

	tenant, err := s.directory.GetTenantByID(ctx, tenantID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve tenant: %w", err)
	}
	if tenant.Status != types.StatusActive {
		return "", ErrInvalidTransition
	}

	return s.authenticator.MintAPIKey(ctx, tenantID, policy)
}

func (s *Service) SuspendTenant(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SuspendTenant")
	defer span.End()

	return s.setStatus(ctx, tenantID, types.StatusActive, types.StatusSuspended)
}

func (s *Service) ReactivateTenant(ctx context.Context, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ReactivateTenant")
	defer span.End()

	return s.setStatus(ctx, tenantID, types.StatusSuspended, types.StatusActive)
}

// setStatus enforces the active <-> suspended cycle. Tenants are never
// deleted, only disabled.
func (s *Service) setStatus(ctx context.Context, tenantID string, from, to types.TenantStatus) error {
	tenant, err := s.directory.GetTenantByID(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to resolve tenant: %w", err)
	}
	if tenant.Status != from {
		return ErrInvalidTransition
	}

	if err := s.directory.SetTenantStatus(ctx, tenantID, to); err != nil {
		return fmt.Errorf("failed to update tenant status: %w", err)
	}

	s.logger.Infof("tenant %s status changed to %s", tenantID, to)
	return nil
}

func (s *Service) GetTenantConfig(ctx context.Context, tenantID string) (*types.TenantConfig, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenantConfig")
	defer span.End()

	return s.authenticator.GetTenantConfig(ctx, tenantID)
}
