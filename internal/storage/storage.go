// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/crm-gateway/internal/db"
	"github.com/canonical/crm-gateway/internal/logging"
	"github.com/canonical/crm-gateway/internal/monitoring"
	"github.com/canonical/crm-gateway/internal/tracing"
	"github.com/canonical/crm-gateway/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// FindAPIKeyRecord returns the newest non-revoked record matching the hash.
// Revoked records never authenticate; when several match, the most recent
// one is authoritative.
func (s *Storage) FindAPIKeyRecord(ctx context.Context, keyHash []byte) (*types.APIKeyRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindAPIKeyRecord")
	defer span.End()

	var r types.APIKeyRecord
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "key_hash", "revoked_at", "created_at").
		From("api_keys").
		Where(sq.Eq{"key_hash": keyHash, "revoked_at": nil}).
		OrderBy("created_at DESC").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&r.ID, &r.TenantID, &r.KeyHash, &r.RevokedAt, &r.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find api key record: %w", err)
	}

	return &r, nil
}

func (s *Storage) CreateAPIKeyRecord(ctx context.Context, tenantID string, keyHash []byte, policy RotationPolicy) (*types.APIKeyRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAPIKeyRecord")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key ID: %w", err)
	}

	if policy == RotationRevokeExisting {
		_, err = s.db.Statement(ctx).
			Update("api_keys").
			Set("revoked_at", sq.Expr("NOW()")).
			Where(sq.Eq{"tenant_id": tenantID, "revoked_at": nil}).
			ExecContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to revoke existing keys: %w", err)
		}
	}

	var r types.APIKeyRecord
	err = s.db.Statement(ctx).
		Insert("api_keys").
		Columns("id", "tenant_id", "key_hash").
		Values(id.String(), tenantID, keyHash).
		Suffix("RETURNING id, tenant_id, key_hash, revoked_at, created_at").
		QueryRowContext(ctx).
		Scan(&r.ID, &r.TenantID, &r.KeyHash, &r.RevokedAt, &r.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert api key record: %w", err)
	}

	return &r, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetTenantBySubdomain(ctx context.Context, subdomain string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantBySubdomain")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"subdomain": subdomain})
}

func (s *Storage) GetTenantByCRMLocationID(ctx context.Context, locationID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByCRMLocationID")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"crm_location_id": locationID})
}

func (s *Storage) getTenant(ctx context.Context, where sq.Eq) (*types.Tenant, error) {
	var t types.Tenant
	var crmKey []byte
	var installationID *string

	err := s.db.Statement(ctx).
		Select("id", "subdomain", "crm_location_id", "plan", "status", "encrypted_crm_key", "installation_id", "created_at").
		From("tenants").
		Where(where).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Subdomain, &t.CRMLocationID, &t.Plan, &t.Status, &crmKey, &installationID, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	t.EncryptedCRMKey = crmKey
	if installationID != nil {
		t.InstallationID = *installationID
	}

	return &t, nil
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id := t.ID
	if id == "" {
		newID, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
		}
		id = newID.String()
	}

	status := t.Status
	if status == "" {
		status = types.StatusPending
	}

	var installationID *string
	if t.InstallationID != "" {
		installationID = &t.InstallationID
	}

	var created types.Tenant
	err := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "subdomain", "crm_location_id", "plan", "status", "encrypted_crm_key", "installation_id").
		Values(id, t.Subdomain, t.CRMLocationID, t.Plan, status, t.EncryptedCRMKey, installationID).
		Suffix("RETURNING id, subdomain, crm_location_id, plan, status, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Subdomain, &created.CRMLocationID, &created.Plan, &created.Status, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	created.EncryptedCRMKey = t.EncryptedCRMKey
	created.InstallationID = t.InstallationID
	return &created, nil
}

func (s *Storage) SetTenantStatus(ctx context.Context, id string, status types.TenantStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set tenant status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetInstallationByID(ctx context.Context, id string) (*types.OAuthInstallation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInstallationByID")
	defer span.End()

	var inst types.OAuthInstallation
	err := s.db.Statement(ctx).
		Select("id", "crm_location_id", "crm_company_id", "encrypted_access_token", "encrypted_refresh_token", "token_expiry", "created_at").
		From("oauth_installations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&inst.ID, &inst.CRMLocationID, &inst.CRMCompanyID, &inst.EncryptedAccessToken, &inst.EncryptedRefreshToken, &inst.TokenExpiry, &inst.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get installation: %w", err)
	}

	return &inst, nil
}

// UpsertInstallation writes the installation keyed by CRM location id, so a
// repeated install for the same location rotates tokens in place.
func (s *Storage) UpsertInstallation(ctx context.Context, inst *types.OAuthInstallation) (*types.OAuthInstallation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertInstallation")
	defer span.End()

	id := inst.ID
	if id == "" {
		newID, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate installation ID: %w", err)
		}
		id = newID.String()
	}

	var saved types.OAuthInstallation
	err := s.db.Statement(ctx).
		Insert("oauth_installations").
		Columns("id", "crm_location_id", "crm_company_id", "encrypted_access_token", "encrypted_refresh_token", "token_expiry").
		Values(id, inst.CRMLocationID, inst.CRMCompanyID, inst.EncryptedAccessToken, inst.EncryptedRefreshToken, inst.TokenExpiry).
		Suffix(`ON CONFLICT (crm_location_id) DO UPDATE SET
			crm_company_id = EXCLUDED.crm_company_id,
			encrypted_access_token = EXCLUDED.encrypted_access_token,
			encrypted_refresh_token = EXCLUDED.encrypted_refresh_token,
			token_expiry = EXCLUDED.token_expiry
			RETURNING id, crm_location_id, crm_company_id, encrypted_access_token, encrypted_refresh_token, token_expiry, created_at`).
		QueryRowContext(ctx).
		Scan(&saved.ID, &saved.CRMLocationID, &saved.CRMCompanyID, &saved.EncryptedAccessToken, &saved.EncryptedRefreshToken, &saved.TokenExpiry, &saved.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert installation: %w", err)
	}

	return &saved, nil
}

func (s *Storage) LinkOAuthInstallation(ctx context.Context, tenantID, installationID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.LinkOAuthInstallation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("installation_id", installationID).
		Set("encrypted_crm_key", nil).
		Where(sq.Eq{"id": tenantID}).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to link installation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
