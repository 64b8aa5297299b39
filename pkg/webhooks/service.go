// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/crm-gateway/internal/logging"
	"github.com/canonical/crm-gateway/internal/monitoring"
	"github.com/canonical/crm-gateway/internal/storage"
	"github.com/canonical/crm-gateway/internal/tracing"
	"github.com/canonical/crm-gateway/internal/types"
)

type Service struct {
	directory DirectoryInterface
	tracer    tracing.TracingInterface
	monitor   monitoring.MonitorInterface
	logger    logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	directory DirectoryInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		directory: directory,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// HandleUninstall suspends the tenant linked to the given CRM location.
// Uninstalls for unknown locations are acknowledged and dropped, since the
// CRM retries on errors.
func (s *Service) HandleUninstall(ctx context.Context, locationID string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleUninstall")
	defer span.End()

	if locationID == "" {
		return fmt.Errorf("location id is empty")
	}

	tenant, err := s.directory.GetTenantByCRMLocationID(ctx, locationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Debugf("uninstall for unknown location %s, ignoring", locationID)
			return nil
		}
		return fmt.Errorf("failed to resolve tenant: %w", err)
	}

	if tenant.Status == types.StatusSuspended {
		return nil
	}

	if err := s.directory.SetTenantStatus(ctx, tenant.ID, types.StatusSuspended); err != nil {
		return fmt.Errorf("failed to suspend tenant: %w", err)
	}

	s.logger.Infof("suspended tenant %s after CRM uninstall", tenant.ID)
	return nil
}
