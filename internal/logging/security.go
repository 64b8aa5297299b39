// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger writes audit events on a dedicated "security" logger.
// Callers pass identifiers only; raw API keys and decrypted tokens must
// never reach these methods.
type SecurityLogger struct {
	l *zap.Logger
}

func NewSecurityLogger(logger *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: logger.Named("security")}
}

func (s *SecurityLogger) AuthSuccess(tenantID, mechanism string) {
	s.l.Info("authentication succeeded",
		zap.String("event", "auth_success"),
		zap.String("tenant_id", tenantID),
		zap.String("mechanism", mechanism),
	)
}

func (s *SecurityLogger) AuthFailure(reason, mechanism string) {
	s.l.Warn("authentication failed",
		zap.String("event", "auth_failure"),
		zap.String("reason", reason),
		zap.String("mechanism", mechanism),
	)
}

func (s *SecurityLogger) StateTokenRejected(reason string) {
	s.l.Warn("oauth state token rejected",
		zap.String("event", "state_token_rejected"),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) InstallationLinked(tenantID, installationID string) {
	s.l.Info("oauth installation linked",
		zap.String("event", "installation_linked"),
		zap.String("tenant_id", tenantID),
		zap.String("installation_id", installationID),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system_shutdown"))
}
