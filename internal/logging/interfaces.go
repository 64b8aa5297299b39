// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})

	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})

	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface emits audit events for security-relevant actions.
// Events carry identifiers only, never credentials or decrypted material.
type SecurityLoggerInterface interface {
	AuthSuccess(tenantID, mechanism string)
	AuthFailure(reason, mechanism string)
	StateTokenRejected(reason string)
	InstallationLinked(tenantID, installationID string)
	SystemStartup()
	SystemShutdown()
}
