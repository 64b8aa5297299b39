// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

var _ MonitorInterface = (*NoopMonitor)(nil)

// NoopMonitor discards all metrics, for tests.
type NoopMonitor struct{}

func NewNoopMonitor() *NoopMonitor {
	return &NoopMonitor{}
}

func (*NoopMonitor) GetService() string {
	return "noop"
}

func (*NoopMonitor) SetResponseTimeMetric(map[string]string, float64) error {
	return nil
}

func (*NoopMonitor) SetDependencyAvailability(map[string]string, float64) error {
	return nil
}
