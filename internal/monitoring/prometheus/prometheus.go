// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

// SetResponseTimeMetric expects the "route" and "status" labels.
func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	h, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return err
	}

	h.Observe(value)
	return nil
}

// SetDependencyAvailability expects the "component" label; value is 1 when up, 0 when down.
func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	g, err := m.dependencies.GetMetricWith(tags)
	if err != nil {
		return err
	}

	g.Set(value)
	return nil
}

func (m *Monitor) register(c prometheus.Collector) prometheus.Collector {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector
		}
		m.logger.Errorf("failed to register collector: %v", err)
	}
	return c
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	responseTime := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "HTTP response time by route and status",
			ConstLabels: prometheus.Labels{"service": service},
			Buckets:     prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)

	dependencies := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "Availability of downstream dependencies",
			ConstLabels: prometheus.Labels{"service": service},
		},
		[]string{"component"},
	)

	m.responseTime = m.register(responseTime).(*prometheus.HistogramVec)
	m.dependencies = m.register(dependencies).(*prometheus.GaugeVec)

	return m
}
