// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/canonical/tenant-console/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

// SetDependencyAvailability tracks whether the account API answered the last check
func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencyAvailability.With(tags).Set(value)

	return nil
}

func (m *Monitor) registerHistograms() {
	histograms := map[string]**prometheus.HistogramVec{
		"http_response_time": &m.responseTime,
	}

	for name, h := range histograms {
		*h = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        name,
				Help:        "Response time of the console endpoints",
				ConstLabels: prometheus.Labels{"service": m.service},
			},
			[]string{"route", "status"},
		)

		*h = register(*h, m.logger)
	}
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailability = register(
		prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "dependency_available",
				Help:        "Availability of the upstream dependencies",
				ConstLabels: prometheus.Labels{"service": m.service},
			},
			[]string{"component"},
		),
		m.logger,
	)
}

// register adds a collector to the default registry, reusing the one
// already registered under the same descriptor.
func register[T prometheus.Collector](c T, logger logging.LoggerInterface) T {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}

	logger.Errorf("failed to register collector: %v", err)

	return c
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()

	return m
}
