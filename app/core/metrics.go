package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wayfarer-app/wayfarer/pkg/metrics"
)

type Metrics struct {
	apiResponseTime  *prometheus.HistogramVec
	apiErrorCounter  *prometheus.CounterVec
	tokenRetryTotal  *prometheus.CounterVec
	viewDedupCounter *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	metrics.SetupMetricsManager(ns, system, prometheus.NewRegistry())

	m := &Metrics{
		apiResponseTime:  metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter:  metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		tokenRetryTotal:  metrics.NewCounterVec("share_token_retry", nil),
		viewDedupCounter: metrics.NewCounterVec("view_dedup", []string{"result"}),
	}

	return m
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) ShareTokenRetryInc() {
	m.tokenRetryTotal.WithLabelValues().Inc()
}

func (m *Metrics) ViewDedupInc(result string) {
	m.viewDedupCounter.WithLabelValues(result).Inc()
}
