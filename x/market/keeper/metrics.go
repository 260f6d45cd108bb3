package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MarketMetrics holds all Prometheus metrics for the market module
type MarketMetrics struct {
	// Provider metrics
	ProvidersRegistered prometheus.Counter
	ProvidersActive     prometheus.Gauge
	ProvidersSlashed    prometheus.Counter
	StakeSlashed        prometheus.Counter

	// Request metrics
	RequestsCreated  prometheus.Counter
	RequestsVerified prometheus.Counter
	RequestsDisputed prometheus.Counter

	// Escrow metrics
	EscrowLocked   prometheus.Counter
	EscrowReleased prometheus.Counter
	FeesAccrued    prometheus.Counter

	// Pricing metrics
	EquilibriumPrice prometheus.Gauge
	Utilization      prometheus.Gauge
}

var (
	marketMetricsOnce sync.Once
	marketMetrics     *MarketMetrics
)

// NewMarketMetrics creates and registers market metrics (singleton pattern)
func NewMarketMetrics() *MarketMetrics {
	marketMetricsOnce.Do(func() {
		marketMetrics = &MarketMetrics{
			ProvidersRegistered: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "gridmesh",
					Subsystem: "market",
					Name:      "providers_registered_total",
					Help:      "Total providers registered",
				},
			),
			ProvidersActive: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "gridmesh",
					Subsystem: "market",
					Name:      "providers_active",
					Help:      "Currently active providers",
				},
			),
			ProvidersSlashed: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "gridmesh",
					Subsystem: "market",
					Name:      "providers_slashed_total",
					Help:      "Provider slashing events",
				},
			),
			StakeSlashed: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "gridmesh",
					Subsystem: "market",
					Name:      "stake_slashed_total",
					Help:      "Total stake slashed",
				},
			),
			RequestsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "gridmesh",
					Subsystem: "market",
					Name:      "requests_created_total",
					Help:      "Total compute requests created",
				},
			),
			RequestsVerified: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "gridmesh",
					Subsystem: "market",
					Name:      "requests_verified_total",
					Help:      "Total requests verified and paid out",
				},
			),
			RequestsDisputed: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "gridmesh",
					Subsystem: "market",
					Name:      "requests_disputed_total",
					Help:      "Total requests disputed",
				},
			),
			EscrowLocked: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "gridmesh",
					Subsystem: "market",
					Name:      "escrow_locked_total",
					Help:      "Total escrow locked",
				},
			),
			EscrowReleased: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "gridmesh",
					Subsystem: "market",
					Name:      "escrow_released_total",
					Help:      "Total escrow released or refunded",
				},
			),
			FeesAccrued: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "gridmesh",
					Subsystem: "market",
					Name:      "fees_accrued_total",
					Help:      "Total market fees accrued",
				},
			),
			EquilibriumPrice: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "gridmesh",
					Subsystem: "market",
					Name:      "equilibrium_price",
					Help:      "Current equilibrium price per compute unit",
				},
			),
			Utilization: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "gridmesh",
					Subsystem: "market",
					Name:      "utilization_bps",
					Help:      "Market utilization in basis points",
				},
			),
		}
	})
	return marketMetrics
}

// GetMarketMetrics returns the singleton market metrics instance
func GetMarketMetrics() *MarketMetrics {
	if marketMetrics == nil {
		return NewMarketMetrics()
	}
	return marketMetrics
}
