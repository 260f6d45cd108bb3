package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Params holds every tunable market constant. All ratio-style values are
// expressed in basis points (10000 = 100%).
type Params struct {
	StakeDenom                 string   `json:"stake_denom"`
	MinProviderStake           math.Int `json:"min_provider_stake"`
	MarketFeeBps               uint64   `json:"market_fee_bps"`
	SlashBps                   uint64   `json:"slash_bps"`
	MaxRequestDurationSeconds  int64    `json:"max_request_duration_seconds"`
	DisputeWindowSeconds       int64    `json:"dispute_window_seconds"`
	PriceUpdateIntervalSeconds int64    `json:"price_update_interval_seconds"`
	DampingFactorBps           uint64   `json:"damping_factor_bps"`
	PriceFloor                 math.Int `json:"price_floor"`
	PriceCap                   math.Int `json:"price_cap"`
	InitialPrice               math.Int `json:"initial_price"`
}

// DefaultParams returns default market parameters
func DefaultParams() Params {
	return Params{
		StakeDenom:                 "ugrid",
		MinProviderStake:           math.NewInt(1000000), // 1 GRID
		MarketFeeBps:               250,                  // 2.5% fee on verified payouts
		SlashBps:                   1000,                 // 10% stake penalty on slash
		MaxRequestDurationSeconds:  86400,                // 24 hours
		DisputeWindowSeconds:       3600,                 // 1 hour past the deadline
		PriceUpdateIntervalSeconds: 300,                  // 5 minutes between oscillator ticks
		DampingFactorBps:           9000,                 // velocity retains 90% per tick
		PriceFloor:                 math.NewInt(1),
		PriceCap:                   math.NewInt(1000000000),
		InitialPrice:               math.NewInt(1000),
	}
}

// Validate performs basic validation of market parameters
func (p Params) Validate() error {
	if p.StakeDenom == "" {
		return fmt.Errorf("stake_denom cannot be empty")
	}
	if p.MinProviderStake.IsNil() || !p.MinProviderStake.IsPositive() {
		return fmt.Errorf("min_provider_stake must be positive")
	}
	if p.MarketFeeBps > 10000 {
		return fmt.Errorf("market_fee_bps %d exceeds 10000", p.MarketFeeBps)
	}
	if p.SlashBps > 10000 {
		return fmt.Errorf("slash_bps %d exceeds 10000", p.SlashBps)
	}
	if p.MaxRequestDurationSeconds <= 0 {
		return fmt.Errorf("max_request_duration_seconds must be positive")
	}
	if p.DisputeWindowSeconds <= 0 {
		return fmt.Errorf("dispute_window_seconds must be positive")
	}
	if p.PriceUpdateIntervalSeconds <= 0 {
		return fmt.Errorf("price_update_interval_seconds must be positive")
	}
	if p.DampingFactorBps >= 10000 {
		return fmt.Errorf("damping_factor_bps %d must be below 10000", p.DampingFactorBps)
	}
	if p.PriceFloor.IsNil() || !p.PriceFloor.IsPositive() {
		return fmt.Errorf("price_floor must be positive")
	}
	if p.PriceCap.IsNil() || p.PriceCap.LT(p.PriceFloor) {
		return fmt.Errorf("price_cap must be at least price_floor")
	}
	if p.InitialPrice.IsNil() || p.InitialPrice.LT(p.PriceFloor) || p.InitialPrice.GT(p.PriceCap) {
		return fmt.Errorf("initial_price must be within [price_floor, price_cap]")
	}
	return nil
}
