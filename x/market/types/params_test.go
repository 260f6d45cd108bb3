package types

import (
	"testing"

	"cosmossdk.io/math"
)

func TestDefaultParams(t *testing.T) {
	params := DefaultParams()

	if err := params.Validate(); err != nil {
		t.Fatalf("DefaultParams().Validate() = %v, want nil", err)
	}
	if params.StakeDenom != "ugrid" {
		t.Errorf("DefaultParams().StakeDenom = %q, want ugrid", params.StakeDenom)
	}
	if !params.MinProviderStake.Equal(math.NewInt(1000000)) {
		t.Errorf("DefaultParams().MinProviderStake = %v, want 1000000", params.MinProviderStake)
	}
	if params.MarketFeeBps != 250 {
		t.Errorf("DefaultParams().MarketFeeBps = %v, want 250", params.MarketFeeBps)
	}
	if params.SlashBps != 1000 {
		t.Errorf("DefaultParams().SlashBps = %v, want 1000", params.SlashBps)
	}
	if !params.InitialPrice.Equal(math.NewInt(1000)) {
		t.Errorf("DefaultParams().InitialPrice = %v, want 1000", params.InitialPrice)
	}
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"defaults", func(p *Params) {}, false},
		{"empty denom", func(p *Params) { p.StakeDenom = "" }, true},
		{"zero min stake", func(p *Params) { p.MinProviderStake = math.ZeroInt() }, true},
		{"fee over 100%", func(p *Params) { p.MarketFeeBps = 10001 }, true},
		{"slash over 100%", func(p *Params) { p.SlashBps = 10001 }, true},
		{"zero max duration", func(p *Params) { p.MaxRequestDurationSeconds = 0 }, true},
		{"negative dispute window", func(p *Params) { p.DisputeWindowSeconds = -1 }, true},
		{"zero update interval", func(p *Params) { p.PriceUpdateIntervalSeconds = 0 }, true},
		{"damping over 100%", func(p *Params) { p.DampingFactorBps = 10001 }, true},
		{"floor above cap", func(p *Params) { p.PriceFloor = p.PriceCap.AddRaw(1) }, true},
		{"initial price below floor", func(p *Params) { p.InitialPrice = math.ZeroInt() }, true},
		{"initial price above cap", func(p *Params) { p.InitialPrice = p.PriceCap.AddRaw(1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultParams()
			tt.mutate(&params)
			err := params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
