package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState is the full exported state of the market module.
type GenesisState struct {
	Params       Params           `json:"params"`
	Providers    []Provider       `json:"providers"`
	Requests     []ComputeRequest `json:"requests"`
	MarketState  *MarketState     `json:"market_state,omitempty"`
	SlashRecords []SlashRecord    `json:"slash_records"`
	NextSlashId  uint64           `json:"next_slash_id"`
	AccruedFees  math.Int         `json:"accrued_fees"`
	Treasury     string           `json:"treasury,omitempty"`
	Nonces       []RequesterNonce `json:"nonces"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		Providers:    []Provider{},
		Requests:     []ComputeRequest{},
		SlashRecords: []SlashRecord{},
		NextSlashId:  1,
		AccruedFees:  math.ZeroInt(),
		Nonces:       []RequesterNonce{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seenProviders := make(map[string]bool)
	for i, p := range gs.Providers {
		if p.Address == "" {
			return fmt.Errorf("provider %d: address cannot be empty", i)
		}
		if _, err := sdk.AccAddressFromBech32(p.Address); err != nil {
			return fmt.Errorf("provider %d: invalid address %s: %w", i, p.Address, err)
		}
		if seenProviders[p.Address] {
			return fmt.Errorf("provider %d: duplicate address %s", i, p.Address)
		}
		seenProviders[p.Address] = true

		if p.Stake.IsNil() || p.Stake.IsNegative() {
			return fmt.Errorf("provider %s: stake cannot be negative", p.Address)
		}
		if p.Active && p.Stake.LT(gs.Params.MinProviderStake) {
			return fmt.Errorf("provider %s: active with stake below minimum", p.Address)
		}
		if p.Reputation > ReputationMax {
			return fmt.Errorf("provider %s: reputation %d exceeds %d", p.Address, p.Reputation, ReputationMax)
		}
		if p.CurrentJobs > p.MaxConcurrentJobs {
			return fmt.Errorf("provider %s: current jobs %d exceed capacity %d", p.Address, p.CurrentJobs, p.MaxConcurrentJobs)
		}
		if !p.PricingModel.Valid() {
			return fmt.Errorf("provider %s: unknown pricing model %d", p.Address, p.PricingModel)
		}
	}

	seenRequests := make(map[string]bool)
	for i, r := range gs.Requests {
		if err := validateRequestID(r.Id); err != nil {
			return fmt.Errorf("request %d: %w", i, err)
		}
		if seenRequests[r.Id] {
			return fmt.Errorf("request %d: duplicate id %s", i, r.Id)
		}
		seenRequests[r.Id] = true

		if _, err := sdk.AccAddressFromBech32(r.Requester); err != nil {
			return fmt.Errorf("request %s: invalid requester: %w", r.Id, err)
		}
		if !r.Status.Valid() {
			return fmt.Errorf("request %s: unknown status %d", r.Id, r.Status)
		}
		if r.Status != RequestStatusPending && r.Status != RequestStatusCancelled && r.Provider == "" {
			return fmt.Errorf("request %s: status %s requires an assigned provider", r.Id, r.Status)
		}
		if r.Provider != "" {
			if _, err := sdk.AccAddressFromBech32(r.Provider); err != nil {
				return fmt.Errorf("request %s: invalid provider: %w", r.Id, err)
			}
		}
		if r.EscrowAmount.IsNil() || !r.EscrowAmount.IsPositive() {
			return fmt.Errorf("request %s: escrow must be positive", r.Id)
		}
		if r.Deadline.Before(r.CreatedAt) {
			return fmt.Errorf("request %s: deadline before creation time", r.Id)
		}
	}

	if gs.MarketState != nil {
		ms := gs.MarketState
		if ms.EquilibriumPrice.IsNil() ||
			ms.EquilibriumPrice.LT(gs.Params.PriceFloor) ||
			ms.EquilibriumPrice.GT(gs.Params.PriceCap) {
			return fmt.Errorf("market state: equilibrium price outside [floor, cap]")
		}
		if ms.PriceVelocity.IsNil() || ms.PriceVelocity.IsNegative() {
			return fmt.Errorf("market state: stored velocity cannot be negative")
		}
	}

	maxSlashID := uint64(0)
	seenSlashIDs := make(map[uint64]bool)
	for i, rec := range gs.SlashRecords {
		if rec.Id == 0 {
			return fmt.Errorf("slash record %d: id cannot be zero", i)
		}
		if seenSlashIDs[rec.Id] {
			return fmt.Errorf("slash record %d: duplicate id %d", i, rec.Id)
		}
		seenSlashIDs[rec.Id] = true
		if rec.Id > maxSlashID {
			maxSlashID = rec.Id
		}
		if _, err := sdk.AccAddressFromBech32(rec.Provider); err != nil {
			return fmt.Errorf("slash record %d: invalid provider: %w", i, err)
		}
		if rec.SlashAmount.IsNil() || rec.SlashAmount.IsNegative() {
			return fmt.Errorf("slash record %d: slash amount cannot be negative", i)
		}
	}
	if gs.NextSlashId == 0 {
		return fmt.Errorf("next_slash_id cannot be zero")
	}
	if gs.NextSlashId <= maxSlashID {
		return fmt.Errorf("next_slash_id (%d) must be greater than the highest slash id (%d)", gs.NextSlashId, maxSlashID)
	}

	if gs.AccruedFees.IsNil() || gs.AccruedFees.IsNegative() {
		return fmt.Errorf("accrued_fees cannot be negative")
	}
	if gs.Treasury != "" {
		if _, err := sdk.AccAddressFromBech32(gs.Treasury); err != nil {
			return fmt.Errorf("invalid treasury address: %w", err)
		}
	}

	seenNonces := make(map[string]bool)
	for i, n := range gs.Nonces {
		if _, err := sdk.AccAddressFromBech32(n.Requester); err != nil {
			return fmt.Errorf("nonce %d: invalid requester: %w", i, err)
		}
		if seenNonces[n.Requester] {
			return fmt.Errorf("nonce %d: duplicate requester %s", i, n.Requester)
		}
		seenNonces[n.Requester] = true
	}

	return nil
}
