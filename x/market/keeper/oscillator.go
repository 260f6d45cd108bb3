package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

// The equilibrium price is modeled as the position of a damped oscillator.
// Utilization above the 50% target pushes the price up, below pulls it down:
//
//	utilization = demand * 10000 / max(supply, 1)
//	force       = (utilization - 5000) * price / 10000
//	velocity'   = velocity * damping / 10000 + force
//	price'      = clamp(price + velocity', floor, cap)
//
// The stored velocity is floored at zero after each step while the price move
// itself keeps the raw signed velocity. This asymmetry matches the deployed
// behavior and is pinned by tests; do not "fix" it without a migration.

const utilizationTargetBps = 5000

// GetMarketState retrieves the oscillator singleton, seeding it from params
// on first access.
func (k Keeper) GetMarketState(ctx context.Context) (types.MarketState, error) {
	var state types.MarketState
	found, err := k.getValue(ctx, MarketStateKey, &state)
	if err != nil {
		return types.MarketState{}, err
	}
	if !found {
		params, err := k.GetParams(ctx)
		if err != nil {
			return types.MarketState{}, err
		}
		sdkCtx := sdk.UnwrapSDKContext(ctx)
		return types.MarketState{
			TotalSupply:      0,
			OpenDemand:       0,
			EquilibriumPrice: params.InitialPrice,
			PriceVelocity:    math.ZeroInt(),
			LastPriceUpdate:  sdkCtx.BlockTime(),
			LastUtilization:  0,
		}, nil
	}
	return state, nil
}

// SetMarketState stores the oscillator singleton
func (k Keeper) SetMarketState(ctx context.Context, state types.MarketState) error {
	return k.setValue(ctx, MarketStateKey, state)
}

// adjustSupply shifts the aggregate provider capacity and attempts a
// rate-limited price recomputation.
func (k Keeper) adjustSupply(ctx context.Context, delta int64) error {
	state, err := k.GetMarketState(ctx)
	if err != nil {
		return err
	}
	state.TotalSupply = shiftCounter(state.TotalSupply, delta)
	if err := k.SetMarketState(ctx, state); err != nil {
		return err
	}
	return k.maybeUpdatePrice(ctx)
}

// adjustDemand shifts the count of non-terminal requests and attempts a
// rate-limited price recomputation.
func (k Keeper) adjustDemand(ctx context.Context, delta int64) error {
	state, err := k.GetMarketState(ctx)
	if err != nil {
		return err
	}
	state.OpenDemand = shiftCounter(state.OpenDemand, delta)
	if err := k.SetMarketState(ctx, state); err != nil {
		return err
	}
	return k.maybeUpdatePrice(ctx)
}

func shiftCounter(current uint64, delta int64) uint64 {
	if delta >= 0 {
		return current + uint64(delta)
	}
	dec := uint64(-delta)
	if dec > current {
		return 0
	}
	return current - dec
}

// maybeUpdatePrice runs one oscillator step if at least the configured
// interval has elapsed since the previous one. Supply and demand changes in
// between accumulate without moving the price, which bounds the update rate
// under request spam.
func (k Keeper) maybeUpdatePrice(ctx context.Context) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	state, err := k.GetMarketState(ctx)
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()
	elapsed := now.Sub(state.LastPriceUpdate)
	if elapsed.Seconds() < float64(params.PriceUpdateIntervalSeconds) {
		return nil
	}

	state = oscillatorStep(state, params)
	state.LastPriceUpdate = now
	if err := k.SetMarketState(ctx, state); err != nil {
		return err
	}

	k.metrics.EquilibriumPrice.Set(float64(state.EquilibriumPrice.Int64()))
	k.metrics.Utilization.Set(float64(state.LastUtilization))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMarketStateUpdated,
			sdk.NewAttribute(types.AttributeKeySupply, math.NewIntFromUint64(state.TotalSupply).String()),
			sdk.NewAttribute(types.AttributeKeyDemand, math.NewIntFromUint64(state.OpenDemand).String()),
			sdk.NewAttribute(types.AttributeKeyPrice, state.EquilibriumPrice.String()),
			sdk.NewAttribute(types.AttributeKeyVelocity, state.PriceVelocity.String()),
			sdk.NewAttribute(types.AttributeKeyUtilization, math.NewIntFromUint64(state.LastUtilization).String()),
		),
	)
	return nil
}

// oscillatorStep performs one damped-spring update in basis-point integer
// arithmetic. The raw (possibly negative) velocity moves the price; the
// stored velocity is clamped to non-negative afterwards.
func oscillatorStep(state types.MarketState, params types.Params) types.MarketState {
	supply := state.TotalSupply
	if supply == 0 {
		supply = 1
	}
	utilization := math.NewIntFromUint64(state.OpenDemand).
		MulRaw(10000).
		Quo(math.NewIntFromUint64(supply))

	force := utilization.SubRaw(utilizationTargetBps).
		Mul(state.EquilibriumPrice).
		QuoRaw(10000)

	velocity := state.PriceVelocity.
		MulRaw(int64(params.DampingFactorBps)).
		QuoRaw(10000).
		Add(force)

	price := state.EquilibriumPrice.Add(velocity)
	if price.LT(params.PriceFloor) {
		price = params.PriceFloor
	}
	if price.GT(params.PriceCap) {
		price = params.PriceCap
	}

	if velocity.IsNegative() {
		velocity = math.ZeroInt()
	}

	state.EquilibriumPrice = price
	state.PriceVelocity = velocity
	state.LastUtilization = utilization.Uint64()
	return state
}

// EstimateCost quotes a workload of the given size at the current (possibly
// stale) equilibrium price. The quote is honored at request time; settlement
// never reprices.
func (k Keeper) EstimateCost(ctx context.Context, estimatedSize uint64) (math.Int, error) {
	state, err := k.GetMarketState(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return state.EquilibriumPrice.Mul(math.NewIntFromUint64(estimatedSize)), nil
}

// RequiredEscrow is the estimate plus a fixed 10% buffer.
func RequiredEscrow(estimate math.Int) math.Int {
	return estimate.MulRaw(110).QuoRaw(100)
}
