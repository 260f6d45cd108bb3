package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

// RegisterInvariants registers all market module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "module-balance",
		ModuleBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "provider-bounds",
		ProviderBoundsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "request-status",
		RequestStatusInvariant(k))
	ir.RegisterRoute(types.ModuleName, "market-counters",
		MarketCountersInvariant(k))
	ir.RegisterRoute(types.ModuleName, "price-bounds",
		PriceBoundsInvariant(k))
}

// AllInvariants runs all invariants of the market module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ModuleBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = ProviderBoundsInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = RequestStatusInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = MarketCountersInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return PriceBoundsInvariant(k)(ctx)
	}
}

// ModuleBalanceInvariant checks that the module account holds every provider
// stake, every live escrow and the accrued fee pool.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-balance",
				fmt.Sprintf("error loading params: %v", err)), true
		}

		expected := math.ZeroInt()
		err = k.IterateProviders(ctx, func(provider types.Provider) (bool, error) {
			expected = expected.Add(provider.Stake)
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-balance",
				fmt.Sprintf("error iterating providers: %v", err)), true
		}

		err = k.IterateRequests(ctx, func(request types.ComputeRequest) (bool, error) {
			if !request.Status.IsTerminal() {
				expected = expected.Add(request.EscrowAmount)
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-balance",
				fmt.Sprintf("error iterating requests: %v", err)), true
		}

		expected = expected.Add(k.GetAccruedFees(ctx))

		moduleAddr := k.accountKeeper.GetModuleAddress(types.ModuleName)
		balance := k.bankKeeper.GetBalance(ctx, moduleAddr, params.StakeDenom)
		if balance.Amount.LT(expected) {
			return sdk.FormatInvariant(types.ModuleName, "module-balance",
				fmt.Sprintf("module account holds %s, needs at least %s%s",
					balance, expected, params.StakeDenom)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "module-balance",
			"module account covers stakes, escrows and fees"), false
	}
}

// ProviderBoundsInvariant checks per-provider bounds: reputation within
// [0, ReputationMax], current jobs within capacity, non-negative stake.
func ProviderBoundsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)
		err := k.IterateProviders(ctx, func(provider types.Provider) (bool, error) {
			if provider.Reputation > types.ReputationMax {
				broken = true
				msg = fmt.Sprintf("provider %s reputation %d exceeds %d",
					provider.Address, provider.Reputation, types.ReputationMax)
				return true, nil
			}
			if provider.CurrentJobs > provider.MaxConcurrentJobs {
				broken = true
				msg = fmt.Sprintf("provider %s has %d jobs, capacity %d",
					provider.Address, provider.CurrentJobs, provider.MaxConcurrentJobs)
				return true, nil
			}
			if provider.Stake.IsNegative() {
				broken = true
				msg = fmt.Sprintf("provider %s has negative stake %s",
					provider.Address, provider.Stake)
				return true, nil
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "provider-bounds",
				fmt.Sprintf("error iterating providers: %v", err)), true
		}
		if broken {
			return sdk.FormatInvariant(types.ModuleName, "provider-bounds", msg), true
		}
		return sdk.FormatInvariant(types.ModuleName, "provider-bounds",
			"all providers within bounds"), false
	}
}

// RequestStatusInvariant checks that every stored request has a valid status
// and that any request past Pending names a provider.
func RequestStatusInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)
		err := k.IterateRequests(ctx, func(request types.ComputeRequest) (bool, error) {
			if !request.Status.Valid() {
				broken = true
				msg = fmt.Sprintf("request %s has unknown status %d", request.Id, request.Status)
				return true, nil
			}
			needsProvider := request.Status != types.RequestStatusPending &&
				request.Status != types.RequestStatusCancelled
			if needsProvider && request.Provider == "" {
				broken = true
				msg = fmt.Sprintf("request %s in status %s has no provider", request.Id, request.Status)
				return true, nil
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "request-status",
				fmt.Sprintf("error iterating requests: %v", err)), true
		}
		if broken {
			return sdk.FormatInvariant(types.ModuleName, "request-status", msg), true
		}
		return sdk.FormatInvariant(types.ModuleName, "request-status",
			"all request statuses consistent"), false
	}
}

// MarketCountersInvariant checks the oscillator aggregates against the ground
// truth: open demand equals the count of non-terminal requests and total
// supply equals the summed capacity of active providers.
func MarketCountersInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		state, err := k.GetMarketState(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "market-counters",
				fmt.Sprintf("error loading market state: %v", err)), true
		}

		var demand uint64
		err = k.IterateRequests(ctx, func(request types.ComputeRequest) (bool, error) {
			if !request.Status.IsTerminal() {
				demand++
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "market-counters",
				fmt.Sprintf("error iterating requests: %v", err)), true
		}

		var supply uint64
		err = k.IterateProviders(ctx, func(provider types.Provider) (bool, error) {
			if provider.Active {
				supply += provider.MaxConcurrentJobs
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "market-counters",
				fmt.Sprintf("error iterating providers: %v", err)), true
		}

		if state.OpenDemand != demand {
			return sdk.FormatInvariant(types.ModuleName, "market-counters",
				fmt.Sprintf("tracked demand %d, actual %d", state.OpenDemand, demand)), true
		}
		if state.TotalSupply != supply {
			return sdk.FormatInvariant(types.ModuleName, "market-counters",
				fmt.Sprintf("tracked supply %d, actual %d", state.TotalSupply, supply)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "market-counters",
			"supply and demand counters match state"), false
	}
}

// PriceBoundsInvariant checks that the equilibrium price stays within the
// configured floor and cap and stored velocity is never negative.
func PriceBoundsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "price-bounds",
				fmt.Sprintf("error loading params: %v", err)), true
		}
		state, err := k.GetMarketState(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "price-bounds",
				fmt.Sprintf("error loading market state: %v", err)), true
		}

		if state.EquilibriumPrice.LT(params.PriceFloor) || state.EquilibriumPrice.GT(params.PriceCap) {
			return sdk.FormatInvariant(types.ModuleName, "price-bounds",
				fmt.Sprintf("price %s outside [%s, %s]",
					state.EquilibriumPrice, params.PriceFloor, params.PriceCap)), true
		}
		if state.PriceVelocity.IsNegative() {
			return sdk.FormatInvariant(types.ModuleName, "price-bounds",
				fmt.Sprintf("stored velocity %s is negative", state.PriceVelocity)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "price-bounds",
			"price and velocity within bounds"), false
	}
}
