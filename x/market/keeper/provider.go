package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

// RegisterProvider registers a new compute provider with the required stake.
// Re-registration is idempotent with respect to enumeration: the record is
// overwritten, the new stake is added to the existing one, and reputation and
// lifetime counters carry over. Global supply is adjusted by the capacity
// delta.
func (k Keeper) RegisterProvider(
	ctx context.Context,
	provider sdk.AccAddress,
	stake math.Int,
	workloadID, attestationID string,
	pricingModel types.PricingModel,
	pricePerUnit, pricePerCall, pricePerTime math.Int,
	maxConcurrent uint64,
) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()

	existing, err := k.GetProvider(ctx, provider)
	alreadyRegistered := err == nil

	totalStake := stake
	if alreadyRegistered {
		totalStake = existing.Stake.Add(stake)
	}
	if totalStake.LT(params.MinProviderStake) {
		return types.ErrInsufficientStake.Wrapf(
			"stake %s is less than minimum required %s", totalStake.String(), params.MinProviderStake.String())
	}
	// Capacity cannot shrink below the jobs already in flight.
	if alreadyRegistered && maxConcurrent < existing.CurrentJobs {
		return types.ErrProviderBusy.Wrapf(
			"%d jobs in flight exceed new capacity %d", existing.CurrentJobs, maxConcurrent)
	}

	// Lock the new stake in the module account.
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, marketCoins(params, stake)); err != nil {
		return types.ErrInvalidAmount.Wrapf("failed to lock stake: %v", err)
	}

	record := types.Provider{
		Address:           provider.String(),
		Registered:        true,
		Active:            true,
		Stake:             totalStake,
		LifetimeEarnings:  math.ZeroInt(),
		Reputation:        types.ReputationInitial,
		PricingModel:      pricingModel,
		PricePerUnit:      pricePerUnit,
		PricePerCall:      pricePerCall,
		PricePerTime:      pricePerTime,
		MaxConcurrentJobs: maxConcurrent,
		WorkloadId:        workloadID,
		AttestationId:     attestationID,
		RegisteredAt:      now,
		LastActiveAt:      now,
	}

	// Supply only counts active capacity. On re-registration the previous
	// capacity may already be included.
	supplyDelta := int64(maxConcurrent)
	if alreadyRegistered {
		record.LifetimeEarnings = existing.LifetimeEarnings
		record.Reputation = existing.Reputation
		record.CompletedJobs = existing.CompletedJobs
		record.SlashedJobs = existing.SlashedJobs
		record.CurrentJobs = existing.CurrentJobs
		record.RegisteredAt = existing.RegisteredAt
		if existing.Active {
			supplyDelta = int64(maxConcurrent) - int64(existing.MaxConcurrentJobs)
		}
	} else {
		k.incrementProviderCount(ctx)
	}

	if err := k.SetProvider(ctx, record); err != nil {
		return err
	}
	k.setActiveProviderIndex(ctx, provider, true)

	if err := k.adjustSupply(ctx, supplyDelta); err != nil {
		return err
	}

	k.metrics.ProvidersRegistered.Inc()
	k.metrics.ProvidersActive.Set(float64(k.countActiveProviders(ctx)))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProviderRegistered,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyStake, totalStake.String()),
			sdk.NewAttribute(types.AttributeKeyWorkloadID, workloadID),
		),
	)
	return nil
}

// UpdatePricing replaces a provider's pricing metadata. No funds move.
func (k Keeper) UpdatePricing(
	ctx context.Context,
	provider sdk.AccAddress,
	pricingModel types.PricingModel,
	pricePerUnit, pricePerCall, pricePerTime math.Int,
) error {
	existing, err := k.GetProvider(ctx, provider)
	if err != nil {
		return err
	}

	existing.PricingModel = pricingModel
	existing.PricePerUnit = pricePerUnit
	existing.PricePerCall = pricePerCall
	existing.PricePerTime = pricePerTime

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	existing.LastActiveAt = sdkCtx.BlockTime()

	if err := k.SetProvider(ctx, *existing); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProviderUpdated,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		),
	)
	return nil
}

// AddStake locks additional collateral. A provider that fell below the
// minimum is reactivated once its stake clears the bar again.
func (k Keeper) AddStake(ctx context.Context, provider sdk.AccAddress, amount math.Int) error {
	existing, err := k.GetProvider(ctx, provider)
	if err != nil {
		return err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, marketCoins(params, amount)); err != nil {
		return types.ErrInvalidAmount.Wrapf("failed to lock stake: %v", err)
	}

	existing.Stake = existing.Stake.Add(amount)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	existing.LastActiveAt = sdkCtx.BlockTime()

	reactivated := false
	if !existing.Active && existing.Stake.GTE(params.MinProviderStake) {
		existing.Active = true
		reactivated = true
	}

	if err := k.SetProvider(ctx, *existing); err != nil {
		return err
	}

	if reactivated {
		k.setActiveProviderIndex(ctx, provider, true)
		if err := k.adjustSupply(ctx, int64(existing.MaxConcurrentJobs)); err != nil {
			return err
		}
		k.metrics.ProvidersActive.Set(float64(k.countActiveProviders(ctx)))
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeStakeAdded,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyStake, existing.Stake.String()),
		),
	)
	return nil
}

// WithdrawStake pays back part or all of the stake. Rejected while any job is
// in flight. Dropping below the minimum deactivates the provider and removes
// its capacity from global supply.
func (k Keeper) WithdrawStake(ctx context.Context, provider sdk.AccAddress, amount math.Int) error {
	existing, err := k.GetProvider(ctx, provider)
	if err != nil {
		return err
	}
	if existing.CurrentJobs != 0 {
		return types.ErrProviderBusy.Wrapf("%d jobs in flight", existing.CurrentJobs)
	}
	if amount.GT(existing.Stake) {
		return types.ErrInvalidAmount.Wrapf("withdraw %s exceeds stake %s", amount.String(), existing.Stake.String())
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	existing.Stake = existing.Stake.Sub(amount)

	deactivated := false
	if existing.Active && existing.Stake.LT(params.MinProviderStake) {
		existing.Active = false
		deactivated = true
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	existing.LastActiveAt = sdkCtx.BlockTime()

	if err := k.SetProvider(ctx, *existing); err != nil {
		return err
	}

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, marketCoins(params, amount)); err != nil {
		return types.ErrInvalidAmount.Wrapf("failed to return stake: %v", err)
	}

	if deactivated {
		k.setActiveProviderIndex(ctx, provider, false)
		if err := k.adjustSupply(ctx, -int64(existing.MaxConcurrentJobs)); err != nil {
			return err
		}
		k.metrics.ProvidersActive.Set(float64(k.countActiveProviders(ctx)))

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeProviderDeactivated,
				sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
				sdk.NewAttribute(types.AttributeKeyStake, existing.Stake.String()),
			),
		)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeStakeWithdrawn,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyStake, existing.Stake.String()),
		),
	)
	return nil
}

// deactivateBelowMinimum flips an active provider inactive when its stake has
// dropped below the registration minimum, removing its capacity from supply.
// Used by the slashing path.
func (k Keeper) deactivateBelowMinimum(ctx context.Context, provider *types.Provider, params types.Params) (bool, error) {
	if !provider.Active || provider.Stake.GTE(params.MinProviderStake) {
		return false, nil
	}
	provider.Active = false

	addr, err := sdk.AccAddressFromBech32(provider.Address)
	if err != nil {
		return false, types.ErrZeroAddress.Wrapf("%v", err)
	}
	k.setActiveProviderIndex(ctx, addr, false)
	if err := k.adjustSupply(ctx, -int64(provider.MaxConcurrentJobs)); err != nil {
		return false, err
	}
	k.metrics.ProvidersActive.Set(float64(k.countActiveProviders(ctx)))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProviderDeactivated,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.Address),
			sdk.NewAttribute(types.AttributeKeyStake, provider.Stake.String()),
		),
	)
	return true, nil
}

// GetProvider retrieves a provider by address
func (k Keeper) GetProvider(ctx context.Context, address sdk.AccAddress) (*types.Provider, error) {
	var provider types.Provider
	found, err := k.getValue(ctx, ProviderKey(address), &provider)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, types.ErrNotRegistered.Wrapf("provider %s", address.String())
	}
	return &provider, nil
}

// SetProvider stores a provider record
func (k Keeper) SetProvider(ctx context.Context, provider types.Provider) error {
	addr, err := sdk.AccAddressFromBech32(provider.Address)
	if err != nil {
		return types.ErrZeroAddress.Wrapf("failed to parse address: %v", err)
	}
	return k.setValue(ctx, ProviderKey(addr), provider)
}

// IterateProviders iterates over all providers
func (k Keeper) IterateProviders(ctx context.Context, cb func(provider types.Provider) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ProviderKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var provider types.Provider
		if err := json.Unmarshal(iterator.Value(), &provider); err != nil {
			return types.ErrUnmarshalFailed.Wrapf("%v", err)
		}
		stop, err := cb(provider)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}
	return nil
}

// setActiveProviderIndex sets or removes a provider from the active providers index
func (k Keeper) setActiveProviderIndex(ctx context.Context, provider sdk.AccAddress, active bool) {
	store := k.getStore(ctx)
	key := ActiveProviderKey(provider)
	if active {
		store.Set(key, provider.Bytes())
	} else {
		store.Delete(key)
	}
}

func (k Keeper) countActiveProviders(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ActiveProvidersPrefix)
	defer iterator.Close()

	var count uint64
	for ; iterator.Valid(); iterator.Next() {
		count++
	}
	return count
}

// GetProviderCount returns the total number of registered providers
func (k Keeper) GetProviderCount(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(ProviderCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) incrementProviderCount(ctx context.Context) {
	store := k.getStore(ctx)
	count := k.GetProviderCount(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count+1)
	store.Set(ProviderCountKey, bz)
}

func (k Keeper) setProviderCount(ctx context.Context, count uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	store.Set(ProviderCountKey, bz)
}
