package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

// accrueFee adds a settled market fee to the pool. Fees stay in the module
// account until the authority sweeps them to the treasury.
func (k Keeper) accrueFee(ctx context.Context, fee math.Int) error {
	if !fee.IsPositive() {
		return nil
	}
	pool := k.GetAccruedFees(ctx)
	return k.setAccruedFees(ctx, pool.Add(fee))
}

// GetAccruedFees returns the undistributed fee pool.
func (k Keeper) GetAccruedFees(ctx context.Context) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(AccruedFeesKey)
	if bz == nil {
		return math.ZeroInt()
	}
	var pool math.Int
	if err := pool.Unmarshal(bz); err != nil {
		return math.ZeroInt()
	}
	return pool
}

func (k Keeper) setAccruedFees(ctx context.Context, pool math.Int) error {
	bz, err := pool.Marshal()
	if err != nil {
		return types.ErrMarshalFailed.Wrapf("fee pool: %v", err)
	}
	store := k.getStore(ctx)
	store.Set(AccruedFeesKey, bz)
	return nil
}

// WithdrawFees sweeps the accrued fee pool to the configured treasury
// address and resets the pool to zero. Authority-gated.
func (k Keeper) WithdrawFees(ctx context.Context, authority string) (math.Int, error) {
	if authority != k.authority {
		return math.ZeroInt(), types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, authority)
	}

	treasury := k.GetTreasury(ctx)
	if treasury == "" {
		return math.ZeroInt(), types.ErrZeroAddress.Wrap("treasury address not set")
	}
	treasuryAddr, err := sdk.AccAddressFromBech32(treasury)
	if err != nil {
		return math.ZeroInt(), types.ErrZeroAddress.Wrapf("%v", err)
	}

	pool := k.GetAccruedFees(ctx)
	if !pool.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("fee pool is empty")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, treasuryAddr, marketCoins(params, pool)); err != nil {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrapf("failed to pay treasury: %v", err)
	}
	if err := k.setAccruedFees(ctx, math.ZeroInt()); err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeesWithdrawn,
			sdk.NewAttribute(types.AttributeKeyTreasury, treasury),
			sdk.NewAttribute(types.AttributeKeyAmount, pool.String()),
		),
	)
	return pool, nil
}

// SetTreasury records the fee destination address. Authority-gated.
func (k Keeper) SetTreasury(ctx context.Context, authority, treasury string) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, authority)
	}
	if _, err := sdk.AccAddressFromBech32(treasury); err != nil {
		return types.ErrZeroAddress.Wrapf("%v", err)
	}

	store := k.getStore(ctx)
	store.Set(TreasuryKey, []byte(treasury))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTreasuryUpdated,
			sdk.NewAttribute(types.AttributeKeyTreasury, treasury),
		),
	)
	return nil
}

// GetTreasury returns the configured treasury address, empty if unset.
func (k Keeper) GetTreasury(ctx context.Context) string {
	store := k.getStore(ctx)
	bz := store.Get(TreasuryKey)
	if bz == nil {
		return ""
	}
	return string(bz)
}
