package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// EndBlocker is called at the end of every block. It gives the oscillator a
// chance to tick even when no supply or demand change landed in the block, so
// a quiet market still converges back toward the utilization target.
func (k Keeper) EndBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := k.maybeUpdatePrice(ctx); err != nil {
		sdkCtx.Logger().Error("failed to update market price", "error", err)
		// Don't return error - log and continue
	}
	return nil
}
