package keeper

import (
	"context"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

// GetParams retrieves the module parameters from the store
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	var params types.Params
	found, err := k.getValue(ctx, ParamsKey, &params)
	if err != nil {
		return types.Params{}, err
	}
	if !found {
		return types.DefaultParams(), nil
	}
	return params, nil
}

// SetParams stores the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return types.ErrInvalidRequest.Wrapf("invalid params: %v", err)
	}
	return k.setValue(ctx, ParamsKey, params)
}
