package keeper

import (
	"context"
	"encoding/json"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

// Keeper of the market store. All mutating entry points run inside a single
// serialized transaction context, so per-entity records and the market-wide
// aggregates can be updated together atomically.
type Keeper struct {
	storeKey      storetypes.StoreKey
	cdc           codec.Codec
	bankKeeper    types.BankKeeper
	accountKeeper types.AccountKeeper
	authority     string

	metrics *MarketMetrics
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new market Keeper instance
func NewKeeper(
	cdc codec.Codec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:      key,
		cdc:           cdc,
		bankKeeper:    bankKeeper,
		accountKeeper: accountKeeper,
		authority:     authority,
		metrics:       NewMarketMetrics(),
	}
}

// GetAuthority returns the module's authority address (the account allowed to
// resolve disputes, move fees and update params).
func (k Keeper) GetAuthority() string {
	return k.authority
}

// getStore returns the KVStore for the market module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}

// setValue JSON-encodes a record into the store.
func (k Keeper) setValue(ctx context.Context, key []byte, value interface{}) error {
	bz, err := json.Marshal(value)
	if err != nil {
		return types.ErrMarshalFailed.Wrapf("%v", err)
	}
	k.getStore(ctx).Set(key, bz)
	return nil
}

// getValue decodes a record from the store; found is false when the key is absent.
func (k Keeper) getValue(ctx context.Context, key []byte, out interface{}) (found bool, err error) {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return false, nil
	}
	if err := json.Unmarshal(bz, out); err != nil {
		return false, types.ErrUnmarshalFailed.Wrapf("%v", err)
	}
	return true, nil
}

// marketCoins builds the coin list for a stake or escrow amount in the market denom.
func marketCoins(params types.Params, amount math.Int) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(params.StakeDenom, amount))
}
