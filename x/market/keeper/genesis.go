package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

// InitGenesis initializes the market module state from a genesis state.
// Secondary indexes and counters are rebuilt from the primary records rather
// than imported, so they cannot drift from the data.
func InitGenesis(ctx context.Context, k Keeper, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid market genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}

	var supply uint64
	for _, provider := range genState.Providers {
		if err := k.SetProvider(ctx, provider); err != nil {
			return err
		}
		addr, err := sdk.AccAddressFromBech32(provider.Address)
		if err != nil {
			return err
		}
		if provider.Active {
			k.setActiveProviderIndex(ctx, addr, true)
			supply += provider.MaxConcurrentJobs
		}
	}
	k.setProviderCount(ctx, uint64(len(genState.Providers)))

	var demand uint64
	for _, request := range genState.Requests {
		if err := k.SetRequest(ctx, request); err != nil {
			return err
		}
		k.setRequestIndexes(ctx, request)
		if !request.Status.IsTerminal() {
			demand++
		}
	}

	state := types.MarketState{
		EquilibriumPrice: genState.Params.InitialPrice,
		PriceVelocity:    math.ZeroInt(),
		LastPriceUpdate:  sdk.UnwrapSDKContext(ctx).BlockTime(),
	}
	if genState.MarketState != nil {
		state = *genState.MarketState
	}
	state.TotalSupply = supply
	state.OpenDemand = demand
	if err := k.SetMarketState(ctx, state); err != nil {
		return err
	}

	for _, record := range genState.SlashRecords {
		if err := k.setSlashRecord(ctx, record); err != nil {
			return err
		}
	}
	k.setNextSlashID(ctx, genState.NextSlashId)

	if err := k.setAccruedFees(ctx, genState.AccruedFees); err != nil {
		return err
	}
	if genState.Treasury != "" {
		store := k.getStore(ctx)
		store.Set(TreasuryKey, []byte(genState.Treasury))
	}

	for _, nonce := range genState.Nonces {
		addr, err := sdk.AccAddressFromBech32(nonce.Requester)
		if err != nil {
			return err
		}
		k.setRequesterNonce(ctx, addr, nonce.Nonce)
	}

	return nil
}

// ExportGenesis returns the market module's exported genesis state.
func ExportGenesis(ctx context.Context, k Keeper) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	genState := types.GenesisState{
		Params:       params,
		Providers:    []types.Provider{},
		Requests:     []types.ComputeRequest{},
		SlashRecords: []types.SlashRecord{},
		NextSlashId:  k.peekNextSlashID(ctx),
		AccruedFees:  k.GetAccruedFees(ctx),
		Treasury:     k.GetTreasury(ctx),
		Nonces:       []types.RequesterNonce{},
	}

	err = k.IterateProviders(ctx, func(provider types.Provider) (bool, error) {
		genState.Providers = append(genState.Providers, provider)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.IterateRequests(ctx, func(request types.ComputeRequest) (bool, error) {
		genState.Requests = append(genState.Requests, request)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	state, err := k.GetMarketState(ctx)
	if err != nil {
		return nil, err
	}
	genState.MarketState = &state

	err = k.IterateSlashRecords(ctx, func(record types.SlashRecord) bool {
		genState.SlashRecords = append(genState.SlashRecords, record)
		return false
	})
	if err != nil {
		return nil, err
	}

	// Nonces live under their own prefix keyed by account bytes.
	store := k.getStore(ctx)
	iterator := store.Iterator(RequesterNonceKeyPrefix, storetypes.PrefixEndBytes(RequesterNonceKeyPrefix))
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(RequesterNonceKeyPrefix):])
		genState.Nonces = append(genState.Nonces, types.RequesterNonce{
			Requester: addr.String(),
			Nonce:     binary.BigEndian.Uint64(iterator.Value()),
		})
	}

	return &genState, nil
}

func (k Keeper) setNextSlashID(ctx context.Context, id uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	store.Set(NextSlashIDKey, bz)
}

// peekNextSlashID reads the slash sequence without advancing it.
func (k Keeper) peekNextSlashID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	if bz := store.Get(NextSlashIDKey); bz != nil {
		return binary.BigEndian.Uint64(bz)
	}
	return 1
}
