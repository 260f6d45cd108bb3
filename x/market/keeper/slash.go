package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"time"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

// SlashProvider penalizes a provider that missed a request deadline. Anyone
// may call it once the deadline has passed. The slashed portion of the
// provider's stake is paid to the requester together with the full escrow
// refund, the provider loses reputation and is deactivated if the remaining
// stake falls below the minimum.
func (k Keeper) SlashProvider(ctx context.Context, caller sdk.AccAddress, requestID string) error {
	request, err := k.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != types.RequestStatusActive {
		return types.ErrInvalidRequestStatus.Wrapf(
			"expected %s, got %s", types.RequestStatusActive, request.Status)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()
	if !now.After(request.Deadline) {
		return types.ErrDeadlineNotExpired.Wrapf(
			"deadline %s has not passed", request.Deadline.UTC().Format(time.RFC3339))
	}

	providerAddr, err := sdk.AccAddressFromBech32(request.Provider)
	if err != nil {
		return types.ErrZeroAddress.Wrapf("%v", err)
	}
	requesterAddr, err := sdk.AccAddressFromBech32(request.Requester)
	if err != nil {
		return types.ErrZeroAddress.Wrapf("%v", err)
	}

	providerRecord, err := k.GetProvider(ctx, providerAddr)
	if err != nil {
		return err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	slashAmount := providerRecord.Stake.MulRaw(int64(params.SlashBps)).QuoRaw(10000)
	providerRecord.Stake = providerRecord.Stake.Sub(slashAmount)
	providerRecord.SlashedJobs++
	if providerRecord.CurrentJobs > 0 {
		providerRecord.CurrentJobs--
	}
	lowerReputation(providerRecord)
	providerRecord.LastActiveAt = now

	// Escrow refund and slash compensation go out in a single transfer.
	refund := request.EscrowAmount.Add(slashAmount)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, requesterAddr, marketCoins(params, refund)); err != nil {
		return types.ErrInvalidAmount.Wrapf("failed to refund requester: %v", err)
	}

	if _, err := k.deactivateBelowMinimum(ctx, providerRecord, params); err != nil {
		return err
	}
	if err := k.SetProvider(ctx, *providerRecord); err != nil {
		return err
	}

	if err := k.transitionRequest(ctx, request, types.RequestStatusSlashed); err != nil {
		return err
	}
	if err := k.adjustDemand(ctx, -1); err != nil {
		return err
	}

	record := types.SlashRecord{
		Id:          k.nextSlashID(ctx),
		RequestId:   requestID,
		Provider:    request.Provider,
		Requester:   request.Requester,
		SlashAmount: slashAmount,
		SlashedAt:   now,
	}
	if err := k.setSlashRecord(ctx, record); err != nil {
		return err
	}

	k.metrics.ProvidersSlashed.Inc()
	k.metrics.StakeSlashed.Add(float64(slashAmount.Int64()))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProviderSlashed,
			sdk.NewAttribute(types.AttributeKeyProvider, request.Provider),
			sdk.NewAttribute(types.AttributeKeyRequestID, requestID),
			sdk.NewAttribute(types.AttributeKeySlashAmount, slashAmount.String()),
			sdk.NewAttribute(types.AttributeKeyRefund, refund.String()),
		),
	)
	return nil
}

func (k Keeper) nextSlashID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	var id uint64 = 1
	if bz := store.Get(NextSlashIDKey); bz != nil {
		id = binary.BigEndian.Uint64(bz)
	}
	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, id+1)
	store.Set(NextSlashIDKey, next)
	return id
}

func (k Keeper) setSlashRecord(ctx context.Context, record types.SlashRecord) error {
	if err := k.setValue(ctx, SlashRecordKey(record.Id), &record); err != nil {
		return err
	}
	providerAddr, err := sdk.AccAddressFromBech32(record.Provider)
	if err != nil {
		return types.ErrZeroAddress.Wrapf("%v", err)
	}
	store := k.getStore(ctx)
	store.Set(SlashRecordByProviderKey(providerAddr, record.Id), []byte{0x01})
	return nil
}

// GetSlashRecord retrieves a slash record by its sequence number.
func (k Keeper) GetSlashRecord(ctx context.Context, id uint64) (*types.SlashRecord, error) {
	var record types.SlashRecord
	found, err := k.getValue(ctx, SlashRecordKey(id), &record)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, types.ErrRequestNotFound.Wrapf("slash record %d", id)
	}
	return &record, nil
}

// GetSlashRecordsByProvider returns all slash records against a provider in
// ascending id order.
func (k Keeper) GetSlashRecordsByProvider(ctx context.Context, provider sdk.AccAddress) ([]types.SlashRecord, error) {
	store := k.getStore(ctx)
	prefix := SlashRecordsByProviderIterKey(provider)
	iterator := store.Iterator(prefix, storetypes.PrefixEndBytes(prefix))
	defer iterator.Close()

	var records []types.SlashRecord
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		id := binary.BigEndian.Uint64(key[len(key)-8:])
		record, err := k.GetSlashRecord(ctx, id)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, nil
}

// IterateSlashRecords walks every slash record in id order.
func (k Keeper) IterateSlashRecords(ctx context.Context, fn func(record types.SlashRecord) bool) error {
	store := k.getStore(ctx)
	iterator := store.Iterator(SlashRecordKeyPrefix, storetypes.PrefixEndBytes(SlashRecordKeyPrefix))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var record types.SlashRecord
		if err := json.Unmarshal(iterator.Value(), &record); err != nil {
			return types.ErrUnmarshalFailed.Wrapf("%v", err)
		}
		if fn(record) {
			break
		}
	}
	return nil
}
