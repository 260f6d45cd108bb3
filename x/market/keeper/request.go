package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"time"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

// CreateRequest escrows funds and opens a pending request. The escrow is the
// oscillator quote for the estimated size plus a 10% buffer, priced at the
// current equilibrium snapshot; the quote must fit under the caller's stated
// maximum payment.
func (k Keeper) CreateRequest(
	ctx context.Context,
	requester sdk.AccAddress,
	workloadID, inputHash string,
	estimatedSize uint64,
	maxPayment math.Int,
	durationSeconds int64,
) (types.ComputeRequest, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.ComputeRequest{}, err
	}

	if durationSeconds <= 0 {
		return types.ComputeRequest{}, types.ErrInvalidDuration.Wrap("duration must be greater than 0")
	}
	if durationSeconds > params.MaxRequestDurationSeconds {
		return types.ComputeRequest{}, types.ErrInvalidDuration.Wrapf(
			"duration %ds exceeds maximum %ds", durationSeconds, params.MaxRequestDurationSeconds)
	}

	estimate, err := k.EstimateCost(ctx, estimatedSize)
	if err != nil {
		return types.ComputeRequest{}, err
	}
	escrow := RequiredEscrow(estimate)
	if escrow.GT(maxPayment) {
		return types.ComputeRequest{}, types.ErrInsufficientEscrow.Wrapf(
			"required escrow %s exceeds max payment %s", escrow.String(), maxPayment.String())
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, requester, types.ModuleName, marketCoins(params, escrow)); err != nil {
		return types.ComputeRequest{}, types.ErrInvalidAmount.Wrapf("failed to lock escrow: %v", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()

	nonce := k.nextRequesterNonce(ctx, requester)
	request := types.ComputeRequest{
		Id:            types.NewRequestID(requester, nonce, now, inputHash),
		Requester:     requester.String(),
		EscrowAmount:  escrow,
		EstimatedSize: estimatedSize,
		CreatedAt:     now,
		Deadline:      now.Add(time.Duration(durationSeconds) * time.Second),
		Status:        types.RequestStatusPending,
		InputHash:     inputHash,
		WorkloadId:    workloadID,
	}

	if err := k.SetRequest(ctx, request); err != nil {
		return types.ComputeRequest{}, err
	}
	k.setRequestIndexes(ctx, request)

	if err := k.adjustDemand(ctx, 1); err != nil {
		return types.ComputeRequest{}, err
	}

	k.metrics.RequestsCreated.Inc()
	k.metrics.EscrowLocked.Add(float64(escrow.Int64()))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestCreated,
			sdk.NewAttribute(types.AttributeKeyRequestID, request.Id),
			sdk.NewAttribute(types.AttributeKeyRequester, requester.String()),
			sdk.NewAttribute(types.AttributeKeyEscrow, escrow.String()),
			sdk.NewAttribute(types.AttributeKeyWorkloadID, workloadID),
			sdk.NewAttribute(types.AttributeKeyInputHash, inputHash),
			sdk.NewAttribute(types.AttributeKeyDeadline, request.Deadline.UTC().Format(time.RFC3339)),
		),
	)
	return request, nil
}

// AcceptRequest assigns a pending request to the calling provider. Only one
// caller can win: the status transition is guarded, so a concurrent second
// accept fails with an invalid-status error.
func (k Keeper) AcceptRequest(ctx context.Context, provider sdk.AccAddress, requestID string) error {
	request, err := k.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != types.RequestStatusPending {
		return types.ErrInvalidRequestStatus.Wrapf(
			"expected %s, got %s", types.RequestStatusPending, request.Status)
	}

	providerRecord, err := k.GetProvider(ctx, provider)
	if err != nil {
		return err
	}
	if !providerRecord.Active {
		return types.ErrProviderNotActive.Wrapf("provider %s", provider.String())
	}
	if !providerRecord.HasCapacity() {
		return types.ErrAtCapacity.Wrapf(
			"%d of %d jobs in flight", providerRecord.CurrentJobs, providerRecord.MaxConcurrentJobs)
	}
	if providerRecord.WorkloadId != request.WorkloadId {
		return types.ErrWorkloadMismatch.Wrapf(
			"provider supports %s, request needs %s", providerRecord.WorkloadId, request.WorkloadId)
	}

	request.Provider = provider.String()
	if err := k.transitionRequest(ctx, request, types.RequestStatusActive); err != nil {
		return err
	}

	providerRecord.CurrentJobs++
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	providerRecord.LastActiveAt = sdkCtx.BlockTime()
	if err := k.SetProvider(ctx, *providerRecord); err != nil {
		return err
	}

	store := k.getStore(ctx)
	store.Set(RequestByProviderKey(provider, requestID), []byte(requestID))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestAssigned,
			sdk.NewAttribute(types.AttributeKeyRequestID, requestID),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		),
	)
	return nil
}

// CancelRequest refunds a pending request's escrow in full.
func (k Keeper) CancelRequest(ctx context.Context, requester sdk.AccAddress, requestID string) error {
	request, err := k.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != types.RequestStatusPending {
		return types.ErrInvalidRequestStatus.Wrapf(
			"expected %s, got %s", types.RequestStatusPending, request.Status)
	}
	if request.Requester != requester.String() {
		return types.ErrNotRequester.Wrapf("request belongs to %s", request.Requester)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, requester, marketCoins(params, request.EscrowAmount)); err != nil {
		return types.ErrInvalidAmount.Wrapf("failed to refund escrow: %v", err)
	}

	if err := k.transitionRequest(ctx, request, types.RequestStatusCancelled); err != nil {
		return err
	}
	if err := k.adjustDemand(ctx, -1); err != nil {
		return err
	}

	k.metrics.EscrowReleased.Add(float64(request.EscrowAmount.Int64()))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestCancelled,
			sdk.NewAttribute(types.AttributeKeyRequestID, requestID),
			sdk.NewAttribute(types.AttributeKeyRefund, request.EscrowAmount.String()),
		),
	)
	return nil
}

// GetRequest retrieves a request by ID
func (k Keeper) GetRequest(ctx context.Context, requestID string) (*types.ComputeRequest, error) {
	var request types.ComputeRequest
	found, err := k.getValue(ctx, RequestKey(requestID), &request)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, types.ErrRequestNotFound.Wrapf("request %s", requestID)
	}
	return &request, nil
}

// SetRequest stores a request record
func (k Keeper) SetRequest(ctx context.Context, request types.ComputeRequest) error {
	return k.setValue(ctx, RequestKey(request.Id), request)
}

// transitionRequest validates the state machine edge, persists the request
// and maintains the status index. It is the only place request status changes.
func (k Keeper) transitionRequest(ctx context.Context, request *types.ComputeRequest, next types.RequestStatus) error {
	if !request.Status.CanTransitionTo(next) {
		return types.ErrInvalidRequestStatus.Wrapf("cannot transition from %s to %s", request.Status, next)
	}

	store := k.getStore(ctx)
	store.Delete(RequestByStatusKey(uint32(request.Status), request.Id))
	request.Status = next
	store.Set(RequestByStatusKey(uint32(next), request.Id), []byte(request.Id))

	return k.SetRequest(ctx, *request)
}

// setRequestIndexes writes the secondary indexes for a new request.
func (k Keeper) setRequestIndexes(ctx context.Context, request types.ComputeRequest) {
	store := k.getStore(ctx)
	requester, _ := sdk.AccAddressFromBech32(request.Requester)
	store.Set(RequestByRequesterKey(requester, request.Id), []byte(request.Id))
	store.Set(RequestByStatusKey(uint32(request.Status), request.Id), []byte(request.Id))
	if request.Provider != "" {
		provider, _ := sdk.AccAddressFromBech32(request.Provider)
		store.Set(RequestByProviderKey(provider, request.Id), []byte(request.Id))
	}
}

// IterateRequests iterates over all requests
func (k Keeper) IterateRequests(ctx context.Context, cb func(request types.ComputeRequest) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, RequestKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var request types.ComputeRequest
		if err := json.Unmarshal(iterator.Value(), &request); err != nil {
			return types.ErrUnmarshalFailed.Wrapf("%v", err)
		}
		stop, err := cb(request)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}
	return nil
}

// GetRequestsByRequester returns all requests created by one account.
func (k Keeper) GetRequestsByRequester(ctx context.Context, requester sdk.AccAddress) ([]types.ComputeRequest, error) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, RequestsByRequesterIterKey(requester))
	defer iterator.Close()

	var requests []types.ComputeRequest
	for ; iterator.Valid(); iterator.Next() {
		request, err := k.GetRequest(ctx, string(iterator.Value()))
		if err != nil {
			return nil, err
		}
		requests = append(requests, *request)
	}
	return requests, nil
}

// nextRequesterNonce increments and returns the per-requester sequence used
// in deterministic request ID derivation.
func (k Keeper) nextRequesterNonce(ctx context.Context, requester sdk.AccAddress) uint64 {
	store := k.getStore(ctx)
	key := RequesterNonceKey(requester)

	var nonce uint64
	if bz := store.Get(key); bz != nil {
		nonce = binary.BigEndian.Uint64(bz)
	}
	nonce++

	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, nonce)
	store.Set(key, bz)
	return nonce
}

// GetRequesterNonce returns the current sequence for a requester without advancing it.
func (k Keeper) GetRequesterNonce(ctx context.Context, requester sdk.AccAddress) uint64 {
	store := k.getStore(ctx)
	if bz := store.Get(RequesterNonceKey(requester)); bz != nil {
		return binary.BigEndian.Uint64(bz)
	}
	return 0
}

// setRequesterNonce seeds a requester sequence, used by genesis import.
func (k Keeper) setRequesterNonce(ctx context.Context, requester sdk.AccAddress, nonce uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, nonce)
	store.Set(RequesterNonceKey(requester), bz)
}
