package keeper

import (
	"context"
	"strconv"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

// DisputeRequest contests a completed result. Only the requester may dispute,
// and only until DisputeWindow past the deadline; after that the completed
// result stands and verification remains the only path to payment.
func (k Keeper) DisputeRequest(ctx context.Context, requester sdk.AccAddress, requestID, reason string) error {
	request, err := k.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != types.RequestStatusCompleted {
		return types.ErrInvalidRequestStatus.Wrapf(
			"expected %s, got %s", types.RequestStatusCompleted, request.Status)
	}
	if request.Requester != requester.String() {
		return types.ErrNotRequester.Wrapf("request belongs to %s", request.Requester)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()
	windowEnd := request.Deadline.Add(time.Duration(params.DisputeWindowSeconds) * time.Second)
	if now.After(windowEnd) {
		return types.ErrDisputeWindowExpired.Wrapf(
			"window closed at %s", windowEnd.UTC().Format(time.RFC3339))
	}

	if err := k.transitionRequest(ctx, request, types.RequestStatusDisputed); err != nil {
		return err
	}

	k.metrics.RequestsDisputed.Inc()

	event := sdk.NewEvent(
		types.EventTypeRequestDisputed,
		sdk.NewAttribute(types.AttributeKeyRequestID, requestID),
		sdk.NewAttribute(types.AttributeKeyRequester, requester.String()),
	)
	if reason != "" {
		event = event.AppendAttributes(sdk.NewAttribute(types.AttributeKeyReason, reason))
	}
	sdkCtx.EventManager().EmitEvent(event)
	return nil
}

// ResolveDispute settles a disputed request, authority-gated. Favoring the
// requester refunds the full escrow and penalizes the provider's reputation;
// otherwise the provider is paid net of fee exactly as in normal
// verification. Either way the provider's slot and the demand counter are
// released, and the escrow is spent exactly once.
func (k Keeper) ResolveDispute(ctx context.Context, authority string, requestID string, favorRequester bool) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, authority)
	}

	request, err := k.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != types.RequestStatusDisputed {
		return types.ErrInvalidRequestStatus.Wrapf(
			"expected %s, got %s", types.RequestStatusDisputed, request.Status)
	}

	providerAddr, err := sdk.AccAddressFromBech32(request.Provider)
	if err != nil {
		return types.ErrZeroAddress.Wrapf("%v", err)
	}
	requesterAddr, err := sdk.AccAddressFromBech32(request.Requester)
	if err != nil {
		return types.ErrZeroAddress.Wrapf("%v", err)
	}

	if favorRequester {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, requesterAddr, marketCoins(params, request.EscrowAmount)); err != nil {
			return types.ErrInvalidAmount.Wrapf("failed to refund escrow: %v", err)
		}

		providerRecord, err := k.GetProvider(ctx, providerAddr)
		if err != nil {
			return err
		}
		if providerRecord.CurrentJobs > 0 {
			providerRecord.CurrentJobs--
		}
		lowerReputation(providerRecord)
		if err := k.SetProvider(ctx, *providerRecord); err != nil {
			return err
		}

		if err := k.transitionRequest(ctx, request, types.RequestStatusCancelled); err != nil {
			return err
		}
		k.metrics.EscrowReleased.Add(float64(request.EscrowAmount.Int64()))
	} else {
		if err := k.payoutProvider(ctx, request, providerAddr, false); err != nil {
			return err
		}
		if err := k.transitionRequest(ctx, request, types.RequestStatusVerified); err != nil {
			return err
		}
	}

	if err := k.adjustDemand(ctx, -1); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDisputeResolved,
			sdk.NewAttribute(types.AttributeKeyRequestID, requestID),
			sdk.NewAttribute(types.AttributeKeyFavorRequester, strconv.FormatBool(favorRequester)),
		),
	)
	return nil
}
