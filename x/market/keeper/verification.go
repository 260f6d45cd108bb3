package keeper

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"strconv"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

// SubmitResult records the result hash for an active request. Only the
// assigned provider may submit, and only before the deadline. When the
// provider registered an attestation key, a supplied signature is checked
// against it; a bad signature is rejected outright.
func (k Keeper) SubmitResult(ctx context.Context, provider sdk.AccAddress, requestID, resultHash string, signature []byte) error {
	request, err := k.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != types.RequestStatusActive {
		return types.ErrInvalidRequestStatus.Wrapf(
			"expected %s, got %s", types.RequestStatusActive, request.Status)
	}
	if request.Provider != provider.String() {
		return types.ErrNotProvider.Wrapf("request assigned to %s", request.Provider)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()
	if now.After(request.Deadline) {
		return types.ErrDeadlineExpired.Wrapf(
			"deadline %s passed at %s", request.Deadline.UTC().Format(time.RFC3339), now.UTC().Format(time.RFC3339))
	}

	if len(signature) > 0 {
		providerRecord, err := k.GetProvider(ctx, provider)
		if err != nil {
			return err
		}
		if err := verifyResultSignature(providerRecord.AttestationId, requestID, resultHash, signature); err != nil {
			return err
		}
	}

	request.ResultHash = resultHash
	if err := k.transitionRequest(ctx, request, types.RequestStatusCompleted); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeResultSubmitted,
			sdk.NewAttribute(types.AttributeKeyRequestID, requestID),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyResultHash, resultHash),
		),
	)
	return nil
}

// VerifyAndRelease accepts a completed result: escrow is paid to the provider
// net of the market fee, the fee accrues to the pool, reputation and lifetime
// counters move, and the request reaches its terminal Verified state.
// Verification is the only path to payment.
func (k Keeper) VerifyAndRelease(ctx context.Context, requester sdk.AccAddress, requestID string) error {
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

	providerAddr, err := sdk.AccAddressFromBech32(request.Provider)
	if err != nil {
		return types.ErrZeroAddress.Wrapf("%v", err)
	}

	if err := k.payoutProvider(ctx, request, providerAddr, true); err != nil {
		return err
	}

	if err := k.transitionRequest(ctx, request, types.RequestStatusVerified); err != nil {
		return err
	}
	if err := k.adjustDemand(ctx, -1); err != nil {
		return err
	}

	return nil
}

// payoutProvider settles escrow to the provider net of the market fee and
// applies the positive-outcome bookkeeping. Shared by verification and
// provider-favoring dispute resolution. When emitVerified is true the
// standard verification event is emitted.
func (k Keeper) payoutProvider(ctx context.Context, request *types.ComputeRequest, providerAddr sdk.AccAddress, emitVerified bool) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	fee := request.EscrowAmount.MulRaw(int64(params.MarketFeeBps)).QuoRaw(10000)
	payout := request.EscrowAmount.Sub(fee)

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, providerAddr, marketCoins(params, payout)); err != nil {
		return types.ErrInvalidAmount.Wrapf("failed to pay provider: %v", err)
	}
	if err := k.accrueFee(ctx, fee); err != nil {
		return err
	}

	providerRecord, err := k.GetProvider(ctx, providerAddr)
	if err != nil {
		return err
	}
	providerRecord.CompletedJobs++
	if providerRecord.CurrentJobs > 0 {
		providerRecord.CurrentJobs--
	}
	providerRecord.LifetimeEarnings = providerRecord.LifetimeEarnings.Add(payout)
	raiseReputation(providerRecord)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	providerRecord.LastActiveAt = sdkCtx.BlockTime()
	if err := k.SetProvider(ctx, *providerRecord); err != nil {
		return err
	}

	k.metrics.RequestsVerified.Inc()
	k.metrics.EscrowReleased.Add(float64(request.EscrowAmount.Int64()))
	k.metrics.FeesAccrued.Add(float64(fee.Int64()))

	if emitVerified {
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRequestVerified,
				sdk.NewAttribute(types.AttributeKeyRequestID, request.Id),
				sdk.NewAttribute(types.AttributeKeyProvider, request.Provider),
				sdk.NewAttribute(types.AttributeKeyPayout, payout.String()),
				sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
				sdk.NewAttribute(types.AttributeKeyReputation, strconv.FormatUint(uint64(providerRecord.Reputation), 10)),
			),
		)
	}
	return nil
}

// verifyResultSignature checks an ed25519 signature over the canonical result
// digest against the provider's registered attestation key.
func verifyResultSignature(attestationID, requestID, resultHash string, signature []byte) error {
	if attestationID == "" {
		return types.ErrInvalidSignature.Wrap("provider has no registered attestation key")
	}
	pubKey, err := hex.DecodeString(attestationID)
	if err != nil || len(pubKey) != ed25519.PublicKeySize {
		return types.ErrInvalidSignature.Wrap("registered attestation key is not a valid ed25519 public key")
	}
	if !ed25519.Verify(pubKey, types.ResultMessageHash(requestID, resultHash), signature) {
		return types.ErrInvalidSignature.Wrap("signature does not match attestation key")
	}
	return nil
}
