package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

var _ types.MsgServer = msgServer{}

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// RegisterProvider handles registration of a new compute provider
func (ms msgServer) RegisterProvider(goCtx context.Context, msg *types.MsgRegisterProvider) (*types.MsgRegisterProviderResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	providerAddr, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("invalid provider address: %v", err)
	}

	if err := ms.Keeper.RegisterProvider(
		ctx,
		providerAddr,
		msg.Stake,
		msg.WorkloadId,
		msg.AttestationId,
		msg.PricingModel,
		msg.PricePerUnit,
		msg.PricePerCall,
		msg.PricePerTime,
		msg.MaxConcurrentJobs,
	); err != nil {
		return nil, err
	}

	return &types.MsgRegisterProviderResponse{}, nil
}

// UpdatePricing handles updates to a provider's pricing metadata
func (ms msgServer) UpdatePricing(goCtx context.Context, msg *types.MsgUpdatePricing) (*types.MsgUpdatePricingResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	providerAddr, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("invalid provider address: %v", err)
	}

	if err := ms.Keeper.UpdatePricing(
		ctx,
		providerAddr,
		msg.PricingModel,
		msg.PricePerUnit,
		msg.PricePerCall,
		msg.PricePerTime,
	); err != nil {
		return nil, err
	}

	return &types.MsgUpdatePricingResponse{}, nil
}

// AddStake handles stake top-ups
func (ms msgServer) AddStake(goCtx context.Context, msg *types.MsgAddStake) (*types.MsgAddStakeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	providerAddr, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("invalid provider address: %v", err)
	}

	if err := ms.Keeper.AddStake(ctx, providerAddr, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgAddStakeResponse{}, nil
}

// WithdrawStake handles stake withdrawals from idle providers
func (ms msgServer) WithdrawStake(goCtx context.Context, msg *types.MsgWithdrawStake) (*types.MsgWithdrawStakeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	providerAddr, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("invalid provider address: %v", err)
	}

	if err := ms.Keeper.WithdrawStake(ctx, providerAddr, msg.Amount); err != nil {
		return nil, err
	}

	return &types.MsgWithdrawStakeResponse{}, nil
}

// CreateRequest handles creation of a new escrowed compute request
func (ms msgServer) CreateRequest(goCtx context.Context, msg *types.MsgCreateRequest) (*types.MsgCreateRequestResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	requesterAddr, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("invalid requester address: %v", err)
	}

	request, err := ms.Keeper.CreateRequest(
		ctx,
		requesterAddr,
		msg.WorkloadId,
		msg.InputHash,
		msg.EstimatedSize,
		msg.MaxPayment,
		msg.DurationSeconds,
	)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreateRequestResponse{
		RequestId:    request.Id,
		EscrowAmount: request.EscrowAmount,
	}, nil
}

// AcceptRequest handles a provider claiming a pending request
func (ms msgServer) AcceptRequest(goCtx context.Context, msg *types.MsgAcceptRequest) (*types.MsgAcceptRequestResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	providerAddr, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("invalid provider address: %v", err)
	}

	if err := ms.Keeper.AcceptRequest(ctx, providerAddr, msg.RequestId); err != nil {
		return nil, err
	}

	return &types.MsgAcceptRequestResponse{}, nil
}

// SubmitResult handles result submission for an active request
func (ms msgServer) SubmitResult(goCtx context.Context, msg *types.MsgSubmitResult) (*types.MsgSubmitResultResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	providerAddr, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("invalid provider address: %v", err)
	}

	if err := ms.Keeper.SubmitResult(ctx, providerAddr, msg.RequestId, msg.ResultHash, msg.Signature); err != nil {
		return nil, err
	}

	return &types.MsgSubmitResultResponse{}, nil
}

// VerifyRequest handles requester acceptance of a completed result
func (ms msgServer) VerifyRequest(goCtx context.Context, msg *types.MsgVerifyRequest) (*types.MsgVerifyRequestResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	requesterAddr, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("invalid requester address: %v", err)
	}

	if err := ms.Keeper.VerifyAndRelease(ctx, requesterAddr, msg.RequestId); err != nil {
		return nil, err
	}

	return &types.MsgVerifyRequestResponse{}, nil
}

// DisputeRequest handles a requester contesting a completed result
func (ms msgServer) DisputeRequest(goCtx context.Context, msg *types.MsgDisputeRequest) (*types.MsgDisputeRequestResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	requesterAddr, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("invalid requester address: %v", err)
	}

	if err := ms.Keeper.DisputeRequest(ctx, requesterAddr, msg.RequestId, msg.Reason); err != nil {
		return nil, err
	}

	return &types.MsgDisputeRequestResponse{}, nil
}

// CancelRequest handles cancellation of a pending request
func (ms msgServer) CancelRequest(goCtx context.Context, msg *types.MsgCancelRequest) (*types.MsgCancelRequestResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	requesterAddr, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("invalid requester address: %v", err)
	}

	if err := ms.Keeper.CancelRequest(ctx, requesterAddr, msg.RequestId); err != nil {
		return nil, err
	}

	return &types.MsgCancelRequestResponse{}, nil
}

// SlashProvider handles slashing of an overdue active request's provider
func (ms msgServer) SlashProvider(goCtx context.Context, msg *types.MsgSlashProvider) (*types.MsgSlashProviderResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	callerAddr, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("invalid caller address: %v", err)
	}

	if err := ms.Keeper.SlashProvider(ctx, callerAddr, msg.RequestId); err != nil {
		return nil, err
	}

	return &types.MsgSlashProviderResponse{}, nil
}

// ResolveDispute handles authority settlement of a disputed request
func (ms msgServer) ResolveDispute(goCtx context.Context, msg *types.MsgResolveDispute) (*types.MsgResolveDisputeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.Keeper.ResolveDispute(ctx, msg.Authority, msg.RequestId, msg.FavorRequester); err != nil {
		return nil, err
	}

	return &types.MsgResolveDisputeResponse{}, nil
}

// WithdrawFees handles the authority sweeping accrued fees to the treasury
func (ms msgServer) WithdrawFees(goCtx context.Context, msg *types.MsgWithdrawFees) (*types.MsgWithdrawFeesResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	amount, err := ms.Keeper.WithdrawFees(ctx, msg.Authority)
	if err != nil {
		return nil, err
	}

	return &types.MsgWithdrawFeesResponse{Amount: amount}, nil
}

// SetTreasury handles updates to the fee treasury address
func (ms msgServer) SetTreasury(goCtx context.Context, msg *types.MsgSetTreasury) (*types.MsgSetTreasuryResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SetTreasury(ctx, msg.Authority, msg.Treasury); err != nil {
		return nil, err
	}

	return &types.MsgSetTreasuryResponse{}, nil
}

// UpdateParams handles authority replacement of module parameters
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if msg.Authority != ms.Keeper.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf(
			"expected authority %s, got %s", ms.Keeper.GetAuthority(), msg.Authority)
	}

	if err := ms.Keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
