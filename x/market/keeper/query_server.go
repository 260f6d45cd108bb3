package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

var _ types.QueryServer = queryServer{}

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	params, err := qs.Keeper.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

// Provider returns information about a specific provider
func (qs queryServer) Provider(goCtx context.Context, req *types.QueryProviderRequest) (*types.QueryProviderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.Address == "" {
		return nil, status.Error(codes.InvalidArgument, "provider address cannot be empty")
	}

	providerAddr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid provider address: %s", err))
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	provider, err := qs.Keeper.GetProvider(ctx, providerAddr)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	return &types.QueryProviderResponse{Provider: *provider}, nil
}

// ProviderCount returns the total number of registered providers
func (qs queryServer) ProviderCount(goCtx context.Context, req *types.QueryProviderCountRequest) (*types.QueryProviderCountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryProviderCountResponse{Count: qs.Keeper.GetProviderCount(ctx)}, nil
}

// Request returns a compute request by ID
func (qs queryServer) Request(goCtx context.Context, req *types.QueryRequestRequest) (*types.QueryRequestResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "request id cannot be empty")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	request, err := qs.Keeper.GetRequest(ctx, req.Id)
	if err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}

	return &types.QueryRequestResponse{Request: *request}, nil
}

// RequestsByRequester returns all requests created by one account
func (qs queryServer) RequestsByRequester(goCtx context.Context, req *types.QueryRequestsByRequesterRequest) (*types.QueryRequestsByRequesterResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	requesterAddr, err := sdk.AccAddressFromBech32(req.Requester)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid requester address: %s", err))
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	requests, err := qs.Keeper.GetRequestsByRequester(ctx, requesterAddr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryRequestsByRequesterResponse{Requests: requests}, nil
}

// MarketState returns the market-wide supply/demand/price aggregate
func (qs queryServer) MarketState(goCtx context.Context, req *types.QueryMarketStateRequest) (*types.QueryMarketStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	state, err := qs.Keeper.GetMarketState(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryMarketStateResponse{MarketState: state}, nil
}

// EstimateCost quotes the cost and required escrow for a request of the given size
func (qs queryServer) EstimateCost(goCtx context.Context, req *types.QueryEstimateCostRequest) (*types.QueryEstimateCostResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.EstimatedSize == 0 {
		return nil, status.Error(codes.InvalidArgument, "estimated_size must be greater than 0")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	estimate, err := qs.Keeper.EstimateCost(ctx, req.EstimatedSize)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryEstimateCostResponse{
		Estimate:       estimate,
		RequiredEscrow: RequiredEscrow(estimate),
	}, nil
}

// FeePool returns the accrued fee balance and the treasury address
func (qs queryServer) FeePool(goCtx context.Context, req *types.QueryFeePoolRequest) (*types.QueryFeePoolResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryFeePoolResponse{
		AccruedFees: qs.Keeper.GetAccruedFees(ctx),
		Treasury:    qs.Keeper.GetTreasury(ctx),
	}, nil
}

// SlashRecords returns all slash records against a provider
func (qs queryServer) SlashRecords(goCtx context.Context, req *types.QuerySlashRecordsRequest) (*types.QuerySlashRecordsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	providerAddr, err := sdk.AccAddressFromBech32(req.Provider)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid provider address: %s", err))
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	records, err := qs.Keeper.GetSlashRecordsByProvider(ctx, providerAddr)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QuerySlashRecordsResponse{Records: records}, nil
}
