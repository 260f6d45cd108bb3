package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// MsgServer is the market module's transaction surface. Every state-mutating
// operation of the engine goes through exactly one of these methods.
type MsgServer interface {
	RegisterProvider(context.Context, *MsgRegisterProvider) (*MsgRegisterProviderResponse, error)
	UpdatePricing(context.Context, *MsgUpdatePricing) (*MsgUpdatePricingResponse, error)
	AddStake(context.Context, *MsgAddStake) (*MsgAddStakeResponse, error)
	WithdrawStake(context.Context, *MsgWithdrawStake) (*MsgWithdrawStakeResponse, error)
	CreateRequest(context.Context, *MsgCreateRequest) (*MsgCreateRequestResponse, error)
	AcceptRequest(context.Context, *MsgAcceptRequest) (*MsgAcceptRequestResponse, error)
	SubmitResult(context.Context, *MsgSubmitResult) (*MsgSubmitResultResponse, error)
	VerifyRequest(context.Context, *MsgVerifyRequest) (*MsgVerifyRequestResponse, error)
	DisputeRequest(context.Context, *MsgDisputeRequest) (*MsgDisputeRequestResponse, error)
	CancelRequest(context.Context, *MsgCancelRequest) (*MsgCancelRequestResponse, error)
	SlashProvider(context.Context, *MsgSlashProvider) (*MsgSlashProviderResponse, error)
	ResolveDispute(context.Context, *MsgResolveDispute) (*MsgResolveDisputeResponse, error)
	WithdrawFees(context.Context, *MsgWithdrawFees) (*MsgWithdrawFeesResponse, error)
	SetTreasury(context.Context, *MsgSetTreasury) (*MsgSetTreasuryResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// QueryServer is the market module's read-only surface.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Provider(context.Context, *QueryProviderRequest) (*QueryProviderResponse, error)
	ProviderCount(context.Context, *QueryProviderCountRequest) (*QueryProviderCountResponse, error)
	Request(context.Context, *QueryRequestRequest) (*QueryRequestResponse, error)
	RequestsByRequester(context.Context, *QueryRequestsByRequesterRequest) (*QueryRequestsByRequesterResponse, error)
	MarketState(context.Context, *QueryMarketStateRequest) (*QueryMarketStateResponse, error)
	EstimateCost(context.Context, *QueryEstimateCostRequest) (*QueryEstimateCostResponse, error)
	FeePool(context.Context, *QueryFeePoolRequest) (*QueryFeePoolResponse, error)
	SlashRecords(context.Context, *QuerySlashRecordsRequest) (*QuerySlashRecordsResponse, error)
}

const (
	msgServiceName   = "gridmesh.market.v1.Msg"
	queryServiceName = "gridmesh.market.v1.Query"
)

// RegisterMsgServer registers the msg service with the router.
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&msgServiceDesc, srv)
}

// RegisterQueryServer registers the query service with the router.
func RegisterQueryServer(s grpc1.Server, srv QueryServer) {
	s.RegisterService(&queryServiceDesc, srv)
}

// msgMethod adapts a typed MsgServer call to a grpc unary handler.
func msgMethod[Req, Resp any](name string, call func(MsgServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(MsgServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + msgServiceName + "/" + name}
			return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(MsgServer), ctx, req.(*Req))
			})
		},
	}
}

// queryMethod adapts a typed QueryServer call to a grpc unary handler.
func queryMethod[Req, Resp any](name string, call func(QueryServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(QueryServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + queryServiceName + "/" + name}
			return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(QueryServer), ctx, req.(*Req))
			})
		},
	}
}

var msgServiceDesc = grpc.ServiceDesc{
	ServiceName: msgServiceName,
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		msgMethod("RegisterProvider", MsgServer.RegisterProvider),
		msgMethod("UpdatePricing", MsgServer.UpdatePricing),
		msgMethod("AddStake", MsgServer.AddStake),
		msgMethod("WithdrawStake", MsgServer.WithdrawStake),
		msgMethod("CreateRequest", MsgServer.CreateRequest),
		msgMethod("AcceptRequest", MsgServer.AcceptRequest),
		msgMethod("SubmitResult", MsgServer.SubmitResult),
		msgMethod("VerifyRequest", MsgServer.VerifyRequest),
		msgMethod("DisputeRequest", MsgServer.DisputeRequest),
		msgMethod("CancelRequest", MsgServer.CancelRequest),
		msgMethod("SlashProvider", MsgServer.SlashProvider),
		msgMethod("ResolveDispute", MsgServer.ResolveDispute),
		msgMethod("WithdrawFees", MsgServer.WithdrawFees),
		msgMethod("SetTreasury", MsgServer.SetTreasury),
		msgMethod("UpdateParams", MsgServer.UpdateParams),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gridmesh/market/v1/tx.proto",
}

var queryServiceDesc = grpc.ServiceDesc{
	ServiceName: queryServiceName,
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		queryMethod("Params", QueryServer.Params),
		queryMethod("Provider", QueryServer.Provider),
		queryMethod("ProviderCount", QueryServer.ProviderCount),
		queryMethod("Request", QueryServer.Request),
		queryMethod("RequestsByRequester", QueryServer.RequestsByRequester),
		queryMethod("MarketState", QueryServer.MarketState),
		queryMethod("EstimateCost", QueryServer.EstimateCost),
		queryMethod("FeePool", QueryServer.FeePool),
		queryMethod("SlashRecords", QueryServer.SlashRecords),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gridmesh/market/v1/query.proto",
}
