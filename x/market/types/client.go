package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// QueryClient is the client API for the market query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Provider(ctx context.Context, in *QueryProviderRequest, opts ...grpc.CallOption) (*QueryProviderResponse, error)
	ProviderCount(ctx context.Context, in *QueryProviderCountRequest, opts ...grpc.CallOption) (*QueryProviderCountResponse, error)
	Request(ctx context.Context, in *QueryRequestRequest, opts ...grpc.CallOption) (*QueryRequestResponse, error)
	RequestsByRequester(ctx context.Context, in *QueryRequestsByRequesterRequest, opts ...grpc.CallOption) (*QueryRequestsByRequesterResponse, error)
	MarketState(ctx context.Context, in *QueryMarketStateRequest, opts ...grpc.CallOption) (*QueryMarketStateResponse, error)
	EstimateCost(ctx context.Context, in *QueryEstimateCostRequest, opts ...grpc.CallOption) (*QueryEstimateCostResponse, error)
	FeePool(ctx context.Context, in *QueryFeePoolRequest, opts ...grpc.CallOption) (*QueryFeePoolResponse, error)
	SlashRecords(ctx context.Context, in *QuerySlashRecordsRequest, opts ...grpc.CallOption) (*QuerySlashRecordsResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

// NewQueryClient builds a query client over any conn that can route to the
// market query service, including the CLI client context.
func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc1.ClientConn, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, "/"+queryServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	return invoke[QueryParamsRequest, QueryParamsResponse](ctx, c.cc, "Params", in, opts)
}

func (c *queryClient) Provider(ctx context.Context, in *QueryProviderRequest, opts ...grpc.CallOption) (*QueryProviderResponse, error) {
	return invoke[QueryProviderRequest, QueryProviderResponse](ctx, c.cc, "Provider", in, opts)
}

func (c *queryClient) ProviderCount(ctx context.Context, in *QueryProviderCountRequest, opts ...grpc.CallOption) (*QueryProviderCountResponse, error) {
	return invoke[QueryProviderCountRequest, QueryProviderCountResponse](ctx, c.cc, "ProviderCount", in, opts)
}

func (c *queryClient) Request(ctx context.Context, in *QueryRequestRequest, opts ...grpc.CallOption) (*QueryRequestResponse, error) {
	return invoke[QueryRequestRequest, QueryRequestResponse](ctx, c.cc, "Request", in, opts)
}

func (c *queryClient) RequestsByRequester(ctx context.Context, in *QueryRequestsByRequesterRequest, opts ...grpc.CallOption) (*QueryRequestsByRequesterResponse, error) {
	return invoke[QueryRequestsByRequesterRequest, QueryRequestsByRequesterResponse](ctx, c.cc, "RequestsByRequester", in, opts)
}

func (c *queryClient) MarketState(ctx context.Context, in *QueryMarketStateRequest, opts ...grpc.CallOption) (*QueryMarketStateResponse, error) {
	return invoke[QueryMarketStateRequest, QueryMarketStateResponse](ctx, c.cc, "MarketState", in, opts)
}

func (c *queryClient) EstimateCost(ctx context.Context, in *QueryEstimateCostRequest, opts ...grpc.CallOption) (*QueryEstimateCostResponse, error) {
	return invoke[QueryEstimateCostRequest, QueryEstimateCostResponse](ctx, c.cc, "EstimateCost", in, opts)
}

func (c *queryClient) FeePool(ctx context.Context, in *QueryFeePoolRequest, opts ...grpc.CallOption) (*QueryFeePoolResponse, error) {
	return invoke[QueryFeePoolRequest, QueryFeePoolResponse](ctx, c.cc, "FeePool", in, opts)
}

func (c *queryClient) SlashRecords(ctx context.Context, in *QuerySlashRecordsRequest, opts ...grpc.CallOption) (*QuerySlashRecordsResponse, error) {
	return invoke[QuerySlashRecordsRequest, QuerySlashRecordsResponse](ctx, c.cc, "SlashRecords", in, opts)
}
