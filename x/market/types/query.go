package types

import (
	"cosmossdk.io/math"
)

// QueryParamsRequest is the request type for the Query/Params RPC method.
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params RPC method.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryProviderRequest is the request type for the Query/Provider RPC method.
type QueryProviderRequest struct {
	Address string `json:"address"`
}

// QueryProviderResponse is the response type for the Query/Provider RPC method.
type QueryProviderResponse struct {
	Provider Provider `json:"provider"`
}

// QueryProviderCountRequest is the request type for the Query/ProviderCount RPC method.
type QueryProviderCountRequest struct{}

// QueryProviderCountResponse is the response type for the Query/ProviderCount RPC method.
type QueryProviderCountResponse struct {
	Count uint64 `json:"count"`
}

// QueryRequestRequest is the request type for the Query/Request RPC method.
type QueryRequestRequest struct {
	Id string `json:"id"`
}

// QueryRequestResponse is the response type for the Query/Request RPC method.
type QueryRequestResponse struct {
	Request ComputeRequest `json:"request"`
}

// QueryRequestsByRequesterRequest is the request type for the
// Query/RequestsByRequester RPC method.
type QueryRequestsByRequesterRequest struct {
	Requester string `json:"requester"`
}

// QueryRequestsByRequesterResponse is the response type for the
// Query/RequestsByRequester RPC method.
type QueryRequestsByRequesterResponse struct {
	Requests []ComputeRequest `json:"requests"`
}

// QueryMarketStateRequest is the request type for the Query/MarketState RPC method.
type QueryMarketStateRequest struct{}

// QueryMarketStateResponse carries the full oscillator aggregate: supply,
// demand, price, velocity and the last computed utilization in basis points.
type QueryMarketStateResponse struct {
	MarketState MarketState `json:"market_state"`
}

// QueryEstimateCostRequest is the request type for the Query/EstimateCost RPC method.
type QueryEstimateCostRequest struct {
	EstimatedSize uint64 `json:"estimated_size"`
}

// QueryEstimateCostResponse quotes the escrow a request of the given size
// would need right now: the raw estimate plus the 10% buffer.
type QueryEstimateCostResponse struct {
	Estimate       math.Int `json:"estimate"`
	RequiredEscrow math.Int `json:"required_escrow"`
}

// QueryFeePoolRequest is the request type for the Query/FeePool RPC method.
type QueryFeePoolRequest struct{}

// QueryFeePoolResponse is the response type for the Query/FeePool RPC method.
type QueryFeePoolResponse struct {
	AccruedFees math.Int `json:"accrued_fees"`
	Treasury    string   `json:"treasury,omitempty"`
}

// QuerySlashRecordsRequest is the request type for the Query/SlashRecords RPC method.
type QuerySlashRecordsRequest struct {
	Provider string `json:"provider"`
}

// QuerySlashRecordsResponse is the response type for the Query/SlashRecords RPC method.
type QuerySlashRecordsResponse struct {
	Records []SlashRecord `json:"records"`
}
