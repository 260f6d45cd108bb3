package types

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PricingModel determines how a provider charges for workloads.
type PricingModel uint32

const (
	PricingModelPerUnit PricingModel = iota
	PricingModelPerCall
	PricingModelPerTime
	PricingModelHybrid
)

// Valid reports whether the pricing model is one of the defined values.
func (pm PricingModel) Valid() bool {
	return pm <= PricingModelHybrid
}

func (pm PricingModel) String() string {
	switch pm {
	case PricingModelPerUnit:
		return "per_unit"
	case PricingModelPerCall:
		return "per_call"
	case PricingModelPerTime:
		return "per_time"
	case PricingModelHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// ParsePricingModel converts a CLI-friendly name into a PricingModel.
func ParsePricingModel(s string) (PricingModel, error) {
	switch s {
	case "per_unit":
		return PricingModelPerUnit, nil
	case "per_call":
		return PricingModelPerCall, nil
	case "per_time":
		return PricingModelPerTime, nil
	case "hybrid":
		return PricingModelHybrid, nil
	default:
		return 0, ErrInvalidRequest.Wrapf("unknown pricing model %q", s)
	}
}

// RequestStatus is the lifecycle state of a compute request.
type RequestStatus uint32

const (
	RequestStatusPending RequestStatus = iota
	RequestStatusActive
	RequestStatusCompleted
	RequestStatusVerified
	RequestStatusDisputed
	RequestStatusCancelled
	RequestStatusSlashed
)

func (s RequestStatus) String() string {
	switch s {
	case RequestStatusPending:
		return "pending"
	case RequestStatusActive:
		return "active"
	case RequestStatusCompleted:
		return "completed"
	case RequestStatusVerified:
		return "verified"
	case RequestStatusDisputed:
		return "disputed"
	case RequestStatusCancelled:
		return "cancelled"
	case RequestStatusSlashed:
		return "slashed"
	default:
		return "unknown"
	}
}

// Valid reports whether the status is one of the defined values.
func (s RequestStatus) Valid() bool {
	return s <= RequestStatusSlashed
}

// IsTerminal reports whether the status admits no further transitions.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusVerified, RequestStatusCancelled, RequestStatusSlashed:
		return true
	default:
		return false
	}
}

// ValidTransitions is the full request state machine. Any transition not
// listed here is rejected.
var ValidTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:   {RequestStatusActive, RequestStatusCancelled},
	RequestStatusActive:    {RequestStatusCompleted, RequestStatusSlashed},
	RequestStatusCompleted: {RequestStatusVerified, RequestStatusDisputed},
	RequestStatusDisputed:  {RequestStatusVerified, RequestStatusCancelled},
	RequestStatusVerified:  {},
	RequestStatusCancelled: {},
	RequestStatusSlashed:   {},
}

// CanTransitionTo reports whether the state machine permits moving from s to next.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range ValidTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reputation scheme constants. Additive and bounded so a single slash takes
// ReputationPenalty/ReputationReward consecutive successes to recover from.
const (
	ReputationMax     = uint32(10000)
	ReputationInitial = uint32(5000)
	ReputationReward  = uint32(200)
	ReputationPenalty = uint32(500)
)

// Provider is a registered compute provider with locked stake.
type Provider struct {
	Address           string       `json:"address"`
	Registered        bool         `json:"registered"`
	Active            bool         `json:"active"`
	Stake             math.Int     `json:"stake"`
	LifetimeEarnings  math.Int     `json:"lifetime_earnings"`
	CompletedJobs     uint64       `json:"completed_jobs"`
	SlashedJobs       uint64       `json:"slashed_jobs"`
	Reputation        uint32       `json:"reputation"`
	PricingModel      PricingModel `json:"pricing_model"`
	PricePerUnit      math.Int     `json:"price_per_unit"`
	PricePerCall      math.Int     `json:"price_per_call"`
	PricePerTime      math.Int     `json:"price_per_time"`
	MaxConcurrentJobs uint64       `json:"max_concurrent_jobs"`
	CurrentJobs       uint64       `json:"current_jobs"`
	WorkloadId        string       `json:"workload_id"`
	AttestationId     string       `json:"attestation_id"`
	RegisteredAt      time.Time    `json:"registered_at"`
	LastActiveAt      time.Time    `json:"last_active_at"`
}

// HasCapacity reports whether the provider can accept one more job.
func (p Provider) HasCapacity() bool {
	return p.CurrentJobs < p.MaxConcurrentJobs
}

// ComputeRequest is an escrowed unit of work moving through the lifecycle
// state machine. Terminal records are never deleted.
type ComputeRequest struct {
	Id            string        `json:"id"`
	Requester     string        `json:"requester"`
	Provider      string        `json:"provider,omitempty"`
	EscrowAmount  math.Int      `json:"escrow_amount"`
	EstimatedSize uint64        `json:"estimated_size"`
	CreatedAt     time.Time     `json:"created_at"`
	Deadline      time.Time     `json:"deadline"`
	Status        RequestStatus `json:"status"`
	InputHash     string        `json:"input_hash"`
	ResultHash    string        `json:"result_hash,omitempty"`
	WorkloadId    string        `json:"workload_id"`
}

// MarketState is the market-wide singleton driving the price control loop.
type MarketState struct {
	TotalSupply      uint64    `json:"total_supply"`
	OpenDemand       uint64    `json:"open_demand"`
	EquilibriumPrice math.Int  `json:"equilibrium_price"`
	PriceVelocity    math.Int  `json:"price_velocity"`
	LastPriceUpdate  time.Time `json:"last_price_update"`
	LastUtilization  uint64    `json:"last_utilization"`
}

// SlashRecord is an audit entry for a stake penalty applied to a provider.
type SlashRecord struct {
	Id          uint64    `json:"id"`
	RequestId   string    `json:"request_id"`
	Provider    string    `json:"provider"`
	Requester   string    `json:"requester"`
	SlashAmount math.Int  `json:"slash_amount"`
	SlashedAt   time.Time `json:"slashed_at"`
}

// RequesterNonce pairs a requester with its per-account request sequence,
// used in genesis export.
type RequesterNonce struct {
	Requester string `json:"requester"`
	Nonce     uint64 `json:"nonce"`
}

// NewRequestID derives a collision-resistant request identifier from the
// requester, its per-account nonce, the block time and the input hash. No
// central counter is needed; the nonce guarantees uniqueness per requester
// even within one block.
func NewRequestID(requester sdk.AccAddress, nonce uint64, blockTime time.Time, inputHash string) string {
	hasher := sha256.New()
	hasher.Write(requester.Bytes())

	nonceBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nonceBz, nonce)
	hasher.Write(nonceBz)

	timeBz := make([]byte, 8)
	binary.BigEndian.PutUint64(timeBz, uint64(blockTime.UnixNano()))
	hasher.Write(timeBz)

	hasher.Write([]byte(inputHash))

	return hex.EncodeToString(hasher.Sum(nil))
}

// ResultMessageHash is the canonical digest a provider signs over when it
// attaches an attestation signature to a submitted result.
func ResultMessageHash(requestID, resultHash string) []byte {
	hasher := sha256.New()
	hasher.Write([]byte(requestID))
	hasher.Write([]byte(resultHash))
	sum := hasher.Sum(nil)
	return sum
}
