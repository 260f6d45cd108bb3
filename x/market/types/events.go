package types

// Event types for the market module
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeProviderRegistered  = "market_provider_registered"
	EventTypeProviderUpdated     = "market_provider_updated"
	EventTypeProviderDeactivated = "market_provider_deactivated"
	EventTypeStakeAdded          = "market_stake_added"
	EventTypeStakeWithdrawn      = "market_stake_withdrawn"

	EventTypeRequestCreated   = "market_request_created"
	EventTypeRequestAssigned  = "market_request_assigned"
	EventTypeResultSubmitted  = "market_result_submitted"
	EventTypeRequestVerified  = "market_request_verified"
	EventTypeRequestDisputed  = "market_request_disputed"
	EventTypeRequestCancelled = "market_request_cancelled"
	EventTypeDisputeResolved  = "market_dispute_resolved"

	EventTypeProviderSlashed    = "market_provider_slashed"
	EventTypeMarketStateUpdated = "market_state_updated"
	EventTypeFeesWithdrawn      = "market_fees_withdrawn"
	EventTypeTreasuryUpdated    = "market_treasury_updated"
)

// Event attribute keys for the market module
const (
	AttributeKeyProvider       = "provider"
	AttributeKeyRequester      = "requester"
	AttributeKeyRequestID      = "request_id"
	AttributeKeyStake          = "stake"
	AttributeKeyAmount         = "amount"
	AttributeKeyEscrow         = "escrow"
	AttributeKeyFee            = "fee"
	AttributeKeyPayout         = "payout"
	AttributeKeyRefund         = "refund"
	AttributeKeyWorkloadID     = "workload_id"
	AttributeKeyResultHash     = "result_hash"
	AttributeKeyInputHash      = "input_hash"
	AttributeKeyDeadline       = "deadline"
	AttributeKeyReputation     = "reputation"
	AttributeKeySlashAmount    = "slash_amount"
	AttributeKeyFavorRequester = "favor_requester"
	AttributeKeyReason         = "reason"
	AttributeKeySupply         = "supply"
	AttributeKeyDemand         = "demand"
	AttributeKeyPrice          = "price"
	AttributeKeyVelocity       = "velocity"
	AttributeKeyUtilization    = "utilization"
	AttributeKeyTreasury       = "treasury"
)
