package cli

// Flag constants for market CLI commands
const (
	// Provider flags
	FlagWorkloadID        = "workload-id"
	FlagAttestationID     = "attestation-id"
	FlagPricingModel      = "pricing-model"
	FlagPricePerUnit      = "price-per-unit"
	FlagPricePerCall      = "price-per-call"
	FlagPricePerTime      = "price-per-time"
	FlagMaxConcurrentJobs = "max-concurrent-jobs"

	// Request flags
	FlagInputHash       = "input-hash"
	FlagEstimatedSize   = "estimated-size"
	FlagMaxPayment      = "max-payment"
	FlagDurationSeconds = "duration-seconds"

	// Result flags
	FlagResultHash = "result-hash"
	FlagSignature  = "signature"

	// Dispute flags
	FlagReason         = "reason"
	FlagFavorRequester = "favor-requester"
)
