// Package keeper implements the market module keeper for the decentralized
// compute marketplace.
//
// The market module matches compute requesters with staked providers. Funds
// are escrowed in the module account when a request is created and released
// exactly once: to the provider on verification, back to the requester on
// cancellation or slashing, or either way by dispute resolution.
//
// # Core Functionality
//
// Provider Registry: Register providers with staked collateral, a workload
// identifier, pricing metadata and a concurrency cap. Reputation moves with
// verified completions and slashing events.
//
// Request Lifecycle: Pending -> Active -> Completed -> Verified is the happy
// path. Pending requests can be cancelled, overdue active requests slashed,
// and completed results disputed within a window. Every transition is guarded
// by a single state machine; terminal states are final.
//
// Market Pricing: A damped oscillator moves the equilibrium price toward the
// 50% utilization target. Supply is the summed capacity of active providers,
// demand the count of non-terminal requests. Price updates are rate limited.
//
// Escrow and Fees: Escrow quotes include a 10% buffer over the oscillator
// estimate. Verified payouts are charged a basis-point market fee which
// accrues in the module account until swept to the treasury by the authority.
//
// # Metrics
//
// Exposes Prometheus metrics for provider counts, request throughput, escrow
// flow and the equilibrium price via MarketMetrics.
package keeper
