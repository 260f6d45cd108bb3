package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Market module sentinel errors. Every rejection is a typed precondition
// failure; no partial state change survives a returned error.

var (
	// Provider errors
	ErrInsufficientStake = sdkerrors.Register(ModuleName, 2, "insufficient provider stake")
	ErrNotRegistered     = sdkerrors.Register(ModuleName, 3, "provider not registered")
	ErrProviderNotActive = sdkerrors.Register(ModuleName, 4, "provider not active")
	ErrAtCapacity        = sdkerrors.Register(ModuleName, 5, "provider at maximum concurrent jobs")
	ErrProviderBusy      = sdkerrors.Register(ModuleName, 6, "provider has jobs in flight")

	// Request lifecycle errors
	ErrRequestNotFound      = sdkerrors.Register(ModuleName, 10, "compute request not found")
	ErrInvalidRequestStatus = sdkerrors.Register(ModuleName, 11, "invalid request status for operation")
	ErrNotRequester         = sdkerrors.Register(ModuleName, 12, "caller is not the requester")
	ErrNotProvider          = sdkerrors.Register(ModuleName, 13, "caller is not the assigned provider")
	ErrDeadlineExpired      = sdkerrors.Register(ModuleName, 14, "request deadline has expired")
	ErrDeadlineNotExpired   = sdkerrors.Register(ModuleName, 15, "request deadline has not expired")
	ErrDisputeWindowExpired = sdkerrors.Register(ModuleName, 16, "dispute window has expired")
	ErrWorkloadMismatch     = sdkerrors.Register(ModuleName, 17, "provider does not support requested workload")
	ErrInvalidDuration      = sdkerrors.Register(ModuleName, 18, "invalid request duration")
	ErrInvalidRequest       = sdkerrors.Register(ModuleName, 19, "invalid compute request")

	// Escrow errors
	ErrInsufficientEscrow = sdkerrors.Register(ModuleName, 30, "insufficient escrow for quoted price")
	ErrInvalidAmount      = sdkerrors.Register(ModuleName, 31, "invalid token amount")

	// Verification errors
	ErrInvalidSignature = sdkerrors.Register(ModuleName, 40, "invalid result signature")

	// Authorization errors
	ErrZeroAddress  = sdkerrors.Register(ModuleName, 50, "address cannot be empty")
	ErrUnauthorized = sdkerrors.Register(ModuleName, 51, "unauthorized operation")

	// Internal errors
	ErrMarshalFailed   = sdkerrors.Register(ModuleName, 60, "failed to marshal state")
	ErrUnmarshalFailed = sdkerrors.Register(ModuleName, 61, "failed to unmarshal state")
)
