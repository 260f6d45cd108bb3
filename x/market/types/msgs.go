package types

import (
	"encoding/hex"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgRegisterProvider = "register_provider"
	TypeMsgUpdatePricing    = "update_pricing"
	TypeMsgAddStake         = "add_stake"
	TypeMsgWithdrawStake    = "withdraw_stake"
	TypeMsgCreateRequest    = "create_request"
	TypeMsgAcceptRequest    = "accept_request"
	TypeMsgSubmitResult     = "submit_result"
	TypeMsgVerifyRequest    = "verify_request"
	TypeMsgDisputeRequest   = "dispute_request"
	TypeMsgCancelRequest    = "cancel_request"
	TypeMsgSlashProvider    = "slash_provider"
	TypeMsgResolveDispute   = "resolve_dispute"
	TypeMsgWithdrawFees     = "withdraw_fees"
	TypeMsgSetTreasury      = "set_treasury"
	TypeMsgUpdateParams     = "update_params"
)

var (
	_ sdk.Msg = &MsgRegisterProvider{}
	_ sdk.Msg = &MsgUpdatePricing{}
	_ sdk.Msg = &MsgAddStake{}
	_ sdk.Msg = &MsgWithdrawStake{}
	_ sdk.Msg = &MsgCreateRequest{}
	_ sdk.Msg = &MsgAcceptRequest{}
	_ sdk.Msg = &MsgSubmitResult{}
	_ sdk.Msg = &MsgVerifyRequest{}
	_ sdk.Msg = &MsgDisputeRequest{}
	_ sdk.Msg = &MsgCancelRequest{}
	_ sdk.Msg = &MsgSlashProvider{}
	_ sdk.Msg = &MsgResolveDispute{}
	_ sdk.Msg = &MsgWithdrawFees{}
	_ sdk.Msg = &MsgSetTreasury{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgRegisterProvider registers (or re-registers) a compute provider.
type MsgRegisterProvider struct {
	Provider          string       `json:"provider"`
	Stake             math.Int     `json:"stake"`
	WorkloadId        string       `json:"workload_id"`
	AttestationId     string       `json:"attestation_id"`
	PricingModel      PricingModel `json:"pricing_model"`
	PricePerUnit      math.Int     `json:"price_per_unit"`
	PricePerCall      math.Int     `json:"price_per_call"`
	PricePerTime      math.Int     `json:"price_per_time"`
	MaxConcurrentJobs uint64       `json:"max_concurrent_jobs"`
}

type MsgRegisterProviderResponse struct{}

// MsgUpdatePricing updates a registered provider's pricing metadata.
type MsgUpdatePricing struct {
	Provider     string       `json:"provider"`
	PricingModel PricingModel `json:"pricing_model"`
	PricePerUnit math.Int     `json:"price_per_unit"`
	PricePerCall math.Int     `json:"price_per_call"`
	PricePerTime math.Int     `json:"price_per_time"`
}

type MsgUpdatePricingResponse struct{}

// MsgAddStake tops up a provider's locked stake.
type MsgAddStake struct {
	Provider string   `json:"provider"`
	Amount   math.Int `json:"amount"`
}

type MsgAddStakeResponse struct{}

// MsgWithdrawStake withdraws part or all of an idle provider's stake.
type MsgWithdrawStake struct {
	Provider string   `json:"provider"`
	Amount   math.Int `json:"amount"`
}

type MsgWithdrawStakeResponse struct{}

// MsgCreateRequest creates an escrowed compute request.
type MsgCreateRequest struct {
	Requester       string   `json:"requester"`
	WorkloadId      string   `json:"workload_id"`
	InputHash       string   `json:"input_hash"`
	EstimatedSize   uint64   `json:"estimated_size"`
	MaxPayment      math.Int `json:"max_payment"`
	DurationSeconds int64    `json:"duration_seconds"`
}

type MsgCreateRequestResponse struct {
	RequestId    string   `json:"request_id"`
	EscrowAmount math.Int `json:"escrow_amount"`
}

// MsgAcceptRequest assigns a pending request to the calling provider.
type MsgAcceptRequest struct {
	Provider  string `json:"provider"`
	RequestId string `json:"request_id"`
}

type MsgAcceptRequestResponse struct{}

// MsgSubmitResult submits the result hash for an active request. Signature,
// when present, is an ed25519 signature by the provider's attestation key
// over ResultMessageHash(request_id, result_hash).
type MsgSubmitResult struct {
	Provider   string `json:"provider"`
	RequestId  string `json:"request_id"`
	ResultHash string `json:"result_hash"`
	Signature  []byte `json:"signature,omitempty"`
}

type MsgSubmitResultResponse struct{}

// MsgVerifyRequest accepts a completed result and releases escrow to the provider.
type MsgVerifyRequest struct {
	Requester string `json:"requester"`
	RequestId string `json:"request_id"`
}

type MsgVerifyRequestResponse struct{}

// MsgDisputeRequest contests a completed result within the dispute window.
type MsgDisputeRequest struct {
	Requester string `json:"requester"`
	RequestId string `json:"request_id"`
	Reason    string `json:"reason,omitempty"`
}

type MsgDisputeRequestResponse struct{}

// MsgCancelRequest cancels a pending request and refunds its escrow.
type MsgCancelRequest struct {
	Requester string `json:"requester"`
	RequestId string `json:"request_id"`
}

type MsgCancelRequestResponse struct{}

// MsgSlashProvider slashes the provider of an overdue active request.
// Callable by anyone; liveness must not depend on the requester.
type MsgSlashProvider struct {
	Caller    string `json:"caller"`
	RequestId string `json:"request_id"`
}

type MsgSlashProviderResponse struct{}

// MsgResolveDispute settles a disputed request. Authority-gated.
type MsgResolveDispute struct {
	Authority      string `json:"authority"`
	RequestId      string `json:"request_id"`
	FavorRequester bool   `json:"favor_requester"`
}

type MsgResolveDisputeResponse struct{}

// MsgWithdrawFees pays the accumulated fee balance to the treasury. Authority-gated.
type MsgWithdrawFees struct {
	Authority string `json:"authority"`
}

type MsgWithdrawFeesResponse struct {
	Amount math.Int `json:"amount"`
}

// MsgSetTreasury updates the fee treasury address. Authority-gated.
type MsgSetTreasury struct {
	Authority string `json:"authority"`
	Treasury  string `json:"treasury"`
}

type MsgSetTreasuryResponse struct{}

// MsgUpdateParams replaces the module parameters. Authority-gated.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// GetSigners implementations - these assume addresses are valid (validated in ValidateBasic)

func (msg *MsgRegisterProvider) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

func (msg *MsgUpdatePricing) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

func (msg *MsgAddStake) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

func (msg *MsgWithdrawStake) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

func (msg *MsgCreateRequest) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

func (msg *MsgAcceptRequest) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

func (msg *MsgSubmitResult) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

func (msg *MsgVerifyRequest) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

func (msg *MsgDisputeRequest) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

func (msg *MsgCancelRequest) GetSigners() []sdk.AccAddress {
	requester, _ := sdk.AccAddressFromBech32(msg.Requester)
	return []sdk.AccAddress{requester}
}

func (msg *MsgSlashProvider) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(msg.Caller)
	return []sdk.AccAddress{caller}
}

func (msg *MsgResolveDispute) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

func (msg *MsgWithdrawFees) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

func (msg *MsgSetTreasury) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// ValidateBasic performs stateless validation of MsgRegisterProvider
func (msg *MsgRegisterProvider) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrZeroAddress.Wrapf("invalid provider address: %v", err)
	}
	if msg.Stake.IsNil() || !msg.Stake.IsPositive() {
		return ErrInvalidAmount.Wrap("stake must be positive")
	}
	if msg.WorkloadId == "" {
		return ErrInvalidRequest.Wrap("workload_id cannot be empty")
	}
	if !msg.PricingModel.Valid() {
		return ErrInvalidRequest.Wrapf("unknown pricing model %d", msg.PricingModel)
	}
	if err := validatePrices(msg.PricePerUnit, msg.PricePerCall, msg.PricePerTime); err != nil {
		return err
	}
	if msg.MaxConcurrentJobs == 0 {
		return ErrInvalidRequest.Wrap("max_concurrent_jobs must be greater than 0")
	}
	if msg.AttestationId != "" {
		if _, err := hex.DecodeString(msg.AttestationId); err != nil {
			return ErrInvalidRequest.Wrapf("attestation_id must be hex encoded: %v", err)
		}
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgUpdatePricing
func (msg *MsgUpdatePricing) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrZeroAddress.Wrapf("invalid provider address: %v", err)
	}
	if !msg.PricingModel.Valid() {
		return ErrInvalidRequest.Wrapf("unknown pricing model %d", msg.PricingModel)
	}
	return validatePrices(msg.PricePerUnit, msg.PricePerCall, msg.PricePerTime)
}

// ValidateBasic performs stateless validation of MsgAddStake
func (msg *MsgAddStake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrZeroAddress.Wrapf("invalid provider address: %v", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgWithdrawStake
func (msg *MsgWithdrawStake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrZeroAddress.Wrapf("invalid provider address: %v", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgCreateRequest
func (msg *MsgCreateRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrZeroAddress.Wrapf("invalid requester address: %v", err)
	}
	if msg.WorkloadId == "" {
		return ErrInvalidRequest.Wrap("workload_id cannot be empty")
	}
	if msg.InputHash == "" {
		return ErrInvalidRequest.Wrap("input_hash cannot be empty")
	}
	if msg.EstimatedSize == 0 {
		return ErrInvalidRequest.Wrap("estimated_size must be greater than 0")
	}
	if msg.MaxPayment.IsNil() || !msg.MaxPayment.IsPositive() {
		return ErrInvalidAmount.Wrap("max_payment must be positive")
	}
	if msg.DurationSeconds <= 0 {
		return ErrInvalidDuration.Wrap("duration must be greater than 0")
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgAcceptRequest
func (msg *MsgAcceptRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrZeroAddress.Wrapf("invalid provider address: %v", err)
	}
	return validateRequestID(msg.RequestId)
}

// ValidateBasic performs stateless validation of MsgSubmitResult
func (msg *MsgSubmitResult) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrZeroAddress.Wrapf("invalid provider address: %v", err)
	}
	if err := validateRequestID(msg.RequestId); err != nil {
		return err
	}
	if msg.ResultHash == "" {
		return ErrInvalidRequest.Wrap("result_hash cannot be empty")
	}
	if len(msg.Signature) != 0 && len(msg.Signature) != 64 {
		return ErrInvalidSignature.Wrapf("expected 64 byte signature, got %d", len(msg.Signature))
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgVerifyRequest
func (msg *MsgVerifyRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrZeroAddress.Wrapf("invalid requester address: %v", err)
	}
	return validateRequestID(msg.RequestId)
}

// ValidateBasic performs stateless validation of MsgDisputeRequest
func (msg *MsgDisputeRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrZeroAddress.Wrapf("invalid requester address: %v", err)
	}
	return validateRequestID(msg.RequestId)
}

// ValidateBasic performs stateless validation of MsgCancelRequest
func (msg *MsgCancelRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrZeroAddress.Wrapf("invalid requester address: %v", err)
	}
	return validateRequestID(msg.RequestId)
}

// ValidateBasic performs stateless validation of MsgSlashProvider
func (msg *MsgSlashProvider) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return ErrZeroAddress.Wrapf("invalid caller address: %v", err)
	}
	return validateRequestID(msg.RequestId)
}

// ValidateBasic performs stateless validation of MsgResolveDispute
func (msg *MsgResolveDispute) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrZeroAddress.Wrapf("invalid authority address: %v", err)
	}
	return validateRequestID(msg.RequestId)
}

// ValidateBasic performs stateless validation of MsgWithdrawFees
func (msg *MsgWithdrawFees) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrZeroAddress.Wrapf("invalid authority address: %v", err)
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgSetTreasury
func (msg *MsgSetTreasury) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrZeroAddress.Wrapf("invalid authority address: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Treasury); err != nil {
		return ErrZeroAddress.Wrapf("invalid treasury address: %v", err)
	}
	return nil
}

// ValidateBasic performs stateless validation of MsgUpdateParams
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrZeroAddress.Wrapf("invalid authority address: %v", err)
	}
	return msg.Params.Validate()
}

func validatePrices(prices ...math.Int) error {
	for _, p := range prices {
		if p.IsNil() || p.IsNegative() {
			return ErrInvalidAmount.Wrap("prices must be non-negative")
		}
	}
	return nil
}

// validateRequestID checks the shape of a request identifier: lowercase hex
// sha256, 64 characters.
func validateRequestID(id string) error {
	if len(id) != 64 {
		return ErrInvalidRequest.Wrapf("request id must be 64 hex characters, got %d", len(id))
	}
	if _, err := hex.DecodeString(id); err != nil {
		return ErrInvalidRequest.Wrapf("request id must be hex encoded: %v", err)
	}
	return nil
}

// proto.Message stubs so the messages satisfy sdk.Msg.

func (msg *MsgRegisterProvider) Reset()         { *msg = MsgRegisterProvider{} }
func (msg *MsgRegisterProvider) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRegisterProvider) ProtoMessage()  {}

func (msg *MsgUpdatePricing) Reset()         { *msg = MsgUpdatePricing{} }
func (msg *MsgUpdatePricing) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdatePricing) ProtoMessage()  {}

func (msg *MsgAddStake) Reset()         { *msg = MsgAddStake{} }
func (msg *MsgAddStake) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgAddStake) ProtoMessage()  {}

func (msg *MsgWithdrawStake) Reset()         { *msg = MsgWithdrawStake{} }
func (msg *MsgWithdrawStake) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdrawStake) ProtoMessage()  {}

func (msg *MsgCreateRequest) Reset()         { *msg = MsgCreateRequest{} }
func (msg *MsgCreateRequest) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCreateRequest) ProtoMessage()  {}

func (msg *MsgAcceptRequest) Reset()         { *msg = MsgAcceptRequest{} }
func (msg *MsgAcceptRequest) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgAcceptRequest) ProtoMessage()  {}

func (msg *MsgSubmitResult) Reset()         { *msg = MsgSubmitResult{} }
func (msg *MsgSubmitResult) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSubmitResult) ProtoMessage()  {}

func (msg *MsgVerifyRequest) Reset()         { *msg = MsgVerifyRequest{} }
func (msg *MsgVerifyRequest) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgVerifyRequest) ProtoMessage()  {}

func (msg *MsgDisputeRequest) Reset()         { *msg = MsgDisputeRequest{} }
func (msg *MsgDisputeRequest) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgDisputeRequest) ProtoMessage()  {}

func (msg *MsgCancelRequest) Reset()         { *msg = MsgCancelRequest{} }
func (msg *MsgCancelRequest) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCancelRequest) ProtoMessage()  {}

func (msg *MsgSlashProvider) Reset()         { *msg = MsgSlashProvider{} }
func (msg *MsgSlashProvider) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSlashProvider) ProtoMessage()  {}

func (msg *MsgResolveDispute) Reset()         { *msg = MsgResolveDispute{} }
func (msg *MsgResolveDispute) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgResolveDispute) ProtoMessage()  {}

func (msg *MsgWithdrawFees) Reset()         { *msg = MsgWithdrawFees{} }
func (msg *MsgWithdrawFees) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdrawFees) ProtoMessage()  {}

func (msg *MsgSetTreasury) Reset()         { *msg = MsgSetTreasury{} }
func (msg *MsgSetTreasury) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSetTreasury) ProtoMessage()  {}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdateParams) ProtoMessage()  {}

func (msg *MsgRegisterProviderResponse) Reset()         { *msg = MsgRegisterProviderResponse{} }
func (msg *MsgRegisterProviderResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRegisterProviderResponse) ProtoMessage()  {}

func (msg *MsgUpdatePricingResponse) Reset()         { *msg = MsgUpdatePricingResponse{} }
func (msg *MsgUpdatePricingResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdatePricingResponse) ProtoMessage()  {}

func (msg *MsgAddStakeResponse) Reset()         { *msg = MsgAddStakeResponse{} }
func (msg *MsgAddStakeResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgAddStakeResponse) ProtoMessage()  {}

func (msg *MsgWithdrawStakeResponse) Reset()         { *msg = MsgWithdrawStakeResponse{} }
func (msg *MsgWithdrawStakeResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdrawStakeResponse) ProtoMessage()  {}

func (msg *MsgCreateRequestResponse) Reset()         { *msg = MsgCreateRequestResponse{} }
func (msg *MsgCreateRequestResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCreateRequestResponse) ProtoMessage()  {}

func (msg *MsgAcceptRequestResponse) Reset()         { *msg = MsgAcceptRequestResponse{} }
func (msg *MsgAcceptRequestResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgAcceptRequestResponse) ProtoMessage()  {}

func (msg *MsgSubmitResultResponse) Reset()         { *msg = MsgSubmitResultResponse{} }
func (msg *MsgSubmitResultResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSubmitResultResponse) ProtoMessage()  {}

func (msg *MsgVerifyRequestResponse) Reset()         { *msg = MsgVerifyRequestResponse{} }
func (msg *MsgVerifyRequestResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgVerifyRequestResponse) ProtoMessage()  {}

func (msg *MsgDisputeRequestResponse) Reset()         { *msg = MsgDisputeRequestResponse{} }
func (msg *MsgDisputeRequestResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgDisputeRequestResponse) ProtoMessage()  {}

func (msg *MsgCancelRequestResponse) Reset()         { *msg = MsgCancelRequestResponse{} }
func (msg *MsgCancelRequestResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgCancelRequestResponse) ProtoMessage()  {}

func (msg *MsgSlashProviderResponse) Reset()         { *msg = MsgSlashProviderResponse{} }
func (msg *MsgSlashProviderResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSlashProviderResponse) ProtoMessage()  {}

func (msg *MsgResolveDisputeResponse) Reset()         { *msg = MsgResolveDisputeResponse{} }
func (msg *MsgResolveDisputeResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgResolveDisputeResponse) ProtoMessage()  {}

func (msg *MsgWithdrawFeesResponse) Reset()         { *msg = MsgWithdrawFeesResponse{} }
func (msg *MsgWithdrawFeesResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdrawFeesResponse) ProtoMessage()  {}

func (msg *MsgSetTreasuryResponse) Reset()         { *msg = MsgSetTreasuryResponse{} }
func (msg *MsgSetTreasuryResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSetTreasuryResponse) ProtoMessage()  {}

func (msg *MsgUpdateParamsResponse) Reset()         { *msg = MsgUpdateParamsResponse{} }
func (msg *MsgUpdateParamsResponse) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgUpdateParamsResponse) ProtoMessage()  {}
