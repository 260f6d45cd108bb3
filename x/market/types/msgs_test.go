package types

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	testProvider  = sdk.AccAddress([]byte("test_provider_addr__")).String()
	testRequester = sdk.AccAddress([]byte("test_requester_addr_")).String()
	testRequestID = strings.Repeat("ab", 32)
)

func validRegisterProvider() *MsgRegisterProvider {
	return &MsgRegisterProvider{
		Provider:          testProvider,
		Stake:             math.NewInt(1000000),
		WorkloadId:        "wasm:sha256:9f86d081884c7d65",
		PricingModel:      PricingModelPerUnit,
		PricePerUnit:      math.NewInt(1000),
		PricePerCall:      math.ZeroInt(),
		PricePerTime:      math.ZeroInt(),
		MaxConcurrentJobs: 4,
	}
}

func TestMsgRegisterProvider_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MsgRegisterProvider)
		wantErr bool
	}{
		{"valid", func(m *MsgRegisterProvider) {}, false},
		{"invalid address", func(m *MsgRegisterProvider) { m.Provider = "invalid" }, true},
		{"zero stake", func(m *MsgRegisterProvider) { m.Stake = math.ZeroInt() }, true},
		{"nil stake", func(m *MsgRegisterProvider) { m.Stake = math.Int{} }, true},
		{"empty workload", func(m *MsgRegisterProvider) { m.WorkloadId = "" }, true},
		{"unknown pricing model", func(m *MsgRegisterProvider) { m.PricingModel = PricingModel(99) }, true},
		{"negative price", func(m *MsgRegisterProvider) { m.PricePerUnit = math.NewInt(-1) }, true},
		{"zero capacity", func(m *MsgRegisterProvider) { m.MaxConcurrentJobs = 0 }, true},
		{"non-hex attestation", func(m *MsgRegisterProvider) { m.AttestationId = "zzzz" }, true},
		{"hex attestation", func(m *MsgRegisterProvider) { m.AttestationId = "deadbeef" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validRegisterProvider()
			tt.mutate(msg)
			err := msg.ValidateBasic()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBasic() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMsgCreateRequest_ValidateBasic(t *testing.T) {
	valid := MsgCreateRequest{
		Requester:       testRequester,
		WorkloadId:      "wasm:sha256:9f86d081884c7d65",
		InputHash:       "deadbeef",
		EstimatedSize:   1000,
		MaxPayment:      math.NewInt(2000000),
		DurationSeconds: 3600,
	}

	tests := []struct {
		name    string
		mutate  func(*MsgCreateRequest)
		wantErr bool
	}{
		{"valid", func(m *MsgCreateRequest) {}, false},
		{"invalid requester", func(m *MsgCreateRequest) { m.Requester = "invalid" }, true},
		{"empty workload", func(m *MsgCreateRequest) { m.WorkloadId = "" }, true},
		{"empty input hash", func(m *MsgCreateRequest) { m.InputHash = "" }, true},
		{"zero size", func(m *MsgCreateRequest) { m.EstimatedSize = 0 }, true},
		{"zero max payment", func(m *MsgCreateRequest) { m.MaxPayment = math.ZeroInt() }, true},
		{"zero duration", func(m *MsgCreateRequest) { m.DurationSeconds = 0 }, true},
		{"negative duration", func(m *MsgCreateRequest) { m.DurationSeconds = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid
			tt.mutate(&msg)
			err := msg.ValidateBasic()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBasic() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMsgSubmitResult_ValidateBasic(t *testing.T) {
	valid := MsgSubmitResult{
		Provider:   testProvider,
		RequestId:  testRequestID,
		ResultHash: "cafebabe",
	}

	tests := []struct {
		name    string
		mutate  func(*MsgSubmitResult)
		wantErr bool
	}{
		{"valid without signature", func(m *MsgSubmitResult) {}, false},
		{"valid with signature", func(m *MsgSubmitResult) { m.Signature = make([]byte, 64) }, false},
		{"short signature", func(m *MsgSubmitResult) { m.Signature = make([]byte, 32) }, true},
		{"empty result hash", func(m *MsgSubmitResult) { m.ResultHash = "" }, true},
		{"short request id", func(m *MsgSubmitResult) { m.RequestId = "abcd" }, true},
		{"non-hex request id", func(m *MsgSubmitResult) { m.RequestId = strings.Repeat("zz", 32) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid
			tt.mutate(&msg)
			err := msg.ValidateBasic()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBasic() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequestIDMessages_ValidateBasic(t *testing.T) {
	msgs := []sdk.Msg{
		&MsgAcceptRequest{Provider: testProvider, RequestId: testRequestID},
		&MsgVerifyRequest{Requester: testRequester, RequestId: testRequestID},
		&MsgDisputeRequest{Requester: testRequester, RequestId: testRequestID},
		&MsgCancelRequest{Requester: testRequester, RequestId: testRequestID},
		&MsgSlashProvider{Caller: testRequester, RequestId: testRequestID},
		&MsgResolveDispute{Authority: testRequester, RequestId: testRequestID},
	}

	type validator interface{ ValidateBasic() error }
	for _, msg := range msgs {
		if err := msg.(validator).ValidateBasic(); err != nil {
			t.Errorf("%T.ValidateBasic() = %v, want nil", msg, err)
		}
	}
}

func TestMsgUpdateParams_ValidateBasic(t *testing.T) {
	msg := MsgUpdateParams{Authority: testRequester, Params: DefaultParams()}
	if err := msg.ValidateBasic(); err != nil {
		t.Fatalf("ValidateBasic() = %v, want nil", err)
	}

	msg.Params.StakeDenom = ""
	if err := msg.ValidateBasic(); err == nil {
		t.Error("ValidateBasic accepted invalid params")
	}

	msg = MsgUpdateParams{Authority: "invalid", Params: DefaultParams()}
	if err := msg.ValidateBasic(); err == nil {
		t.Error("ValidateBasic accepted invalid authority")
	}
}
