package types

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func TestRequestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name string
		from RequestStatus
		to   RequestStatus
		want bool
	}{
		{"pending to active", RequestStatusPending, RequestStatusActive, true},
		{"pending to cancelled", RequestStatusPending, RequestStatusCancelled, true},
		{"pending to completed", RequestStatusPending, RequestStatusCompleted, false},
		{"pending to slashed", RequestStatusPending, RequestStatusSlashed, false},
		{"active to completed", RequestStatusActive, RequestStatusCompleted, true},
		{"active to slashed", RequestStatusActive, RequestStatusSlashed, true},
		{"active to cancelled", RequestStatusActive, RequestStatusCancelled, false},
		{"active to verified", RequestStatusActive, RequestStatusVerified, false},
		{"completed to verified", RequestStatusCompleted, RequestStatusVerified, true},
		{"completed to disputed", RequestStatusCompleted, RequestStatusDisputed, true},
		{"completed to cancelled", RequestStatusCompleted, RequestStatusCancelled, false},
		{"disputed to verified", RequestStatusDisputed, RequestStatusVerified, true},
		{"disputed to cancelled", RequestStatusDisputed, RequestStatusCancelled, true},
		{"disputed to slashed", RequestStatusDisputed, RequestStatusSlashed, false},
		{"verified is terminal", RequestStatusVerified, RequestStatusPending, false},
		{"cancelled is terminal", RequestStatusCancelled, RequestStatusActive, false},
		{"slashed is terminal", RequestStatusSlashed, RequestStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRequestStatus_IsTerminal(t *testing.T) {
	terminal := []RequestStatus{RequestStatusVerified, RequestStatusCancelled, RequestStatusSlashed}
	live := []RequestStatus{RequestStatusPending, RequestStatusActive, RequestStatusCompleted, RequestStatusDisputed}

	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = false, want true", s)
		}
		if len(ValidTransitions[s]) != 0 {
			t.Errorf("%s is terminal but has outgoing transitions", s)
		}
	}
	for _, s := range live {
		if s.IsTerminal() {
			t.Errorf("%s.IsTerminal() = true, want false", s)
		}
	}
}

func TestParsePricingModel(t *testing.T) {
	for _, pm := range []PricingModel{PricingModelPerUnit, PricingModelPerCall, PricingModelPerTime, PricingModelHybrid} {
		parsed, err := ParsePricingModel(pm.String())
		if err != nil {
			t.Fatalf("ParsePricingModel(%q) returned error: %v", pm.String(), err)
		}
		if parsed != pm {
			t.Errorf("ParsePricingModel(%q) = %v, want %v", pm.String(), parsed, pm)
		}
	}

	if _, err := ParsePricingModel("per_byte"); err == nil {
		t.Error("ParsePricingModel accepted an unknown model")
	}
}

func TestNewRequestID(t *testing.T) {
	requester := sdk.AccAddress([]byte("test_requester_addr_"))
	at := time.Unix(1700000000, 0).UTC()

	first := NewRequestID(requester, 1, at, "deadbeef")
	if len(first) != 64 {
		t.Fatalf("NewRequestID length = %d, want 64", len(first))
	}
	if again := NewRequestID(requester, 1, at, "deadbeef"); again != first {
		t.Error("NewRequestID is not deterministic for identical inputs")
	}
	if other := NewRequestID(requester, 2, at, "deadbeef"); other == first {
		t.Error("NewRequestID collided across nonces")
	}
	if other := NewRequestID(requester, 1, at, "cafebabe"); other == first {
		t.Error("NewRequestID collided across input hashes")
	}
}

func TestProvider_HasCapacity(t *testing.T) {
	p := Provider{MaxConcurrentJobs: 2}
	if !p.HasCapacity() {
		t.Error("empty provider should have capacity")
	}
	p.CurrentJobs = 2
	if p.HasCapacity() {
		t.Error("full provider should not have capacity")
	}
}
