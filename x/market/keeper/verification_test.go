package keeper_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/gridmesh-chain/gridmesh/testutil/keeper"
	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

func TestSubmitResult_Valid(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)

	request := completedTestRequest(t, k, ctx, bk, requester, provider)
	require.Equal(t, types.RequestStatusCompleted, request.Status)
	require.Equal(t, "cafebabe", request.ResultHash)
}

func TestSubmitResult_WrongProvider(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)
	rival := testAddr("test_provider_addr_", 2)

	request := activeTestRequest(t, k, ctx, bk, requester, provider)
	registerTestProvider(t, k, ctx, bk, rival, math.NewInt(2_000_000), 4)

	err := k.SubmitResult(ctx, rival, request.Id, "cafebabe", nil)
	require.ErrorIs(t, err, types.ErrNotProvider)
}

func TestSubmitResult_AfterDeadline(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)

	request := activeTestRequest(t, k, ctx, bk, requester, provider)
	late := advanceTime(ctx, 3601*time.Second)

	err := k.SubmitResult(late, provider, request.Id, "cafebabe", nil)
	require.ErrorIs(t, err, types.ErrDeadlineExpired)
}

func TestSubmitResult_AttestationSignature(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	testkeeper.FundAccount(t, ctx, bk, provider, math.NewInt(2_000_000))
	require.NoError(t, k.RegisterProvider(
		ctx, provider, math.NewInt(2_000_000), testWorkload, hex.EncodeToString(pub),
		types.PricingModelPerUnit,
		math.NewInt(1000), math.ZeroInt(), math.ZeroInt(), 4,
	))

	request := createTestRequest(t, k, ctx, bk, requester)
	require.NoError(t, k.AcceptRequest(ctx, provider, request.Id))

	// A signature over the wrong digest is rejected and leaves the request active.
	bad := ed25519.Sign(priv, []byte("not the canonical digest"))
	err = k.SubmitResult(ctx, provider, request.Id, "cafebabe", bad)
	require.ErrorIs(t, err, types.ErrInvalidSignature)

	good := ed25519.Sign(priv, types.ResultMessageHash(request.Id, "cafebabe"))
	require.NoError(t, k.SubmitResult(ctx, provider, request.Id, "cafebabe", good))

	stored, err := k.GetRequest(ctx, request.Id)
	require.NoError(t, err)
	require.Equal(t, types.RequestStatusCompleted, stored.Status)
}

func TestVerifyAndRelease_PaysProviderNetOfFee(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)

	request := completedTestRequest(t, k, ctx, bk, requester, provider)
	require.NoError(t, k.VerifyAndRelease(ctx, requester, request.Id))

	stored, err := k.GetRequest(ctx, request.Id)
	require.NoError(t, err)
	require.Equal(t, types.RequestStatusVerified, stored.Status)

	// 2.5% of the 1_100_000 escrow accrues as fee, the rest pays the provider.
	require.Equal(t, math.NewInt(1_072_500), balanceOf(ctx, bk, provider))
	require.Equal(t, math.NewInt(27_500), k.GetAccruedFees(ctx))

	record, err := k.GetProvider(ctx, provider)
	require.NoError(t, err)
	require.Equal(t, uint64(1), record.CompletedJobs)
	require.Equal(t, uint64(0), record.CurrentJobs)
	require.Equal(t, math.NewInt(1_072_500), record.LifetimeEarnings)
	require.Equal(t, types.ReputationInitial+types.ReputationReward, record.Reputation)

	state, err := k.GetMarketState(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(0), state.OpenDemand)
}

func TestVerifyAndRelease_WrongRequester(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	stranger := testAddr("test_requester_addr", 2)
	provider := testAddr("test_provider_addr_", 1)

	request := completedTestRequest(t, k, ctx, bk, requester, provider)
	err := k.VerifyAndRelease(ctx, stranger, request.Id)
	require.ErrorIs(t, err, types.ErrNotRequester)
}

func TestVerifyAndRelease_NotCompleted(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)

	request := activeTestRequest(t, k, ctx, bk, requester, provider)
	err := k.VerifyAndRelease(ctx, requester, request.Id)
	require.ErrorIs(t, err, types.ErrInvalidRequestStatus)
}

func TestReputation_CappedAtMax(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)

	record, err := k.GetProvider(ctx, provider)
	require.NoError(t, err)
	record.Reputation = types.ReputationMax - 50
	require.NoError(t, k.SetProvider(ctx, *record))

	request := createTestRequest(t, k, ctx, bk, requester)
	require.NoError(t, k.AcceptRequest(ctx, provider, request.Id))
	require.NoError(t, k.SubmitResult(ctx, provider, request.Id, "cafebabe", nil))
	require.NoError(t, k.VerifyAndRelease(ctx, requester, request.Id))

	record, err = k.GetProvider(ctx, provider)
	require.NoError(t, err)
	require.Equal(t, types.ReputationMax, record.Reputation)
}
