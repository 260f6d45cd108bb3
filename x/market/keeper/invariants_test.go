package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/gridmesh-chain/gridmesh/x/market/keeper"
	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

func TestInvariants_HoldAfterFullLifecycle(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(4_000_000), 4)

	// Verified settlement.
	first := testAddr("test_requester_addr", 1)
	request := createTestRequest(t, k, ctx, bk, first)
	require.NoError(t, k.AcceptRequest(ctx, provider, request.Id))
	require.NoError(t, k.SubmitResult(ctx, provider, request.Id, "cafebabe", nil))
	require.NoError(t, k.VerifyAndRelease(ctx, first, request.Id))

	// Cancelled request.
	second := testAddr("test_requester_addr", 2)
	cancelled := createTestRequest(t, k, ctx, bk, second)
	require.NoError(t, k.CancelRequest(ctx, second, cancelled.Id))

	// Slashed request.
	third := testAddr("test_requester_addr", 3)
	slashed := createTestRequest(t, k, ctx, bk, third)
	require.NoError(t, k.AcceptRequest(ctx, provider, slashed.Id))
	late := advanceTime(ctx, 3601*time.Second)
	require.NoError(t, k.SlashProvider(late, third, slashed.Id))

	// Still-open request on top.
	fourth := testAddr("test_requester_addr", 4)
	createTestRequest(t, k, late, bk, fourth)

	msg, broken := keeper.AllInvariants(*k)(late)
	require.False(t, broken, msg)
}

func TestModuleBalanceInvariant_DetectsShortfall(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)

	// Inflate the recorded stake past what the module account holds.
	record, err := k.GetProvider(ctx, provider)
	require.NoError(t, err)
	record.Stake = record.Stake.MulRaw(2)
	require.NoError(t, k.SetProvider(ctx, *record))

	_, broken := keeper.ModuleBalanceInvariant(*k)(ctx)
	require.True(t, broken)
}

func TestMarketCountersInvariant_DetectsDrift(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)

	state, err := k.GetMarketState(ctx)
	require.NoError(t, err)
	state.TotalSupply = 17
	require.NoError(t, k.SetMarketState(ctx, state))

	_, broken := keeper.MarketCountersInvariant(*k)(ctx)
	require.True(t, broken)
}

func TestProviderBoundsInvariant_DetectsOverflow(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)

	record, err := k.GetProvider(ctx, provider)
	require.NoError(t, err)
	record.Reputation = types.ReputationMax + 1
	require.NoError(t, k.SetProvider(ctx, *record))

	_, broken := keeper.ProviderBoundsInvariant(*k)(ctx)
	require.True(t, broken)
}

func TestPriceBoundsInvariant_DetectsNegativeVelocity(t *testing.T) {
	k, ctx, _ := setupMarket(t)

	state, err := k.GetMarketState(ctx)
	require.NoError(t, err)
	state.PriceVelocity = math.NewInt(-1)
	require.NoError(t, k.SetMarketState(ctx, state))

	_, broken := keeper.PriceBoundsInvariant(*k)(ctx)
	require.True(t, broken)
}
