package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/gridmesh-chain/gridmesh/testutil/keeper"
	"github.com/gridmesh-chain/gridmesh/x/market/keeper"
	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

func TestEstimateCost(t *testing.T) {
	k, ctx, _ := setupMarket(t)

	estimate, err := k.EstimateCost(ctx, 1000)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), estimate)
	require.Equal(t, math.NewInt(1_100_000), keeper.RequiredEscrow(estimate))

	zero, err := k.EstimateCost(ctx, 0)
	require.NoError(t, err)
	require.True(t, zero.IsZero())
}

func TestPriceUpdate_RateLimited(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)

	// Demand churn inside the update interval never moves the price.
	for i := byte(1); i <= 3; i++ {
		createTestRequest(t, k, ctx, bk, testAddr("test_requester_addr", i))
	}

	state, err := k.GetMarketState(ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), state.EquilibriumPrice)
	require.Equal(t, uint64(3), state.OpenDemand)
	require.Equal(t, uint64(4), state.TotalSupply)
}

func TestPriceUpdate_RisesUnderHighUtilization(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)

	createTestRequest(t, k, ctx, bk, testAddr("test_requester_addr", 1))
	createTestRequest(t, k, ctx, bk, testAddr("test_requester_addr", 2))

	// The third request lands after the interval: demand 3 against supply 4
	// is 75% utilization, so the step pushes the price up by a quarter.
	later := advanceTime(ctx, 301*time.Second)
	third := createTestRequest(t, k, later, bk, testAddr("test_requester_addr", 3))

	// The quote itself was taken at the pre-step price.
	require.Equal(t, math.NewInt(1_100_000), third.EscrowAmount)

	state, err := k.GetMarketState(later)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1250), state.EquilibriumPrice)
	require.Equal(t, math.NewInt(250), state.PriceVelocity)
	require.Equal(t, uint64(7500), state.LastUtilization)
}

func TestPriceUpdate_StoredVelocityNeverNegative(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	first := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, first, math.NewInt(2_000_000), 4)

	// Zero demand after the interval: the raw step is downward, the price
	// drops, but the persisted velocity floors at zero.
	later := advanceTime(ctx, 301*time.Second)
	second := testAddr("test_provider_addr_", 2)
	testkeeper.FundAccount(t, later, bk, second, math.NewInt(2_000_000))
	require.NoError(t, k.RegisterProvider(
		later, second, math.NewInt(2_000_000), testWorkload, "",
		types.PricingModelPerUnit,
		math.NewInt(1000), math.ZeroInt(), math.ZeroInt(), 4,
	))

	state, err := k.GetMarketState(later)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), state.EquilibriumPrice)
	require.True(t, state.PriceVelocity.IsZero())
}

func TestPriceUpdate_FloorHolds(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)

	// Repeated downward steps bottom out at the configured floor.
	later := ctx
	for i := 0; i < 40; i++ {
		later = advanceTime(later, 301*time.Second)
		require.NoError(t, k.EndBlocker(later))
	}

	params, err := k.GetParams(later)
	require.NoError(t, err)
	state, err := k.GetMarketState(later)
	require.NoError(t, err)
	require.Equal(t, params.PriceFloor, state.EquilibriumPrice)
}
