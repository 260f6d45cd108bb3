package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/gridmesh-chain/gridmesh/testutil/keeper"
	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

func TestRegisterProvider_Valid(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)

	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)

	record, err := k.GetProvider(ctx, provider)
	require.NoError(t, err)
	require.True(t, record.Registered)
	require.True(t, record.Active)
	require.Equal(t, math.NewInt(2_000_000), record.Stake)
	require.Equal(t, types.ReputationInitial, record.Reputation)
	require.Equal(t, uint64(4), record.MaxConcurrentJobs)
	require.Equal(t, uint64(0), record.CurrentJobs)
	require.Equal(t, testWorkload, record.WorkloadId)

	// Stake is locked in the module account.
	require.True(t, balanceOf(ctx, bk, provider).IsZero())
	require.Equal(t, uint64(1), k.GetProviderCount(ctx))

	state, err := k.GetMarketState(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(4), state.TotalSupply)
}

func TestRegisterProvider_InsufficientStake(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)
	testkeeper.FundAccount(t, ctx, bk, provider, math.NewInt(500_000))

	err := k.RegisterProvider(
		ctx, provider, math.NewInt(500_000), testWorkload, "",
		types.PricingModelPerUnit,
		math.NewInt(1000), math.ZeroInt(), math.ZeroInt(), 4,
	)
	require.ErrorIs(t, err, types.ErrInsufficientStake)

	// Nothing was locked.
	require.Equal(t, math.NewInt(500_000), balanceOf(ctx, bk, provider))
	_, err = k.GetProvider(ctx, provider)
	require.ErrorIs(t, err, types.ErrNotRegistered)
}

func TestRegisterProvider_ReRegistrationAccumulatesStake(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)

	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(1_000_000), 4)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(1_000_000), 8)

	record, err := k.GetProvider(ctx, provider)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2_000_000), record.Stake)
	require.Equal(t, types.ReputationInitial, record.Reputation)
	require.Equal(t, uint64(8), record.MaxConcurrentJobs)

	// One enumerable provider; supply reflects the new capacity only.
	require.Equal(t, uint64(1), k.GetProviderCount(ctx))
	state, err := k.GetMarketState(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(8), state.TotalSupply)
}

func TestRegisterProvider_RejectsCapacityBelowJobsInFlight(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)
	activeTestRequest(t, k, ctx, bk, requester, provider)

	testkeeper.FundAccount(t, ctx, bk, provider, math.NewInt(1_000_000))
	err := k.RegisterProvider(
		ctx, provider, math.NewInt(1_000_000), testWorkload, "",
		types.PricingModelPerUnit,
		math.NewInt(1000), math.ZeroInt(), math.ZeroInt(), 0,
	)
	require.ErrorIs(t, err, types.ErrProviderBusy)

	// The record and the new stake are untouched.
	record, err := k.GetProvider(ctx, provider)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2_000_000), record.Stake)
	require.Equal(t, uint64(4), record.MaxConcurrentJobs)
	require.Equal(t, uint64(1), record.CurrentJobs)
	require.Equal(t, math.NewInt(1_000_000), balanceOf(ctx, bk, provider))
}

func TestUpdatePricing(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)

	err := k.UpdatePricing(ctx, provider, types.PricingModelHybrid,
		math.NewInt(2000), math.NewInt(50), math.NewInt(7))
	require.NoError(t, err)

	record, err := k.GetProvider(ctx, provider)
	require.NoError(t, err)
	require.Equal(t, types.PricingModelHybrid, record.PricingModel)
	require.Equal(t, math.NewInt(2000), record.PricePerUnit)
	require.Equal(t, math.NewInt(50), record.PricePerCall)
	require.Equal(t, math.NewInt(7), record.PricePerTime)
}

func TestUpdatePricing_NotRegistered(t *testing.T) {
	k, ctx, _ := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)

	err := k.UpdatePricing(ctx, provider, types.PricingModelPerCall,
		math.NewInt(1), math.NewInt(1), math.NewInt(1))
	require.ErrorIs(t, err, types.ErrNotRegistered)
}

func TestWithdrawStake_Deactivation(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)

	err := k.WithdrawStake(ctx, provider, math.NewInt(1_500_000))
	require.NoError(t, err)

	record, err := k.GetProvider(ctx, provider)
	require.NoError(t, err)
	require.False(t, record.Active)
	require.Equal(t, math.NewInt(500_000), record.Stake)
	require.Equal(t, math.NewInt(1_500_000), balanceOf(ctx, bk, provider))

	// Capacity left the market with the deactivation.
	state, err := k.GetMarketState(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(0), state.TotalSupply)
}

func TestWithdrawStake_Overdraw(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)

	err := k.WithdrawStake(ctx, provider, math.NewInt(3_000_000))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestWithdrawStake_RejectedWhileBusy(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)
	activeTestRequest(t, k, ctx, bk, requester, provider)

	err := k.WithdrawStake(ctx, provider, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrProviderBusy)
}

func TestAddStake_Reactivates(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)

	require.NoError(t, k.WithdrawStake(ctx, provider, math.NewInt(1_500_000)))

	err := k.AddStake(ctx, provider, math.NewInt(600_000))
	require.NoError(t, err)

	record, err := k.GetProvider(ctx, provider)
	require.NoError(t, err)
	require.True(t, record.Active)
	require.Equal(t, math.NewInt(1_100_000), record.Stake)

	state, err := k.GetMarketState(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(4), state.TotalSupply)
}
