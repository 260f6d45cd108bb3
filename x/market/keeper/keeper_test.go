package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/gridmesh-chain/gridmesh/testutil/keeper"
	"github.com/gridmesh-chain/gridmesh/x/market/keeper"
	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

const testWorkload = "wasm:sha256:9f86d081884c7d65"

func setupMarket(t *testing.T) (*keeper.Keeper, sdk.Context, bankkeeper.Keeper) {
	return testkeeper.MarketKeeper(t)
}

func testAddr(name string, index byte) sdk.AccAddress {
	addr := make([]byte, 20)
	copy(addr, name)
	addr[19] = index
	return sdk.AccAddress(addr)
}

// registerTestProvider funds and registers a provider with the given stake
// and capacity, asserting success.
func registerTestProvider(t *testing.T, k *keeper.Keeper, ctx sdk.Context, bk bankkeeper.Keeper, provider sdk.AccAddress, stake math.Int, maxJobs uint64) {
	t.Helper()
	testkeeper.FundAccount(t, ctx, bk, provider, stake)
	err := k.RegisterProvider(
		ctx, provider, stake, testWorkload, "",
		types.PricingModelPerUnit,
		math.NewInt(1000), math.ZeroInt(), math.ZeroInt(),
		maxJobs,
	)
	require.NoError(t, err)
}

// createTestRequest funds a requester and opens a pending request sized so
// the default-price escrow quote is 1_100_000ugrid.
func createTestRequest(t *testing.T, k *keeper.Keeper, ctx sdk.Context, bk bankkeeper.Keeper, requester sdk.AccAddress) types.ComputeRequest {
	t.Helper()
	testkeeper.FundAccount(t, ctx, bk, requester, math.NewInt(2_000_000))
	request, err := k.CreateRequest(ctx, requester, testWorkload, "deadbeef", 1000, math.NewInt(2_000_000), 3600)
	require.NoError(t, err)
	return request
}

// activeTestRequest runs the pending->active leg with a fresh provider.
func activeTestRequest(t *testing.T, k *keeper.Keeper, ctx sdk.Context, bk bankkeeper.Keeper, requester, provider sdk.AccAddress) types.ComputeRequest {
	t.Helper()
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)
	request := createTestRequest(t, k, ctx, bk, requester)
	require.NoError(t, k.AcceptRequest(ctx, provider, request.Id))
	updated, err := k.GetRequest(ctx, request.Id)
	require.NoError(t, err)
	return *updated
}

// completedTestRequest runs the lifecycle through result submission.
func completedTestRequest(t *testing.T, k *keeper.Keeper, ctx sdk.Context, bk bankkeeper.Keeper, requester, provider sdk.AccAddress) types.ComputeRequest {
	t.Helper()
	request := activeTestRequest(t, k, ctx, bk, requester, provider)
	require.NoError(t, k.SubmitResult(ctx, provider, request.Id, "cafebabe", nil))
	updated, err := k.GetRequest(ctx, request.Id)
	require.NoError(t, err)
	return *updated
}

func advanceTime(ctx sdk.Context, d time.Duration) sdk.Context {
	return ctx.WithBlockTime(ctx.BlockTime().Add(d))
}

func balanceOf(ctx sdk.Context, bk bankkeeper.Keeper, addr sdk.AccAddress) math.Int {
	return bk.GetBalance(ctx, addr, types.DefaultParams().StakeDenom).Amount
}
