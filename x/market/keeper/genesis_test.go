package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/gridmesh-chain/gridmesh/x/market/keeper"
	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

func TestGenesis_Default(t *testing.T) {
	k, ctx, _ := setupMarket(t)

	require.NoError(t, keeper.InitGenesis(ctx, *k, *types.DefaultGenesis()))

	exported, err := keeper.ExportGenesis(ctx, *k)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Equal(t, types.DefaultParams(), exported.Params)
	require.Empty(t, exported.Providers)
	require.Empty(t, exported.Requests)
	require.Equal(t, uint64(1), exported.NextSlashId)
	require.True(t, exported.AccruedFees.IsZero())
}

func TestGenesis_RoundTrip(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)
	treasury := testAddr("test_treasury_addr_", 1)

	// Exercise the full lifecycle so the export carries every record kind.
	verified := completedTestRequest(t, k, ctx, bk, requester, provider)
	require.NoError(t, k.VerifyAndRelease(ctx, requester, verified.Id))

	open := createTestRequest(t, k, ctx, bk, requester)
	require.NoError(t, k.AcceptRequest(ctx, provider, open.Id))
	late := advanceTime(ctx, 3601*time.Second)
	require.NoError(t, k.SlashProvider(late, requester, open.Id))

	require.NoError(t, k.SetTreasury(ctx, k.GetAuthority(), treasury.String()))

	exported, err := keeper.ExportGenesis(ctx, *k)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())

	k2, ctx2, _ := setupMarket(t)
	require.NoError(t, keeper.InitGenesis(ctx2, *k2, *exported))

	reExported, err := keeper.ExportGenesis(ctx2, *k2)
	require.NoError(t, err)
	require.Equal(t, exported, reExported)
}

func TestGenesis_RebuildsCounters(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)
	activeTestRequest(t, k, ctx, bk, requester, provider)

	exported, err := keeper.ExportGenesis(ctx, *k)
	require.NoError(t, err)

	// Tamper with the imported aggregates; the importer must recompute them.
	exported.MarketState.TotalSupply = 99
	exported.MarketState.OpenDemand = 99

	k2, ctx2, _ := setupMarket(t)
	require.NoError(t, keeper.InitGenesis(ctx2, *k2, *exported))

	state, err := k2.GetMarketState(ctx2)
	require.NoError(t, err)
	require.Equal(t, uint64(4), state.TotalSupply)
	require.Equal(t, uint64(1), state.OpenDemand)
	require.Equal(t, uint64(1), k2.GetProviderCount(ctx2))
}

func TestGenesis_RejectsInvalidState(t *testing.T) {
	k, ctx, _ := setupMarket(t)

	genState := types.DefaultGenesis()
	genState.NextSlashId = 0

	err := keeper.InitGenesis(ctx, *k, *genState)
	require.Error(t, err)
}

func TestGenesis_ImportRestoresNonces(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	createTestRequest(t, k, ctx, bk, requester)
	createTestRequest(t, k, ctx, bk, requester)

	exported, err := keeper.ExportGenesis(ctx, *k)
	require.NoError(t, err)

	k2, ctx2, _ := setupMarket(t)
	require.NoError(t, keeper.InitGenesis(ctx2, *k2, *exported))
	require.Equal(t, uint64(2), k2.GetRequesterNonce(ctx2, requester))
}

func TestGenesis_ExportedSlashRecords(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)

	request := activeTestRequest(t, k, ctx, bk, requester, provider)
	late := advanceTime(ctx, 3601*time.Second)
	require.NoError(t, k.SlashProvider(late, requester, request.Id))

	exported, err := keeper.ExportGenesis(ctx, *k)
	require.NoError(t, err)
	require.Len(t, exported.SlashRecords, 1)
	require.Equal(t, uint64(2), exported.NextSlashId)
	require.Equal(t, math.NewInt(200_000), exported.SlashRecords[0].SlashAmount)
}
