package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/gridmesh-chain/gridmesh/testutil/keeper"
	"github.com/gridmesh-chain/gridmesh/x/market/types"
)

func TestCreateRequest_Valid(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)

	request := createTestRequest(t, k, ctx, bk, requester)

	// Default price 1000 * size 1000, plus the 10% buffer.
	require.Equal(t, math.NewInt(1_100_000), request.EscrowAmount)
	require.Equal(t, types.RequestStatusPending, request.Status)
	require.Len(t, request.Id, 64)
	require.Equal(t, requester.String(), request.Requester)
	require.Empty(t, request.Provider)
	require.Equal(t, request.CreatedAt.Add(time.Hour), request.Deadline)

	require.Equal(t, math.NewInt(900_000), balanceOf(ctx, bk, requester))
	require.Equal(t, uint64(1), k.GetRequesterNonce(ctx, requester))

	state, err := k.GetMarketState(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1), state.OpenDemand)
}

func TestCreateRequest_EscrowExceedsMaxPayment(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	testkeeper.FundAccount(t, ctx, bk, requester, math.NewInt(2_000_000))

	_, err := k.CreateRequest(ctx, requester, testWorkload, "deadbeef", 1000, math.NewInt(1_000_000), 3600)
	require.ErrorIs(t, err, types.ErrInsufficientEscrow)
	require.Equal(t, math.NewInt(2_000_000), balanceOf(ctx, bk, requester))
}

func TestCreateRequest_InvalidDuration(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	testkeeper.FundAccount(t, ctx, bk, requester, math.NewInt(2_000_000))

	_, err := k.CreateRequest(ctx, requester, testWorkload, "deadbeef", 1000, math.NewInt(2_000_000), 0)
	require.ErrorIs(t, err, types.ErrInvalidDuration)

	_, err = k.CreateRequest(ctx, requester, testWorkload, "deadbeef", 1000, math.NewInt(2_000_000), 86401)
	require.ErrorIs(t, err, types.ErrInvalidDuration)
}

func TestCreateRequest_UniqueIDs(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	testkeeper.FundAccount(t, ctx, bk, requester, math.NewInt(4_000_000))

	// Same payload, same block: the per-requester nonce separates them.
	first, err := k.CreateRequest(ctx, requester, testWorkload, "deadbeef", 1000, math.NewInt(2_000_000), 3600)
	require.NoError(t, err)
	second, err := k.CreateRequest(ctx, requester, testWorkload, "deadbeef", 1000, math.NewInt(2_000_000), 3600)
	require.NoError(t, err)
	require.NotEqual(t, first.Id, second.Id)
	require.Equal(t, uint64(2), k.GetRequesterNonce(ctx, requester))
}

func TestAcceptRequest_Valid(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)

	request := activeTestRequest(t, k, ctx, bk, requester, provider)
	require.Equal(t, types.RequestStatusActive, request.Status)
	require.Equal(t, provider.String(), request.Provider)

	record, err := k.GetProvider(ctx, provider)
	require.NoError(t, err)
	require.Equal(t, uint64(1), record.CurrentJobs)
}

func TestAcceptRequest_SecondAcceptLoses(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)
	rival := testAddr("test_provider_addr_", 2)

	request := activeTestRequest(t, k, ctx, bk, requester, provider)
	registerTestProvider(t, k, ctx, bk, rival, math.NewInt(2_000_000), 4)

	err := k.AcceptRequest(ctx, rival, request.Id)
	require.ErrorIs(t, err, types.ErrInvalidRequestStatus)
}

func TestAcceptRequest_WorkloadMismatch(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)

	testkeeper.FundAccount(t, ctx, bk, requester, math.NewInt(2_000_000))
	request, err := k.CreateRequest(ctx, requester, "wasm:sha256:other", "deadbeef", 1000, math.NewInt(2_000_000), 3600)
	require.NoError(t, err)

	err = k.AcceptRequest(ctx, provider, request.Id)
	require.ErrorIs(t, err, types.ErrWorkloadMismatch)
}

func TestAcceptRequest_AtCapacity(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 1)

	first := createTestRequest(t, k, ctx, bk, requester)
	require.NoError(t, k.AcceptRequest(ctx, provider, first.Id))

	second := createTestRequest(t, k, ctx, bk, requester)
	err := k.AcceptRequest(ctx, provider, second.Id)
	require.ErrorIs(t, err, types.ErrAtCapacity)
}

func TestAcceptRequest_InactiveProvider(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)
	registerTestProvider(t, k, ctx, bk, provider, math.NewInt(2_000_000), 4)
	require.NoError(t, k.WithdrawStake(ctx, provider, math.NewInt(1_500_000)))

	request := createTestRequest(t, k, ctx, bk, requester)
	err := k.AcceptRequest(ctx, provider, request.Id)
	require.ErrorIs(t, err, types.ErrProviderNotActive)
}

func TestCancelRequest_RefundsEscrow(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	request := createTestRequest(t, k, ctx, bk, requester)

	require.NoError(t, k.CancelRequest(ctx, requester, request.Id))

	stored, err := k.GetRequest(ctx, request.Id)
	require.NoError(t, err)
	require.Equal(t, types.RequestStatusCancelled, stored.Status)
	require.Equal(t, math.NewInt(2_000_000), balanceOf(ctx, bk, requester))

	state, err := k.GetMarketState(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(0), state.OpenDemand)
}

func TestCancelRequest_WrongRequester(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	stranger := testAddr("test_requester_addr", 2)
	request := createTestRequest(t, k, ctx, bk, requester)

	err := k.CancelRequest(ctx, stranger, request.Id)
	require.ErrorIs(t, err, types.ErrNotRequester)
}

func TestCancelRequest_NotPending(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	provider := testAddr("test_provider_addr_", 1)
	request := activeTestRequest(t, k, ctx, bk, requester, provider)

	err := k.CancelRequest(ctx, requester, request.Id)
	require.ErrorIs(t, err, types.ErrInvalidRequestStatus)
}

func TestGetRequestsByRequester(t *testing.T) {
	k, ctx, bk := setupMarket(t)
	requester := testAddr("test_requester_addr", 1)
	other := testAddr("test_requester_addr", 2)

	createTestRequest(t, k, ctx, bk, requester)
	createTestRequest(t, k, ctx, bk, requester)
	createTestRequest(t, k, ctx, bk, other)

	mine, err := k.GetRequestsByRequester(ctx, requester)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	theirs, err := k.GetRequestsByRequester(ctx, other)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
}
