package chains

import (
	"context"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aurorafeeder/config"
	"aurorafeeder/feeder"
)

// MockOracle implements oracleTransactor for testing
type MockOracle struct {
	mock.Mock
}

func (m *MockOracle) UpdatePrices(opts *bind.TransactOpts, tokenIds [][32]byte, prices []int64, expos []int32, updateTime *big.Int) (*types.Transaction, error) {
	args := m.Called(opts, tokenIds, prices, expos, updateTime)

	return args.Get(0).(*types.Transaction), args.Error(1)
}

func mockTx() *types.Transaction {
	return types.NewTransaction(
		0,
		common.Address{},
		big.NewInt(0),
		0,
		big.NewInt(0),
		nil,
	)
}

func minedAt(block int64) func(context.Context, bind.DeployBackend, *types.Transaction) (*types.Receipt, error) {
	return func(_ context.Context, _ bind.DeployBackend, _ *types.Transaction) (*types.Receipt, error) {
		return &types.Receipt{BlockNumber: big.NewInt(block)}, nil
	}
}

// neverMined blocks like bind.WaitMined does for a transaction that is never
// included, returning only when the context expires.
func neverMined(ctx context.Context, _ bind.DeployBackend, _ *types.Transaction) (*types.Receipt, error) {
	<-ctx.Done()

	return nil, ctx.Err()
}

func newTestDispatcher(targets ...boundTarget) *Dispatcher {
	return &Dispatcher{
		targets:   targets,
		timeout:   50 * time.Millisecond,
		waitMined: minedAt(1),
		log:       zerolog.Nop(),
	}
}

func testBatch() []feeder.EncodedPrice {
	return []feeder.EncodedPrice{
		{TokenID: feeder.TokenID("ETH"), Price: 200000000, Expo: -5, UpdateTime: 1700000000},
		{TokenID: feeder.TokenID("BTC"), Price: 30000000, Expo: -3, UpdateTime: 1700000000},
	}
}

func TestDispatch_Confirmed(t *testing.T) {
	mockOracle := new(MockOracle)
	mockOracle.On("UpdatePrices", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(mockTx(), nil).Once()

	target := config.OracleTarget{Name: "aurora", Address: "0x0000000000000000000000000000000000000001"}
	d := newTestDispatcher(boundTarget{target: target, contract: mockOracle, auth: &bind.TransactOpts{}})
	d.waitMined = minedAt(42)

	results := d.Dispatch(context.Background(), testBatch(), 1700000000)

	require.Len(t, results, 1)
	assert.Equal(t, feeder.OutcomeConfirmed, results[0].Outcome)
	assert.Equal(t, uint64(42), results[0].BlockNumber)
	assert.NoError(t, results[0].Err)
	mockOracle.AssertExpectations(t)
}

func TestDispatch_PassesWholeBatch(t *testing.T) {
	batch := testBatch()

	wantTokenIds := [][32]byte{[32]byte(batch[0].TokenID), [32]byte(batch[1].TokenID)}
	wantPrices := []int64{200000000, 30000000}
	wantExpos := []int32{-5, -3}

	mockOracle := new(MockOracle)
	mockOracle.On("UpdatePrices", mock.Anything, wantTokenIds, wantPrices, wantExpos, big.NewInt(1700000000)).
		Return(mockTx(), nil).Once()

	target := config.OracleTarget{Name: "aurora", Address: "0x0000000000000000000000000000000000000001"}
	d := newTestDispatcher(boundTarget{target: target, contract: mockOracle, auth: &bind.TransactOpts{}})

	d.Dispatch(context.Background(), batch, 1700000000)

	mockOracle.AssertExpectations(t)
}

func TestDispatch_Timeout(t *testing.T) {
	mockOracle := new(MockOracle)
	mockOracle.On("UpdatePrices", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(mockTx(), nil).Once()

	target := config.OracleTarget{Name: "slow", Address: "0x0000000000000000000000000000000000000002"}
	d := newTestDispatcher(boundTarget{target: target, contract: mockOracle, auth: &bind.TransactOpts{}})
	d.waitMined = neverMined

	results := d.Dispatch(context.Background(), testBatch(), 1700000000)

	require.Len(t, results, 1)
	assert.Equal(t, feeder.OutcomeTimedOut, results[0].Outcome)
	mockOracle.AssertExpectations(t)
}

func TestDispatch_SubmissionError(t *testing.T) {
	mockOracle := new(MockOracle)
	mockOracle.On("UpdatePrices", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return((*types.Transaction)(nil), fmt.Errorf("nonce too low")).Once()

	target := config.OracleTarget{Name: "broken", Address: "0x0000000000000000000000000000000000000003"}
	d := newTestDispatcher(boundTarget{target: target, contract: mockOracle, auth: &bind.TransactOpts{}})

	results := d.Dispatch(context.Background(), testBatch(), 1700000000)

	require.Len(t, results, 1)
	assert.Equal(t, feeder.OutcomeFailed, results[0].Outcome)
	assert.ErrorContains(t, results[0].Err, "nonce too low")
	mockOracle.AssertExpectations(t)
}

func TestDispatch_FailureDoesNotStopLaterTargets(t *testing.T) {
	failing := new(MockOracle)
	failing.On("UpdatePrices", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return((*types.Transaction)(nil), fmt.Errorf("boom")).Once()

	healthy := new(MockOracle)
	healthy.On("UpdatePrices", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(mockTx(), nil).Once()

	d := newTestDispatcher(
		boundTarget{
			target:   config.OracleTarget{Name: "first", Address: "0x0000000000000000000000000000000000000001"},
			contract: failing,
			auth:     &bind.TransactOpts{},
		},
		boundTarget{
			target:   config.OracleTarget{Name: "second", Address: "0x0000000000000000000000000000000000000002"},
			contract: healthy,
			auth:     &bind.TransactOpts{},
		},
	)

	results := d.Dispatch(context.Background(), testBatch(), 1700000000)

	require.Len(t, results, 2)
	assert.Equal(t, feeder.OutcomeFailed, results[0].Outcome)
	assert.Equal(t, "first", results[0].Target.Name)
	assert.Equal(t, feeder.OutcomeConfirmed, results[1].Outcome)
	assert.Equal(t, "second", results[1].Target.Name)

	failing.AssertExpectations(t)
	healthy.AssertExpectations(t)
}
