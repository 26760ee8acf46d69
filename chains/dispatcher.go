// Package chains provides blockchain interaction implementations
package chains

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"

	"aurorafeeder/config"
	"aurorafeeder/contract"
	"aurorafeeder/feeder"
)

// confirmTimeout bounds how long a single submission waits for its
// confirmation before the target is recorded as timed out.
const confirmTimeout = 60 * time.Second

// oracleTransactor is the slice of the generated binding the dispatcher uses.
type oracleTransactor interface {
	UpdatePrices(opts *bind.TransactOpts, tokenIds [][32]byte, prices []int64, expos []int32, updateTime *big.Int) (*types.Transaction, error)
}

// boundTarget is one oracle target with its dialed client and signer attached.
type boundTarget struct {
	target   config.OracleTarget
	backend  bind.DeployBackend
	contract oracleTransactor
	auth     *bind.TransactOpts
}

// Dispatcher submits encoded price batches to every configured oracle
// contract, one target at a time. A failure or timeout on one target never
// cancels processing of the remaining targets.
type Dispatcher struct {
	targets   []boundTarget
	timeout   time.Duration
	waitMined func(ctx context.Context, backend bind.DeployBackend, tx *types.Transaction) (*types.Receipt, error)
	log       zerolog.Logger
}

// NewDispatcher dials every oracle target and prepares a keyed transactor for
// each from the shared signing key.
func NewDispatcher(ctx context.Context, privateKey string, targets []config.OracleTarget, log zerolog.Logger) (*Dispatcher, error) {
	key, err := crypto.HexToECDSA(privateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid signing key: %w", err)
	}

	d := &Dispatcher{
		timeout:   confirmTimeout,
		waitMined: bind.WaitMined,
		log:       log.With().Str("component", "dispatcher").Logger(),
	}

	for _, target := range targets {
		client, err := ethclient.Dial(target.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("failed to dial oracle %s: %w", target.Name, err)
		}

		chainID, err := client.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get chain id for oracle %s: %w", target.Name, err)
		}

		auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
		if err != nil {
			return nil, fmt.Errorf("failed to create transactor for oracle %s: %w", target.Name, err)
		}

		oracle, err := contract.NewOracle(common.HexToAddress(target.Address), client)
		if err != nil {
			return nil, fmt.Errorf("failed to bind oracle %s: %w", target.Name, err)
		}

		d.targets = append(d.targets, boundTarget{
			target:   target,
			backend:  client,
			contract: oracle,
			auth:     auth,
		})
	}

	return d, nil
}

// Dispatch sends the whole batch to each target in turn and returns one
// result per target.
func (d *Dispatcher) Dispatch(ctx context.Context, batch []feeder.EncodedPrice, updateTime int64) []feeder.UpdateResult {
	tokenIds := make([][32]byte, len(batch))
	prices := make([]int64, len(batch))
	expos := make([]int32, len(batch))

	for i, p := range batch {
		tokenIds[i] = [32]byte(p.TokenID)
		prices[i] = p.Price
		expos[i] = p.Expo
	}

	results := make([]feeder.UpdateResult, 0, len(d.targets))
	for _, bt := range d.targets {
		results = append(results, d.dispatchOne(ctx, bt, tokenIds, prices, expos, updateTime))
	}

	return results
}

// dispatchOne submits the batch to a single target and races the confirmation
// against the timeout. A transaction still pending when the timeout fires is
// abandoned, not cancelled.
func (d *Dispatcher) dispatchOne(
	ctx context.Context,
	bt boundTarget,
	tokenIds [][32]byte,
	prices []int64,
	expos []int32,
	updateTime int64,
) feeder.UpdateResult {
	d.log.Info().
		Str("oracle", bt.target.Name).
		Str("address", bt.target.Address).
		Int("batch_size", len(tokenIds)).
		Int64("update_time", updateTime).
		Msg("submitting price update")

	tx, err := bt.contract.UpdatePrices(bt.auth, tokenIds, prices, expos, big.NewInt(updateTime))
	if err != nil {
		return feeder.UpdateResult{
			Target:  bt.target,
			Outcome: feeder.OutcomeFailed,
			Err:     fmt.Errorf("submission failed: %w", err),
		}
	}

	waitCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	receipt, err := d.waitMined(waitCtx, bt.backend, tx)

	switch {
	case err == nil:
		return feeder.UpdateResult{
			Target:      bt.target,
			Outcome:     feeder.OutcomeConfirmed,
			BlockNumber: receipt.BlockNumber.Uint64(),
		}
	case errors.Is(err, context.DeadlineExceeded):
		return feeder.UpdateResult{Target: bt.target, Outcome: feeder.OutcomeTimedOut}
	default:
		return feeder.UpdateResult{
			Target:  bt.target,
			Outcome: feeder.OutcomeFailed,
			Err:     fmt.Errorf("confirmation failed: %w", err),
		}
	}
}
