// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package ledger executes staking operations as atomic transactions over a kv store.
package ledger

import (
	"sync"

	"github.com/facebookgo/clock"
	"github.com/pkg/errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/metadata"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/nonce"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/token"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/kv"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/log"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/state"
)

var logger = log.WithContext("pkg", "ledger")

// Tx is the view of the ledger handed to a transaction.
type Tx struct {
	Now      uint64
	State    *state.State
	Staking  *staking.Staking
	Tokens   *token.Token
	Metadata *metadata.Metadata
	Nonces   *nonce.Nonces
}

func newTx(db kv.Store, now uint64) *Tx {
	st := state.New(db)
	tokens := token.New(farm.TokenProgram, st)
	md := metadata.New(farm.MetadataProgram, st)
	return &Tx{
		Now:      now,
		State:    st,
		Staking:  staking.New(farm.StakingProgram, st, tokens, md),
		Tokens:   tokens,
		Metadata: md,
		Nonces:   nonce.New(farm.NonceProgram, st),
	}
}

// Ledger serialises write transactions and commits each one atomically.
type Ledger struct {
	db    kv.Store
	clock clock.Clock

	lock sync.RWMutex
	last uint64
}

// New creates a ledger over db. Timestamps are taken from clk in unix seconds.
func New(db kv.Store, clk clock.Clock) *Ledger {
	if clk == nil {
		clk = clock.New()
	}
	return &Ledger{db: db, clock: clk}
}

// timestamp returns the clock reading, never earlier than the last one handed out.
func (l *Ledger) timestamp() uint64 {
	var now uint64
	if ts := l.clock.Now().Unix(); ts > 0 {
		now = uint64(ts)
	}
	return max(now, l.last)
}

// Execute runs fn as a transaction named op. All state changes made by fn
// are committed together if it returns nil, and discarded otherwise.
func (l *Ledger) Execute(op string, fn func(tx *Tx) error) (err error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	start := l.clock.Now()
	defer func() {
		result := "ok"
		switch {
		case reverts.IsRevertErr(err):
			result = "reverted"
		case err != nil:
			result = "error"
		}
		metricTxCount().AddWithLabel(1, map[string]string{"op": op, "result": result})
		metricTxDuration().ObserveWithLabels(l.clock.Now().Sub(start).Milliseconds(), map[string]string{"op": op})
	}()

	l.last = l.timestamp()
	tx := newTx(l.db, l.last)
	if err := fn(tx); err != nil {
		logger.Debug("transaction reverted", "op", op, "error", err)
		return err
	}
	stage := tx.State.Stage()
	if err := stage.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	logger.Trace("transaction committed", "op", op, "changes", stage.Len(), "now", tx.Now)
	return nil
}

// View runs fn against the committed state. Changes made by fn are dropped.
func (l *Ledger) View(fn func(tx *Tx) error) error {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return fn(newTx(l.db, l.timestamp()))
}

// Now returns the timestamp the next transaction would observe.
func (l *Ledger) Now() uint64 {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.timestamp()
}

// Store returns the underlying store.
func (l *Ledger) Store() kv.Store {
	return l.db
}
