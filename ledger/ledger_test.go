// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/authority"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/token"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/lvldb"
)

var (
	admin      = authority.NewSigner(farm.BytesToAddress([]byte("admin")))
	alice      = authority.NewSigner(farm.BytesToAddress([]byte("alice")))
	rewardMint = farm.BytesToAddress([]byte("reward"))
	collection = farm.BytesToAddress([]byte("collection"))
	nft        = farm.BytesToAddress([]byte("nft"))
)

func newLedger(t *testing.T) (*Ledger, *clock.Mock, *lvldb.LevelDB) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	clk := clock.NewMock()
	return New(db, clk), clk, db
}

func TestExecute(t *testing.T) {
	l, _, db := newLedger(t)

	require.NoError(t, l.Execute("initialize", func(tx *Tx) error {
		return tx.Staking.Initialize(admin, rewardMint)
	}))

	err := l.Execute("initialize", func(tx *Tx) error {
		return tx.Staking.Initialize(admin, rewardMint)
	})
	assert.ErrorIs(t, err, reverts.ErrAlreadyInitialized)

	// a fresh ledger over the same store sees committed state
	require.NoError(t, New(db, nil).View(func(tx *Tx) error {
		g, err := tx.Staking.GlobalInfo()
		if err != nil {
			return err
		}
		assert.Equal(t, admin.Address(), g.Admin)
		return nil
	}))
}

func TestExecuteDiscard(t *testing.T) {
	l, _, _ := newLedger(t)
	errAbort := errors.New("abort")

	err := l.Execute("fund", func(tx *Tx) error {
		if err := tx.State.SetBalance(alice.Address(), big.NewInt(100)); err != nil {
			return err
		}
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	require.NoError(t, l.View(func(tx *Tx) error {
		bal, err := tx.State.GetBalance(alice.Address())
		if err != nil {
			return err
		}
		assert.Equal(t, 0, bal.Sign())

		// changes made in a view are dropped
		return tx.State.SetBalance(alice.Address(), big.NewInt(1))
	}))
	require.NoError(t, l.View(func(tx *Tx) error {
		bal, err := tx.State.GetBalance(alice.Address())
		assert.Equal(t, 0, bal.Sign())
		return err
	}))
}

func TestClock(t *testing.T) {
	l, clk, _ := newLedger(t)

	clk.Add(100 * time.Second)
	var seen uint64
	require.NoError(t, l.Execute("noop", func(tx *Tx) error {
		seen = tx.Now
		return nil
	}))
	assert.Equal(t, uint64(100), seen)

	// the clock going backwards does not move transactions back in time
	clk.Add(-50 * time.Second)
	require.NoError(t, l.Execute("noop", func(tx *Tx) error {
		seen = tx.Now
		return nil
	}))
	assert.Equal(t, uint64(100), seen)
	assert.Equal(t, uint64(100), l.Now())

	clk.Add(60 * time.Second)
	assert.Equal(t, uint64(110), l.Now())
}

func TestStakingFlow(t *testing.T) {
	l, clk, _ := newLedger(t)

	require.NoError(t, l.Execute("setup", func(tx *Tx) error {
		if err := tx.Staking.Initialize(admin, rewardMint); err != nil {
			return err
		}
		if err := tx.Staking.CreateFarm(admin, 1, []uint64{100, 200, 300, 0}, []uint64{1, 2, 3, 4}, 1); err != nil {
			return err
		}
		if err := tx.State.SetBalance(admin.Address(), big.NewInt(1000)); err != nil {
			return err
		}
		if err := tx.Staking.AddWhitelist(admin, collection, 1, true); err != nil {
			return err
		}
		if err := tx.Metadata.SetCreators(nft, []farm.Address{collection}); err != nil {
			return err
		}
		if err := tx.Tokens.Credit(nft, alice.Address(), token.Amount(1)); err != nil {
			return err
		}
		return tx.Staking.InitUser(alice)
	}))

	require.NoError(t, l.Execute("stake", func(tx *Tx) error {
		return tx.Staking.Stake(alice, nft, 1, tx.Now)
	}))

	clk.Add(150 * time.Second)
	var reward *uint256.Int
	require.NoError(t, l.Execute("claim", func(tx *Tx) (err error) {
		reward, err = tx.Staking.Claim(alice, nft, 1, tx.Now)
		return
	}))
	assert.Equal(t, uint64(200), reward.Uint64())

	clk.Add(350 * time.Second)
	require.NoError(t, l.View(func(tx *Tx) (err error) {
		reward, err = tx.Staking.PendingReward(alice.Address(), nft, tx.Now)
		return
	}))
	assert.Equal(t, uint64(900), reward.Uint64())

	require.NoError(t, l.View(func(tx *Tx) error {
		bal, err := tx.Tokens.BalanceOf(rewardMint, alice.Address())
		assert.Equal(t, uint64(200), bal.Uint64())
		return err
	}))
}
