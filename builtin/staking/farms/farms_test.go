// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/solidity"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking/tiers"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/lvldb"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/state"
)

func newService(t *testing.T) *Service {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(solidity.NewContext(farm.StakingProgram, state.New(db)))
}

func TestFarmLifecycle(t *testing.T) {
	svc := newService(t)
	schedule := tiers.Schedule{Durations: [4]uint64{1, 2, 3, 4}, Rates: [4]uint64{5, 6, 7, 8}}

	f, err := svc.Get(1)
	require.NoError(t, err)
	assert.Nil(t, f)

	_, err = svc.GetExisting(1)
	assert.ErrorIs(t, err, reverts.ErrInvalidFarm)

	_, err = svc.Create(1, schedule, 3)
	require.NoError(t, err)

	require.NoError(t, svc.AddStaked(1))
	require.NoError(t, svc.AddStaked(1))
	require.NoError(t, svc.RemoveStaked(1))

	updated := tiers.Schedule{Durations: [4]uint64{9, 9, 9, 9}, Rates: [4]uint64{1, 1, 1, 1}}
	_, err = svc.Update(1, updated, 10)
	require.NoError(t, err)
	require.NoError(t, svc.SetStopped(1, true))

	f, err = svc.GetExisting(1)
	require.NoError(t, err)
	assert.Equal(t, &Farm{
		Number:        1,
		StakedCount:   1,
		MaxStakeCount: 10,
		Schedule:      updated,
		Stopped:       true,
	}, f)

	require.NoError(t, svc.RemoveStaked(1))
	assert.Error(t, svc.RemoveStaked(1))

	assert.ErrorIs(t, svc.SetStopped(2, true), reverts.ErrInvalidFarm)
	_, err = svc.Update(2, updated, 1)
	assert.ErrorIs(t, err, reverts.ErrInvalidFarm)
}
