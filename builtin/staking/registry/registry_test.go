// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package registry

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking/tiers"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

var (
	owner    = farm.BytesToAddress([]byte("owner"))
	schedule = tiers.Schedule{
		Durations: [4]uint64{100, 200, 300, 0},
		Rates:     [4]uint64{1, 2, 3, 4},
	}
)

func asset(i int) farm.Address {
	return farm.BytesToAddress([]byte{byte(i + 1)})
}

func TestAddCapacity(t *testing.T) {
	r := New(owner, 3)
	for i := range 3 {
		require.NoError(t, r.Add(asset(i), 1, 10))
	}
	assert.ErrorIs(t, r.Add(asset(3), 1, 10), reverts.ErrUserPoolFull)
	assert.Equal(t, uint64(3), r.Count)
	assert.LessOrEqual(t, r.Count, r.Capacity())
}

func TestAddThenRemove(t *testing.T) {
	r := New(owner, 4)
	require.NoError(t, r.Add(asset(0), 1, 0))

	before := *r
	before.Records = append([]Record(nil), r.Records...)

	require.NoError(t, r.Add(asset(1), 2, 5))
	delta, err := r.Remove(asset(1), 2, schedule, 155)
	require.NoError(t, err)
	assert.Equal(t, schedule.Cumulative(150), delta)

	// removing the last record restores the registry
	assert.Equal(t, &before, r)
}

func TestRemoveSwapsLast(t *testing.T) {
	r := New(owner, 4)
	for i := range 3 {
		require.NoError(t, r.Add(asset(i), 1, uint64(i)))
	}

	_, err := r.Remove(asset(0), 1, schedule, 10)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), r.Count)
	assert.Equal(t, asset(2), r.Records[0].Asset)
	assert.Equal(t, asset(1), r.Records[1].Asset)
	assert.Equal(t, Record{}, r.Records[2])
	assert.Len(t, r.Records, 4)
}

func TestRemoveAbsent(t *testing.T) {
	r := New(owner, 2)
	require.NoError(t, r.Add(asset(0), 1, 0))

	_, err := r.Remove(asset(1), 1, schedule, 10)
	assert.ErrorIs(t, err, reverts.ErrInvalidNFTAddress)
	assert.True(t, reverts.Is(err, reverts.NotFound))
	assert.Equal(t, uint64(1), r.Count)

	// record of another farm is not found either
	_, err = r.Remove(asset(0), 2, schedule, 10)
	assert.ErrorIs(t, err, reverts.ErrInvalidNFTAddress)
	assert.Equal(t, uint64(1), r.Count)
}

func TestClaim(t *testing.T) {
	r := New(owner, 2)
	require.NoError(t, r.Add(asset(0), 1, 0))

	delta, err := r.Claim(asset(0), 1, schedule, 0)
	require.NoError(t, err)
	assert.True(t, delta.IsZero())

	delta, err = r.Claim(asset(0), 1, schedule, 150)
	require.NoError(t, err)
	assert.Equal(t, uint256.NewInt(200), delta)

	pending, err := r.Pending(asset(0), 1, schedule, 500)
	require.NoError(t, err)
	assert.Equal(t, uint256.NewInt(900), pending)

	delta, err = r.Claim(asset(0), 1, schedule, 500)
	require.NoError(t, err)
	assert.Equal(t, uint256.NewInt(900), delta)
	assert.Equal(t, uint64(500), r.Records[0].ClaimedAt)
	assert.Equal(t, uint64(0), r.Records[0].StakedAt)

	_, err = r.Claim(asset(0), 1, schedule, 499)
	assert.ErrorIs(t, err, reverts.ErrInvalidWithdrawTime)
	assert.Equal(t, uint64(500), r.Records[0].ClaimedAt)

	_, err = r.Claim(asset(1), 1, schedule, 600)
	assert.ErrorIs(t, err, reverts.ErrInvalidNFTAddress)
}

func TestCountInFarm(t *testing.T) {
	r := New(owner, 5)
	require.NoError(t, r.Add(asset(0), 1, 0))
	require.NoError(t, r.Add(asset(1), 2, 0))
	require.NoError(t, r.Add(asset(2), 1, 0))

	assert.Equal(t, uint64(2), r.CountInFarm(1))
	assert.Equal(t, uint64(1), r.CountInFarm(2))
	assert.Equal(t, uint64(0), r.CountInFarm(3))
}
