// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package tiers implements the tiered, time based reward function.
package tiers

import (
	"github.com/holiman/uint256"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

// Schedule is a list of (duration, rate) tiers consumed in order.
// The last tier has no upper bound; its duration is kept but never used.
type Schedule struct {
	Durations [farm.TierCount]uint64
	Rates     [farm.TierCount]uint64
}

// NewSchedule builds a schedule from exactly farm.TierCount durations and rates.
func NewSchedule(durations, rates []uint64) (Schedule, error) {
	var s Schedule
	if len(durations) != farm.TierCount || len(rates) != farm.TierCount {
		return s, reverts.ErrInvalidInput
	}
	copy(s.Durations[:], durations)
	copy(s.Rates[:], rates)
	return s, nil
}

// Cumulative returns the reward accrued over elapsed seconds.
func (s Schedule) Cumulative(elapsed uint64) *uint256.Int {
	var (
		reward    = new(uint256.Int)
		remaining = elapsed
		tmp       uint256.Int
	)
	for tier := 0; tier < farm.TierCount-1; tier++ {
		take := min(remaining, s.Durations[tier])
		reward.Add(reward, tmp.Mul(uint256.NewInt(take), uint256.NewInt(s.Rates[tier])))
		remaining -= take
		if remaining == 0 {
			return reward
		}
	}
	return reward.Add(reward, tmp.Mul(uint256.NewInt(remaining), uint256.NewInt(s.Rates[farm.TierCount-1])))
}

// Delta returns the reward accrued between claimedAt and now for a stake
// made at stakedAt. Both ends are evaluated with the receiver, so a
// schedule update applies retroactively and the delta is never negative.
func (s Schedule) Delta(stakedAt, claimedAt, now uint64) (*uint256.Int, error) {
	if claimedAt < stakedAt || now < claimedAt {
		return nil, reverts.ErrInvalidWithdrawTime
	}
	total := s.Cumulative(now - stakedAt)
	claimed := s.Cumulative(claimedAt - stakedAt)
	return total.Sub(total, claimed), nil
}
