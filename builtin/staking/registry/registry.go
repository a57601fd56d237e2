// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package registry

import (
	"github.com/holiman/uint256"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking/tiers"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

// Record is a single staked asset.
type Record struct {
	Asset     farm.Address
	Farm      uint64
	StakedAt  uint64
	ClaimedAt uint64
}

// Registry is the bounded set of a user's stakes.
// Records has a fixed length, the capacity; live records occupy [0, Count).
type Registry struct {
	Owner   farm.Address
	Records []Record
	Count   uint64
}

// New returns an empty registry of owner holding up to capacity records.
func New(owner farm.Address, capacity uint64) *Registry {
	return &Registry{
		Owner:   owner,
		Records: make([]Record, capacity),
	}
}

func (r *Registry) IsEmpty() bool {
	return r == nil || r.Owner.IsZero()
}

// Capacity returns the maximum number of live records.
func (r *Registry) Capacity() uint64 {
	return uint64(len(r.Records))
}

// Live returns the live records. The slice aliases the registry.
func (r *Registry) Live() []Record {
	return r.Records[:r.Count]
}

// CountInFarm returns the number of live records staked in farmNumber.
func (r *Registry) CountInFarm(farmNumber uint64) uint64 {
	var n uint64
	for _, rec := range r.Live() {
		if rec.Farm == farmNumber {
			n++
		}
	}
	return n
}

// Find returns the index of the first live record of asset.
func (r *Registry) Find(asset farm.Address) (int, bool) {
	for i, rec := range r.Live() {
		if rec.Asset == asset {
			return i, true
		}
	}
	return -1, false
}

// Add appends a record staked at now. Duplicates are not checked.
func (r *Registry) Add(asset farm.Address, farmNumber, now uint64) error {
	if r.Count >= r.Capacity() {
		return reverts.ErrUserPoolFull
	}
	r.Records[r.Count] = Record{
		Asset:     asset,
		Farm:      farmNumber,
		StakedAt:  now,
		ClaimedAt: now,
	}
	r.Count++
	return nil
}

// lookup returns the index of asset's record, which must belong to farmNumber.
func (r *Registry) lookup(asset farm.Address, farmNumber uint64) (int, error) {
	i, ok := r.Find(asset)
	if !ok || r.Records[i].Farm != farmNumber {
		return -1, reverts.ErrInvalidNFTAddress
	}
	return i, nil
}

// Pending returns the unclaimed reward of asset at now.
func (r *Registry) Pending(asset farm.Address, farmNumber uint64, schedule tiers.Schedule, now uint64) (*uint256.Int, error) {
	i, err := r.lookup(asset, farmNumber)
	if err != nil {
		return nil, err
	}
	rec := r.Records[i]
	return schedule.Delta(rec.StakedAt, rec.ClaimedAt, now)
}

// Remove drops the record of asset and returns its unclaimed reward.
// The last live record is moved into the vacated slot.
func (r *Registry) Remove(asset farm.Address, farmNumber uint64, schedule tiers.Schedule, now uint64) (*uint256.Int, error) {
	i, err := r.lookup(asset, farmNumber)
	if err != nil {
		return nil, err
	}
	rec := r.Records[i]
	delta, err := schedule.Delta(rec.StakedAt, rec.ClaimedAt, now)
	if err != nil {
		return nil, err
	}
	last := r.Count - 1
	r.Records[i] = r.Records[last]
	r.Records[last] = Record{}
	r.Count--
	return delta, nil
}

// Claim returns the unclaimed reward of asset and marks it claimed at now.
func (r *Registry) Claim(asset farm.Address, farmNumber uint64, schedule tiers.Schedule, now uint64) (*uint256.Int, error) {
	i, err := r.lookup(asset, farmNumber)
	if err != nil {
		return nil, err
	}
	rec := &r.Records[i]
	delta, err := schedule.Delta(rec.StakedAt, rec.ClaimedAt, now)
	if err != nil {
		return nil, err
	}
	rec.ClaimedAt = now
	return delta, nil
}
