// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farms

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/solidity"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking/tiers"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

var slotFarms = farm.Slot("farms")

// Farm is the state of a reward pool.
type Farm struct {
	Number        uint64
	StakedCount   uint64
	MaxStakeCount uint64 // per user
	Schedule      tiers.Schedule
	Stopped       bool
}

func (f *Farm) IsEmpty() bool {
	return f == nil || f.Number == 0
}

type number uint64

func (n number) Bytes() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(n))
	return b[:]
}

type Service struct {
	farms *solidity.Mapping[number, *Farm]
}

func New(sctx *solidity.Context) *Service {
	return &Service{
		farms: solidity.NewMapping[number, *Farm](sctx, slotFarms),
	}
}

// Get returns farm n, nil if it does not exist.
func (s *Service) Get(n uint64) (*Farm, error) {
	f, err := s.farms.Get(number(n))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get farm")
	}
	if f.IsEmpty() {
		return nil, nil
	}
	return f, nil
}

// GetExisting returns farm n, failing if it does not exist.
func (s *Service) GetExisting(n uint64) (*Farm, error) {
	f, err := s.Get(n)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, reverts.ErrInvalidFarm
	}
	return f, nil
}

func (s *Service) set(f *Farm) error {
	if err := s.farms.Set(number(f.Number), f); err != nil {
		return errors.Wrap(err, "failed to set farm")
	}
	return nil
}

// Create stores a new farm. Sequencing is checked by the caller.
func (s *Service) Create(n uint64, schedule tiers.Schedule, maxStakeCount uint64) (*Farm, error) {
	if n == 0 {
		return nil, reverts.ErrInvalidFarmCount
	}
	f := &Farm{
		Number:        n,
		MaxStakeCount: maxStakeCount,
		Schedule:      schedule,
	}
	return f, s.set(f)
}

// Update replaces the schedule and the per user cap of farm n.
func (s *Service) Update(n uint64, schedule tiers.Schedule, maxStakeCount uint64) (*Farm, error) {
	f, err := s.GetExisting(n)
	if err != nil {
		return nil, err
	}
	f.Schedule = schedule
	f.MaxStakeCount = maxStakeCount
	return f, s.set(f)
}

// SetStopped sets the stop flag of farm n.
func (s *Service) SetStopped(n uint64, stopped bool) error {
	f, err := s.GetExisting(n)
	if err != nil {
		return err
	}
	f.Stopped = stopped
	return s.set(f)
}

// AddStaked counts a stake into farm n.
func (s *Service) AddStaked(n uint64) error {
	f, err := s.GetExisting(n)
	if err != nil {
		return err
	}
	f.StakedCount++
	return s.set(f)
}

// RemoveStaked counts a stake out of farm n.
func (s *Service) RemoveStaked(n uint64) error {
	f, err := s.GetExisting(n)
	if err != nil {
		return err
	}
	if f.StakedCount == 0 {
		return errors.New("farm staked count underflow")
	}
	f.StakedCount--
	return s.set(f)
}
