// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package globalstats

import (
	"github.com/pkg/errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/solidity"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

var (
	slotIdentity    = farm.Slot("global-identity")
	slotTotalStaked = farm.Slot("total-staked")
	slotFarmCount   = farm.Slot("farm-count")
)

// Identity is fixed when the protocol is initialized.
type Identity struct {
	Admin       farm.Address
	RewardAsset farm.Address
}

// Global is a snapshot of the global registry.
type Global struct {
	Identity
	TotalStaked uint64
	FarmCount   uint64
}

// Service manages the protocol wide registry.
type Service struct {
	identity    *solidity.Raw[Identity]
	totalStaked *solidity.Uint64
	farmCount   *solidity.Uint64
}

func New(sctx *solidity.Context) *Service {
	return &Service{
		identity:    solidity.NewRaw[Identity](sctx, slotIdentity),
		totalStaked: solidity.NewUint64(sctx, slotTotalStaked),
		farmCount:   solidity.NewUint64(sctx, slotFarmCount),
	}
}

// Initialize creates the registry.
func (s *Service) Initialize(admin, rewardAsset farm.Address) error {
	var id Identity
	ok, err := s.identity.Get(&id)
	if err != nil {
		return errors.Wrap(err, "failed to get identity")
	}
	if ok {
		return reverts.ErrAlreadyInitialized
	}
	id = Identity{Admin: admin, RewardAsset: rewardAsset}
	if err := s.identity.Set(&id); err != nil {
		return errors.Wrap(err, "failed to set identity")
	}
	return nil
}

// Get returns the registry, failing if it was never initialized.
func (s *Service) Get() (*Global, error) {
	var g Global
	ok, err := s.identity.Get(&g.Identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get identity")
	}
	if !ok {
		return nil, reverts.ErrInvalidGlobalPool
	}
	if g.TotalStaked, err = s.totalStaked.Get(); err != nil {
		return nil, errors.Wrap(err, "failed to get total staked")
	}
	if g.FarmCount, err = s.farmCount.Get(); err != nil {
		return nil, errors.Wrap(err, "failed to get farm count")
	}
	return &g, nil
}

// RequireAdmin fails unless caller is the administrator.
func (s *Service) RequireAdmin(caller farm.Address) (*Global, error) {
	g, err := s.Get()
	if err != nil {
		return nil, err
	}
	if caller != g.Admin {
		return nil, reverts.ErrInvalidSuperOwner
	}
	return g, nil
}

// NextFarm claims farm number n, which must follow the current farm count.
func (s *Service) NextFarm(n uint64) error {
	count, err := s.farmCount.Get()
	if err != nil {
		return errors.Wrap(err, "failed to get farm count")
	}
	if n != count+1 {
		return reverts.ErrInvalidFarmCount
	}
	s.farmCount.Set(n)
	return nil
}

func (s *Service) AddStaked() error {
	_, err := s.totalStaked.Add(1)
	return errors.Wrap(err, "failed to add total staked")
}

func (s *Service) RemoveStaked() error {
	_, err := s.totalStaked.Sub(1)
	return errors.Wrap(err, "failed to remove total staked")
}
