// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package registry

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/solidity"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

var (
	slotRegistries = farm.Slot("registries")
	slotOwners     = farm.Slot("registry-owners")
	slotOwnerCount = farm.Slot("registry-owner-count")
)

type index uint64

func (i index) Bytes() []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(i))
	return b[:]
}

// Service persists user registries, keyed by owner, and an index of owners.
type Service struct {
	registries *solidity.Mapping[farm.Address, *Registry]
	owners     *solidity.Mapping[index, farm.Address]
	ownerCount *solidity.Uint64
}

func NewService(sctx *solidity.Context) *Service {
	return &Service{
		registries: solidity.NewMapping[farm.Address, *Registry](sctx, slotRegistries),
		owners:     solidity.NewMapping[index, farm.Address](sctx, slotOwners),
		ownerCount: solidity.NewUint64(sctx, slotOwnerCount),
	}
}

// Get returns the registry of owner, nil if it was never created.
func (s *Service) Get(owner farm.Address) (*Registry, error) {
	r, err := s.registries.Get(owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get registry")
	}
	if r.IsEmpty() {
		return nil, nil
	}
	return r, nil
}

// GetExisting returns the registry of owner, failing if it does not exist.
func (s *Service) GetExisting(owner farm.Address) (*Registry, error) {
	r, err := s.Get(owner)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, reverts.ErrInvalidUserPool
	}
	return r, nil
}

// Create makes an empty registry for owner.
func (s *Service) Create(owner farm.Address, capacity uint64) (*Registry, error) {
	existing, err := s.Get(owner)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, reverts.ErrAlreadyInitialized
	}
	count, err := s.ownerCount.Get()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get owner count")
	}

	r := New(owner, capacity)
	if err := s.Save(r); err != nil {
		return nil, err
	}
	if err := s.owners.Set(index(count), owner); err != nil {
		return nil, errors.Wrap(err, "failed to index owner")
	}
	s.ownerCount.Set(count + 1)
	return r, nil
}

// Save persists r.
func (s *Service) Save(r *Registry) error {
	if err := s.registries.Set(r.Owner, r); err != nil {
		return errors.Wrap(err, "failed to set registry")
	}
	return nil
}

// Owners returns the owners of all registries in creation order.
func (s *Service) Owners() ([]farm.Address, error) {
	count, err := s.ownerCount.Get()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get owner count")
	}
	owners := make([]farm.Address, 0, count)
	for i := range count {
		owner, err := s.owners.Get(index(i))
		if err != nil {
			return nil, errors.Wrap(err, "failed to get owner")
		}
		owners = append(owners, owner)
	}
	return owners, nil
}
