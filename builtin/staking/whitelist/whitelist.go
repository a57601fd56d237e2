// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package whitelist

import (
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/solidity"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

var slotProofs = farm.Slot("whitelist-proofs")

// Proof admits a candidate, an asset or a collection, into a farm.
type Proof struct {
	Candidate    farm.Address
	Farm         uint64
	IsCollection bool
	Deposit      *big.Int
}

func (p *Proof) IsEmpty() bool {
	return p == nil || p.Farm == 0
}

type proofKey struct {
	candidate farm.Address
	farm      uint64
}

func (k proofKey) Bytes() []byte {
	b := make([]byte, 0, 28)
	b = append(b, k.candidate.Bytes()...)
	return binary.BigEndian.AppendUint64(b, k.farm)
}

// Collections resolves the collection an asset belongs to.
type Collections interface {
	Collection(asset farm.Address) (collection farm.Address, ok bool, err error)
}

type Service struct {
	proofs *solidity.Mapping[proofKey, *Proof]
}

func New(sctx *solidity.Context) *Service {
	return &Service{
		proofs: solidity.NewMapping[proofKey, *Proof](sctx, slotProofs),
	}
}

// Get returns the proof of candidate under farmNumber, nil if absent.
func (s *Service) Get(candidate farm.Address, farmNumber uint64) (*Proof, error) {
	p, err := s.proofs.Get(proofKey{candidate, farmNumber})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get proof")
	}
	if p.IsEmpty() {
		return nil, nil
	}
	return p, nil
}

// Exists reports whether candidate is whitelisted under farmNumber.
func (s *Service) Exists(candidate farm.Address, farmNumber uint64) (bool, error) {
	ok, err := s.proofs.Exists(proofKey{candidate, farmNumber})
	if err != nil {
		return false, errors.Wrap(err, "failed to check proof")
	}
	return ok, nil
}

// Add stores p.
func (s *Service) Add(p *Proof) error {
	exists, err := s.Exists(p.Candidate, p.Farm)
	if err != nil {
		return err
	}
	if exists {
		return reverts.ErrWhitelistExists
	}
	if err := s.proofs.Set(proofKey{p.Candidate, p.Farm}, p); err != nil {
		return errors.Wrap(err, "failed to set proof")
	}
	return nil
}

// Remove deletes the proof of candidate under farmNumber and returns it.
func (s *Service) Remove(candidate farm.Address, farmNumber uint64) (*Proof, error) {
	p, err := s.Get(candidate, farmNumber)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, reverts.ErrInvalidWhitelistAddress
	}
	s.proofs.Delete(proofKey{candidate, farmNumber})
	return p, nil
}

// Admit checks that asset may be staked into farmNumber, either whitelisted
// itself or through its collection. An asset declaring no collection is
// rejected.
func (s *Service) Admit(asset farm.Address, farmNumber uint64, collections Collections) error {
	collection, ok, err := collections.Collection(asset)
	if err != nil {
		return err
	}
	if !ok {
		return reverts.ErrMetadataCreatorParseError
	}
	for _, candidate := range []farm.Address{asset, collection} {
		exists, err := s.Exists(candidate, farmNumber)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
	}
	return reverts.ErrUnknownOrNotAllowedNFTCollection
}
