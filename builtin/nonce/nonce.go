// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package nonce tracks the next action nonce of every signer, so a signed
// action is accepted at most once.
package nonce

import (
	"github.com/pkg/errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/solidity"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/log"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/state"
)

var (
	logger     = log.WithContext("pkg", "nonce")
	slotNonces = farm.Slot("nonces")
)

type Nonces struct {
	next *solidity.Mapping[farm.Address, uint64]
}

func New(addr farm.Address, state *state.State) *Nonces {
	return &Nonces{
		next: solidity.NewMapping[farm.Address, uint64](solidity.NewContext(addr, state), slotNonces),
	}
}

// Next returns the nonce the next action of signer must carry.
func (n *Nonces) Next(signer farm.Address) (uint64, error) {
	v, err := n.next.Get(signer)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get nonce")
	}
	return v, nil
}

// Use consumes nonce for signer. It fails with ErrInvalidNonce unless nonce
// is the one returned by Next.
func (n *Nonces) Use(signer farm.Address, nonce uint64) error {
	next, err := n.Next(signer)
	if err != nil {
		return err
	}
	if nonce != next {
		logger.Debug("nonce mismatch", "signer", signer, "want", next, "got", nonce)
		return reverts.ErrInvalidNonce
	}
	if err := n.next.Set(signer, next+1); err != nil {
		return errors.Wrap(err, "failed to set nonce")
	}
	return nil
}
