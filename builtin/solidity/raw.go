// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

// Raw is a single slot holding an RLP encoded value.
type Raw[V any] struct {
	context *Context
	pos     farm.Bytes32
}

func NewRaw[V any](context *Context, pos farm.Bytes32) *Raw[V] {
	return &Raw[V]{context: context, pos: pos}
}

// Get decodes the slot into value. ok is false when the slot is empty.
func (r *Raw[V]) Get(value *V) (ok bool, err error) {
	err = r.context.state.DecodeStorage(r.context.address, r.pos, func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		ok = true
		return rlp.DecodeBytes(raw, value)
	})
	return
}

func (r *Raw[V]) Set(value *V) error {
	return r.context.state.EncodeStorage(r.context.address, r.pos, func() ([]byte, error) {
		return rlp.EncodeToBytes(value)
	})
}
