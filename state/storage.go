// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/kv"
)

func storageDBKey(addr farm.Address, key farm.Bytes32) []byte {
	return append(addr.Bytes(), key[:]...)
}

func loadStorage(getter kv.Getter, addr farm.Address, key farm.Bytes32) (rlp.RawValue, error) {
	data, err := getter.Get(storageDBKey(addr, key))
	if err != nil {
		if getter.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// saveStorage deletes the slot when value is empty.
func saveStorage(putter kv.Putter, addr farm.Address, key farm.Bytes32, value rlp.RawValue) error {
	if len(value) == 0 {
		return putter.Delete(storageDBKey(addr, key))
	}
	return putter.Put(storageDBKey(addr, key), value)
}
