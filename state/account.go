// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/kv"
)

// Account is the persisted representation of an account.
type Account struct {
	Balance *big.Int
}

// IsEmpty returns if an account is empty.
func (a *Account) IsEmpty() bool {
	return a.Balance.Sign() == 0
}

func emptyAccount() *Account {
	return &Account{Balance: new(big.Int)}
}

// loadAccount load an account object by address from store.
// If the given address not found, an empty account returned.
func loadAccount(getter kv.Getter, addr farm.Address) (*Account, error) {
	data, err := getter.Get(addr.Bytes())
	if err != nil {
		if getter.IsNotFound(err) {
			return emptyAccount(), nil
		}
		return nil, err
	}
	var a Account
	if err := rlp.DecodeBytes(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// saveAccount save account into store.
// If the given account is empty, the value for given address is deleted.
func saveAccount(putter kv.Putter, addr farm.Address, a *Account) error {
	if a.IsEmpty() {
		return putter.Delete(addr.Bytes())
	}
	data, err := rlp.EncodeToBytes(a)
	if err != nil {
		return err
	}
	return putter.Put(addr.Bytes(), data)
}
