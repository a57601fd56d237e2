// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/kv"
)

// Stage holds the net changes of a State.
type Stage struct {
	db       kv.Store
	accounts map[farm.Address]*Account
	storages map[storageKey]rlp.RawValue
}

// Len returns the number of changed entries.
func (s *Stage) Len() int {
	return len(s.accounts) + len(s.storages)
}

// Commit writes all changes atomically.
func (s *Stage) Commit() error {
	if s.Len() == 0 {
		return nil
	}
	bulk := s.db.Bulk()
	accounts := accountBucket.NewBulk(bulk)
	storages := storageBucket.NewBulk(bulk)

	for addr, acc := range s.accounts {
		if err := saveAccount(accounts, addr, acc); err != nil {
			return errors.Wrap(err, "save account")
		}
	}
	for key, value := range s.storages {
		if err := saveStorage(storages, key.addr, key.key, value); err != nil {
			return errors.Wrap(err, "save storage")
		}
	}
	if err := bulk.Write(); err != nil {
		return errors.Wrap(err, "commit state")
	}

	metricStateWrites().AddWithLabel(int64(len(s.accounts)), map[string]string{"type": "account"})
	metricStateWrites().AddWithLabel(int64(len(s.storages)), map[string]string{"type": "storage"})
	return nil
}
