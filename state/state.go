// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/kv"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/stackedmap"
)

const (
	accountBucket = kv.Bucket("a")
	storageBucket = kv.Bucket("s")
)

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

type storageKey struct {
	addr farm.Address
	key  farm.Bytes32
}

// State manages account balances and contract storage.
type State struct {
	db       kv.Store
	accounts kv.Getter
	storages kv.Getter
	sm       *stackedmap.StackedMap
}

// New create state object over db.
func New(db kv.Store) *State {
	s := &State{
		db:       db,
		accounts: accountBucket.NewGetter(db),
		storages: storageBucket.NewGetter(db),
	}
	s.sm = stackedmap.New(s.load)
	// the base level holds changes made outside any checkpoint
	s.sm.Push()
	return s
}

// load implements stackedmap.MapGetter.
func (s *State) load(key any) (any, bool, error) {
	switch k := key.(type) {
	case farm.Address:
		a, err := loadAccount(s.accounts, k)
		if err != nil {
			return nil, false, err
		}
		return a, true, nil
	case storageKey:
		v, err := loadStorage(s.storages, k.addr, k.key)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	}
	panic(fmt.Errorf("unexpected key type %+v", key))
}

// getAccount gets account by address. the returned account should not be modified.
func (s *State) getAccount(addr farm.Address) (*Account, error) {
	v, _, err := s.sm.Get(addr)
	if err != nil {
		return nil, err
	}
	return v.(*Account), nil
}

// GetBalance returns balance for the given address.
func (s *State) GetBalance(addr farm.Address) (*big.Int, error) {
	acc, err := s.getAccount(addr)
	if err != nil {
		return nil, &Error{err}
	}
	return new(big.Int).Set(acc.Balance), nil
}

// SetBalance set balance for the given address.
func (s *State) SetBalance(addr farm.Address, balance *big.Int) error {
	if balance.Sign() < 0 {
		return &Error{fmt.Errorf("negative balance %v", balance)}
	}
	s.sm.Put(addr, &Account{Balance: new(big.Int).Set(balance)})
	return nil
}

// GetStorage returns storage value for the given address and key.
func (s *State) GetStorage(addr farm.Address, key farm.Bytes32) (farm.Bytes32, error) {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return farm.Bytes32{}, err
	}
	if len(raw) == 0 {
		return farm.Bytes32{}, nil
	}
	kind, content, _, err := rlp.Split(raw)
	if err != nil {
		return farm.Bytes32{}, &Error{err}
	}
	if kind == rlp.List {
		// structured value, return hash of raw data
		return farm.Blake2b(raw), nil
	}
	return farm.BytesToBytes32(content), nil
}

// SetStorage set storage value for the given address and key.
func (s *State) SetStorage(addr farm.Address, key, value farm.Bytes32) {
	if value.IsZero() {
		s.SetRawStorage(addr, key, nil)
		return
	}
	v, _ := rlp.EncodeToBytes(bytes.TrimLeft(value[:], "\x00"))
	s.SetRawStorage(addr, key, v)
}

// GetRawStorage returns storage value in rlp raw for given address and key.
func (s *State) GetRawStorage(addr farm.Address, key farm.Bytes32) (rlp.RawValue, error) {
	data, _, err := s.sm.Get(storageKey{addr, key})
	if err != nil {
		return nil, &Error{err}
	}
	return data.(rlp.RawValue), nil
}

// SetRawStorage set storage value in rlp raw.
func (s *State) SetRawStorage(addr farm.Address, key farm.Bytes32, raw rlp.RawValue) {
	s.sm.Put(storageKey{addr, key}, raw)
}

// EncodeStorage set storage value encoded by given enc method.
func (s *State) EncodeStorage(addr farm.Address, key farm.Bytes32, enc func() ([]byte, error)) error {
	raw, err := enc()
	if err != nil {
		return &Error{err}
	}
	s.SetRawStorage(addr, key, raw)
	return nil
}

// DecodeStorage get and decode storage value.
func (s *State) DecodeStorage(addr farm.Address, key farm.Bytes32, dec func([]byte) error) error {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return err
	}
	if err := dec(raw); err != nil {
		return &Error{err}
	}
	return nil
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo revert to checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	if revision < 1 {
		revision = 1
	}
	s.sm.PopTo(revision)
}

// Stage collects the net changes made so far, ready to be committed.
func (s *State) Stage() *Stage {
	var (
		accounts = make(map[farm.Address]*Account)
		storages = make(map[storageKey]rlp.RawValue)
	)
	s.sm.Journal(func(k, v any) bool {
		switch key := k.(type) {
		case farm.Address:
			accounts[key] = v.(*Account)
		case storageKey:
			storages[key] = v.(rlp.RawValue)
		}
		return true
	})
	return &Stage{db: s.db, accounts: accounts, storages: storages}
}
