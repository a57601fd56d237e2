// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"encoding/binary"
	"errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

var (
	ErrUint64Overflow  = errors.New("uint64 overflow")
	ErrUint64Underflow = errors.New("uint64 underflow")
)

// Uint64 is a counter stored in a single slot.
type Uint64 struct {
	context *Context
	pos     farm.Bytes32
}

func NewUint64(context *Context, pos farm.Bytes32) *Uint64 {
	return &Uint64{context: context, pos: pos}
}

func (u *Uint64) Get() (uint64, error) {
	storage, err := u.context.state.GetStorage(u.context.address, u.pos)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(storage[24:]), nil
}

func (u *Uint64) Set(value uint64) {
	var storage farm.Bytes32
	binary.BigEndian.PutUint64(storage[24:], value)
	u.context.state.SetStorage(u.context.address, u.pos, storage)
}

// Add adds delta and returns the new value.
func (u *Uint64) Add(delta uint64) (uint64, error) {
	value, err := u.Get()
	if err != nil {
		return 0, err
	}
	if value+delta < value {
		return 0, ErrUint64Overflow
	}
	u.Set(value + delta)
	return value + delta, nil
}

// Sub subtracts delta and returns the new value.
func (u *Uint64) Sub(delta uint64) (uint64, error) {
	value, err := u.Get()
	if err != nil {
		return 0, err
	}
	if delta > value {
		return 0, ErrUint64Underflow
	}
	u.Set(value - delta)
	return value - delta, nil
}
