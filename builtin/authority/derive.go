// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package authority

import (
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

var derivedMarker = []byte("ProgramDerivedAddress")

// Derive returns the address program controls for seeds. No private key
// exists for it; the program proves control by re-deriving it.
func Derive(program farm.Address, seeds ...[]byte) farm.Address {
	data := make([][]byte, 0, len(seeds)+2)
	data = append(data, seeds...)
	data = append(data, program.Bytes(), derivedMarker)
	h := farm.Blake2b(data...)
	return farm.BytesToAddress(h[12:])
}

// Authority is the capability of program over a derived address.
type Authority struct {
	program farm.Address
	address farm.Address
}

// Obtain re-derives the address of program for seeds and returns the
// capability over it if it equals claimed.
func Obtain(program, claimed farm.Address, seeds ...[]byte) (*Authority, error) {
	if Derive(program, seeds...) != claimed {
		return nil, reverts.ErrInvalidAuthority
	}
	return &Authority{program: program, address: claimed}, nil
}

// Address returns the controlled address.
func (a *Authority) Address() farm.Address {
	return a.address
}

// Program returns the controlling program.
func (a *Authority) Program() farm.Address {
	return a.program
}
