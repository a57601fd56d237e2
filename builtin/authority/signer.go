// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package authority

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

// Principal is an identity allowed to move funds of its own address.
type Principal interface {
	Address() farm.Address
}

// Signer is an authenticated external identity.
// The zero Signer is unauthenticated.
type Signer struct {
	addr farm.Address
}

// NewSigner trusts addr as authenticated. It is meant for in-process callers
// that authenticated the identity by other means.
func NewSigner(addr farm.Address) Signer {
	return Signer{addr}
}

func (s Signer) Address() farm.Address {
	return s.addr
}

func (s Signer) IsZero() bool {
	return s.addr.IsZero()
}

func (s Signer) String() string {
	return s.addr.String()
}

// Sign signs hash with key.
func Sign(hash farm.Bytes32, key *ecdsa.PrivateKey) ([]byte, error) {
	return crypto.Sign(hash[:], key)
}

// Recover extracts the signer of hash from a 65 bytes [R || S || V] signature.
func Recover(hash farm.Bytes32, sig []byte) (Signer, error) {
	pub, err := crypto.SigToPub(hash[:], sig)
	if err != nil {
		return Signer{}, err
	}
	return Signer{farm.Address(crypto.PubkeyToAddress(*pub))}, nil
}

// KeyAddress returns the address controlled by key.
func KeyAddress(key *ecdsa.PrivateKey) farm.Address {
	return farm.Address(crypto.PubkeyToAddress(key.PublicKey))
}
