// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package authority

import (
	"crypto/ecdsa"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/cache"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

// Recoverer recovers signers of messages signed for one domain.
// The domain is mixed into every signing hash, so a signature made for one
// deployment is not valid for another.
type Recoverer struct {
	domain farm.Bytes32
	cache  *cache.LRU
}

// NewRecoverer creates a recoverer keeping up to cacheSize recovered signers.
func NewRecoverer(domain farm.Bytes32, cacheSize int) (*Recoverer, error) {
	c, err := cache.NewLRU(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Recoverer{domain: domain, cache: c}, nil
}

// SigningHash xors hash with the domain.
func (r *Recoverer) SigningHash(hash farm.Bytes32) farm.Bytes32 {
	for i := range hash {
		hash[i] ^= r.domain[i]
	}
	return hash
}

// Sign signs hash for the domain.
func (r *Recoverer) Sign(hash farm.Bytes32, key *ecdsa.PrivateKey) ([]byte, error) {
	return Sign(r.SigningHash(hash), key)
}

// Recover extracts the signer of hash signed for the domain.
func (r *Recoverer) Recover(hash farm.Bytes32, sig []byte) (Signer, error) {
	v, err := r.cache.GetOrLoad(farm.Blake2b(hash[:], sig), func(any) (any, error) {
		return Recover(r.SigningHash(hash), sig)
	})
	if err != nil {
		return Signer{}, err
	}
	return v.(Signer), nil
}

// Stats returns hit/miss counters of the signer cache.
func (r *Recoverer) Stats() (bool, int64, int64) {
	return r.cache.Stats()
}
