// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"crypto/ecdsa"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/authority"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

// DevAccount account for development.
type DevAccount struct {
	Address    farm.Address
	PrivateKey *ecdsa.PrivateKey
}

var devAccounts atomic.Value

// DevAccounts returns well known accounts for development mode.
// The first one is the administrator of the dev config.
func DevAccounts() []DevAccount {
	if accs := devAccounts.Load(); accs != nil {
		return accs.([]DevAccount)
	}

	var accs []DevAccount
	privKeys := []string{
		"dce1443bd2ef0c2631adc1c67e5c93f13dc23a41c18b536effbbdcbcdb96fb65",
		"321d6443bc6177273b5abf54210fe806d451d6b7973bccc2384ef78bbcd0bf51",
		"2d7c882bad2a01105e36dda3646693bc1aaaa45b0ed63fb0ce23c060294f3af2",
		"593537225b037191d322c3b1df585fb1e5100811b71a6f7fc7e29cca1333483e",
	}
	for _, str := range privKeys {
		pk, err := crypto.HexToECDSA(str)
		if err != nil {
			panic(err)
		}
		accs = append(accs, DevAccount{authority.KeyAddress(pk), pk})
	}
	devAccounts.Store(accs)
	return accs
}

// DevConfig returns the config used in development mode: one open farm
// admitting a demo collection, with one asset of it given to each dev account.
func DevConfig() *Config {
	accs := DevAccounts()
	collection := farm.BytesToAddress([]byte("dev-collection"))

	cfg := &Config{
		Admin:       accs[0].Address,
		RewardAsset: farm.BytesToAddress([]byte("dev-reward")),
		Balances:    []Balance{{Address: accs[0].Address, Amount: 1_000_000}},
		Farms: []Farm{{
			Durations:     []uint64{86400, 7 * 86400, 30 * 86400, 0},
			Rates:         []uint64{1, 2, 3, 4},
			MaxStakeCount: farm.StakeMaxCount,
		}},
		Whitelist: []Proof{{Candidate: collection, Farm: 1, Collection: true}},
	}
	for i, acc := range accs {
		cfg.Assets = append(cfg.Assets, Asset{
			ID:       farm.BytesToAddress([]byte{'d', 'e', 'v', '-', 'n', 'f', 't', byte('0' + i)}),
			Owner:    acc.Address,
			Creators: []farm.Address{collection},
		})
	}
	return cfg
}
