// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package actions

import (
	"crypto/ecdsa"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/authority"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

// Action types.
const (
	TypeInitialize      = "initialize"
	TypeInitUser        = "init-user"
	TypeCreateFarm      = "create-farm"
	TypeUpdateFarm      = "update-farm"
	TypeAddWhitelist    = "add-whitelist"
	TypeRemoveWhitelist = "remove-whitelist"
	TypeSetStop         = "set-stop"
	TypeStake           = "stake"
	TypeUnstake         = "unstake"
	TypeClaim           = "claim"
)

// Domain separates action signatures from other signed payloads.
var Domain = farm.Blake2b([]byte("nft-farm-action"))

// Action is a signed staking operation. Fields not used by Type are ignored
// but still covered by the signature. Nonce must equal the signer's next
// nonce, which every accepted action advances.
type Action struct {
	Type          string        `json:"type"`
	RewardAsset   farm.Address  `json:"rewardAsset"`
	Asset         farm.Address  `json:"asset"`
	Candidate     farm.Address  `json:"candidate"`
	Farm          uint64        `json:"farm"`
	Durations     []uint64      `json:"durations"`
	Rates         []uint64      `json:"rates"`
	MaxStakeCount uint64        `json:"maxStakeCount"`
	Stopped       bool          `json:"stopped"`
	IsCollection  bool          `json:"isCollection"`
	Expiry        uint64        `json:"expiry"`
	Nonce         uint64        `json:"nonce"`
	Signature     hexutil.Bytes `json:"signature"`
}

// SigningHash returns the hash of the action without its signature.
func (a *Action) SigningHash() farm.Bytes32 {
	return farm.Blake2bFn(func(w io.Writer) {
		rlp.Encode(w, []any{
			a.Type,
			a.RewardAsset,
			a.Asset,
			a.Candidate,
			a.Farm,
			a.Durations,
			a.Rates,
			a.MaxStakeCount,
			a.Stopped,
			a.IsCollection,
			a.Expiry,
			a.Nonce,
		})
	})
}

// Sign signs the action with key.
func (a *Action) Sign(r *authority.Recoverer, key *ecdsa.PrivateKey) error {
	sig, err := r.Sign(a.SigningHash(), key)
	if err != nil {
		return err
	}
	a.Signature = sig
	return nil
}

// Result is the outcome of an executed action.
type Result struct {
	Type      string       `json:"type"`
	Signer    farm.Address `json:"signer"`
	At        uint64       `json:"at"`
	Reward    *string      `json:"reward,omitempty"`
	Forfeited *string      `json:"forfeited,omitempty"`
}
