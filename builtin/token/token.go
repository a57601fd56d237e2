// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token keeps asset balances and mints in contract storage.
// Non-fungible assets are tokens of supply one.
package token

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/authority"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/solidity"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/log"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/state"
)

var (
	logger = log.WithContext("pkg", "token")

	slotMints    = farm.Slot("mints")
	slotBalances = farm.Slot("balances")
)

// Mint describes a mintable asset.
type Mint struct {
	Authority farm.Address
	Decimals  uint8
	Supply    *uint256.Int
}

func (m *Mint) IsEmpty() bool {
	return m == nil || m.Authority.IsZero()
}

type holding struct {
	asset  farm.Address
	holder farm.Address
}

func (h holding) Bytes() []byte {
	return append(h.asset.Bytes(), h.holder.Bytes()...)
}

// Token implements the token custody service.
type Token struct {
	mints    *solidity.Mapping[farm.Address, *Mint]
	balances *solidity.Mapping[holding, *uint256.Int]
}

// New create a new instance.
func New(addr farm.Address, state *state.State) *Token {
	sctx := solidity.NewContext(addr, state)
	return &Token{
		mints:    solidity.NewMapping[farm.Address, *Mint](sctx, slotMints),
		balances: solidity.NewMapping[holding, *uint256.Int](sctx, slotBalances),
	}
}

// GetMint returns the mint of asset, nil if asset is not mintable.
func (t *Token) GetMint(asset farm.Address) (*Mint, error) {
	m, err := t.mints.Get(asset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get mint")
	}
	if m.IsEmpty() {
		return nil, nil
	}
	if m.Supply == nil {
		m.Supply = new(uint256.Int)
	}
	return m, nil
}

// CreateMint registers asset as mintable by mintAuthority.
func (t *Token) CreateMint(asset, mintAuthority farm.Address, decimals uint8) error {
	if asset.IsZero() || mintAuthority.IsZero() {
		return reverts.ErrInvalidInput
	}
	existing, err := t.GetMint(asset)
	if err != nil {
		return err
	}
	if existing != nil {
		return reverts.ErrAlreadyInitialized
	}
	if err := t.mints.Set(asset, &Mint{Authority: mintAuthority, Decimals: decimals, Supply: new(uint256.Int)}); err != nil {
		return errors.Wrap(err, "failed to set mint")
	}
	logger.Info("mint created", "asset", asset, "authority", mintAuthority, "decimals", decimals)
	return nil
}

// BalanceOf returns the balance of holder in asset.
func (t *Token) BalanceOf(asset, holder farm.Address) (*uint256.Int, error) {
	b, err := t.balances.Get(holding{asset, holder})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get balance")
	}
	return b, nil
}

func (t *Token) setBalance(asset, holder farm.Address, amount *uint256.Int) error {
	if err := t.balances.Set(holding{asset, holder}, amount); err != nil {
		return errors.Wrap(err, "failed to set balance")
	}
	return nil
}

// Credit adds amount to holder without any authorization. Used to seed
// initial holdings.
func (t *Token) Credit(asset, holder farm.Address, amount *uint256.Int) error {
	bal, err := t.BalanceOf(asset, holder)
	if err != nil {
		return err
	}
	sum, overflow := new(uint256.Int).AddOverflow(bal, amount)
	if overflow {
		return reverts.ErrInvalidInput
	}
	return t.setBalance(asset, holder, sum)
}

// Transfer moves amount of asset from one holder to another.
// auth must control from.
func (t *Token) Transfer(asset, from, to farm.Address, amount *uint256.Int, auth authority.Principal) error {
	if auth == nil || auth.Address() != from {
		return reverts.ErrInvalidAuthority
	}
	fromBal, err := t.BalanceOf(asset, from)
	if err != nil {
		return err
	}
	if fromBal.Lt(amount) {
		return reverts.ErrInsufficientBalance
	}
	if from == to {
		return nil
	}
	toBal, err := t.BalanceOf(asset, to)
	if err != nil {
		return err
	}
	sum, overflow := new(uint256.Int).AddOverflow(toBal, amount)
	if overflow {
		return reverts.ErrInvalidInput
	}
	if err := t.setBalance(asset, from, new(uint256.Int).Sub(fromBal, amount)); err != nil {
		return err
	}
	if err := t.setBalance(asset, to, sum); err != nil {
		return err
	}
	logger.Trace("transferred", "asset", asset, "from", from, "to", to, "amount", amount)
	return nil
}

// Mint creates amount of asset for to. auth must be the mint authority.
func (t *Token) Mint(asset, to farm.Address, amount *uint256.Int, auth *authority.Authority) error {
	m, err := t.GetMint(asset)
	if err != nil {
		return err
	}
	if m == nil {
		return reverts.ErrInvalidMint
	}
	if auth == nil || auth.Address() != m.Authority {
		return reverts.ErrInvalidAuthority
	}
	supply, overflow := new(uint256.Int).AddOverflow(m.Supply, amount)
	if overflow {
		return reverts.ErrInvalidInput
	}
	if err := t.Credit(asset, to, amount); err != nil {
		return err
	}
	m.Supply = supply
	if err := t.mints.Set(asset, m); err != nil {
		return errors.Wrap(err, "failed to set mint")
	}
	logger.Trace("minted", "asset", asset, "to", to, "amount", amount)
	return nil
}

// Close reclaims the empty account of holder in asset.
func (t *Token) Close(asset, holder farm.Address, auth authority.Principal) error {
	if auth == nil || auth.Address() != holder {
		return reverts.ErrInvalidAuthority
	}
	bal, err := t.BalanceOf(asset, holder)
	if err != nil {
		return err
	}
	if !bal.IsZero() {
		return reverts.ErrAccountNotEmpty
	}
	t.balances.Delete(holding{asset, holder})
	return nil
}

// Amount is a helper building an amount from a uint64.
func Amount(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}
