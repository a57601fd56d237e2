// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis sets up the initial protocol state.
package genesis

import (
	"errors"
	"math/big"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/authority"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/token"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/ledger"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/log"
)

var logger = log.WithContext("pkg", "genesis")

// NewBuilder returns the builder applying cfg.
func NewBuilder(cfg *Config) *Builder {
	admin := authority.NewSigner(cfg.Admin)

	return new(Builder).
		State(func(tx *ledger.Tx) error {
			for _, b := range cfg.Balances {
				bal, err := tx.State.GetBalance(b.Address)
				if err != nil {
					return err
				}
				if err := tx.State.SetBalance(b.Address, bal.Add(bal, new(big.Int).SetUint64(b.Amount))); err != nil {
					return err
				}
			}
			if cfg.RegistryCapacity > 0 {
				tx.Staking.OverrideConfig(staking.RegistryCapacity, cfg.RegistryCapacity)
			}
			if cfg.WhitelistDeposit > 0 {
				tx.Staking.OverrideConfig(staking.WhitelistDeposit, cfg.WhitelistDeposit)
			}
			return tx.Staking.Initialize(admin, cfg.RewardAsset)
		}).
		State(func(tx *ledger.Tx) error {
			for _, a := range cfg.Assets {
				if err := tx.Metadata.SetCreators(a.ID, a.Creators); err != nil {
					return err
				}
				if err := tx.Tokens.Credit(a.ID, a.Owner, token.Amount(1)); err != nil {
					return err
				}
			}
			return nil
		}).
		State(func(tx *ledger.Tx) error {
			for i, f := range cfg.Farms {
				n := uint64(i + 1)
				if err := tx.Staking.CreateFarm(admin, n, f.Durations, f.Rates, f.MaxStakeCount); err != nil {
					return err
				}
				if f.Stopped {
					if err := tx.Staking.SetStopped(admin, n, true); err != nil {
						return err
					}
				}
			}
			for _, p := range cfg.Whitelist {
				if err := tx.Staking.AddWhitelist(admin, p.Candidate, p.Farm, p.Collection); err != nil {
					return err
				}
			}
			return nil
		})
}

// Apply sets up cfg on l unless the protocol is already initialized.
// It reports whether anything was applied.
func Apply(l *ledger.Ledger, cfg *Config) (bool, error) {
	err := l.View(func(tx *ledger.Tx) error {
		_, err := tx.Staking.GlobalInfo()
		return err
	})
	switch {
	case err == nil:
		logger.Debug("genesis already applied")
		return false, nil
	case !errors.Is(err, reverts.ErrInvalidGlobalPool):
		return false, err
	}

	if err := NewBuilder(cfg).Build(l); err != nil {
		return false, err
	}
	logger.Info("genesis applied",
		"admin", cfg.Admin,
		"reward", cfg.RewardAsset,
		"farms", len(cfg.Farms),
		"assets", len(cfg.Assets),
		"whitelist", len(cfg.Whitelist),
	)
	return true, nil
}
