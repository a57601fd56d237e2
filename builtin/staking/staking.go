// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/authority"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/solidity"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking/farms"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking/globalstats"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking/registry"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking/tiers"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking/whitelist"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/log"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/state"
)

var (
	logger = log.WithContext("pkg", "staking")

	RegistryCapacity = solidity.NewConfigVariable("registry-capacity", farm.StakeMaxCount)
	WhitelistDeposit = solidity.NewConfigVariable("whitelist-deposit", 1_000)
)

// Tokens is the token custody service.
type Tokens interface {
	CreateMint(asset, mintAuthority farm.Address, decimals uint8) error
	BalanceOf(asset, holder farm.Address) (*uint256.Int, error)
	Transfer(asset, from, to farm.Address, amount *uint256.Int, auth authority.Principal) error
	Mint(asset, to farm.Address, amount *uint256.Int, auth *authority.Authority) error
	Close(asset, holder farm.Address, auth authority.Principal) error
}

// Metadata resolves the declared collection of assets.
type Metadata interface {
	Collection(asset farm.Address) (collection farm.Address, ok bool, err error)
}

// Staking implements the staking program.
type Staking struct {
	program  farm.Address
	sctx     *solidity.Context
	state    *state.State
	tokens   Tokens
	metadata Metadata

	globalService    *globalstats.Service
	farmService      *farms.Service
	registryService  *registry.Service
	whitelistService *whitelist.Service
}

// New create a new instance.
func New(program farm.Address, state *state.State, tokens Tokens, metadata Metadata) *Staking {
	sctx := solidity.NewContext(program, state)
	return &Staking{
		program:  program,
		sctx:     sctx,
		state:    state,
		tokens:   tokens,
		metadata: metadata,

		globalService:    globalstats.New(sctx),
		farmService:      farms.New(sctx),
		registryService:  registry.NewService(sctx),
		whitelistService: whitelist.New(sctx),
	}
}

// Custody returns the program controlled address holding staked assets and
// minting rewards.
func (s *Staking) Custody() farm.Address {
	return authority.Derive(s.program, farm.GlobalAuthoritySeed)
}

// UserAccount returns the address of owner's registry.
func (s *Staking) UserAccount(owner farm.Address) farm.Address {
	return authority.Derive(s.program, farm.UserPoolSeed, owner.Bytes())
}

func (s *Staking) custodyAuthority() (*authority.Authority, error) {
	return authority.Obtain(s.program, s.Custody(), farm.GlobalAuthoritySeed)
}

// Config returns the effective value of a protocol tunable.
func (s *Staking) Config(cfg *solidity.ConfigVariable) (uint64, error) {
	return cfg.Get(s.sctx)
}

// OverrideConfig sets a protocol tunable.
func (s *Staking) OverrideConfig(cfg *solidity.ConfigVariable, value uint64) {
	cfg.Override(s.sctx, value)
}

// atomic runs fn and reverts every state change it made if it fails.
func (s *Staking) atomic(fn func() error) error {
	checkpoint := s.state.NewCheckpoint()
	if err := fn(); err != nil {
		s.state.RevertTo(checkpoint)
		return err
	}
	return nil
}

func authenticated(caller authority.Signer) error {
	if caller.IsZero() {
		return reverts.ErrMissingSigner
	}
	return nil
}

func (s *Staking) requireAdmin(caller authority.Signer) error {
	if err := authenticated(caller); err != nil {
		return err
	}
	_, err := s.globalService.RequireAdmin(caller.Address())
	return err
}

//
// Getters - no state change
//

// GlobalInfo returns the global registry.
func (s *Staking) GlobalInfo() (*globalstats.Global, error) {
	return s.globalService.Get()
}

// FarmInfo returns farm n.
func (s *Staking) FarmInfo(n uint64) (*farms.Farm, error) {
	return s.farmService.GetExisting(n)
}

// UserInfo returns the registry of owner.
func (s *Staking) UserInfo(owner farm.Address) (*registry.Registry, error) {
	return s.registryService.GetExisting(owner)
}

// AllStaked returns every user registry.
func (s *Staking) AllStaked() ([]*registry.Registry, error) {
	owners, err := s.registryService.Owners()
	if err != nil {
		return nil, err
	}
	regs := make([]*registry.Registry, 0, len(owners))
	for _, owner := range owners {
		r, err := s.registryService.GetExisting(owner)
		if err != nil {
			return nil, err
		}
		regs = append(regs, r)
	}
	return regs, nil
}

// PendingReward returns the reward owner could claim for asset at now.
func (s *Staking) PendingReward(owner, asset farm.Address, now uint64) (*uint256.Int, error) {
	r, err := s.registryService.GetExisting(owner)
	if err != nil {
		return nil, err
	}
	i, ok := r.Find(asset)
	if !ok {
		return nil, reverts.ErrInvalidNFTAddress
	}
	n := r.Records[i].Farm
	f, err := s.farmService.GetExisting(n)
	if err != nil {
		return nil, err
	}
	return r.Pending(asset, n, f.Schedule, now)
}

// Whitelisted returns the proof of candidate under farm n, nil if absent.
func (s *Staking) Whitelisted(candidate farm.Address, n uint64) (*whitelist.Proof, error) {
	return s.whitelistService.Get(candidate, n)
}

//
// Setters - state change
//

// Initialize creates the global registry with caller as administrator and
// the reward mint controlled by the program.
func (s *Staking) Initialize(caller authority.Signer, rewardAsset farm.Address) error {
	if err := authenticated(caller); err != nil {
		return err
	}
	if rewardAsset.IsZero() {
		return reverts.ErrInvalidInput
	}
	err := s.atomic(func() error {
		if err := s.globalService.Initialize(caller.Address(), rewardAsset); err != nil {
			return err
		}
		return s.tokens.CreateMint(rewardAsset, s.Custody(), farm.RewardDecimals)
	})
	if err != nil {
		logger.Info("initialize failed", "admin", caller, "error", err)
		return err
	}
	logger.Info("initialized", "admin", caller, "reward", rewardAsset, "custody", s.Custody())
	return nil
}

// InitUser creates the stake registry of caller.
func (s *Staking) InitUser(caller authority.Signer) error {
	if err := authenticated(caller); err != nil {
		return err
	}
	capacity, err := s.Config(RegistryCapacity)
	if err != nil {
		return err
	}
	if _, err := s.registryService.Create(caller.Address(), capacity); err != nil {
		logger.Debug("init user failed", "owner", caller, "error", err)
		return err
	}
	logger.Debug("user registry created", "owner", caller, "account", s.UserAccount(caller.Address()), "capacity", capacity)
	return nil
}

// CreateFarm creates farm n, which must be the next farm number.
func (s *Staking) CreateFarm(caller authority.Signer, n uint64, durations, rates []uint64, maxStakeCount uint64) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	schedule, err := tiers.NewSchedule(durations, rates)
	if err != nil {
		return err
	}
	err = s.atomic(func() error {
		if err := s.globalService.NextFarm(n); err != nil {
			return err
		}
		_, err := s.farmService.Create(n, schedule, maxStakeCount)
		return err
	})
	if err != nil {
		logger.Info("create farm failed", "farm", n, "error", err)
		return err
	}
	logger.Info("farm created", "farm", n, "durations", durations, "rates", rates, "max", maxStakeCount)
	return nil
}

// UpdateFarm replaces the schedule and the per user cap of farm n.
func (s *Staking) UpdateFarm(caller authority.Signer, n uint64, durations, rates []uint64, maxStakeCount uint64) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	schedule, err := tiers.NewSchedule(durations, rates)
	if err != nil {
		return err
	}
	if _, err := s.farmService.Update(n, schedule, maxStakeCount); err != nil {
		logger.Info("update farm failed", "farm", n, "error", err)
		return err
	}
	logger.Info("farm updated", "farm", n, "durations", durations, "rates", rates, "max", maxStakeCount)
	return nil
}

// SetStopped stops or resumes staking and claiming in farm n.
// Unstaking is never blocked.
func (s *Staking) SetStopped(caller authority.Signer, n uint64, stopped bool) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if err := s.farmService.SetStopped(n, stopped); err != nil {
		return err
	}
	logger.Info("farm stop flag set", "farm", n, "stopped", stopped)
	return nil
}

// AddWhitelist admits candidate into farm n. The administrator pays the
// storage deposit of the proof.
func (s *Staking) AddWhitelist(caller authority.Signer, candidate farm.Address, n uint64, isCollection bool) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if candidate.IsZero() {
		return reverts.ErrInvalidInput
	}
	if _, err := s.farmService.GetExisting(n); err != nil {
		return err
	}
	exists, err := s.whitelistService.Exists(candidate, n)
	if err != nil {
		return err
	}
	if exists {
		return reverts.ErrWhitelistExists
	}
	amount, err := s.Config(WhitelistDeposit)
	if err != nil {
		return err
	}
	deposit := new(big.Int).SetUint64(amount)
	balance, err := s.state.GetBalance(caller.Address())
	if err != nil {
		return err
	}
	if balance.Cmp(deposit) < 0 {
		return reverts.ErrInsufficientBalance
	}

	err = s.atomic(func() error {
		if err := s.state.SetBalance(caller.Address(), balance.Sub(balance, deposit)); err != nil {
			return err
		}
		return s.whitelistService.Add(&whitelist.Proof{
			Candidate:    candidate,
			Farm:         n,
			IsCollection: isCollection,
			Deposit:      deposit,
		})
	})
	if err != nil {
		return err
	}
	logger.Info("whitelist added", "candidate", candidate, "farm", n, "collection", isCollection, "deposit", deposit)
	return nil
}

// RemoveWhitelist revokes the proof of candidate in farm n and refunds its
// deposit to the administrator.
func (s *Staking) RemoveWhitelist(caller authority.Signer, candidate farm.Address, n uint64) error {
	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	err := s.atomic(func() error {
		proof, err := s.whitelistService.Remove(candidate, n)
		if err != nil {
			return err
		}
		if proof.Deposit == nil || proof.Deposit.Sign() == 0 {
			return nil
		}
		balance, err := s.state.GetBalance(caller.Address())
		if err != nil {
			return err
		}
		return s.state.SetBalance(caller.Address(), balance.Add(balance, proof.Deposit))
	})
	if err != nil {
		logger.Info("remove whitelist failed", "candidate", candidate, "farm", n, "error", err)
		return err
	}
	logger.Info("whitelist removed", "candidate", candidate, "farm", n)
	return nil
}

// Stake locks asset of caller into farm n at now.
func (s *Staking) Stake(caller authority.Signer, asset farm.Address, n uint64, now uint64) error {
	if err := authenticated(caller); err != nil {
		return err
	}
	owner := caller.Address()

	if _, err := s.globalService.Get(); err != nil {
		return err
	}
	r, err := s.registryService.GetExisting(owner)
	if err != nil {
		return err
	}
	f, err := s.farmService.GetExisting(n)
	if err != nil {
		return err
	}
	if f.Stopped {
		return reverts.ErrPoolStopped
	}
	if r.CountInFarm(n) >= f.MaxStakeCount {
		return reverts.ErrExceedMaxCount
	}
	// a record per asset, whichever farm holds it
	if _, ok := r.Find(asset); ok {
		return reverts.ErrAlreadyStaked
	}
	balance, err := s.tokens.BalanceOf(asset, owner)
	if err != nil {
		return err
	}
	if balance.Lt(uint256.NewInt(farm.StakedAssetAmount)) {
		return reverts.ErrInvalidNFTOwner
	}
	if err := s.whitelistService.Admit(asset, n, s.metadata); err != nil {
		return err
	}
	if err := r.Add(asset, n, now); err != nil {
		return err
	}

	err = s.atomic(func() error {
		if err := s.registryService.Save(r); err != nil {
			return err
		}
		if err := s.globalService.AddStaked(); err != nil {
			return err
		}
		if err := s.farmService.AddStaked(n); err != nil {
			return err
		}
		return s.tokens.Transfer(asset, owner, s.Custody(), uint256.NewInt(farm.StakedAssetAmount), caller)
	})
	if err != nil {
		return err
	}
	logger.Debug("staked", "owner", owner, "asset", asset, "farm", n, "at", now)
	return nil
}

// Unstake returns asset to caller and drops its record. The unclaimed reward
// is not paid; it is returned so callers can report it.
func (s *Staking) Unstake(caller authority.Signer, asset farm.Address, n uint64, now uint64) (*uint256.Int, error) {
	if err := authenticated(caller); err != nil {
		return nil, err
	}
	owner := caller.Address()

	if _, err := s.globalService.Get(); err != nil {
		return nil, err
	}
	r, err := s.registryService.GetExisting(owner)
	if err != nil {
		return nil, err
	}
	f, err := s.farmService.GetExisting(n)
	if err != nil {
		return nil, err
	}
	auth, err := s.custodyAuthority()
	if err != nil {
		return nil, err
	}
	held, err := s.tokens.BalanceOf(asset, auth.Address())
	if err != nil {
		return nil, err
	}
	if held.Lt(uint256.NewInt(farm.StakedAssetAmount)) {
		return nil, reverts.ErrInvalidNFTAddress
	}
	forfeited, err := r.Remove(asset, n, f.Schedule, now)
	if err != nil {
		return nil, err
	}

	err = s.atomic(func() error {
		if err := s.registryService.Save(r); err != nil {
			return err
		}
		if err := s.globalService.RemoveStaked(); err != nil {
			return err
		}
		if err := s.farmService.RemoveStaked(n); err != nil {
			return err
		}
		if err := s.tokens.Transfer(asset, auth.Address(), owner, uint256.NewInt(farm.StakedAssetAmount), auth); err != nil {
			return err
		}
		// the custody account is empty now
		if held.Eq(uint256.NewInt(farm.StakedAssetAmount)) {
			return s.tokens.Close(asset, auth.Address(), auth)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !forfeited.IsZero() {
		logger.Warn("unstaked with unclaimed reward", "owner", owner, "asset", asset, "farm", n, "forfeited", forfeited)
	}
	logger.Debug("unstaked", "owner", owner, "asset", asset, "farm", n, "at", now)
	return forfeited, nil
}

// Claim mints the reward accrued by asset since its last claim to caller.
func (s *Staking) Claim(caller authority.Signer, asset farm.Address, n uint64, now uint64) (*uint256.Int, error) {
	if err := authenticated(caller); err != nil {
		return nil, err
	}
	owner := caller.Address()

	g, err := s.globalService.Get()
	if err != nil {
		return nil, err
	}
	r, err := s.registryService.GetExisting(owner)
	if err != nil {
		return nil, err
	}
	f, err := s.farmService.GetExisting(n)
	if err != nil {
		return nil, err
	}
	if f.Stopped {
		return nil, reverts.ErrPoolStopped
	}
	auth, err := s.custodyAuthority()
	if err != nil {
		return nil, err
	}
	reward, err := r.Claim(asset, n, f.Schedule, now)
	if err != nil {
		return nil, err
	}

	err = s.atomic(func() error {
		if err := s.registryService.Save(r); err != nil {
			return err
		}
		if reward.IsZero() {
			return nil
		}
		return s.tokens.Mint(g.RewardAsset, owner, reward, auth)
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("claimed", "owner", owner, "asset", asset, "farm", n, "reward", reward, "at", now)
	return reward, nil
}
