// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package query

import (
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking/farms"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking/globalstats"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking/registry"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking/whitelist"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

type Global struct {
	Admin       farm.Address `json:"admin"`
	RewardAsset farm.Address `json:"rewardAsset"`
	Custody     farm.Address `json:"custody"`
	TotalStaked uint64       `json:"totalStaked"`
	FarmCount   uint64       `json:"farmCount"`
}

func convertGlobal(g *globalstats.Global, custody farm.Address) *Global {
	return &Global{
		Admin:       g.Admin,
		RewardAsset: g.RewardAsset,
		Custody:     custody,
		TotalStaked: g.TotalStaked,
		FarmCount:   g.FarmCount,
	}
}

type Farm struct {
	Number        uint64                 `json:"number"`
	StakedCount   uint64                 `json:"stakedCount"`
	MaxStakeCount uint64                 `json:"maxStakeCount"`
	Durations     [farm.TierCount]uint64 `json:"durations"`
	Rates         [farm.TierCount]uint64 `json:"rates"`
	Stopped       bool                   `json:"stopped"`
}

func convertFarm(f *farms.Farm) *Farm {
	return &Farm{
		Number:        f.Number,
		StakedCount:   f.StakedCount,
		MaxStakeCount: f.MaxStakeCount,
		Durations:     f.Schedule.Durations,
		Rates:         f.Schedule.Rates,
		Stopped:       f.Stopped,
	}
}

type Record struct {
	Asset     farm.Address `json:"asset"`
	Farm      uint64       `json:"farm"`
	StakedAt  uint64       `json:"stakedAt"`
	ClaimedAt uint64       `json:"claimedAt"`
}

type User struct {
	Owner    farm.Address `json:"owner"`
	Account  farm.Address `json:"account"`
	Capacity uint64       `json:"capacity"`
	Count    uint64       `json:"count"`
	Records  []Record     `json:"records"`
}

func convertUser(r *registry.Registry, account farm.Address) *User {
	live := r.Live()
	records := make([]Record, 0, len(live))
	for _, rec := range live {
		records = append(records, Record{
			Asset:     rec.Asset,
			Farm:      rec.Farm,
			StakedAt:  rec.StakedAt,
			ClaimedAt: rec.ClaimedAt,
		})
	}
	return &User{
		Owner:    r.Owner,
		Account:  account,
		Capacity: r.Capacity(),
		Count:    r.Count,
		Records:  records,
	}
}

type Reward struct {
	Owner  farm.Address `json:"owner"`
	Asset  farm.Address `json:"asset"`
	At     uint64       `json:"at"`
	Amount string       `json:"amount"`
}

type Proof struct {
	Candidate    farm.Address `json:"candidate"`
	Farm         uint64       `json:"farm"`
	IsCollection bool         `json:"isCollection"`
	Deposit      string       `json:"deposit"`
}

func convertProof(p *whitelist.Proof) *Proof {
	deposit := "0"
	if p.Deposit != nil {
		deposit = p.Deposit.String()
	}
	return &Proof{
		Candidate:    p.Candidate,
		Farm:         p.Farm,
		IsCollection: p.IsCollection,
		Deposit:      deposit,
	}
}

// Nonce is the nonce the next action of a signer must carry.
type Nonce struct {
	Nonce uint64 `json:"nonce"`
}
