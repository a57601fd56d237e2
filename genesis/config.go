// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
)

// Config is the initial protocol setup.
type Config struct {
	Admin            farm.Address `yaml:"admin"`
	RewardAsset      farm.Address `yaml:"reward_asset"`
	RegistryCapacity uint64       `yaml:"registry_capacity,omitempty"`
	WhitelistDeposit uint64       `yaml:"whitelist_deposit,omitempty"`

	Balances  []Balance `yaml:"balances,omitempty"`
	Assets    []Asset   `yaml:"assets,omitempty"`
	Farms     []Farm    `yaml:"farms,omitempty"`
	Whitelist []Proof   `yaml:"whitelist,omitempty"`
}

// Balance is a native balance allocation.
type Balance struct {
	Address farm.Address `yaml:"address"`
	Amount  uint64       `yaml:"amount"`
}

// Asset is a non-fungible asset held by Owner.
type Asset struct {
	ID       farm.Address   `yaml:"id"`
	Owner    farm.Address   `yaml:"owner"`
	Creators []farm.Address `yaml:"creators,omitempty"`
}

// Farm is created with the next farm number, in order.
type Farm struct {
	Durations     []uint64 `yaml:"durations"`
	Rates         []uint64 `yaml:"rates"`
	MaxStakeCount uint64   `yaml:"max_stake_count"`
	Stopped       bool     `yaml:"stopped,omitempty"`
}

// Proof admits Candidate into farm number Farm.
type Proof struct {
	Candidate  farm.Address `yaml:"candidate"`
	Farm       uint64       `yaml:"farm"`
	Collection bool         `yaml:"collection,omitempty"`
}

// Load reads the config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read genesis file")
	}
	return Parse(data)
}

// Parse decodes and validates a YAML config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode genesis")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config for mistakes that would fail while applying it.
func (c *Config) Validate() error {
	if c.Admin.IsZero() {
		return errors.New("admin must be set")
	}
	if c.RewardAsset.IsZero() {
		return errors.New("reward_asset must be set")
	}
	for i, f := range c.Farms {
		if len(f.Durations) != farm.TierCount || len(f.Rates) != farm.TierCount {
			return fmt.Errorf("farms[%d]: want %d durations and rates", i, farm.TierCount)
		}
	}
	seen := make(map[farm.Address]bool, len(c.Assets))
	for i, a := range c.Assets {
		if a.ID.IsZero() || a.Owner.IsZero() {
			return fmt.Errorf("assets[%d]: id and owner must be set", i)
		}
		if seen[a.ID] {
			return fmt.Errorf("assets[%d]: duplicated id %v", i, a.ID)
		}
		seen[a.ID] = true
	}
	for i, p := range c.Whitelist {
		if p.Farm == 0 || p.Farm > uint64(len(c.Farms)) {
			return fmt.Errorf("whitelist[%d]: unknown farm %d", i, p.Farm)
		}
	}
	return nil
}

// Encode returns the YAML form of the config.
func (c *Config) Encode() ([]byte, error) {
	return yaml.Marshal(c)
}
