// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/log"
)

var logger = log.WithContext("pkg", "solidity")

// ConfigVariable is a protocol tunable with a default, overridable through storage.
// A zero stored value selects the default.
type ConfigVariable struct {
	slot         farm.Bytes32
	name         string
	defaultValue uint64
}

func NewConfigVariable(name string, defaultValue uint64) *ConfigVariable {
	return &ConfigVariable{
		slot:         farm.Slot(name),
		name:         name,
		defaultValue: defaultValue,
	}
}

func (c *ConfigVariable) Name() string {
	return c.name
}

func (c *ConfigVariable) Slot() farm.Bytes32 {
	return c.slot
}

func (c *ConfigVariable) Default() uint64 {
	return c.defaultValue
}

// Get returns the effective value under ctx.
func (c *ConfigVariable) Get(ctx *Context) (uint64, error) {
	value, err := NewUint64(ctx, c.slot).Get()
	if err != nil {
		return 0, err
	}
	if value == 0 {
		return c.defaultValue, nil
	}
	return value, nil
}

// Override stores value under ctx. Zero restores the default.
func (c *ConfigVariable) Override(ctx *Context, value uint64) {
	NewUint64(ctx, c.slot).Set(value)
	logger.Info("config value overridden", "name", c.name, "value", value)
}
