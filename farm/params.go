// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farm

// Constants of the staking program.
const (
	// StakeMaxCount is the default number of slots in a user stake registry.
	StakeMaxCount uint64 = 100

	// TierCount is the number of reward tiers in a farm schedule.
	TierCount = 4

	// RewardDecimals of the reward mint created at protocol initialization.
	RewardDecimals uint8 = 9

	// StakedAssetAmount is the amount moved into custody per stake. Staked assets are non-fungible.
	StakedAssetAmount uint64 = 1
)

// Seeds of program-controlled addresses.
var (
	GlobalAuthoritySeed = []byte("global-authority")
	UserPoolSeed        = []byte("user-pool")
)

// Well-known built-in program addresses.
var (
	StakingProgram  = BytesToAddress([]byte("staking"))
	TokenProgram    = BytesToAddress([]byte("token"))
	MetadataProgram = BytesToAddress([]byte("metadata"))
	NonceProgram    = BytesToAddress([]byte("nonce"))
)
