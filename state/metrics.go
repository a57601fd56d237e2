// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import "github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/metrics"

var metricStateWrites = metrics.LazyCounterVec("state_write_count", []string{"type"})
