// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package actions

import "github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/metrics"

var metricSignerCache = metrics.LazyGaugeVec("api_signer_cache", []string{"event"})
