// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb

import "github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/metrics"

var (
	metricBatchWrites = metrics.LazyCounterVec("lvldb_batch_write_count", []string{"result"})
	metricBatchOps    = metrics.LazyHistogram("lvldb_batch_ops", metrics.BatchSizeBuckets)
)
