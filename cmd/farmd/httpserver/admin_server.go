// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package httpserver

import (
	"log/slog"
	"sync/atomic"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api/admin"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/ledger"
)

func StartAdminServer(
	addr string,
	logLevel *slog.LevelVar,
	apiLogs *atomic.Bool,
	l *ledger.Ledger,
) (string, func(), error) {
	listenAddr, closeFn, err := serve("admin API", addr, admin.New(logLevel, apiLogs, l))
	if err != nil {
		return "", nil, err
	}
	return "http://" + listenAddr.String() + "/admin", closeFn, nil
}
