// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package admin

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api/admin/apilogs"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api/admin/health"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api/admin/loglevel"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/ledger"
)

func New(logLevel *slog.LevelVar, apiLogs *atomic.Bool, l *ledger.Ledger) http.HandlerFunc {
	router := mux.NewRouter()
	sub := router.PathPrefix("/admin").Subrouter()

	loglevel.New(logLevel).Mount(sub, "/loglevel")
	apilogs.New(apiLogs).Mount(sub, "/apilogs")
	health.New(l).Mount(sub, "/health")

	handler := handlers.CompressHandler(router)

	return handler.ServeHTTP
}
