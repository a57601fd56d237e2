// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api/actions"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api/query"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api/tiers"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/authority"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/ledger"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/log"
)

var logger = log.WithContext("pkg", "api")

type Options struct {
	AllowedOrigins  string
	EnableReqLogger *atomic.Bool
	EnableMetrics   bool
}

// New return api router
func New(l *ledger.Ledger, recoverer *authority.Recoverer, opts Options) http.HandlerFunc {
	origins := strings.Split(strings.TrimSpace(opts.AllowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	router := mux.NewRouter()

	tiers.New().
		Mount(router, "/tiers")
	actions.New(l, recoverer).
		Mount(router, "/actions")
	query.New(l).
		Mount(router, "")

	if opts.EnableMetrics {
		router.Use(metricsMiddleware)
	}

	handler := handlers.CompressHandler(router)
	handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"content-type", strings.ToLower(RequestIDHeader)}),
		handlers.ExposedHeaders([]string{strings.ToLower(RequestIDHeader)}),
	)(handler)

	if opts.EnableReqLogger != nil {
		handler = RequestLoggerHandler(handler, logger, opts.EnableReqLogger)
	}

	return handler.ServeHTTP
}
