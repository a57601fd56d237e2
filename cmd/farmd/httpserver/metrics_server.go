// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package httpserver

import (
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/metrics"
)

// StartMetricsServer serves the prometheus metrics.
// InitializePrometheusMetrics must be called first.
func StartMetricsServer(addr string) (string, func(), error) {
	if !metrics.Enabled() {
		return "", nil, errors.New("metrics not initialized")
	}

	router := mux.NewRouter()
	router.PathPrefix("/metrics").Handler(metrics.HTTPHandler())
	handler := handlers.CompressHandler(router)

	listenAddr, closeFn, err := serve("metrics API", addr, handler)
	if err != nil {
		return "", nil, err
	}
	return "http://" + listenAddr.String() + "/metrics", closeFn, nil
}
