// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package httpserver

import (
	"net/http"
	"time"
)

const maxRequestBody = 200 * 1024

// StartAPIServer serves the farm API. Requests taking longer than timeout
// are answered with 503, a zero timeout disables the limit.
func StartAPIServer(addr string, handler http.Handler, timeout time.Duration) (string, func(), error) {
	handler = requestBodyLimit(handler)
	if timeout > 0 {
		handler = http.TimeoutHandler(handler, timeout, "request timeout")
	}

	listenAddr, closeFn, err := serve("API", addr, handler)
	if err != nil {
		return "", nil, err
	}
	return "http://" + listenAddr.String() + "/", closeFn, nil
}

func requestBodyLimit(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		h.ServeHTTP(w, r)
	})
}
