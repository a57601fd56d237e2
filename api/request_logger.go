// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"bytes"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/pborman/uuid"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/log"
)

// RequestIDHeader carries the id assigned to each logged request.
const RequestIDHeader = "X-Request-Id"

// RequestLoggerHandler logs every request while enabled is set. Each logged
// request is tagged with an id, echoed back in the response headers.
func RequestLoggerHandler(handler http.Handler, logger log.Logger, enabled *atomic.Bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !enabled.Load() {
			handler.ServeHTTP(w, r)
			return
		}

		// the body can only be read once, so it is buffered for the next handler
		var body []byte
		if r.Body != nil {
			var err error
			if body, err = io.ReadAll(r.Body); err != nil {
				logger.Warn("unexpected body read error", "err", err)
				http.Error(w, "bad request body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New()
		}
		w.Header().Set(RequestIDHeader, id)

		logger.Info("API Request",
			"id", id,
			"URI", r.URL.String(),
			"Method", r.Method,
			"Body", string(body),
		)
		handler.ServeHTTP(w, r)
	})
}
