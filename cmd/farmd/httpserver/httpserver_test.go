// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package httpserver

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/ledger"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/lvldb"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/metrics"
)

func get(t *testing.T, url string) (string, int) {
	res, err := http.Get(url) //#nosec G107
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(body), res.StatusCode
}

func TestStartAPIServer(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow" {
			time.Sleep(200 * time.Millisecond)
		}
		w.Write([]byte("ok"))
	})

	url, closeFn, err := StartAPIServer("127.0.0.1:0", handler, 50*time.Millisecond)
	require.NoError(t, err)
	defer closeFn()
	assert.True(t, strings.HasPrefix(url, "http://127.0.0.1:"))

	body, code := get(t, url+"ok")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)

	_, code = get(t, url+"slow")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestRequestBodyLimit(t *testing.T) {
	handler := requestBodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
		}
	}))

	tests := []struct {
		size int
		code int
	}{
		{0, http.StatusOK},
		{maxRequestBody, http.StatusOK},
		{maxRequestBody + 1, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/actions", strings.NewReader(strings.Repeat("x", tt.size)))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, tt.code, rec.Code, "size %d", tt.size)
	}
}

func TestStartAPIServerAddrInUse(t *testing.T) {
	url, closeFn, err := StartAPIServer("127.0.0.1:0", http.NotFoundHandler(), 0)
	require.NoError(t, err)
	defer closeFn()

	addr := strings.TrimSuffix(strings.TrimPrefix(url, "http://"), "/")
	_, _, err = StartAPIServer(addr, http.NotFoundHandler(), 0)
	assert.ErrorContains(t, err, "listen API addr")
}

func TestStartAdminServer(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	url, closeFn, err := StartAdminServer("127.0.0.1:0", new(slog.LevelVar), &atomic.Bool{}, ledger.New(db, clock.NewMock()))
	require.NoError(t, err)
	defer closeFn()

	body, code := get(t, url+"/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"healthy":true`)
}

func TestStartMetricsServer(t *testing.T) {
	metrics.InitializePrometheusMetrics()
	metrics.Counter("httpserver_test_count").Add(1)

	url, closeFn, err := StartMetricsServer("127.0.0.1:0")
	require.NoError(t, err)
	defer closeFn()

	body, code := get(t, url)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "httpserver_test_count")
}
