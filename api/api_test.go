// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/facebookgo/clock"
	"github.com/gorilla/mux"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api/actions"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api/query"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/authority"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/token"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/ledger"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/lvldb"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/metrics"
)

func init() {
	metrics.InitializePrometheusMetrics()
}

var (
	rewardMint = farm.BytesToAddress([]byte("reward"))
	collection = farm.BytesToAddress([]byte("collection"))
	nft        = farm.BytesToAddress([]byte("nft"))
)

type testServer struct {
	t         *testing.T
	url       string
	ledger    *ledger.Ledger
	clock     *clock.Mock
	recoverer *authority.Recoverer
}

func newTestServer(t *testing.T) *testServer {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clk := clock.NewMock()
	l := ledger.New(db, clk)
	recoverer, err := authority.NewRecoverer(actions.Domain, 16)
	require.NoError(t, err)

	var logs atomic.Bool
	logs.Store(true)

	router := mux.NewRouter()
	router.PathPrefix("/metrics").Handler(metrics.HTTPHandler())
	router.PathPrefix("/").Handler(New(l, recoverer, Options{
		AllowedOrigins:  "*",
		EnableReqLogger: &logs,
		EnableMetrics:   true,
	}))
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	return &testServer{t: t, url: ts.URL, ledger: l, clock: clk, recoverer: recoverer}
}

func (s *testServer) get(path string) ([]byte, int) {
	res, err := http.Get(s.url + path) //#nosec G107
	require.NoError(s.t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(s.t, err)
	return body, res.StatusCode
}

// do sends a signed with key at the signer's next nonce.
func (s *testServer) do(key *ecdsa.PrivateKey, a actions.Action) (*actions.Result, int) {
	if key != nil {
		a.Nonce = s.nonce(authority.KeyAddress(key))
		require.NoError(s.t, a.Sign(s.recoverer, key))
	}
	return s.send(a)
}

func (s *testServer) nonce(signer farm.Address) uint64 {
	body, code := s.get("/users/" + signer.String() + "/nonce")
	require.Equal(s.t, http.StatusOK, code)
	return decode[query.Nonce](s.t, body).Nonce
}

// send posts a as is.
func (s *testServer) send(a actions.Action) (*actions.Result, int) {
	data, err := json.Marshal(a)
	require.NoError(s.t, err)

	res, err := http.Post(s.url+"/actions", "application/json", bytes.NewReader(data)) //#nosec G107
	require.NoError(s.t, err)
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, res.StatusCode
	}
	var result actions.Result
	require.NoError(s.t, json.NewDecoder(res.Body).Decode(&result))
	return &result, res.StatusCode
}

func decode[T any](t *testing.T, body []byte) *T {
	var v T
	require.NoError(t, json.Unmarshal(body, &v))
	return &v
}

func TestAPI(t *testing.T) {
	s := newTestServer(t)
	adminKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	aliceKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	admin := authority.KeyAddress(adminKey)
	alice := authority.KeyAddress(aliceKey)

	_, code := s.get("/global")
	assert.Equal(t, http.StatusNotFound, code)

	res, code := s.do(adminKey, actions.Action{Type: actions.TypeInitialize, RewardAsset: rewardMint})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, admin, res.Signer)

	body, code := s.get("/global")
	require.Equal(t, http.StatusOK, code)
	g := decode[query.Global](t, body)
	assert.Equal(t, admin, g.Admin)
	assert.Equal(t, rewardMint, g.RewardAsset)

	createFarm := actions.Action{
		Type:          actions.TypeCreateFarm,
		Farm:          1,
		Durations:     []uint64{100, 200, 300, 0},
		Rates:         []uint64{1, 2, 3, 4},
		MaxStakeCount: 1,
	}
	_, code = s.do(aliceKey, createFarm)
	assert.Equal(t, http.StatusForbidden, code)
	_, code = s.do(adminKey, createFarm)
	require.Equal(t, http.StatusOK, code)
	_, code = s.do(adminKey, createFarm)
	assert.Equal(t, http.StatusConflict, code)

	require.NoError(t, s.ledger.Execute("fund", func(tx *ledger.Tx) error {
		if err := tx.State.SetBalance(admin, big.NewInt(1000)); err != nil {
			return err
		}
		if err := tx.Metadata.SetCreators(nft, []farm.Address{collection}); err != nil {
			return err
		}
		return tx.Tokens.Credit(nft, alice, token.Amount(1))
	}))

	_, code = s.do(adminKey, actions.Action{Type: actions.TypeAddWhitelist, Candidate: collection, Farm: 1, IsCollection: true})
	require.Equal(t, http.StatusOK, code)
	_, code = s.get("/whitelist/1/" + collection.String())
	assert.Equal(t, http.StatusOK, code)
	_, code = s.get("/whitelist/1/" + nft.String())
	assert.Equal(t, http.StatusNotFound, code)

	stake := actions.Action{Type: actions.TypeStake, Asset: nft, Farm: 1}
	_, code = s.do(aliceKey, stake)
	assert.Equal(t, http.StatusNotFound, code)
	_, code = s.do(aliceKey, actions.Action{Type: actions.TypeInitUser})
	require.Equal(t, http.StatusOK, code)
	_, code = s.do(aliceKey, stake)
	require.Equal(t, http.StatusOK, code)

	s.clock.Add(150 * time.Second)
	res, code = s.do(aliceKey, actions.Action{Type: actions.TypeClaim, Asset: nft, Farm: 1})
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, res.Reward)
	assert.Equal(t, "200", *res.Reward)
	assert.Equal(t, uint64(150), res.At)

	body, code = s.get("/users/" + alice.String())
	require.Equal(t, http.StatusOK, code)
	u := decode[query.User](t, body)
	require.Len(t, u.Records, 1)
	assert.Equal(t, nft, u.Records[0].Asset)
	assert.Equal(t, uint64(150), u.Records[0].ClaimedAt)

	body, code = s.get("/users/" + alice.String() + "/rewards/" + nft.String() + "?at=500")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "900", decode[query.Reward](t, body).Amount)

	body, code = s.get("/stakes")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, *decode[[]query.User](t, body), 1)

	body, code = s.get("/farms/1")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, uint64(1), decode[query.Farm](t, body).StakedCount)

	_, code = s.do(adminKey, actions.Action{Type: actions.TypeSetStop, Farm: 1, Stopped: true})
	require.Equal(t, http.StatusOK, code)
	_, code = s.do(aliceKey, actions.Action{Type: actions.TypeClaim, Asset: nft, Farm: 1})
	assert.Equal(t, http.StatusConflict, code)

	res, code = s.do(aliceKey, actions.Action{Type: actions.TypeUnstake, Asset: nft, Farm: 1})
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, res.Forfeited)
	assert.Equal(t, "0", *res.Forfeited)
}

func TestActionRejected(t *testing.T) {
	s := newTestServer(t)
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	_, code := s.do(key, actions.Action{Type: "mint-everything"})
	assert.Equal(t, http.StatusBadRequest, code)

	_, code = s.do(nil, actions.Action{Type: actions.TypeInitUser})
	assert.Equal(t, http.StatusForbidden, code)

	_, code = s.do(nil, actions.Action{Type: actions.TypeInitUser, Signature: []byte{1, 2, 3}})
	assert.Equal(t, http.StatusForbidden, code)

	s.clock.Add(100 * time.Second)
	_, code = s.do(key, actions.Action{Type: actions.TypeInitUser, Expiry: 50})
	assert.Equal(t, http.StatusBadRequest, code)

	res, err := http.Post(s.url+"/actions", "application/json", bytes.NewReader([]byte(`{"bogus":1}`)))
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestActionReplay(t *testing.T) {
	s := newTestServer(t)
	adminKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	aliceKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	admin := authority.KeyAddress(adminKey)
	alice := authority.KeyAddress(aliceKey)

	_, code := s.do(adminKey, actions.Action{Type: actions.TypeInitialize, RewardAsset: rewardMint})
	require.Equal(t, http.StatusOK, code)
	_, code = s.do(adminKey, actions.Action{
		Type:          actions.TypeCreateFarm,
		Farm:          1,
		Durations:     []uint64{100, 200, 300, 0},
		Rates:         []uint64{1, 2, 3, 4},
		MaxStakeCount: 5,
	})
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, s.ledger.Execute("fund", func(tx *ledger.Tx) error {
		if err := tx.State.SetBalance(admin, big.NewInt(1000)); err != nil {
			return err
		}
		if err := tx.Metadata.SetCreators(nft, []farm.Address{collection}); err != nil {
			return err
		}
		return tx.Tokens.Credit(nft, alice, token.Amount(1))
	}))
	_, code = s.do(adminKey, actions.Action{Type: actions.TypeAddWhitelist, Candidate: collection, Farm: 1, IsCollection: true})
	require.Equal(t, http.StatusOK, code)
	_, code = s.do(aliceKey, actions.Action{Type: actions.TypeInitUser})
	require.Equal(t, http.StatusOK, code)

	// an admin stop captured off the wire cannot be replayed after a resume
	stop := actions.Action{Type: actions.TypeSetStop, Farm: 1, Stopped: true, Nonce: s.nonce(admin)}
	require.NoError(t, stop.Sign(s.recoverer, adminKey))
	_, code = s.send(stop)
	require.Equal(t, http.StatusOK, code)
	_, code = s.do(adminKey, actions.Action{Type: actions.TypeSetStop, Farm: 1, Stopped: false})
	require.Equal(t, http.StatusOK, code)
	_, code = s.send(stop)
	assert.Equal(t, http.StatusConflict, code)

	body, code := s.get("/farms/1")
	require.Equal(t, http.StatusOK, code)
	assert.False(t, decode[query.Farm](t, body).Stopped)

	// nor can an unstake once the asset is staked again
	_, code = s.do(aliceKey, actions.Action{Type: actions.TypeStake, Asset: nft, Farm: 1})
	require.Equal(t, http.StatusOK, code)
	unstake := actions.Action{Type: actions.TypeUnstake, Asset: nft, Farm: 1, Nonce: s.nonce(alice)}
	require.NoError(t, unstake.Sign(s.recoverer, aliceKey))
	_, code = s.send(unstake)
	require.Equal(t, http.StatusOK, code)
	_, code = s.do(aliceKey, actions.Action{Type: actions.TypeStake, Asset: nft, Farm: 1})
	require.Equal(t, http.StatusOK, code)
	_, code = s.send(unstake)
	assert.Equal(t, http.StatusConflict, code)

	body, code = s.get("/users/" + alice.String())
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[query.User](t, body).Records, 1)

	// a failed action leaves the nonce unused
	next := s.nonce(alice)
	_, code = s.do(aliceKey, actions.Action{Type: actions.TypeStake, Asset: nft, Farm: 1})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, next, s.nonce(alice))

	// and a nonce from the future is refused
	ahead := actions.Action{Type: actions.TypeClaim, Asset: nft, Farm: 1, Nonce: next + 1}
	require.NoError(t, ahead.Sign(s.recoverer, aliceKey))
	_, code = s.send(ahead)
	assert.Equal(t, http.StatusConflict, code)
}

func TestTierReward(t *testing.T) {
	s := newTestServer(t)

	body, code := s.get("/tiers/reward?durations=100,200,300,0&rates=1,2,3,4&elapsed=500")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "1100", decode[struct{ Amount string }](t, body).Amount)

	_, code = s.get("/tiers/reward?durations=100,200&rates=1,2,3,4&elapsed=500")
	assert.Equal(t, http.StatusBadRequest, code)
	_, code = s.get("/tiers/reward?durations=100,200,300,0&rates=1,2,3,4&elapsed=x")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t)

	res, err := http.Get(s.url + "/global")
	require.NoError(t, err)
	res.Body.Close()
	assert.NotEmpty(t, res.Header.Get(RequestIDHeader))

	req, err := http.NewRequest(http.MethodGet, s.url+"/global", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "fixed-id")
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, "fixed-id", res.Header.Get(RequestIDHeader))
}

func TestMetricsMiddleware(t *testing.T) {
	s := newTestServer(t)

	s.get("/farms/1")
	s.get("/farms/x")
	s.get("/tiers/reward?durations=1,1,1,1&rates=1,1,1,1&elapsed=1")

	body, _ := s.get("/metrics")
	parser := expfmt.TextParser{}
	families, err := parser.TextToMetricFamilies(bytes.NewReader(body))
	require.NoError(t, err)

	family, ok := families["farm_api_request_count"]
	require.True(t, ok)

	seen := make(map[string]bool)
	for _, m := range family.GetMetric() {
		labels := make(map[string]string)
		for _, l := range m.GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
		seen[labels["name"]+" "+labels["code"]] = true
	}
	assert.True(t, seen["get-farm 404"])
	assert.True(t, seen["get-farm 400"])
	assert.True(t, seen["get-tier-reward 200"])
}
