// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tiers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api/utils"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking/tiers"
)

// Tiers evaluates reward schedules without touching the ledger.
type Tiers struct{}

func New() *Tiers {
	return &Tiers{}
}

type Reward struct {
	Elapsed uint64 `json:"elapsed"`
	Amount  string `json:"amount"`
}

func parseList(s string) ([]uint64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	list := make([]uint64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

func (t *Tiers) handleGetReward(w http.ResponseWriter, req *http.Request) error {
	query := req.URL.Query()
	durations, err := parseList(query.Get("durations"))
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "durations"))
	}
	rates, err := parseList(query.Get("rates"))
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "rates"))
	}
	elapsed, err := strconv.ParseUint(query.Get("elapsed"), 10, 64)
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "elapsed"))
	}
	schedule, err := tiers.NewSchedule(durations, rates)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Reward{
		Elapsed: elapsed,
		Amount:  schedule.Cumulative(elapsed).Dec(),
	})
}

func (t *Tiers) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/reward").Methods(http.MethodGet).Name("get-tier-reward").HandlerFunc(utils.WrapHandlerFunc(t.handleGetReward))
}
