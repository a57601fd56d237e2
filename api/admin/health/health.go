// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package health

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api/utils"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/reverts"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/ledger"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/lvldb"
)

type Status struct {
	Healthy     bool   `json:"healthy"`
	Initialized bool   `json:"initialized"`
	Now         uint64 `json:"now"`
	Error       string `json:"error,omitempty"`

	Storage *lvldb.Stats `json:"storage,omitempty"`
}

type statser interface {
	Stats() (*lvldb.Stats, error)
}

type API struct {
	ledger *ledger.Ledger
}

func New(l *ledger.Ledger) *API {
	return &API{ledger: l}
}

// status reads the global registry, which touches the store.
func (h *API) status() *Status {
	s := &Status{Now: h.ledger.Now()}
	err := h.ledger.View(func(tx *ledger.Tx) error {
		_, err := tx.Staking.GlobalInfo()
		return err
	})
	switch {
	case err == nil:
		s.Initialized = true
		s.Healthy = true
	case errors.Is(err, reverts.ErrInvalidGlobalPool):
		s.Healthy = true
	default:
		s.Error = err.Error()
	}

	if st, ok := h.ledger.Store().(statser); ok {
		stats, err := st.Stats()
		if err != nil {
			s.Healthy = false
			s.Error = err.Error()
		} else {
			s.Storage = stats
		}
	}
	return s
}

func (h *API) handleGetHealth(w http.ResponseWriter, _ *http.Request) error {
	s := h.status()
	if !s.Healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	return utils.WriteJSON(w, s)
}

func (h *API) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").Methods(http.MethodGet).Name("health").HandlerFunc(utils.WrapHandlerFunc(h.handleGetHealth))
}
