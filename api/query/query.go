// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package query

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api/utils"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/ledger"
)

type Query struct {
	ledger *ledger.Ledger
}

func New(l *ledger.Ledger) *Query {
	return &Query{l}
}

func (q *Query) handleGetGlobal(w http.ResponseWriter, _ *http.Request) error {
	var g *Global
	err := q.ledger.View(func(tx *ledger.Tx) error {
		info, err := tx.Staking.GlobalInfo()
		if err != nil {
			return err
		}
		g = convertGlobal(info, tx.Staking.Custody())
		return nil
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, g)
}

func (q *Query) handleGetFarm(w http.ResponseWriter, req *http.Request) error {
	n, err := utils.Uint64Var(req, "number")
	if err != nil {
		return err
	}
	var f *Farm
	err = q.ledger.View(func(tx *ledger.Tx) error {
		info, err := tx.Staking.FarmInfo(n)
		if err != nil {
			return err
		}
		f = convertFarm(info)
		return nil
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, f)
}

func (q *Query) handleGetUser(w http.ResponseWriter, req *http.Request) error {
	owner, err := utils.AddressVar(req, "owner")
	if err != nil {
		return err
	}
	var u *User
	err = q.ledger.View(func(tx *ledger.Tx) error {
		r, err := tx.Staking.UserInfo(owner)
		if err != nil {
			return err
		}
		u = convertUser(r, tx.Staking.UserAccount(owner))
		return nil
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, u)
}

func (q *Query) handleGetNonce(w http.ResponseWriter, req *http.Request) error {
	owner, err := utils.AddressVar(req, "owner")
	if err != nil {
		return err
	}
	var n Nonce
	err = q.ledger.View(func(tx *ledger.Tx) error {
		next, err := tx.Nonces.Next(owner)
		if err != nil {
			return err
		}
		n.Nonce = next
		return nil
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &n)
}

func (q *Query) handleGetReward(w http.ResponseWriter, req *http.Request) error {
	owner, err := utils.AddressVar(req, "owner")
	if err != nil {
		return err
	}
	asset, err := utils.AddressVar(req, "asset")
	if err != nil {
		return err
	}
	var at *uint64
	if s := req.URL.Query().Get("at"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return utils.BadRequest(errors.WithMessage(err, "at"))
		}
		at = &v
	}

	var reward *Reward
	err = q.ledger.View(func(tx *ledger.Tx) error {
		now := tx.Now
		if at != nil {
			now = *at
		}
		amount, err := tx.Staking.PendingReward(owner, asset, now)
		if err != nil {
			return err
		}
		reward = &Reward{Owner: owner, Asset: asset, At: now, Amount: amount.Dec()}
		return nil
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, reward)
}

func (q *Query) handleGetStakes(w http.ResponseWriter, _ *http.Request) error {
	var users []*User
	err := q.ledger.View(func(tx *ledger.Tx) error {
		regs, err := tx.Staking.AllStaked()
		if err != nil {
			return err
		}
		users = make([]*User, 0, len(regs))
		for _, r := range regs {
			users = append(users, convertUser(r, tx.Staking.UserAccount(r.Owner)))
		}
		return nil
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, users)
}

func (q *Query) handleGetWhitelist(w http.ResponseWriter, req *http.Request) error {
	n, err := utils.Uint64Var(req, "farm")
	if err != nil {
		return err
	}
	candidate, err := utils.AddressVar(req, "candidate")
	if err != nil {
		return err
	}
	var p *Proof
	err = q.ledger.View(func(tx *ledger.Tx) error {
		proof, err := tx.Staking.Whitelisted(candidate, n)
		if err != nil {
			return err
		}
		if proof != nil {
			p = convertProof(proof)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if p == nil {
		return utils.HTTPError(errors.New("not whitelisted"), http.StatusNotFound)
	}
	return utils.WriteJSON(w, p)
}

func (q *Query) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/global").Methods(http.MethodGet).Name("get-global").HandlerFunc(utils.WrapHandlerFunc(q.handleGetGlobal))
	sub.Path("/farms/{number}").Methods(http.MethodGet).Name("get-farm").HandlerFunc(utils.WrapHandlerFunc(q.handleGetFarm))
	sub.Path("/users/{owner}").Methods(http.MethodGet).Name("get-user").HandlerFunc(utils.WrapHandlerFunc(q.handleGetUser))
	sub.Path("/users/{owner}/nonce").Methods(http.MethodGet).Name("get-nonce").HandlerFunc(utils.WrapHandlerFunc(q.handleGetNonce))
	sub.Path("/users/{owner}/rewards/{asset}").Methods(http.MethodGet).Name("get-reward").HandlerFunc(utils.WrapHandlerFunc(q.handleGetReward))
	sub.Path("/stakes").Methods(http.MethodGet).Name("get-stakes").HandlerFunc(utils.WrapHandlerFunc(q.handleGetStakes))
	sub.Path("/whitelist/{farm}/{candidate}").Methods(http.MethodGet).Name("get-whitelist").HandlerFunc(utils.WrapHandlerFunc(q.handleGetWhitelist))
}
