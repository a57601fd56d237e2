// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package actions

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/api/utils"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/authority"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/staking"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/ledger"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/log"
)

var logger = log.WithContext("pkg", "actions")

type Actions struct {
	ledger    *ledger.Ledger
	recoverer *authority.Recoverer
}

func New(l *ledger.Ledger, recoverer *authority.Recoverer) *Actions {
	return &Actions{l, recoverer}
}

var known = map[string]bool{
	TypeInitialize:      true,
	TypeInitUser:        true,
	TypeCreateFarm:      true,
	TypeUpdateFarm:      true,
	TypeAddWhitelist:    true,
	TypeRemoveWhitelist: true,
	TypeSetStop:         true,
	TypeStake:           true,
	TypeUnstake:         true,
	TypeClaim:           true,
}

// dispatch runs a against s on behalf of signer.
func dispatch(s *staking.Staking, a *Action, signer authority.Signer, now uint64) (reward, forfeited *uint256.Int, err error) {
	switch a.Type {
	case TypeInitialize:
		err = s.Initialize(signer, a.RewardAsset)
	case TypeInitUser:
		err = s.InitUser(signer)
	case TypeCreateFarm:
		err = s.CreateFarm(signer, a.Farm, a.Durations, a.Rates, a.MaxStakeCount)
	case TypeUpdateFarm:
		err = s.UpdateFarm(signer, a.Farm, a.Durations, a.Rates, a.MaxStakeCount)
	case TypeAddWhitelist:
		err = s.AddWhitelist(signer, a.Candidate, a.Farm, a.IsCollection)
	case TypeRemoveWhitelist:
		err = s.RemoveWhitelist(signer, a.Candidate, a.Farm)
	case TypeSetStop:
		err = s.SetStopped(signer, a.Farm, a.Stopped)
	case TypeStake:
		err = s.Stake(signer, a.Asset, a.Farm, now)
	case TypeUnstake:
		forfeited, err = s.Unstake(signer, a.Asset, a.Farm, now)
	case TypeClaim:
		reward, err = s.Claim(signer, a.Asset, a.Farm, now)
	default:
		err = utils.BadRequest(fmt.Errorf("unknown action type %q", a.Type))
	}
	return
}

func (a *Actions) handleExecute(w http.ResponseWriter, req *http.Request) error {
	var action Action
	if err := utils.ParseJSON(req.Body, &action); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if !known[action.Type] {
		return utils.BadRequest(fmt.Errorf("unknown action type %q", action.Type))
	}
	if len(action.Signature) == 0 {
		return utils.Forbidden(errors.New("missing signature"))
	}
	signer, err := a.recoverer.Recover(action.SigningHash(), action.Signature)
	if err != nil {
		return utils.Forbidden(errors.WithMessage(err, "signature"))
	}
	if changed, hit, miss := a.recoverer.Stats(); changed {
		logger.Debug("signer cache stats", "hit", hit, "miss", miss)
		metricSignerCache().SetWithLabel(hit, map[string]string{"event": "hit"})
		metricSignerCache().SetWithLabel(miss, map[string]string{"event": "miss"})
	}
	if action.Expiry > 0 && a.ledger.Now() > action.Expiry {
		return utils.BadRequest(errors.New("action expired"))
	}

	result := Result{Type: action.Type, Signer: signer.Address()}
	err = a.ledger.Execute(action.Type, func(tx *ledger.Tx) error {
		// discarded with the rest of the transaction if the action fails
		if err := tx.Nonces.Use(signer.Address(), action.Nonce); err != nil {
			return err
		}
		reward, forfeited, err := dispatch(tx.Staking, &action, signer, tx.Now)
		if err != nil {
			return err
		}
		result.At = tx.Now
		if reward != nil {
			s := reward.Dec()
			result.Reward = &s
		}
		if forfeited != nil {
			s := forfeited.Dec()
			result.Forfeited = &s
		}
		return nil
	})
	if err != nil {
		logger.Debug("action failed", "type", action.Type, "signer", signer, "nonce", action.Nonce, "error", err)
		return err
	}
	return utils.WriteJSON(w, &result)
}

func (a *Actions) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").Methods(http.MethodPost).Name("post-action").HandlerFunc(utils.WrapHandlerFunc(a.handleExecute))
}
