// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"github.com/pkg/errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/ledger"
)

// Builder collects the steps setting up the initial state.
type Builder struct {
	procs []func(tx *ledger.Tx) error
}

// State adds a step.
func (b *Builder) State(proc func(tx *ledger.Tx) error) *Builder {
	b.procs = append(b.procs, proc)
	return b
}

// Build runs all steps in a single transaction.
func (b *Builder) Build(l *ledger.Ledger) error {
	return l.Execute("genesis", func(tx *ledger.Tx) error {
		for _, proc := range b.procs {
			if err := proc(tx); err != nil {
				return errors.Wrap(err, "state process")
			}
		}
		return nil
	})
}
