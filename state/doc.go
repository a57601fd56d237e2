// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package state manages account balances and contract storage.
// It follows the flow as bellow:
//
//	  [ revertable state ]
//	           |
//	    [ stacked map ] -> [ journal ] -> [ stage ] -> [ kv bulk write ]
//	           |
//	       [ kv store ]
//
// Every write lives in memory until the stage is committed, so a discarded
// State leaves the store untouched.
package state
