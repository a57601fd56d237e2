// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_Reverts(t *testing.T) {
	revert := New(NotFound, "test")
	assert.Equal(t, "test", revert.Error())
	assert.Equal(t, NotFound, revert.Kind())

	assert.True(t, IsRevertErr(revert))
	assert.False(t, IsRevertErr(nil))
	assert.False(t, IsRevertErr(fmt.Errorf("test")))
	assert.False(t, IsRevertErr(big.NewInt(0)))
}

func TestWrappedReverts(t *testing.T) {
	wrapped := errors.Wrap(ErrPoolStopped, "farm 2")
	assert.True(t, IsRevertErr(wrapped))
	assert.True(t, Is(wrapped, PoolStopped))
	assert.False(t, Is(wrapped, NotFound))
	assert.ErrorIs(t, wrapped, ErrPoolStopped)

	kind, ok := KindOf(fmt.Errorf("op: %w", ErrInvalidFarmCount))
	assert.True(t, ok)
	assert.Equal(t, SequenceMismatch, kind)

	_, ok = KindOf(errors.New("infra"))
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	for kind, name := range map[Kind]string{
		Unauthorized:     "Unauthorized",
		SequenceMismatch: "SequenceMismatch",
		InvalidInput:     "InvalidInput",
		CapacityExceeded: "CapacityExceeded",
		PoolStopped:      "PoolStopped",
		NotFound:         "NotFound",
		AdmissionDenied:  "AdmissionDenied",
		Kind(0):          "Unknown",
	} {
		assert.Equal(t, name, kind.String())
	}
}
