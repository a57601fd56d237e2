// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot(t *testing.T) {
	s := Slot("farms")
	assert.Equal(t, "farms", string(s[27:]))
	assert.True(t, Bytes32{}.IsZero() && !s.IsZero())
	assert.NotEqual(t, Slot("farms"), Slot("farm"))

	assert.Panics(t, func() { Slot(strings.Repeat("x", 33)) })
}

func TestBytesToBytes32(t *testing.T) {
	long := make([]byte, 40)
	long[39] = 7
	long[0] = 1
	w := BytesToBytes32(long)
	assert.Equal(t, byte(7), w[31])
	assert.Equal(t, long[8:], w.Bytes())
}

func TestParseBytes32(t *testing.T) {
	hash := Blake2b([]byte("farm"))

	w, err := ParseBytes32(hash.String())
	require.NoError(t, err)
	assert.Equal(t, hash, w)

	w, err = ParseBytes32(strings.ToUpper(hash.String()[2:]))
	require.NoError(t, err)
	assert.Equal(t, hash, w)

	_, err = ParseBytes32("0x01")
	assert.EqualError(t, err, "invalid length")

	_, err = ParseBytes32("0y" + hash.String()[2:])
	assert.EqualError(t, err, "invalid prefix")

	var decoded Bytes32
	require.NoError(t, decoded.UnmarshalText([]byte(hash.String())))
	assert.Equal(t, hash, decoded)
}
