// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farm

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Bytes32 is a 32 byte word: a storage slot, a storage value or a hash.
type Bytes32 [32]byte

// Slot returns the storage position labelled name, left padded with zeros
// the way a short solidity bytes32 literal converted from uint would be.
// Labels longer than a word are a programming error.
func Slot(name string) Bytes32 {
	if len(name) > len(Bytes32{}) {
		panic(fmt.Sprintf("slot label %q exceeds 32 bytes", name))
	}
	return BytesToBytes32([]byte(name))
}

// BytesToBytes32 right aligns b in a word, keeping its last 32 bytes when longer.
func BytesToBytes32(b []byte) (w Bytes32) {
	if len(b) > len(w) {
		b = b[len(b)-len(w):]
	}
	copy(w[len(w)-len(b):], b)
	return
}

// ParseBytes32 decodes a 64 digit hex string, with or without 0x.
func ParseBytes32(s string) (Bytes32, error) {
	var w Bytes32
	if err := decodeHex(s, w[:]); err != nil {
		return Bytes32{}, err
	}
	return w, nil
}

func (b Bytes32) String() string {
	return "0x" + hex.EncodeToString(b[:])
}

func (b Bytes32) Bytes() []byte { return b[:] }

func (b Bytes32) IsZero() bool { return b == Bytes32{} }

func (b Bytes32) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Bytes32) UnmarshalText(text []byte) error {
	w, err := ParseBytes32(string(text))
	if err != nil {
		return err
	}
	*b = w
	return nil
}

// decodeHex fills out from s, which must hold exactly len(out) hex encoded
// bytes after an optional 0x prefix.
func decodeHex(s string, out []byte) error {
	if len(s) == 2*len(out)+2 {
		if !strings.EqualFold(s[:2], "0x") {
			return errors.New("invalid prefix")
		}
		s = s[2:]
	}
	if len(s) != 2*len(out) {
		return errors.New("invalid length")
	}
	_, err := hex.Decode(out, []byte(s))
	return err
}
