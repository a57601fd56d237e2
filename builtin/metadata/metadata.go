// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metadata

import (
	"github.com/pkg/errors"

	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/builtin/solidity"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/farm"
	"github.com/dev-tom-0108/NFT-Staking-Fork-Gemfarm/state"
)

var slotMetadata = farm.Slot("metadata")

// Data is the metadata declared for an asset.
type Data struct {
	Creators []farm.Address
}

// Metadata implements the asset metadata registry.
type Metadata struct {
	data *solidity.Mapping[farm.Address, *Data]
}

// New create a new instance.
func New(addr farm.Address, state *state.State) *Metadata {
	return &Metadata{
		data: solidity.NewMapping[farm.Address, *Data](solidity.NewContext(addr, state), slotMetadata),
	}
}

// Get returns the metadata of asset, nil if none declared.
func (m *Metadata) Get(asset farm.Address) (*Data, error) {
	d, err := m.data.Get(asset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get metadata")
	}
	if len(d.Creators) == 0 {
		return nil, nil
	}
	return d, nil
}

// SetCreators declares the ordered creators of asset.
func (m *Metadata) SetCreators(asset farm.Address, creators []farm.Address) error {
	if len(creators) == 0 {
		m.data.Delete(asset)
		return nil
	}
	if err := m.data.Set(asset, &Data{Creators: creators}); err != nil {
		return errors.Wrap(err, "failed to set metadata")
	}
	return nil
}

// Collection returns the collection of asset, which is its first creator.
// ok is false when asset declares no creator.
func (m *Metadata) Collection(asset farm.Address) (collection farm.Address, ok bool, err error) {
	d, err := m.Get(asset)
	if err != nil || d == nil {
		return farm.Address{}, false, err
	}
	return d.Creators[0], true, nil
}
