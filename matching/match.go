// SPDX-License-Identifier: MIT

package matching

import "github.com/katalvlaran/rootmatch/mtg"

// Match runs both levels: plants first, then axes below every matched
// plant pair.
func Match(t1, t2 *mtg.Tree, opts ...Option) (*TreeMatch, error) {
	if t1 == nil || t2 == nil {
		return nil, ErrNilTree
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	plants, err := matchPlants(t1, t2, o)
	if err != nil {
		return nil, err
	}
	axes, err := matchAxes(t1, t2, plants.Matched, o)
	if err != nil {
		return nil, err
	}
	return &TreeMatch{Plants: plants, Axes: axes}, nil
}
