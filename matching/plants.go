// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootmatch"
	"github.com/katalvlaran/rootmatch/geometry"
	"github.com/katalvlaran/rootmatch/matrix"
	"github.com/katalvlaran/rootmatch/mtg"
)

// Seeds returns the seed of every plant of t: the coordinate-wise mean of
// the first geometry point of its primary axes. Plants whose primary axes
// carry no geometry have no entry.
//
// Errors: geometry.ErrDimensionMismatch when first points differ in dimension.
func Seeds(t *mtg.Tree) (map[mtg.NodeID]geometry.Point, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	seeds := make(map[mtg.NodeID]geometry.Point)
	for _, plant := range t.Plants() {
		var firsts []geometry.Point
		for _, axis := range t.ComponentRoots(plant) {
			if pl := t.Node(axis).Geometry; len(pl) > 0 {
				firsts = append(firsts, pl[0])
			}
		}
		if len(firsts) == 0 {
			rootmatch.Logger().Warn("plant has no seed", "plant", plant)
			continue
		}
		seed, err := geometry.Mean(firsts)
		if err != nil {
			return nil, fmt.Errorf("matching: seed of plant %d: %w", plant, err)
		}
		seeds[plant] = seed
	}
	return seeds, nil
}

// MatchPlants pairs the plants of t1 and t2 by seed distance.
//
// Errors: ErrNilTree, ErrOptionViolation, seed dimension errors, and
// errors returned by the Assigner.
//
// Complexity: O(P1·P2·log(P1·P2)) with the greedy assigner.
func MatchPlants(t1, t2 *mtg.Tree, opts ...Option) (*Result, error) {
	if t1 == nil || t2 == nil {
		return nil, ErrNilTree
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return matchPlants(t1, t2, o)
}

func matchPlants(t1, t2 *mtg.Tree, o Options) (*Result, error) {
	seeds1, err := Seeds(t1)
	if err != nil {
		return nil, err
	}
	seeds2, err := Seeds(t2)
	if err != nil {
		return nil, err
	}
	plants1, plants2 := t1.Plants(), t2.Plants()

	d, err := matrix.NewDense(len(plants1), len(plants2))
	if err != nil {
		return nil, err
	}
	for i, p1 := range plants1 {
		for j, p2 := range plants2 {
			v := math.Inf(1)
			s1, ok1 := seeds1[p1]
			s2, ok2 := seeds2[p2]
			if ok1 && ok2 {
				if v, err = geometry.Distance(s1, s2); err != nil {
					return nil, fmt.Errorf("matching: plants %d/%d: %w", p1, p2, err)
				}
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	res := &Result{}
	if err = res.absorb(o.Assigner, d, plants1, plants2, o.plantCutoff()); err != nil {
		return nil, err
	}
	rootmatch.Logger().Debug("plants matched",
		"plants1", len(plants1), "plants2", len(plants2), "matched", len(res.Matched))
	res.sort()
	return res, nil
}
