// SPDX-License-Identifier: MIT

package assign_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rootmatch/assign"
	"github.com/katalvlaran/rootmatch/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dense builds a matrix from rows or fails the test.
func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// randomDense returns an n×m matrix of integers in [0, 10) so ties are frequent.
func randomDense(t *testing.T, rng *rand.Rand, n, m int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(n, m)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			require.NoError(t, d.Set(i, j, float64(rng.Intn(10))))
		}
	}
	return d
}

// requirePartition checks that matched ∪ unmatched covers every index exactly once.
func requirePartition(t *testing.T, res *assign.Result, n1, n2 int) {
	t.Helper()
	seenI := make(map[int]int, n1)
	seenJ := make(map[int]int, n2)
	for _, p := range res.Matched {
		seenI[p.I]++
		seenJ[p.J]++
	}
	for _, i := range res.UnmatchedRows {
		seenI[i]++
	}
	for _, j := range res.UnmatchedCols {
		seenJ[j]++
	}
	require.Len(t, seenI, n1)
	require.Len(t, seenJ, n2)
	for i := 0; i < n1; i++ {
		require.Equal(t, 1, seenI[i], "row %d must appear exactly once", i)
	}
	for j := 0; j < n2; j++ {
		require.Equal(t, 1, seenJ[j], "col %d must appear exactly once", j)
	}
}

func TestGreedy_PicksGlobalMinimumFirst(t *testing.T) {
	d := dense(t, [][]float64{
		{0, 4},
		{3, 1},
	})
	res, err := assign.Greedy(d)
	require.NoError(t, err)
	assert.Equal(t, []assign.Pair{{I: 0, J: 0, Distance: 0}, {I: 1, J: 1, Distance: 1}}, res.Matched)
	assert.Empty(t, res.UnmatchedRows)
	assert.Empty(t, res.UnmatchedCols)
	assert.Equal(t, 1.0, res.TotalDistance())
}

func TestGreedy_NotOptimal(t *testing.T) {
	// Greedy takes (0,0)=1 first, forcing (1,1)=10; the optimum is 2+2.
	d := dense(t, [][]float64{
		{1, 2},
		{2, 10},
	})
	res, err := assign.Greedy(d)
	require.NoError(t, err)
	assert.Equal(t, 11.0, res.TotalDistance())
}

func TestGreedy_Cutoff(t *testing.T) {
	d := dense(t, [][]float64{{14.142135623730951}})

	res, err := assign.Greedy(d, assign.WithMaxDistance(5))
	require.NoError(t, err)
	assert.Empty(t, res.Matched)
	assert.Equal(t, []int{0}, res.UnmatchedRows)
	assert.Equal(t, []int{0}, res.UnmatchedCols)

	res, err = assign.Greedy(d)
	require.NoError(t, err)
	require.Len(t, res.Matched, 1)
	assert.InDelta(t, 14.1421, res.Matched[0].Distance, 1e-4)
}

func TestGreedy_CutoffInclusive(t *testing.T) {
	d := dense(t, [][]float64{{2, 3}})
	res, err := assign.Greedy(d, assign.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, []assign.Pair{{I: 0, J: 0, Distance: 2}}, res.Matched, "distance equal to the cutoff is accepted")
	assert.Equal(t, []int{1}, res.UnmatchedCols)
}

func TestGreedy_RectangularLeavesExtraColumns(t *testing.T) {
	d := dense(t, [][]float64{
		{0, 14.142},
	})
	res, err := assign.Greedy(d)
	require.NoError(t, err)
	assert.Equal(t, []assign.Pair{{I: 0, J: 0, Distance: 0}}, res.Matched)
	assert.Equal(t, []int{1}, res.UnmatchedCols)
}

func TestGreedy_TiesAreRowMajor(t *testing.T) {
	d := dense(t, [][]float64{
		{1, 1},
		{1, 1},
	})
	res, err := assign.Greedy(d)
	require.NoError(t, err)
	assert.Equal(t, []assign.Pair{{I: 0, J: 0, Distance: 1}, {I: 1, J: 1, Distance: 1}}, res.Matched)

	again, err := assign.Greedy(d)
	require.NoError(t, err)
	assert.Equal(t, res, again, "fixed input must give a fixed output")
}

func TestGreedy_InfinityNeverMatched(t *testing.T) {
	inf := math.Inf(1)
	d := dense(t, [][]float64{
		{inf, 2},
		{inf, inf},
	})
	res, err := assign.Greedy(d)
	require.NoError(t, err)
	assert.Equal(t, []assign.Pair{{I: 0, J: 1, Distance: 2}}, res.Matched)
	assert.Equal(t, []int{1}, res.UnmatchedRows)
	assert.Equal(t, []int{0}, res.UnmatchedCols)
}

func TestGreedy_EmptySides(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {0, 3}, {2, 0}} {
		d, err := matrix.NewDense(shape[0], shape[1])
		require.NoError(t, err)
		res, err := assign.Greedy(d)
		require.NoError(t, err, "empty matrices never fail")
		assert.Empty(t, res.Matched)
		assert.Len(t, res.UnmatchedRows, shape[0])
		assert.Len(t, res.UnmatchedCols, shape[1])
	}
}

func TestGreedy_Errors(t *testing.T) {
	_, err := assign.Greedy(nil)
	assert.ErrorIs(t, err, assign.ErrNilMatrix)

	d := dense(t, [][]float64{{-1}})
	_, err = assign.Greedy(d)
	assert.ErrorIs(t, err, assign.ErrNegativeDistance)

	_, err = assign.Greedy(dense(t, [][]float64{{1}}), assign.WithMaxDistance(-2))
	assert.ErrorIs(t, err, assign.ErrOptionViolation)
}

func TestGreedy_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n1, n2 := rng.Intn(7), rng.Intn(7)
		d := randomDense(t, rng, n1, n2)
		c := float64(rng.Intn(10))

		res, err := assign.Greedy(d, assign.WithMaxDistance(c))
		require.NoError(t, err)
		for _, p := range res.Matched {
			require.LessOrEqual(t, p.Distance, c)
			v, _ := d.At(p.I, p.J)
			require.Equal(t, v, p.Distance)
		}
		requirePartition(t, res, n1, n2)
	}
}

func TestGreedy_MonotoneInCutoff(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		d := randomDense(t, rng, 1+rng.Intn(6), 1+rng.Intn(6))
		lo := float64(rng.Intn(10))
		hi := lo + float64(rng.Intn(5))

		small, err := assign.Greedy(d, assign.WithMaxDistance(lo))
		require.NoError(t, err)
		large, err := assign.Greedy(d, assign.WithMaxDistance(hi))
		require.NoError(t, err)

		accepted := make(map[assign.Pair]bool, len(large.Matched))
		for _, p := range large.Matched {
			accepted[p] = true
		}
		for _, p := range small.Matched {
			require.True(t, accepted[p], "raising the cutoff removed %+v", p)
		}
	}
}
