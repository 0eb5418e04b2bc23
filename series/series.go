/*
 * series.go, part of chanstats.
 *
 * Copyright 2015 The ChannelAnalysis authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package series regroups flat observation streams into ordered per-trajectory,
//per-series value lists, the shape scatter-plot producers want. One series is
//made per requested value column; for dihedral data each series index usually
//corresponds to one residue.
package series

import (
	"sort"

	chanstats "github.com/cing/chanstats"
	"github.com/cing/chanstats/histo"
)

//Set holds, for every trajectory and series index, the values of that series
//in the order they appeared in the input, plus the parallel list of times each
//value was observed at.
type Set struct {
	values map[float64]map[int][]float64
	times  map[float64]map[int][]float64
	ncols  int
}

//Reshape walks rows once and appends, for each series s, the value at column
//cols[s] to the trajectory's series list and the value at the layout's time
//column to the parallel time list. Order is preserved exactly as encountered;
//nothing is aggregated, filtered or validated. The returned Set owns freshly
//built maps, never shared between calls.
func Reshape(rows []chanstats.Row, lay *chanstats.Layout, cols []int) *Set {
	ret := &Set{
		values: make(map[float64]map[int][]float64),
		times:  make(map[float64]map[int][]float64),
		ncols:  len(cols),
	}
	for _, line := range rows {
		traj := line[lay.TrajCol]
		if _, ok := ret.values[traj]; !ok {
			ret.values[traj] = make(map[int][]float64)
			ret.times[traj] = make(map[int][]float64)
		}
		for s, col := range cols {
			ret.values[traj][s] = append(ret.values[traj][s], line[col])
			ret.times[traj][s] = append(ret.times[traj][s], line[lay.TimeCol])
		}
	}
	return ret
}

//Trajectories returns the observed trajectory ids, sorted ascending.
func (S *Set) Trajectories() []float64 {
	trajs := make([]float64, 0, len(S.values))
	for traj := range S.values {
		trajs = append(trajs, traj)
	}
	sort.Float64s(trajs)
	return trajs
}

//NSeries returns the number of series per trajectory.
func (S *Set) NSeries() int {
	return S.ncols
}

//Values returns the ordered values of the given series in the given
//trajectory, or nil if either is unknown. The slice is the Set's own; callers
//that modify it should copy first.
func (S *Set) Values(traj float64, series int) []float64 {
	if m, ok := S.values[traj]; ok {
		return m[series]
	}
	return nil
}

//Times returns the time list parallel to Values(traj, series), or nil if
//either is unknown.
func (S *Set) Times(traj float64, series int) []float64 {
	if m, ok := S.times[traj]; ok {
		return m[series]
	}
	return nil
}

//Histograms bins every (trajectory, series) list over [min,max) with bins
//bins, returning a trajectory x series histogram matrix. Matrix rows follow
//Trajectories() order; the histogram IDs are set to the row index, so a
//histogram can be traced back to its trajectory.
func (S *Set) Histograms(min, max float64, bins int) *histo.Matrix {
	trajs := S.Trajectories()
	dividers := histo.New(min, max, bins).Edges()
	M := histo.NewMatrix(len(trajs), S.ncols, dividers)
	for i, traj := range trajs {
		for s := 0; s < S.ncols; s++ {
			vals := make([]float64, len(S.values[traj][s]))
			copy(vals, S.values[traj][s]) //ReHisto sorts its input
			M.NewHisto(i, s, nil, vals, i)
		}
	}
	return M
}
