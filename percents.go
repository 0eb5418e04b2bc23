/*
 * percents.go, part of chanstats.
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

package chanstats

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Tags for the two synthetic summary rows appended to every PercentTable.
const (
	MeanTag   = "MEAN"
	StdErrTag = "STDERR"
)

// PercentRow is the population of every state in one trajectory: the trajectory
// id, one fraction per state id (in id order, summing to 1), and the weighted
// average of the state weights under those fractions. The MEAN and STDERR
// summary rows use the same column layout with Tag set instead of TrajID.
type PercentRow struct {
	Tag         string
	TrajID      float64
	Percents    []float64
	WeightedAvg float64
}

func (r *PercentRow) String() string {
	fields := make([]string, 0, len(r.Percents)+2)
	if r.Tag != "" {
		fields = append(fields, r.Tag)
	} else {
		fields = append(fields, fmt.Sprintf("%v", r.TrajID))
	}
	for _, p := range r.Percents {
		fields = append(fields, fmt.Sprintf("%.6f", p))
	}
	fields = append(fields, fmt.Sprintf("%.6f", r.WeightedAvg))
	return strings.Join(fields, " ")
}

// PercentTable is the output of CountTable.Percents: one row per trajectory, in
// ascending trajectory-id order, followed by the MEAN and STDERR rows.
type PercentTable struct {
	Rows   []PercentRow
	States *StateSet
}

// Percents converts the count table to per-trajectory state populations and
// cross-trajectory statistics. weights, if given, maps each state id to a
// physical weight (e.g. ions in the selectivity filter for that state); its
// length must be exactly the size of the state set or a configuration error is
// returned. When omitted, state ids weigh themselves (0, 1, 2, ...), which
// turns the weighted average into a mean occupancy.
//
// For each trajectory the fraction of observations in every state of the
// closed set is computed, along with the weighted average of those fractions.
// Two summary rows follow the per-trajectory rows: the arithmetic MEAN of each
// column across trajectories, and the STDERR row with the standard error of
// each of those means. The weighted-average column is summarized like any
// state column.
//
// Trajectories are emitted sorted by id. A trajectory with zero observations
// cannot be converted to fractions and is an error.
func (ct *CountTable) Percents(weights ...[]int) (*PercentTable, error) {
	nstates := ct.states.Size()
	var wmap []int
	if len(weights) > 0 && weights[0] != nil {
		wmap = weights[0]
		if len(wmap) != nstates {
			return nil, CError{fmt.Sprintf("%s: got %d, want %d", ErrWeightMapLength, len(wmap), nstates), []string{"CountTable.Percents"}}
		}
	} else {
		wmap = make([]int, nstates)
		for i := range wmap {
			wmap[i] = i
		}
	}
	trajs := ct.Trajectories()
	// One value per trajectory for each state, plus a virtual slot at the end
	// for the weighted average, so the summary loop treats them alike.
	perstate := make([][]float64, nstates+1)
	for i := range perstate {
		perstate[i] = make([]float64, 0, len(trajs))
	}
	ret := &PercentTable{Rows: make([]PercentRow, 0, len(trajs)+2), States: ct.states}
	for _, traj := range trajs {
		total, err := ct.Total(traj)
		if err != nil {
			return nil, errDecorate(err, "CountTable.Percents")
		}
		if total == 0 {
			return nil, CError{fmt.Sprintf("%s: %v", ErrEmptyTrajectory, traj), []string{"CountTable.Percents"}}
		}
		row := PercentRow{TrajID: traj, Percents: make([]float64, nstates)}
		for id := 0; id < nstates; id++ {
			count, err := ct.Count(traj, id)
			if err != nil {
				return nil, errDecorate(err, "CountTable.Percents")
			}
			p := float64(count) / float64(total)
			row.Percents[id] = p
			row.WeightedAvg += p * float64(wmap[id])
			perstate[id] = append(perstate[id], p)
		}
		perstate[nstates] = append(perstate[nstates], row.WeightedAvg)
		ret.Rows = append(ret.Rows, row)
	}
	mean := PercentRow{Tag: MeanTag, Percents: make([]float64, nstates)}
	stderr := PercentRow{Tag: StdErrTag, Percents: make([]float64, nstates)}
	for id := 0; id <= nstates; id++ {
		m := stat.Mean(perstate[id], nil)
		s := StdErr(perstate[id])
		if id == nstates {
			mean.WeightedAvg = m
			stderr.WeightedAvg = s
		} else {
			mean.Percents[id] = m
			stderr.Percents[id] = s
		}
	}
	ret.Rows = append(ret.Rows, mean, stderr)
	return ret, nil
}

// StdErr returns the standard error of the mean of vals: the sample standard
// deviation over the square root of the sample count. With fewer than two
// samples the sample deviation is undefined and NaN is returned, matching
// scipy.stats.sem.
func StdErr(vals []float64) float64 {
	if len(vals) < 2 {
		return math.NaN()
	}
	return stat.StdDev(vals, nil) / math.Sqrt(float64(len(vals)))
}
