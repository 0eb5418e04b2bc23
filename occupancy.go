/*
 * occupancy.go, part of chanstats.
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
	"sort"
)

// Row is one observation line from a coordination or rotamer datafile: an
// ordered sequence of float fields. Which columns mean what (trajectory number,
// time, dihedral values) is decided by whoever parsed the file; this package
// only ever receives column indices.
type Row []float64

// Layout carries the column indices a caller assigns to a dataset. TimeCol
// defaults to 0, which is where MDAnalysis-derived datafiles keep the frame
// time, but it can be overridden for other layouts.
type Layout struct {
	TrajCol int
	TimeCol int
}

// NewLayout returns a Layout with the given trajectory-id column and the
// default time column (0).
func NewLayout(trajcol int) *Layout {
	return &Layout{TrajCol: trajcol, TimeCol: 0}
}

// State is one classification produced per observation row by an external
// classifier, typically by regex-matching a coordination label. The ID is used
// as a key; it does not need to be contiguous with other ids.
type State struct {
	Label string
	ID    int
}

// StateSet is the closed set of state ids known to an analysis: every id from 0
// to Max inclusive. Queries outside the set are errors rather than silent
// zeroes, so malformed classifier output is not absorbed into the statistics.
type StateSet struct {
	max int
}

// Contains returns whether id belongs to the set.
func (s *StateSet) Contains(id int) bool {
	return id >= 0 && id <= s.max
}

// Max returns the largest id in the set.
func (s *StateSet) Max() int { return s.max }

// Size returns the number of ids in the set, Max()+1.
func (s *StateSet) Size() int { return s.max + 1 }

// CountTable maps trajectory id -> state id -> number of observations. It is
// built once by CountOccupancy and read-only afterwards; in-set states that
// were never observed in a trajectory count as zero.
type CountTable struct {
	counts map[float64]map[int]int
	states *StateSet
}

// CountOccupancy tallies how many observations of each trajectory fall into
// each discrete state. rows and states must be parallel slices of equal length;
// a mismatch is an error (the alternative, pairing until the shorter runs out,
// silently discards data). trajcol is the column holding the trajectory number.
// Negative state ids are rejected; any non-negative id simply enlarges the
// closed state set.
func CountOccupancy(rows []Row, states []State, trajcol int) (*CountTable, error) {
	if rows == nil || states == nil {
		return nil, CError{ErrNilData, []string{"CountOccupancy"}}
	}
	if len(rows) != len(states) {
		return nil, CError{fmt.Sprintf("%s: %d rows, %d states", ErrRowStateMismatch, len(rows), len(states)), []string{"CountOccupancy"}}
	}
	ret := &CountTable{counts: make(map[float64]map[int]int), states: &StateSet{}}
	for i, line := range rows {
		id := states[i].ID
		if id < 0 {
			return nil, badState(id, "CountOccupancy")
		}
		if id > ret.states.max {
			ret.states.max = id
		}
		traj := line[trajcol]
		if _, ok := ret.counts[traj]; !ok {
			ret.counts[traj] = make(map[int]int)
		}
		ret.counts[traj][id]++
	}
	return ret, nil
}

// States returns the closed state set observed by the table.
func (ct *CountTable) States() *StateSet { return ct.states }

// Trajectories returns the observed trajectory ids, sorted ascending.
func (ct *CountTable) Trajectories() []float64 {
	trajs := make([]float64, 0, len(ct.counts))
	for traj := range ct.counts {
		trajs = append(trajs, traj)
	}
	sort.Float64s(trajs)
	return trajs
}

// Count returns the number of observations of the given state in the given
// trajectory. In-set states never observed in that trajectory yield zero;
// states outside the closed set, or unknown trajectories, yield an error.
func (ct *CountTable) Count(traj float64, id int) (int, error) {
	if !ct.states.Contains(id) {
		return 0, badState(id, "CountTable.Count")
	}
	c, ok := ct.counts[traj]
	if !ok {
		return 0, CError{fmt.Sprintf("%s: %v", ErrUnknownTraj, traj), []string{"CountTable.Count"}}
	}
	return c[id], nil
}

// Total returns the number of observations in the given trajectory, summed over
// all states.
func (ct *CountTable) Total(traj float64) (int, error) {
	c, ok := ct.counts[traj]
	if !ok {
		return 0, CError{fmt.Sprintf("%s: %v", ErrUnknownTraj, traj), []string{"CountTable.Total"}}
	}
	var total int
	for _, v := range c {
		total += v
	}
	return total, nil
}

func (ct *CountTable) String() string {
	ret := fmt.Sprintf("trajectories:%d states:%d\n", len(ct.counts), ct.states.Size())
	for _, traj := range ct.Trajectories() {
		ret += fmt.Sprintf("%v: %v\n", traj, ct.counts[traj])
	}
	return ret
}
