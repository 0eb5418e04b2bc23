/*
 * json.go, part of chanstats.
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

import "encoding/json"

// JSON codecs for the aggregation tables, so results can be handed to external
// plotting or archival tools. Counts are serialized densely, one row of
// state-set size per trajectory, since float map keys don't survive JSON.

func (ct *CountTable) MarshalJSON() ([]byte, error) {
	trajs := ct.Trajectories()
	counts := make([][]int, len(trajs))
	for i, traj := range trajs {
		counts[i] = make([]int, ct.states.Size())
		for id := 0; id <= ct.states.max; id++ {
			counts[i][id] = ct.counts[traj][id]
		}
	}
	j, err := json.Marshal(struct {
		Trajs  []float64 `json:"trajs"`
		MaxID  int       `json:"max_id"`
		Counts [][]int   `json:"counts"`
	}{
		Trajs:  trajs,
		MaxID:  ct.states.max,
		Counts: counts,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (ct *CountTable) UnmarshalJSON(b []byte) error {
	var a struct {
		Trajs  []float64 `json:"trajs"`
		MaxID  int       `json:"max_id"`
		Counts [][]int   `json:"counts"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	ct.states = &StateSet{max: a.MaxID}
	ct.counts = make(map[float64]map[int]int, len(a.Trajs))
	for i, traj := range a.Trajs {
		ct.counts[traj] = make(map[int]int)
		for id, count := range a.Counts[i] {
			if count != 0 {
				ct.counts[traj][id] = count
			}
		}
	}
	return nil
}

func (pt *PercentTable) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		MaxID int          `json:"max_id"`
		Rows  []PercentRow `json:"rows"`
	}{
		MaxID: pt.States.max,
		Rows:  pt.Rows,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (pt *PercentTable) UnmarshalJSON(b []byte) error {
	var a struct {
		MaxID int          `json:"max_id"`
		Rows  []PercentRow `json:"rows"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	pt.States = &StateSet{max: a.MaxID}
	pt.Rows = a.Rows
	return nil
}
