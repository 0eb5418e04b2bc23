/*
 * pmf.go, part of chanstats.
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

//Package pmf turns paired dihedral series into 2D probability distributions
//and relative free-energy (potential of mean force) surfaces.
package pmf

import (
	"fmt"
	"math"

	chanstats "github.com/cing/chanstats"
	"github.com/cing/chanstats/histo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Options holds the settings for the free-energy transform. The defaults are
//the usual ones for chi1/chi2 rotamer maps: kBT for ~300 K in kcal/mol, a 7
//kcal/mol ceiling for unvisited cells, and 180 bins per axis over [0,360).
type Options struct {
	kbt    float64
	maxeng float64
	min    float64
	max    float64
	bins   int
}

//DefaultOptions returns an Options with the default settings.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.kbt = 0.596
	ret.maxeng = 7.0
	ret.min = 0
	ret.max = 360
	ret.bins = 180
	return ret
}

//KBT returns the current thermal energy scale and sets it to the given value,
//if a valid one is given.
func (r *Options) KBT(kbt ...float64) float64 {
	ret := r.kbt
	if len(kbt) > 0 && kbt[0] > 0 {
		r.kbt = kbt[0]
	}
	return ret
}

//MaxEnergy returns the ceiling energy assigned to zero-probability cells and
//sets it, if a value is given.
func (r *Options) MaxEnergy(maxeng ...float64) float64 {
	ret := r.maxeng
	if len(maxeng) > 0 {
		r.maxeng = maxeng[0]
	}
	return ret
}

//Range returns the current half-open binning range for both axes and sets it,
//if a valid pair is given.
func (r *Options) Range(minmax ...float64) (float64, float64) {
	retmin, retmax := r.min, r.max
	if len(minmax) >= 2 && minmax[1] > minmax[0] {
		r.min = minmax[0]
		r.max = minmax[1]
	}
	return retmin, retmax
}

//Bins returns the per-axis bin count and sets it, if a valid value is given.
func (r *Options) Bins(bins ...int) int {
	ret := r.bins
	if len(bins) > 0 && bins[0] > 0 {
		r.bins = bins[0]
	}
	return ret
}

//Surface is a relative free-energy surface over a 2D grid. Cell (i,j) covers
//[xedges[i],xedges[i+1]) x [yedges[j],yedges[j+1]); higher energies mean less
//probable regions, and cells never visited by the data sit at the ceiling
//energy.
type Surface struct {
	energy   *mat.Dense
	occupied *mat.Dense //1 where the joint histogram was non-zero
	xedges   []float64
	yedges   []float64
	ceiling  float64
}

//FromSeries bins the paired series (x[i], y[i]) into a joint 2D histogram,
//normalizes it to a probability density integrating to 1 over the range, and
//transforms it to a free-energy surface: E = -kBT*ln(p) for visited cells and
//the ceiling energy for unvisited ones. The visited energies are then shifted
//by their minimum so the most populated cell sits exactly at zero.
//
//Note the shift subtracts the signed minimum, not its absolute value. With
//coarse bins the minimum energy can come out non-negative and an
//absolute-value shift would push the surface up instead of anchoring it; the
//signed shift always anchors.
//
//Points outside the range, on either axis, are excluded from all cells.
func FromSeries(x, y []float64, options ...*Options) (*Surface, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	if x == nil || y == nil {
		return nil, Error{chanstats.ErrNilData, []string{"FromSeries"}}
	}
	if len(x) != len(y) {
		return nil, Error{fmt.Sprintf("paired series differ in length: %d x values, %d y values", len(x), len(y)), []string{"FromSeries"}}
	}
	bins := o.bins
	ret := &Surface{
		energy:   mat.NewDense(bins, bins, nil),
		occupied: mat.NewDense(bins, bins, nil),
		xedges:   floats.Span(make([]float64, bins+1), o.min, o.max),
		yedges:   floats.Span(make([]float64, bins+1), o.min, o.max),
		ceiling:  o.maxeng,
	}
	width := (o.max - o.min) / float64(bins)
	var total int
	for i, xv := range x {
		yv := y[i]
		xi := cell(xv, o.min, o.max, width, bins)
		yi := cell(yv, o.min, o.max, width, bins)
		if xi < 0 || yi < 0 {
			continue
		}
		ret.energy.Set(xi, yi, ret.energy.At(xi, yi)+1)
		total++
	}
	if total == 0 {
		return nil, Error{chanstats.ErrNoOccupiedBins, []string{"FromSeries"}}
	}
	//counts -> density -> energy
	norm := 1 / (float64(total) * width * width)
	min := math.Inf(1)
	for i := 0; i < bins; i++ {
		for j := 0; j < bins; j++ {
			c := ret.energy.At(i, j)
			if c <= 0 {
				ret.energy.Set(i, j, o.maxeng)
				continue
			}
			e := -o.kbt * math.Log(c*norm)
			ret.energy.Set(i, j, e)
			ret.occupied.Set(i, j, 1)
			if e < min {
				min = e
			}
		}
	}
	for i := 0; i < bins; i++ {
		for j := 0; j < bins; j++ {
			if ret.occupied.At(i, j) > 0 {
				ret.energy.Set(i, j, ret.energy.At(i, j)-min)
			}
		}
	}
	return ret, nil
}

//FromRows pools the chi1 and chi2 columns of rows (in matching order) and
//builds the surface from them.
func FromRows(rows []chanstats.Row, xcols, ycols []int, options ...*Options) (*Surface, error) {
	s, err := FromSeries(histo.Pool(rows, xcols...), histo.Pool(rows, ycols...), options...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

//cell returns the bin index for v, or -1 when v falls outside [min,max).
func cell(v, min, max, width float64, bins int) int {
	if v < min || v >= max {
		return -1
	}
	i := int((v - min) / width)
	if i >= bins { //floating point can push a value just under max into bin bins
		i = bins - 1
	}
	return i
}

//Dims returns the number of bins along x and y.
func (S *Surface) Dims() (int, int) {
	r, c := S.energy.Dims()
	return r, c
}

//At returns the energy of cell (i,j).
func (S *Surface) At(i, j int) float64 {
	return S.energy.At(i, j)
}

//Occupied returns whether cell (i,j) was visited by the data.
func (S *Surface) Occupied(i, j int) bool {
	return S.occupied.At(i, j) > 0
}

//Ceiling returns the energy assigned to unvisited cells.
func (S *Surface) Ceiling() float64 {
	return S.ceiling
}

//XEdges returns a copy of the bin edges along x, one element longer than the
//number of bins.
func (S *Surface) XEdges(dest ...[]float64) []float64 {
	return copyEdges(S.xedges, dest...)
}

//YEdges returns a copy of the bin edges along y.
func (S *Surface) YEdges(dest ...[]float64) []float64 {
	return copyEdges(S.yedges, dest...)
}

//Energies returns the energy grid itself, not a copy, for gonum consumers.
func (S *Surface) Energies() *mat.Dense {
	return S.energy
}

func copyEdges(edges []float64, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= len(edges) {
		d = dest[0][:len(edges)]
	} else {
		d = make([]float64, len(edges))
	}
	copy(d, edges)
	return d
}

//Errors

//Error is the structure for pmf errors. It fulfills chanstats.Error.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("pmf error: %s", err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	//Not a pointer receiver, but deco is a slice, hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
