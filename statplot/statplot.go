/*
 * statplot.go, part of chanstats.
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

/*Package statplot renders chanstats results with gonum/plot, in the form of
little functions with practical defaults: population curves for 1D histograms,
scatter time series of dihedral values per trajectory, and heat maps of
free-energy surfaces.*/
package statplot

import (
	"fmt"

	"github.com/cing/chanstats/histo"
	"github.com/cing/chanstats/pmf"
	"github.com/cing/chanstats/series"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//Histogram plots the population curve of d, one point per bin at the bin
//center, and saves it as plotname.png.
func Histogram(d *histo.Data, title, plotname string) error {
	if d == nil {
		return Error{"Given nil histogram", []string{"Histogram"}}
	}
	p := basicPlot(title, "Dihedral (degrees)", "Population")
	edges := d.Edges()
	counts := d.Counts()
	pts := make(plotter.XYs, len(counts))
	for i, c := range counts {
		pts[i].X = (edges[i] + edges[i+1]) / 2
		pts[i].Y = c
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return Error{err.Error(), []string{"Histogram"}}
	}
	p.Add(l)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(12*vg.Centimeter, 8*vg.Centimeter, filename); err != nil {
		return Error{err.Error(), []string{"Histogram"}}
	}
	return nil
}

//TimeSeries plots the given series of every trajectory in s as one scatter per
//trajectory, colors cycling through the plotutil palette, and saves the result
//as plotname.png.
func TimeSeries(s *series.Set, seriesIdx int, title, plotname string) error {
	if s == nil {
		return Error{"Given nil series set", []string{"TimeSeries"}}
	}
	p := basicPlot(title, "Time", "Value")
	for key, traj := range s.Trajectories() {
		vals := s.Values(traj, seriesIdx)
		times := s.Times(traj, seriesIdx)
		pts := make(plotter.XYs, len(vals))
		for i, v := range vals {
			pts[i].X = times[i]
			pts[i].Y = v
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return Error{err.Error(), []string{"TimeSeries"}}
		}
		sc.GlyphStyle.Color = plotutil.Color(key)
		p.Add(sc)
		p.Legend.Add(fmt.Sprintf("traj %v", traj), sc)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(12*vg.Centimeter, 8*vg.Centimeter, filename); err != nil {
		return Error{err.Error(), []string{"TimeSeries"}}
	}
	return nil
}

//Surface renders s as a heat map and saves it as plotname.png. Low energies
//(high populations) come out dark.
func Surface(s *pmf.Surface, title, plotname string) error {
	if s == nil {
		return Error{"Given nil surface", []string{"Surface"}}
	}
	p := basicPlot(title, "Chi1 (degrees)", "Chi2 (degrees)")
	h := plotter.NewHeatMap(grid{s}, palette.Heat(12, 1))
	p.Add(h)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(12*vg.Centimeter, 12*vg.Centimeter, filename); err != nil {
		return Error{err.Error(), []string{"Surface"}}
	}
	return nil
}

//grid adapts a pmf.Surface to plotter.GridXYZ. Cells are addressed by their
//centers.
type grid struct {
	s *pmf.Surface
}

func (g grid) Dims() (int, int) {
	return g.s.Dims()
}

func (g grid) Z(c, r int) float64 {
	return g.s.At(c, r)
}

func (g grid) X(c int) float64 {
	e := g.s.XEdges()
	return (e[c] + e[c+1]) / 2
}

func (g grid) Y(r int) float64 {
	e := g.s.YEdges()
	return (e[r] + e[r+1]) / 2
}

//Errors

//Error is the structure for statplot errors. It fulfills chanstats.Error.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("statplot error: %s", err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	//Not a pointer receiver, but deco is a slice, hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
