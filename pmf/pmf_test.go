package pmf

import (
	"fmt"
	"math"
	"testing"

	chanstats "github.com/cing/chanstats"
)

const tol = 1e-9

//Four points in one cell and none anywhere else: the visited cell must anchor
//at zero and every other cell must sit exactly at the ceiling.
func TestSingleCell(Te *testing.T) {
	o := DefaultOptions()
	o.Bins(2)
	o.MaxEnergy(7.0)
	x := []float64{10, 20, 30, 40}
	y := []float64{10, 20, 30, 40}
	s, err := FromSeries(x, y, o)
	if err != nil {
		Te.Fatal(err)
	}
	r, c := s.Dims()
	if r != 2 || c != 2 {
		Te.Fatalf("dims %dx%d, want 2x2", r, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			e := s.At(i, j)
			if i == 0 && j == 0 {
				if !s.Occupied(i, j) || math.Abs(e) > tol {
					Te.Errorf("visited cell: energy %v, want 0", e)
				}
			} else if s.Occupied(i, j) || e != s.Ceiling() {
				Te.Errorf("unvisited cell (%d,%d): energy %v, want ceiling %v", i, j, e, s.Ceiling())
			}
		}
	}
}

//With two visited cells holding 3 and 1 points, the energy gap must be exactly
//kBT*ln(3) and the minimum exactly zero.
func TestEnergyGap(Te *testing.T) {
	o := DefaultOptions()
	o.Bins(2)
	kbt := o.KBT()
	x := []float64{10, 20, 30, 200}
	y := []float64{10, 20, 30, 200}
	s, err := FromSeries(x, y, o)
	if err != nil {
		Te.Fatal(err)
	}
	low := s.At(0, 0)
	high := s.At(1, 1)
	fmt.Println("low:", low, "high:", high)
	if math.Abs(low) > tol {
		Te.Errorf("most populated cell at %v, want 0", low)
	}
	if math.Abs(high-kbt*math.Log(3)) > tol {
		Te.Errorf("gap %v, want kBT*ln(3)=%v", high, kbt*math.Log(3))
	}
	//every visited cell is at or above the anchored minimum
	r, c := s.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if s.Occupied(i, j) && s.At(i, j) < -tol {
				Te.Errorf("cell (%d,%d) below the anchored minimum: %v", i, j, s.At(i, j))
			}
		}
	}
}

func TestFromRows(Te *testing.T) {
	rows := []chanstats.Row{
		{0, 170.2, 63.7, 80.1, 300.0},
		{1, 157.4, 78.0, 91.5, 310.2},
	}
	o := DefaultOptions()
	o.Bins(18)
	s, err := FromRows(rows, []int{1, 3}, []int{2, 4}, o)
	if err != nil {
		Te.Fatal(err)
	}
	var visited int
	r, c := s.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if s.Occupied(i, j) {
				visited++
			}
		}
	}
	if visited == 0 || visited > 4 {
		Te.Errorf("4 pooled pairs should visit between 1 and 4 cells, visited %d", visited)
	}
}

func TestDegenerateInputs(Te *testing.T) {
	if _, err := FromSeries([]float64{1, 2}, []float64{1}); err == nil {
		Te.Error("mismatched series lengths accepted")
	}
	if _, err := FromSeries(nil, nil); err == nil {
		Te.Error("nil series accepted")
	}
	//all points out of range: no visited cell to anchor on
	o := DefaultOptions()
	o.Bins(4)
	if _, err := FromSeries([]float64{-5, 400}, []float64{-5, 400}, o); err == nil {
		Te.Error("expected an error when no observation falls inside the range")
	} else {
		fmt.Println("empty surface:", err)
	}
}

func TestOptionDefaults(Te *testing.T) {
	o := DefaultOptions()
	if o.KBT() != 0.596 || o.MaxEnergy() != 7.0 || o.Bins() != 180 {
		Te.Errorf("unexpected defaults: kBT %v ceiling %v bins %d", o.KBT(), o.MaxEnergy(), o.Bins())
	}
	min, max := o.Range()
	if min != 0 || max != 360 {
		Te.Errorf("unexpected default range [%v,%v)", min, max)
	}
	o.Range(-180, 180)
	if min, max = o.Range(); min != -180 || max != 180 {
		Te.Errorf("Range setter ignored: [%v,%v)", min, max)
	}
	//invalid settings leave the old values in place
	o.Bins(-3)
	if o.Bins() != 180 {
		Te.Errorf("negative bin count accepted: %d", o.Bins())
	}
}
