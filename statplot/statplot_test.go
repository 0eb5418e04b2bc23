/*This provides some tests for the plotting functions, in the form of little
 * functions that have practical applications*/

package statplot

import (
	"os"
	"path/filepath"
	"testing"

	chanstats "github.com/cing/chanstats"
	"github.com/cing/chanstats/histo"
	"github.com/cing/chanstats/pmf"
	"github.com/cing/chanstats/series"
)

func checkPNG(Te *testing.T, plotname string) {
	info, err := os.Stat(plotname + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Errorf("%s.png is empty", plotname)
	}
}

func testRows() []chanstats.Row {
	rows := []chanstats.Row{}
	for t := 1; t <= 2; t++ {
		for i := 0; i < 30; i++ {
			rows = append(rows, chanstats.Row{float64(i), float64((i * 37) % 360), float64((i * 91) % 360), float64(t)})
		}
	}
	return rows
}

func TestHistogramPlot(Te *testing.T) {
	d := histo.FromRows(testRows(), []int{1, 2}, 0, 360, 36)
	name := filepath.Join(Te.TempDir(), "chi1_hist")
	if err := Histogram(d, "Chi1 population", name); err != nil {
		Te.Error(err)
	}
	checkPNG(Te, name)
}

func TestTimeSeriesPlot(Te *testing.T) {
	s := series.Reshape(testRows(), chanstats.NewLayout(3), []int{1, 2})
	name := filepath.Join(Te.TempDir(), "chi1_timeseries")
	if err := TimeSeries(s, 0, "Chi1 vs time", name); err != nil {
		Te.Error(err)
	}
	checkPNG(Te, name)
}

func TestSurfacePlot(Te *testing.T) {
	rows := testRows()
	o := pmf.DefaultOptions()
	o.Bins(36)
	surf, err := pmf.FromRows(rows, []int{1}, []int{2}, o)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "chi1_chi2_pmf")
	if err := Surface(surf, "Chi1 vs Chi2 PMF", name); err != nil {
		Te.Error(err)
	}
	checkPNG(Te, name)
}
