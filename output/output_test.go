package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	chanstats "github.com/cing/chanstats"
	"github.com/cing/chanstats/histo"
	"github.com/cing/chanstats/pmf"
	"github.com/klauspost/compress/zstd"
)

func readLines(Te *testing.T, name string) []string {
	b, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	if strings.HasSuffix(name, ".zst") {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			Te.Fatal(err)
		}
		defer dec.Close()
		b, err = dec.DecodeAll(b, nil)
		if err != nil {
			Te.Fatal(err)
		}
	}
	return strings.Split(strings.TrimSpace(string(b)), "\n")
}

func TestWriteHistogram(Te *testing.T) {
	d := histo.New(0, 360, 4)
	d.AddData(0, 0, 90, 90, 180, 180)
	for _, name := range []string{"chi1_dihedrals", "chi1_dihedrals.zst"} {
		file := filepath.Join(Te.TempDir(), name)
		if err := WriteHistogram(file, d); err != nil {
			Te.Fatal(err)
		}
		lines := readLines(Te, file)
		if len(lines) != 4 {
			Te.Fatalf("%s: %d lines, want one per bin (4)", name, len(lines))
		}
		wantEdges := []float64{0, 90, 180, 270}
		wantCounts := []float64{2, 2, 2, 0}
		for i, line := range lines {
			fields := strings.Fields(line)
			if len(fields) != 2 {
				Te.Fatalf("%s line %d: %q", name, i, line)
			}
			e, _ := strconv.ParseFloat(fields[0], 64)
			c, _ := strconv.ParseFloat(fields[1], 64)
			if e != wantEdges[i] || c != wantCounts[i] {
				Te.Errorf("%s line %d: %v %v, want %v %v", name, i, e, c, wantEdges[i], wantCounts[i])
			}
		}
	}
}

func TestWriteSurface(Te *testing.T) {
	o := pmf.DefaultOptions()
	o.Bins(2)
	s, err := pmf.FromSeries([]float64{10, 200}, []float64{10, 200}, o)
	if err != nil {
		Te.Fatal(err)
	}
	file := filepath.Join(Te.TempDir(), "chi1_chi2_rotamer")
	if err := WriteSurface(file, s); err != nil {
		Te.Fatal(err)
	}
	lines := readLines(Te, file)
	if len(lines) != 4 {
		Te.Fatalf("%d lines, want one per cell (4)", len(lines))
	}
	//row-major: cell (1,0) is the third line, unvisited, at the ceiling
	fields := strings.Fields(lines[2])
	if len(fields) != 3 {
		Te.Fatalf("line 2: %q", lines[2])
	}
	x, _ := strconv.ParseFloat(fields[0], 64)
	y, _ := strconv.ParseFloat(fields[1], 64)
	e, _ := strconv.ParseFloat(fields[2], 64)
	if x != 180 || y != 0 || e != s.Ceiling() {
		Te.Errorf("cell (1,0): %v %v %v, want 180 0 %v", x, y, e, s.Ceiling())
	}
}

func TestWritePercents(Te *testing.T) {
	rows := []chanstats.Row{{0, 1}, {1, 1}, {2, 2}, {3, 2}}
	states := []chanstats.State{{Label: "a", ID: 0}, {Label: "a", ID: 0}, {Label: "b", ID: 1}, {Label: "b", ID: 1}}
	ct, err := chanstats.CountOccupancy(rows, states, 1)
	if err != nil {
		Te.Fatal(err)
	}
	pt, err := ct.Percents([]int{10, 20})
	if err != nil {
		Te.Fatal(err)
	}
	file := filepath.Join(Te.TempDir(), "occupancy")
	if err := WritePercents(file, pt); err != nil {
		Te.Fatal(err)
	}
	lines := readLines(Te, file)
	fmt.Println(strings.Join(lines, "\n"))
	if len(lines) != 4 {
		Te.Fatalf("%d lines, want 2 trajectories plus MEAN and STDERR", len(lines))
	}
	if !strings.HasPrefix(lines[2], "MEAN ") || !strings.HasPrefix(lines[3], "STDERR ") {
		Te.Errorf("summary tags missing: %q / %q", lines[2], lines[3])
	}
	meanFields := strings.Fields(lines[2])
	if len(meanFields) != 4 {
		Te.Fatalf("MEAN row has %d fields, want tag + 2 states + average", len(meanFields))
	}
	if avg, _ := strconv.ParseFloat(meanFields[3], 64); avg != 15 {
		Te.Errorf("MEAN weighted average %v, want 15", avg)
	}
}

func TestClosedSink(Te *testing.T) {
	file := filepath.Join(Te.TempDir(), "closed")
	w, err := NewWriter(file)
	if err != nil {
		Te.Fatal(err)
	}
	if err := w.Record(1, 2); err != nil {
		Te.Fatal(err)
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
	if err := w.Record(3); err == nil {
		Te.Error("write on a closed sink accepted")
	}
	if err := w.Close(); err != nil {
		Te.Error("double Close should be a no-op, got", err)
	}
}
