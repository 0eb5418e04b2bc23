//Package histo bins pooled scalar observations, typically dihedral angles,
//into fixed-range 1D distributions. Binning is half-open: a value v lands in
//bin j when dividers[j] <= v < dividers[j+1], and values outside
//[dividers[0], dividers[len-1]) are excluded from every bin.
package histo

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	chanstats "github.com/cing/chanstats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Pool extracts the given columns from every row and concatenates them into one
//slice, in row order. Values from several columns end up in one combined
//distribution, not averaged. It always returns a freshly allocated slice.
func Pool(rows []chanstats.Row, cols ...int) []float64 {
	vals := make([]float64, 0, len(rows)*len(cols))
	for _, line := range rows {
		for _, col := range cols {
			vals = append(vals, line[col])
		}
	}
	return vals
}

//Data is a 1D histogram. The dividers slice (bins+1 edges) is fixed at
//construction; the histo slice holds one count, or density after Normalize,
//per bin.
type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//New returns an empty histogram of bins fixed-width bins over the half-open
//range [min,max). It panics on a non-positive bin count or an empty range, as
//those are programming errors rather than data problems.
func New(min, max float64, bins int) *Data {
	if bins <= 0 || max <= min {
		panic(fmt.Sprintf("chanstats/histo.New: bad range [%v,%v) or bin count %d", min, max, bins))
	}
	return NewData(floats.Span(make([]float64, bins+1), min, max), nil)
}

//NewData returns a histogram with the given dividers, filled with rawdata,
//which can be nil for an empty histogram. If an ID is given it is set,
//otherwise the ID is -1. The dividers are copied so later changes by the
//caller don't corrupt the histogram.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	d := new(Data)
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

//FromRows pools the given columns of rows (see Pool) and bins them over
//[min,max) with bins bins.
func FromRows(rows []chanstats.Row, cols []int, min, max float64, bins int) *Data {
	d := New(min, max, bins)
	d.AddData(Pool(rows, cols...)...)
	return d
}

//ID returns the ID of the histogram.
func (D *Data) ID() int {
	return D.id
}

//Bins returns the number of bins.
func (D *Data) Bins() int {
	return len(D.histo)
}

//Total returns the number of data points added so far, excluding those that
//fell outside the range.
func (D *Data) Total() int {
	return D.total
}

//AddData adds the given data point(s) to the histogram. Points at or above the
//last divider, or below the first, are omitted and do not count towards the
//total.
func (D *Data) AddData(point ...float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	added := 0
	for _, v := range point {
		for j, w := range D.dividers {
			if j == len(D.dividers)-1 {
				break
			}
			if w <= v && v < D.dividers[j+1] {
				D.histo[j]++
				added++
				break
			}
		}
	}
	D.total += added
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

//ReHisto replaces the contents of the histogram, binning rawdata over the
//given dividers. rawdata is sorted in place and values off the ends of the
//range are clipped away before the call to stat.Histogram, which would
//otherwise panic on them.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	if rawdata != nil {
		sort.Float64s(rawdata)
		maxi := sort.SearchFloat64s(rawdata, dividers[len(dividers)-1])
		mini := sort.SearchFloat64s(rawdata, dividers[0])
		if maxi < len(rawdata) {
			rawdata = rawdata[:maxi]
		}
		if mini != 0 {
			rawdata = rawdata[mini:]
		}
	}
	D.total = len(rawdata) //as this could have been modified
	D.normalized = false
	D.histo = stat.Histogram(nil, dividers, rawdata, nil)
}

//Normalized returns true if the histogram is normalized.
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram so the bin values sum to 1.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize takes the histogram back to raw counts.
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//Edges returns a copy of the full divider array, one element longer than the
//number of bins. The optional dest slice is reused if it's large enough.
func (D *Data) Edges(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	return floats.ScaleTo(d, 1, D.dividers)
}

//Counts returns a copy of the per-bin values. The optional dest slice is
//reused if it's large enough.
func (D *Data) Counts(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	return floats.ScaleTo(d, 1, D.histo)
}

//View returns the per-bin values themselves, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

//Sum returns the sum of all bin values: the total count, or 1 for a normalized
//histogram with data in range.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//Add adds the histograms a and b putting the result in the receiver. The
//dividers of a and b must match.
func (D *Data) Add(a, b *Data) {
	D.dividers = a.Edges(D.dividers)
	if len(a.dividers) != len(b.dividers) {
		panic("chanstats/histo.Data.Add: Ill-formed histograms for addition")
	}
	if len(D.histo) != len(a.histo) {
		D.histo = make([]float64, len(a.histo))
	}
	for i, v := range a.dividers {
		if v != b.dividers[i] {
			panic("chanstats/histo.Data.Add: Dividers must match in added histograms")
		}
		if i == len(a.dividers)-1 {
			break //histo has 1 less element than dividers
		}
		D.histo[i] = a.histo[i] + b.histo[i]
	}
	D.total = a.total + b.total
}

//String prints a -hopefully- pretty string representation of the histogram,
//using 3 lines of text.
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.dividers)-1)
	h := make([]string, 0, len(D.dividers)-1)
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

func (D *Data) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

//A Matrix of histograms, row-major. Useful for trajectory x series grids of
//dihedral populations that all share the same dividers.
type Matrix struct {
	rows, cols int
	d          []*Data
	dividers   []float64 //if not nil, all histograms share these dividers
}

//NewMatrix returns a new matrix of *Data with r rows and c columns and the
//given dividers. Dividers can be nil, in which case the elements of the matrix
//are not forced to share dividers.
func NewMatrix(r, c int, dividers []float64) *Matrix {
	ret := new(Matrix)
	ret.rows = r
	ret.cols = c
	ret.d = make([]*Data, r*c)
	ret.dividers = dividers
	return ret
}

func (M *Matrix) Dims() (int, int) {
	return M.rows, M.cols
}

//Fill fills the matrix with empty histograms. The matrix must have a non-nil
//dividers slice, which is used for all the histograms created.
func (M *Matrix) Fill() {
	for i := 0; i < M.rows; i++ {
		for j := 0; j < M.cols; j++ {
			M.NewHisto(i, j, M.dividers, nil)
		}
	}
}

//Check checks if the given row and column indexes are within range. If pan is
//given and true, it panics on an out-of-range index, otherwise it returns an
//error.
func (M *Matrix) Check(r, c int, pan ...bool) error {
	p := len(pan) > 0 && pan[0]
	var err error
	if r < 0 || r >= M.rows {
		err = fmt.Errorf("chanstats/histo: Row out of range")
	}
	if c < 0 || c >= M.cols {
		err = fmt.Errorf("chanstats/histo: Column out of range")
	}
	if err != nil && p {
		panic(err.Error())
	}
	return err
}

//returns the index in the []*Data slice of a matrix given
//the row and column indexes.
func (M *Matrix) rc2i(r, c int) int {
	M.Check(r, c, true)
	return M.cols*r + c
}

//NewHisto puts a new histogram in the r,c position of the matrix. dividers can
//be nil, in which case the matrix's own dividers are used; if neither exists
//the function panics. rawdata can also be nil for an empty histogram.
func (M *Matrix) NewHisto(r, c int, dividers []float64, rawdata []float64, ID ...int) {
	if dividers == nil {
		if M.dividers != nil {
			dividers = M.dividers
		} else {
			panic("chanstats/histo.Matrix.NewHisto: dividers not given, and can't be taken from the matrix")
		}
	} else if M.dividers != nil && !floats.Equal(M.dividers, dividers) {
		log.Printf("chanstats/histo.Matrix.NewHisto: dividers given but don't match the dividers of the matrix. The matrix's dividers will be used.")
		dividers = M.dividers
	}
	M.d[M.rc2i(r, c)] = NewData(dividers, rawdata, ID...)
}

//View returns a view of the histogram in the r,c position of the matrix.
func (M *Matrix) View(r, c int) *Data {
	return M.d[M.rc2i(r, c)]
}

//AddData adds one or more data points to the histogram in the r,c position.
func (M *Matrix) AddData(r, c int, point ...float64) {
	M.d[M.rc2i(r, c)].AddData(point...)
}

//NormalizeAll normalizes every histogram in the matrix.
func (M *Matrix) NormalizeAll() {
	for _, v := range M.d {
		v.Normalize()
	}
}

//UnNormalizeAll takes every histogram in the matrix back to raw counts.
func (M *Matrix) UnNormalizeAll() {
	for _, v := range M.d {
		v.UnNormalize()
	}
}

//FromAll applies the f function to each element of the matrix and collects the
//results in a [][]float64. It returns an error on the first element where f
//fails.
func (M *Matrix) FromAll(f func(D *Data) (float64, error)) ([][]float64, error) {
	r := make([][]float64, M.rows)
	var err error
	for i := 0; i < M.rows; i++ {
		r[i] = make([]float64, M.cols)
		for j := 0; j < M.cols; j++ {
			r[i][j], err = f(M.d[M.rc2i(i, j)])
			if err != nil {
				return nil, fmt.Errorf("chanstats/histo.Matrix.FromAll: Error at %d, %d: %v", i, j, err)
			}
		}
	}
	return r, nil
}

func (M *Matrix) String() string {
	ret := fmt.Sprintf("rows:%d cols:%d | Data:\n", M.rows, M.cols)
	t := make([]string, 0, len(M.d))
	for _, v := range M.d {
		t = append(t, v.String())
	}
	return ret + strings.Join(t, "\n\n")
}

func (M *Matrix) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Rows     int       `json:"rows"`
		Cols     int       `json:"cols"`
		D        []*Data   `json:"data"`
		Dividers []float64 `json:"dividers"`
	}{
		Rows:     M.rows,
		Cols:     M.cols,
		D:        M.d,
		Dividers: M.dividers,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (M *Matrix) UnmarshalJSON(b []byte) error {
	var a struct {
		Rows     int       `json:"rows"`
		Cols     int       `json:"cols"`
		D        []*Data   `json:"data"`
		Dividers []float64 `json:"dividers"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	M.rows = a.Rows
	M.cols = a.Cols
	M.d = a.D
	M.dividers = a.Dividers
	return nil
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0]
		if len(dest[0]) > N {
			d = dest[0][:N] //floats.ScaleTo wants both slices to _match_
		}
	} else {
		d = make([]float64, N)
	}
	return d
}
