/*
 * output.go, part of chanstats.
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

//Package output writes analysis results as space-separated text, one line per
//record, the format external plotting programs expect. Files whose name ends
//in ".zst" are transparently zstd-compressed; rotamer maps at fine binning get
//large enough for that to matter.
package output

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	chanstats "github.com/cing/chanstats"
	"github.com/cing/chanstats/histo"
	"github.com/cing/chanstats/pmf"
	"github.com/klauspost/compress/zstd"
)

//Writer is a line-oriented sink for numeric records.
type Writer struct {
	f         *os.File
	comp      *zstd.Encoder //nil for plain text
	buf       *bufio.Writer
	filename  string
	writeable bool
}

//NewWriter creates the named file and returns a Writer on it. A ".zst" suffix
//selects zstd compression.
func NewWriter(name string) (*Writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen, name, []string{"NewWriter"}}
	}
	w := &Writer{f: f, filename: name, writeable: true}
	if strings.HasSuffix(name, ".zst") {
		w.comp, err = zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, Error{err.Error(), name, []string{"NewWriter"}}
		}
		w.buf = bufio.NewWriter(w.comp)
	} else {
		w.buf = bufio.NewWriter(f)
	}
	return w, nil
}

//Record writes one space-separated line with the given fields.
func (w *Writer) Record(fields ...float64) error {
	return w.TaggedRecord("", fields...)
}

//TaggedRecord writes one line with a leading string field, used for the MEAN
//and STDERR rows of percent tables. An empty tag is omitted.
func (w *Writer) TaggedRecord(tag string, fields ...float64) error {
	if !w.writeable {
		return Error{SinkClosed, w.filename, []string{"TaggedRecord"}}
	}
	strs := make([]string, 0, len(fields)+1)
	if tag != "" {
		strs = append(strs, tag)
	}
	for _, v := range fields {
		strs = append(strs, strconv.FormatFloat(v, 'g', -1, 64))
	}
	if _, err := w.buf.WriteString(strings.Join(strs, " ") + "\n"); err != nil {
		return Error{err.Error(), w.filename, []string{"TaggedRecord"}}
	}
	return nil
}

//Close flushes and closes the sink. A Writer must not be used after Close.
func (w *Writer) Close() error {
	if w == nil || !w.writeable {
		return nil
	}
	w.writeable = false
	if err := w.buf.Flush(); err != nil {
		return Error{err.Error(), w.filename, []string{"Close"}}
	}
	if w.comp != nil {
		if err := w.comp.Close(); err != nil {
			return Error{err.Error(), w.filename, []string{"Close"}}
		}
	}
	if err := w.f.Close(); err != nil {
		return Error{err.Error(), w.filename, []string{"Close"}}
	}
	return nil
}

//WriteHistogram writes one "edge count" line per bin of d to the named file.
//The edge written is the left boundary of the bin, so edges and counts pair up
//one to one and the upper bound of the range never appears in the output.
func WriteHistogram(name string, d *histo.Data) error {
	w, err := NewWriter(name)
	if err != nil {
		return err
	}
	edges := d.Edges()
	counts := d.Counts()
	for i, c := range counts {
		if err := w.Record(edges[i], c); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}

//WriteSurface writes one "xedge yedge energy" line per grid cell of s to the
//named file, row-major. As with histograms, the edges written are the left
//boundaries of each cell.
func WriteSurface(name string, s *pmf.Surface) error {
	w, err := NewWriter(name)
	if err != nil {
		return err
	}
	xedges := s.XEdges()
	yedges := s.YEdges()
	r, c := s.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := w.Record(xedges[i], yedges[j], s.At(i, j)); err != nil {
				w.Close()
				return err
			}
		}
	}
	return w.Close()
}

//WritePercents writes one line per trajectory row of pt, followed by the MEAN
//and STDERR lines, all in the same column layout: identifier, one percentage
//per state, weighted average.
func WritePercents(name string, pt *chanstats.PercentTable) error {
	w, err := NewWriter(name)
	if err != nil {
		return err
	}
	for _, row := range pt.Rows {
		fields := make([]float64, 0, len(row.Percents)+2)
		if row.Tag == "" {
			fields = append(fields, row.TrajID)
		}
		fields = append(fields, row.Percents...)
		fields = append(fields, row.WeightedAvg)
		if err := w.TaggedRecord(row.Tag, fields...); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}

//Errors

//Error is the structure for output errors. It fulfills chanstats.Error.
type Error struct {
	message  string
	filename string
	deco     []string
}

func (err Error) Error() string {
	return fmt.Sprintf("output file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	//Not a pointer receiver, but deco is a slice, hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file the failing sink was associated to.
func (err Error) FileName() string { return err.filename }

const (
	UnableToOpen = "Unable to open file"
	SinkClosed   = "Sink already closed"
)
