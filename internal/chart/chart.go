// Package chart renders line charts from the CSV files an evolution run
// writes at every update: update number in one column, population scores
// in the others.
package chart

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Frame is a column-oriented slice of a run's CSV output.
type Frame struct {
	Labels []string    // one label per column
	Cols   [][]float64 // column data, all the same length
}

// Rows returns the number of data rows in the frame.
func (f *Frame) Rows() int {
	if len(f.Cols) == 0 {
		return 0
	}
	return len(f.Cols[0])
}

// LoadOptions controls which part of a CSV file becomes the frame.
type LoadOptions struct {
	SkipRows int   // leading rows to drop before any parsing
	Cols     []int // columns to keep, in order; nil keeps all
}

// LoadCSV reads the run output at path into a Frame. After SkipRows rows
// are dropped, a leading row whose first field is not numeric is taken as
// a header and supplies the column labels; otherwise labels default to
// "col N". Every remaining row must parse as floats in the selected
// columns.
func LoadCSV(path string, opts LoadOptions) (*Frame, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if opts.SkipRows > len(records) {
		return nil, fmt.Errorf("csv %s: skip-rows %d exceeds %d rows", path, opts.SkipRows, len(records))
	}
	records = records[opts.SkipRows:]
	if len(records) == 0 {
		return nil, fmt.Errorf("csv %s: no data rows", path)
	}

	var header []string
	if _, err := strconv.ParseFloat(records[0][0], 64); err != nil {
		header = records[0]
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv %s: header but no data rows", path)
	}

	cols := opts.Cols
	if cols == nil {
		for i := range records[0] {
			cols = append(cols, i)
		}
	}

	f := &Frame{
		Labels: make([]string, len(cols)),
		Cols:   make([][]float64, len(cols)),
	}
	for i, c := range cols {
		if c < len(header) {
			f.Labels[i] = header[c]
		} else {
			f.Labels[i] = fmt.Sprintf("col %d", c)
		}
		f.Cols[i] = make([]float64, 0, len(records))
	}

	for rowNo, rec := range records {
		for i, c := range cols {
			if c >= len(rec) {
				return nil, fmt.Errorf("csv %s row %d: no column %d", path, rowNo+1, c)
			}
			v, err := strconv.ParseFloat(rec[c], 64)
			if err != nil {
				return nil, fmt.Errorf("csv %s row %d column %d: %w", path, rowNo+1, c, err)
			}
			f.Cols[i] = append(f.Cols[i], v)
		}
	}
	return f, nil
}

// Config holds the chart decoration.
type Config struct {
	Title  string
	XLabel string
	YLabel string
}

// Render draws the frame as a line chart and writes it to outPath. The
// frame's first column is the X axis; every other column becomes one
// line, labeled and legended. The image format follows the path
// extension (.png, .svg, .pdf, ...).
func Render(f *Frame, cfg Config, outPath string) error {
	if len(f.Cols) < 2 {
		return fmt.Errorf("chart needs an x column and at least one series, have %d columns", len(f.Cols))
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	x := f.Cols[0]
	for s := 1; s < len(f.Cols); s++ {
		pts := make(plotter.XYs, len(x))
		for i := range x {
			pts[i].X = x[i]
			pts[i].Y = f.Cols[s][i]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("series %q: %w", f.Labels[s], err)
		}
		line.Color = plotutil.Color(s - 1)
		p.Add(line)
		p.Legend.Add(f.Labels[s], line)
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, outPath); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
