// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the loading of gold results, comparisons and plotting
package out

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alcoae/moose/inp"
	"github.com/cpmech/gosl/chk"
)

// Gold holds the reference results read from a CSV file written by MOOSE
type Gold struct {
	File   string      // filename
	Header []string    // column names
	Rows   [][]float64 // [nrows][ncols] data
}

// ReadGold reads the header and at most nmax data lines from a gold CSV file.
// Every comma-separated token of a data line must be a number
func ReadGold(fn string, nmax int) (o *Gold, err error) {

	// open file
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// read lines
	o = &Gold{File: fn}
	sc := bufio.NewScanner(f)
	for idx := 0; idx <= nmax && sc.Scan(); idx++ {
		line := strings.TrimSpace(sc.Text())
		if idx == 0 {
			o.Header = strings.Split(line, ",")
			continue
		}
		tokens := strings.Split(line, ",")
		row := make([]float64, len(tokens))
		for j, t := range tokens {
			row[j], err = strconv.ParseFloat(strings.TrimSpace(t), 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: column %d: %w", fn, idx+1, j, err)
			}
		}
		o.Rows = append(o.Rows, row)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return
}

// Column returns the values of column idx from all rows
func (o Gold) Column(idx int) (res []float64, err error) {
	res = make([]float64, len(o.Rows))
	for i, row := range o.Rows {
		if idx < 0 || idx >= len(row) {
			return nil, chk.Err("%s: row %d has %d columns; cannot get column %d", o.File, i, len(row), idx)
		}
		res[i] = row[idx]
	}
	return
}

// ColumnByName returns the values of the column named in the header
func (o Gold) ColumnByName(name string) (res []float64, err error) {
	for j, h := range o.Header {
		if strings.TrimSpace(h) == name {
			return o.Column(j)
		}
	}
	return nil, chk.Err("%s: cannot find column %q in header %v", o.File, name, o.Header)
}

// Get returns the values of a column selected by name or index
func (o Gold) Get(key inp.ColKey) ([]float64, error) {
	if key.Name != "" {
		return o.ColumnByName(key.Name)
	}
	return o.Column(key.Idx)
}
