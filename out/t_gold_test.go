// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/alcoae/moose/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/go-cmp/cmp"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_gold01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gold01. header, 11 rows and trailing rows")

	gold, err := ReadGold("testdata/twelve.csv", 11)
	if err != nil {
		tst.Errorf("ReadGold failed:\n%v", err)
		return
	}
	io.Pforan("header = %v\n", gold.Header)

	chk.Int(tst, "nrows", len(gold.Rows), 11)
	for i, row := range gold.Rows {
		chk.Int(tst, io.Sf("ncols @ row %d", i), len(row), 5)
		correct := make([]float64, 5)
		for j := range correct {
			correct[j] = float64(10*i+j) + 0.5
		}
		if diff := cmp.Diff(correct, row); diff != "" {
			tst.Errorf("row %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	if diff := cmp.Diff([]string{"c0", "c1", "c2", "c3", "c4"}, gold.Header); diff != "" {
		tst.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	c3, err := gold.Column(3)
	if err != nil {
		tst.Errorf("Column failed:\n%v", err)
		return
	}
	chk.Float64(tst, "c3[0]", 1e-17, c3[0], 3.5)
	chk.Float64(tst, "c3[10]", 1e-17, c3[10], 103.5)

	c4, err := gold.Get(inp.ColKey{Name: "c4"})
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	chk.Float64(tst, "c4[10]", 1e-17, c4[10], 104.5)
}

func Test_gold02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gold02. short file")

	gold, err := ReadGold("testdata/short.csv", 11)
	if err != nil {
		tst.Errorf("ReadGold failed:\n%v", err)
		return
	}
	chk.Int(tst, "nrows", len(gold.Rows), 2)
	chk.Int(tst, "ncols @ row 1", len(gold.Rows[1]), 3)

	c2, err := gold.Column(2)
	if err != nil {
		tst.Errorf("Column(2) failed:\n%v", err)
		return
	}
	if diff := cmp.Diff([]float64{3, 8}, c2); diff != "" {
		tst.Errorf("column 2 mismatch (-want +got):\n%s", diff)
	}

	_, err = gold.Column(4)
	if err == nil {
		tst.Errorf("Column(4) should have failed: row 1 has 3 columns only\n")
	}
	_, err = gold.ColumnByName("wc_z")
	if err == nil {
		tst.Errorf("ColumnByName should have failed\n")
	}
}

func Test_gold03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gold03. errors")

	_, err := ReadGold("testdata/bad.csv", 11)
	if err == nil {
		tst.Errorf("ReadGold should have failed with non-numeric token\n")
	}
	io.Pforan("err = %v\n", err)

	_, err = ReadGold("testdata/nonexistent.csv", 11)
	if err == nil {
		tst.Errorf("ReadGold should have failed with missing file\n")
	}

	// bad row beyond nmax is not parsed
	gold, err := ReadGold("testdata/bad.csv", 1)
	if err != nil {
		tst.Errorf("ReadGold failed:\n%v", err)
		return
	}
	chk.Int(tst, "nrows", len(gold.Rows), 1)
}

func Test_gold04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gold04. MOOSE columns")

	gold, err := ReadGold("testdata/glide.csv", 11)
	if err != nil {
		tst.Errorf("ReadGold failed:\n%v", err)
		return
	}
	ver := inp.DefaultVer()
	rotI, err := gold.Get(ver.Columns.Rot)
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	rotN, err := gold.Get(inp.ColKey{Name: "wc_z"})
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	if diff := cmp.Diff(rotI, rotN); diff != "" {
		tst.Errorf("positional and named columns differ (-idx +name):\n%s", diff)
	}
	chk.Int(tst, "nrot", len(rotI), 11)
	chk.Float64(tst, "rot[10]", 1e-17, rotI[10], 3.62674598352)
}
