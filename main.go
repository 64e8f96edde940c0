// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/alcoae/moose/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	log "github.com/sirupsen/logrus"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	flag.Parse()
	verfile := ""
	if flag.NArg() > 0 {
		verfile, _ = io.ArgToFilename(0, "", ".ver", true)
	}
	verbose := io.ArgToBool(1, false)

	// message
	if verbose {
		log.SetLevel(log.DebugLevel)
		io.Verbose = true
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"verification file (empty for defaults)", "verfile", verfile,
			"show messages", "verbose", verbose,
		))
	}

	// input data
	ver := inp.DefaultVer()
	if verfile != "" {
		var err error
		ver, err = inp.ReadVer(verfile)
		if err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}

	// run
	err := run(ver, verbose)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}
