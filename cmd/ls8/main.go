// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/ezrec/ls8/emulator"
)

// HALT_EXIT_STATUS is the process exit status after a halt instruction.
const HALT_EXIT_STATUS = 1

func main() {
	var output string
	var verbose bool
	var zero bool

	flag.StringVar(&output, "o", "-", "Output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&zero, "z", false, "Exit with status 0 on halt")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: %v [-v] [-z] [-o output] image.ls8", os.Args[0], os.Args[0])
	}

	image := flag.Arg(0)

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	inf, err := os.Open(image)
	if err != nil {
		log.Fatalf("%v: %v", image, err)
	}
	err = emu.Rom.Parse(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", image, err)
	}

	var ouf *os.File
	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		emu.Tape.Output = ouf
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", image, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = emu.Run(ctx)
	stop()

	if ouf != nil {
		ouf.Close()
	}

	if err != nil {
		log.Fatalf("%v: %v", image, err)
	}

	if zero {
		os.Exit(0)
	}

	os.Exit(HALT_EXIT_STATUS)
}
