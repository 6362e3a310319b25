package main

import (
	"flag"
	"os"
)

func writeCmd(args []string) {
	fs := flag.NewFlagSet("write", flag.ExitOnError)
	var (
		filename string
		blockNum int
		baud     int
		reset    bool
	)
	fs.StringVar(&filename, "f", "", "input file")
	fs.IntVar(&blockNum, "block", 0, "starting block number")
	fs.IntVar(&baud, "baud-mhz", 0, "SPI clock rate in MHz (default: device default)")
	fs.BoolVar(&reset, "reset", false, "issue a software reset before identification")
	fs.Parse(args)

	if filename == "" {
		fatalUsage("input file is required")
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		fatalf("failed to read file: %v", err)
	}

	d, err := openDevice(baud, reset)
	if err != nil {
		fatalf("%v", err)
	}

	if err := d.Blocks.WriteBlocks(uint32(blockNum), data); err != nil {
		fatalf("write failed: %v", err)
	}
}
