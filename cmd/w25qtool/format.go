package main

import (
	"flag"
	"fmt"
)

func formatCmd(args []string) {
	fs := flag.NewFlagSet("format", flag.ExitOnError)
	var (
		baud    int
		reset   bool
		confirm bool
	)
	fs.IntVar(&baud, "baud-mhz", 0, "SPI clock rate in MHz (default: device default)")
	fs.BoolVar(&reset, "reset", false, "issue a software reset before identification")
	fs.BoolVar(&confirm, "yes", false, "confirm whole-chip erase")
	fs.Parse(args)

	if !confirm {
		fatalUsage("format erases the entire chip; pass -yes to confirm")
	}

	d, err := openDevice(baud, reset)
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("erasing %d bytes...\n", d.Capacity())
	if err := d.Format(); err != nil {
		fatalf("format failed: %v", err)
	}
	fmt.Println("done")
}
