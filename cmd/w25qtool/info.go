package main

import (
	"flag"
	"fmt"
)

func infoCmd(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	baud := fs.Int("baud-mhz", 0, "SPI clock rate in MHz (default: device default)")
	reset := fs.Bool("reset", false, "issue a software reset before identification")
	fs.Parse(args)

	d, err := openDevice(*baud, *reset)
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("Manufacturer:   0x%02x\n", d.Manufacturer())
	fmt.Printf("Memory type:    0x%02x\n", d.MemType())
	fmt.Printf("Capacity class: 0x%02x\n", d.CapacityClass())
	fmt.Printf("Capacity:       %d bytes (%d MiB)\n", d.Capacity(), d.Capacity()/(1<<20))
	fmt.Printf("Address width:  %d bytes\n", d.AddressWidth())
	fmt.Printf("Block count:    %d\n", d.Blocks.Count())

	sr, err := d.ReadStatusRegister()
	if err != nil {
		fatalf("read status register: %v", err)
	}
	fmt.Printf("Status reg 1:   %s\n", sr)
}
