package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
)

func readCmd(args []string) {
	fs := flag.NewFlagSet("read", flag.ExitOnError)
	var (
		blockNum int
		nblocks  int
		outFile  string
		baud     int
		reset    bool
	)
	fs.IntVar(&blockNum, "block", 0, "starting block number")
	fs.IntVar(&nblocks, "n", 1, "number of 512-byte blocks to read")
	fs.StringVar(&outFile, "o", "", "output file (default: hexdump to stdout)")
	fs.IntVar(&baud, "baud-mhz", 0, "SPI clock rate in MHz (default: device default)")
	fs.BoolVar(&reset, "reset", false, "issue a software reset before identification")
	fs.Parse(args)

	d, err := openDevice(baud, reset)
	if err != nil {
		fatalf("%v", err)
	}

	buf := make([]byte, nblocks*int(d.Blocks.BlockSize()))
	if err := d.Blocks.ReadBlocks(uint32(blockNum), buf); err != nil {
		fatalf("read failed: %v", err)
	}

	if outFile == "" {
		fmt.Println(hex.Dump(buf))
		return
	}
	if err := os.WriteFile(outFile, buf, 0644); err != nil {
		fatalf("write file failed: %v", err)
	}
}
