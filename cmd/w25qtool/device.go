package main

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/ftdi"

	"github.com/brainelectronics/w25q"
)

// [EB82|Appendix A. Sheet 2 of 5 (USB to SPI/RS232)]
// ADBUS0 | SCK
// ADBUS1 | MOSI
// ADBUS2 | MISO
// ADBUS4 | CS (flash chip select)
const (
	vendorID  = 0x0403 // FTDI
	productID = 0x6010 // FT2232H
)

// openFT2232H finds the first attached FT2232H adapter and wires its
// D4 line as flash chip-select, matching the pinout on the icebreaker-class
// boards this tool targets.
func openFT2232H() (*ftdi.FT232H, gpio.PinIO, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("host initialization failed: %w", err)
	}

	info := ftdi.Info{}
	for _, dev := range ftdi.All() {
		dev.Info(&info)
		if info.VenID != vendorID || info.DevID != productID {
			continue
		}
		if ft, ok := dev.(*ftdi.FT232H); ok {
			return ft, ft.D4, nil
		}
	}
	return nil, nil, errors.New("no FT2232H device found")
}

func openDevice(baudMHz int, softwareReset bool) (*w25q.Device, error) {
	ft, cs, err := openFT2232H()
	if err != nil {
		return nil, fmt.Errorf("w25qtool: %w", err)
	}

	port, err := ft.SPI()
	if err != nil {
		return nil, fmt.Errorf("w25qtool: get SPI port: %w", err)
	}

	cfg := w25q.Config{SoftwareReset: softwareReset}
	if baudMHz > 0 {
		cfg.Baud = physic.Frequency(baudMHz) * physic.MegaHertz
	}

	return w25q.New(port, cs, cfg)
}
