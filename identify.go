package w25q

import (
	"fmt"
	"log/slog"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Config carries the construction-time options for New: the SPI clock rate,
// whether to issue a software reset before identification, and an optional
// logger for the non-fatal "unsupported chip" warning.
type Config struct {
	// Baud is the SPI clock rate. Zero means DefaultBaud (40 MHz).
	Baud physic.Frequency
	// SoftwareReset issues the Enable-Reset/Reset command pair before
	// identification, for chips without a dedicated hardware reset pin.
	SoftwareReset bool
	// Logger receives the non-fatal unsupported-manufacturer/mem-type
	// warning. Defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// New opens a SPI connection to a Winbond W25Q flash chip over port at the
// configured baud rate and SPI mode 3, drives cs high, identifies the chip,
// and — for chips that need it — switches into 4-byte address mode. The
// returned Device's Blocks field is ready for use as a block device.
func New(port spi.Port, cs gpio.PinIO, cfg Config) (*Device, error) {
	baud := cfg.Baud
	if baud == 0 {
		baud = DefaultBaud
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := cs.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("w25q: deassert cs: %w", err)
	}

	conn, err := port.Connect(baud, spi.Mode3, 8)
	if err != nil {
		return nil, fmt.Errorf("w25q: connect spi: %w", err)
	}

	d := &Device{
		transport: NewTransport(conn, cs),
		logger:    logger,
	}

	if cfg.SoftwareReset {
		if err := d.Reset(); err != nil {
			return nil, err
		}
	}

	if err := d.identify(); err != nil {
		return nil, err
	}

	if d.addrWidth == 4 {
		enabled, err := d.readStatusBit(16)
		if err != nil {
			return nil, err
		}
		if !enabled {
			if err := d.enter4ByteMode(); err != nil {
				return nil, err
			}
		}
	}

	d.Blocks = &BlockDevice{dev: d}
	return d, nil
}

// identify issues Read JEDEC ID, validates the response, and derives
// capacity and address width from it.
func (d *Device) identify() error {
	id, err := d.readJEDECID()
	if err != nil {
		return err
	}

	if id[0] == 0 || id[1] == 0 || id[2] == 0 {
		return &NotRespondingError{Manufacturer: id[0], MemType: id[1], CapacityClass: id[2]}
	}

	if id[0] != ManufacturerWinbond || !supportedMemType(id[1]) {
		d.logger.Warn("unsupported or untested flash chip",
			"manufacturer", fmt.Sprintf("0x%x", id[0]),
			"memType", fmt.Sprintf("0x%x", id[1]))
	}

	d.manufacturer = id[0]
	d.memType = id[1]
	d.capacityClass = id[2]
	d.capacity = uint64(1) << id[2]

	if d.capacity-1 > addr24Max {
		d.addrWidth = 4
	} else {
		d.addrWidth = 3
	}
	return nil
}
