package w25q

import "time"

const (
	defaultBusyMaxRetries = 20
	defaultBusyPollInterval = 100 * time.Millisecond
	resetIdle               = 30 * time.Microsecond
)

// encodeAddr big-endian encodes addr into width bytes (3 or 4).
func encodeAddr(addr uint32, width int) []byte {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(addr)
		addr >>= 8
	}
	return buf
}

// awaitReady polls SR1.BUSY with the standard ~2 s budget used by routine
// program/erase operations.
func (d *Device) awaitReady() error {
	return d.awaitReadyBudget(defaultBusyMaxRetries, defaultBusyPollInterval)
}

// awaitReadyBudget polls SR1.BUSY, holding CS low across the whole poll
// loop (a single transaction), sleeping interval between reads, and failing
// with DeviceStuckBusyError once maxRetries is exceeded. CS is always
// deasserted before returning, success or failure.
func (d *Device) awaitReadyBudget(maxRetries int, interval time.Duration) (err error) {
	if err = d.transport.Begin(); err != nil {
		return err
	}
	defer func() {
		if csErr := d.transport.End(); csErr != nil && err == nil {
			err = csErr
		}
	}()
	if err = d.transport.Write([]byte{cmdReadStatusReg1}); err != nil {
		return err
	}
	for trials := 0; ; trials++ {
		var b []byte
		b, err = d.transport.Read(1, statusFillByte)
		if err != nil {
			return err
		}
		if b[0]&statusBitBusy == 0 {
			return nil
		}
		if trials > maxRetries {
			err = &DeviceStuckBusyError{Retries: trials, Elapsed: time.Duration(trials) * interval}
			return err
		}
		time.Sleep(interval)
	}
}

// readStatusBit reads bit nr across the SR1/SR2/SR3 address space, per the
// divmod(nr, 8) scheme: bit 0 of SR1 is BUSY, bit 16 is SR3 bit 0 (the
// 4-byte-address-mode indicator).
func (d *Device) readStatusBit(nr int) (bool, error) {
	reg, bit := nr/8, nr%8
	if reg < 0 || reg > 2 {
		panic("w25q: status register index out of range")
	}
	if err := d.awaitReady(); err != nil {
		return false, err
	}
	if err := d.transport.Begin(); err != nil {
		return false, err
	}
	defer d.transport.End()
	if err := d.transport.Write([]byte{statusRegisterOpcode[reg]}); err != nil {
		return false, err
	}
	b, err := d.transport.Read(1, statusFillByte)
	if err != nil {
		return false, err
	}
	return b[0]&(1<<uint(bit)) != 0, nil
}

// readJEDECID issues the Read JEDEC ID command and returns the raw
// manufacturer, memory-type, and capacity-class bytes.
func (d *Device) readJEDECID() ([3]byte, error) {
	if err := d.awaitReady(); err != nil {
		return [3]byte{}, err
	}
	if err := d.transport.Begin(); err != nil {
		return [3]byte{}, err
	}
	defer d.transport.End()
	if err := d.transport.Write([]byte{cmdReadJEDECID}); err != nil {
		return [3]byte{}, err
	}
	b, err := d.transport.Read(3, jedecFillByte)
	if err != nil {
		return [3]byte{}, err
	}
	return [3]byte(b), nil
}

// ReadStatusRegister reads SR1 as a single byte, without the BUSY-poll side
// effect of awaitReady.
func (d *Device) ReadStatusRegister() (StatusRegister, error) {
	if err := d.transport.Begin(); err != nil {
		return 0, err
	}
	defer d.transport.End()
	if err := d.transport.Write([]byte{cmdReadStatusReg1}); err != nil {
		return 0, err
	}
	b, err := d.transport.Read(1, statusFillByte)
	if err != nil {
		return 0, err
	}
	return StatusRegister(b[0]), nil
}

func (d *Device) writeEnable() error {
	if err := d.awaitReady(); err != nil {
		return err
	}
	return d.transport.transact([]byte{cmdWriteEnable})
}

func (d *Device) sectorErase(addr uint32) error {
	if err := d.writeEnable(); err != nil {
		return err
	}
	buf := append([]byte{cmdSectorErase}, encodeAddr(addr, d.addrWidth)...)
	return d.transport.transact(buf)
}

func (d *Device) chipErase() error {
	if err := d.writeEnable(); err != nil {
		return err
	}
	return d.transport.transact([]byte{cmdChipErase})
}

func (d *Device) pageProgram(addr uint32, data []byte) error {
	if addr%PageSize != 0 {
		panic("w25q: page program address not page-aligned")
	}
	if len(data) > PageSize {
		panic("w25q: page program data exceeds page size")
	}
	if err := d.writeEnable(); err != nil {
		return err
	}
	if err := d.awaitReady(); err != nil {
		return err
	}
	buf := append([]byte{cmdPageProgram}, encodeAddr(addr, d.addrWidth)...)
	buf = append(buf, data...)
	return d.transport.transact(buf)
}

// fastRead reads len(buf) bytes starting at addr directly into buf, failing
// with AddressOutOfRangeError if the range would exceed the chip's capacity.
func (d *Device) fastRead(addr uint32, buf []byte) error {
	if uint64(addr)+uint64(len(buf)) > d.capacity {
		return &AddressOutOfRangeError{Addr: addr, Length: len(buf), Capacity: d.capacity}
	}
	if err := d.awaitReady(); err != nil {
		return err
	}
	opcode := byte(cmdFastRead3)
	if d.addrWidth == 4 {
		opcode = cmdFastRead4
	}
	if err := d.transport.Begin(); err != nil {
		return err
	}
	defer d.transport.End()
	cmd := append([]byte{opcode}, encodeAddr(addr, d.addrWidth)...)
	cmd = append(cmd, dummyFillByte) // dummy byte
	if err := d.transport.Write(cmd); err != nil {
		return err
	}
	return d.transport.ReadInto(buf, dummyFillByte)
}

func (d *Device) enter4ByteMode() error {
	if err := d.awaitReady(); err != nil {
		return err
	}
	return d.transport.transact([]byte{cmdEnter4ByteMode})
}

// Reset issues the Enable-Reset/Reset command pair and waits out the chip's
// reset settle time. See [W25Q64|7.2.43 Enable Reset / Reset]: the two
// commands must be issued back-to-back in separate transactions or the
// "reset enable" state is dropped.
func (d *Device) Reset() error {
	if err := d.transport.transact([]byte{cmdEnableReset}); err != nil {
		return err
	}
	if err := d.transport.transact([]byte{cmdReset}); err != nil {
		return err
	}
	time.Sleep(resetIdle)
	return nil
}
