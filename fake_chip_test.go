package w25q

import "periph.io/x/conn/v3/gpio"

// fakeChip is a software model of a Winbond W25Q flash chip, good enough to
// drive Device end to end without real hardware. It implements SPIConn and
// ChipSelect directly; Transport only ever needs their single methods, so
// there's no need to satisfy the richer periph.io spi.Conn/gpio.PinIO
// interfaces.
//
// Every command Device issues arrives as one Write-only Tx (opcode plus any
// address/data, r == nil) optionally followed, within the same CS-low
// window, by one or more read Tx calls (r != nil) whose response depends on
// that most recent write. That mirrors exactly how Transport composes
// Begin/Write/Read/End, so fakeChip only needs to remember the last
// write-only command to answer the read that follows it.
type fakeChip struct {
	id   [3]byte
	mem  []byte
	wide bool // true once Enter-4-Byte-Mode has been issued

	csLevel gpio.Level

	lastWrite []byte
	wel       bool

	busyCounter int // remaining BUSY reads before BUSY clears; -1 means stuck forever

	fastReads []fastReadCall // one entry per completed Fast Read transaction, in issue order
}

// fastReadCall records one Fast Read transaction's address and length, so
// tests can assert how many transactions a multi-block read issued and in
// what order, rather than only checking the resulting bytes.
type fastReadCall struct {
	addr   uint32
	length int
}

func newFakeChip(capacityClass byte, size int) *fakeChip {
	mem := make([]byte, size)
	for i := range mem {
		mem[i] = 0xFF
	}
	return &fakeChip{id: [3]byte{ManufacturerWinbond, 0x40, capacityClass}, mem: mem}
}

func (c *fakeChip) Out(l gpio.Level) error {
	c.csLevel = l
	return nil
}

func (c *fakeChip) addrWidth() int {
	if c.wide {
		return 4
	}
	return 3
}

func decodeAddr(b []byte) uint32 {
	var addr uint32
	for _, x := range b {
		addr = addr<<8 | uint32(x)
	}
	return addr
}

func (c *fakeChip) Tx(w, r []byte) error {
	if r == nil {
		c.lastWrite = append([]byte(nil), w...)
		c.execWriteOnly()
		return nil
	}
	c.respond(r)
	return nil
}

func (c *fakeChip) execWriteOnly() {
	if len(c.lastWrite) == 0 {
		return
	}
	switch c.lastWrite[0] {
	case cmdWriteEnable:
		c.wel = true
	case cmdSectorErase:
		addr := decodeAddr(c.lastWrite[1 : 1+c.addrWidth()])
		for i := 0; i < SectorSize; i++ {
			c.mem[int(addr)+i] = 0xFF
		}
		c.wel = false
	case cmdChipErase:
		for i := range c.mem {
			c.mem[i] = 0xFF
		}
		c.wel = false
	case cmdPageProgram:
		w := c.addrWidth()
		addr := decodeAddr(c.lastWrite[1 : 1+w])
		data := c.lastWrite[1+w:]
		copy(c.mem[int(addr):int(addr)+len(data)], data)
		c.wel = false
	case cmdEnter4ByteMode:
		c.wide = true
	case cmdEnableReset, cmdReset:
		// no persistent effect on the model
	}
}

func (c *fakeChip) respond(r []byte) {
	if len(c.lastWrite) == 0 {
		return
	}
	switch op := c.lastWrite[0]; op {
	case cmdReadJEDECID:
		copy(r, c.id[:])
	case cmdReadStatusReg1:
		var sr byte
		busy := c.busyCounter != 0
		if busy {
			sr |= statusBitBusy
			if c.busyCounter > 0 {
				c.busyCounter--
			}
		}
		if c.wel {
			sr |= 1 << 1
		}
		r[0] = sr
	case cmdReadStatusReg2:
		r[0] = 0
	case cmdReadStatusReg3:
		var sr byte
		if c.wide {
			sr |= 1 << 0
		}
		r[0] = sr
	case cmdFastRead3, cmdFastRead4:
		w := c.addrWidth()
		addr := decodeAddr(c.lastWrite[1 : 1+w])
		copy(r, c.mem[int(addr):int(addr)+len(r)])
		c.fastReads = append(c.fastReads, fastReadCall{addr: addr, length: len(r)})
	}
}
