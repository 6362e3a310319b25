package w25q

import "periph.io/x/conn/v3/physic"

// Block-device geometry. Exposed at package scope so the filesystem layer
// above can compute alignment without an instance.
const (
	SectorSize = 4096 // smallest erasable unit
	PageSize   = 256  // largest unit programmable in one command
	BlockSize  = 512  // unit exposed by the block-device façade

	pagesPerSector = SectorSize / PageSize
	blocksPerSector = SectorSize / BlockSize
)

// DefaultBaud is the SPI clock rate used when Config.Baud is zero.
const DefaultBaud = 40 * physic.MegaHertz

// [W25Q128|8.1.2 Instruction Set Table 1]
const (
	cmdReadJEDECID      = 0x9F
	cmdReadStatusReg1   = 0x05
	cmdReadStatusReg2   = 0x35
	cmdReadStatusReg3   = 0x15
	cmdWriteEnable      = 0x06
	cmdSectorErase      = 0x20
	cmdChipErase        = 0xC7
	cmdPageProgram      = 0x02
	cmdFastRead3        = 0x0B
	cmdFastRead4        = 0x0C
	cmdEnableReset      = 0x66
	cmdReset            = 0x99
	cmdEnter4ByteMode   = 0xB7
)

// statusRegisterOpcode maps a status-register index (0, 1, 2 for SR1/SR2/SR3)
// to its read opcode.
var statusRegisterOpcode = [3]byte{cmdReadStatusReg1, cmdReadStatusReg2, cmdReadStatusReg3}

const statusBitBusy = 1 << 0 // SR1 bit 0

// sr1Field describes one named bit (or bit group) of Status Register 1.
// [W25Q128|7.1 Status Registers]
type sr1Field struct {
	mask  byte
	label string
}

// sr1Fields is SR1's bit layout, most-significant bit first. StatusRegister's
// String() walks this table rather than hand-listing each flag, so the
// displayed mnemonics and the mask they test for come from a single source.
var sr1Fields = []sr1Field{
	{1 << 7, "SRP"},  // Status Register Protect
	{1 << 6, "SEC"},  // Sector Protect
	{1 << 5, "TB"},   // Top/Bottom Protect
	{1 << 4, "BP2"},  // Block Protect bit 2
	{1 << 3, "BP1"},  // Block Protect bit 1
	{1 << 2, "BP0"},  // Block Protect bit 0
	{1 << 1, "WEL"},  // Write Enable Latch
	{statusBitBusy, "BUSY"},
}

// ManufacturerWinbond is the JEDEC manufacturer byte for Winbond.
const ManufacturerWinbond = 0xEF

// supportedMemType reports whether memType is one of the W25Q mem-type bytes
// identify accepts without a warning. 0x40 is the tested family; 0x60 and
// 0x70 are accepted without complaint but not verified bit-for-bit against
// silicon.
func supportedMemType(memType byte) bool {
	switch memType {
	case 0x40, 0x60, 0x70:
		return true
	default:
		return false
	}
}

const addr24Max = 1<<24 - 1

// jedecFillByte and statusFillByte/dummyFillByte are the TX fill bytes used
// while clocking in a response, matching the wire protocol bit-for-bit.
const (
	jedecFillByte  = 0x00
	statusFillByte = 0xFF
	dummyFillByte  = 0xFF
)
