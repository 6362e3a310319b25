package w25q

// writeBlock implements the sector-level read-modify-erase-write emulation
// that lets the block-device façade present randomly-writable 512-byte
// blocks over hardware that can only erase whole 4096-byte sectors and
// program 256-byte pages:
//
//  1. Read the whole enclosing sector into the device's scratch buffer.
//  2. Overlay buf at the block's offset within the sector.
//  3. Erase the sector.
//  4. Reprogram all 16 pages of the sector from the scratch buffer.
//
// buf must be exactly BlockSize bytes; writeBlock returns InvalidLengthError
// otherwise. The sector address is always a multiple of SectorSize, so every
// page program address below is a multiple of PageSize by construction —
// violating that is a bug in this function, not a caller error, hence the
// assertion inside pageProgram is a panic rather than a returned error.
func (d *Device) writeBlock(blocknum uint32, buf []byte) error {
	if len(buf) != BlockSize {
		return &InvalidLengthError{Got: len(buf), Want: BlockSize}
	}

	sectorNr := blocknum / blocksPerSector
	sectorAddr := sectorNr * SectorSize
	index := (blocknum << 9) & 0xFFF // offset of the block within its sector

	if err := d.fastRead(sectorAddr, d.scratch[:]); err != nil {
		return err
	}
	copy(d.scratch[index:index+BlockSize], buf)

	if err := d.sectorErase(sectorAddr); err != nil {
		return err
	}

	addr := sectorAddr
	for page := 0; page < pagesPerSector; page++ {
		if err := d.pageProgram(addr, d.scratch[page*PageSize:(page+1)*PageSize]); err != nil {
			return err
		}
		addr += PageSize
	}

	// Write completion is observable: don't return until the last program
	// is verified not-busy.
	return d.awaitReady()
}
