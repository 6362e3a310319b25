package w25q

// BlockDevice presents a Device as a randomly addressable, 512-byte-block
// storage medium suitable for a filesystem layer, hiding the sector-erase
// and page-program granularity of the underlying NOR flash. It is created
// by New and is ready for use as soon as New returns.
type BlockDevice struct {
	dev *Device
}

// BlockSize returns the block size in bytes (always 512).
func (b *BlockDevice) BlockSize() uint32 { return BlockSize }

// PageSize returns the underlying flash's program page size in bytes.
func (b *BlockDevice) PageSize() uint32 { return PageSize }

// EraseBlockSize returns the underlying flash's erase granularity in bytes.
func (b *BlockDevice) EraseBlockSize() uint32 { return SectorSize }

// Count returns the total number of 512-byte blocks available on the chip.
func (b *BlockDevice) Count() uint32 {
	return uint32(b.dev.capacity / BlockSize)
}

// ReadBlocks reads len(buf)/BlockSize consecutive blocks starting at
// blocknum into buf, issuing one Fast Read transaction per block. len(buf)
// must be a non-zero multiple of BlockSize, or ReadBlocks returns
// InvalidLengthError.
func (b *BlockDevice) ReadBlocks(blocknum uint32, buf []byte) error {
	if len(buf) == 0 || len(buf)%BlockSize != 0 {
		return &InvalidLengthError{Got: len(buf), Want: BlockSize}
	}
	n := len(buf) / BlockSize
	for i := 0; i < n; i++ {
		addr := (blocknum + uint32(i)) * BlockSize
		if err := b.dev.fastRead(addr, buf[i*BlockSize:(i+1)*BlockSize]); err != nil {
			return err
		}
	}
	return nil
}

// WriteBlocks writes len(buf)/BlockSize consecutive blocks starting at
// blocknum, read-modify-erase-writing one sector at a time. If len(buf) is
// not a multiple of BlockSize, the trailing partial block is copied into a
// 0xFF-filled scratch tail internally rather than mutating the caller's
// slice — unlike the reference implementation this is adapted from, which
// pads the caller's buffer in place.
func (b *BlockDevice) WriteBlocks(blocknum uint32, buf []byte) error {
	if len(buf) == 0 {
		return &InvalidLengthError{Got: 0, Want: BlockSize}
	}

	full := len(buf) / BlockSize
	for i := 0; i < full; i++ {
		block := buf[i*BlockSize : (i+1)*BlockSize]
		if err := b.dev.writeBlock(blocknum+uint32(i), block); err != nil {
			return err
		}
	}

	if rem := len(buf) % BlockSize; rem != 0 {
		var tail [BlockSize]byte
		for i := range tail {
			tail[i] = 0xFF
		}
		copy(tail[:], buf[full*BlockSize:])
		if err := b.dev.writeBlock(blocknum+uint32(full), tail[:]); err != nil {
			return err
		}
	}

	return nil
}
