// Package w25q drives Winbond W25Q-series serial NOR flash over SPI and
// exposes it as a fixed-size, 512-byte-block device suitable for backing a
// FAT filesystem on a microcontroller.
//
// # References:
//
//   - [W25Q128]: W25Q128JV-DTR Winbond Serial Flash Memory (https://www.winbond.com/resource-files/W25Q128JV_DTR%20RevD%2012232024%20Plus.pdf)
//   - [W25Q64]: W25Q64FV Winbond Serial Flash Memory datasheet, §7.2.43 Enable Reset / Reset
//
// Credit: the read-modify-erase-write block emulation and command sequencing
// follow brainelectronics/micropython-winbond, a MicroPython driver for the
// same chip family.
package w25q
