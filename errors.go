package w25q

import (
	"fmt"
	"time"
)

// NotRespondingError is returned when Read JEDEC ID comes back with any byte
// equal to zero, meaning nothing usable answered on the bus.
type NotRespondingError struct {
	Manufacturer, MemType, CapacityClass byte
}

func (e *NotRespondingError) Error() string {
	return fmt.Sprintf("w25q: device not responding, check wiring (0x%x, 0x%x, 0x%x)",
		e.Manufacturer, e.MemType, e.CapacityClass)
}

// DeviceStuckBusyError is returned when the BUSY bit fails to clear within
// the polling budget.
type DeviceStuckBusyError struct {
	Retries int
	Elapsed time.Duration
}

func (e *DeviceStuckBusyError) Error() string {
	return fmt.Sprintf("w25q: device keeps busy, aborting after %d retries (%s)", e.Retries, e.Elapsed)
}

// AddressOutOfRangeError is returned when an operation's address range would
// exceed the chip's identified capacity.
type AddressOutOfRangeError struct {
	Addr     uint32
	Length   int
	Capacity uint64
}

func (e *AddressOutOfRangeError) Error() string {
	return fmt.Sprintf("w25q: memory not addressable at 0x%x with range %d (max: 0x%x)",
		e.Addr, e.Length, e.Capacity-1)
}

// InvalidLengthError is returned when a caller-supplied buffer does not meet
// the length contract of the operation it was passed to.
type InvalidLengthError struct {
	Got, Want int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("w25q: invalid buffer length: got %d, want multiple of %d", e.Got, e.Want)
}
