package w25q

import "periph.io/x/conn/v3/gpio"

// SPIConn is the minimal capability Transport needs from a SPI connection.
// periph.io/x/conn/v3/spi.Conn satisfies this structurally, so a value
// returned by spi.Port.Connect can be assigned here with no adapter.
type SPIConn interface {
	Tx(w, r []byte) error
}

// ChipSelect is the minimal capability Transport needs to drive the CS line.
// periph.io/x/conn/v3/gpio.PinIO satisfies this structurally.
type ChipSelect interface {
	Out(l gpio.Level) error
}

// Transport wraps a SPI connection and its chip-select line into a single
// "talk to the device" capability. It owns no flash semantics: callers
// compose Begin/Write/Read/ReadInto/End into the command sequences the chip
// expects.
type Transport struct {
	conn SPIConn
	cs   ChipSelect
}

// NewTransport builds a Transport over an already-connected SPI conn and its
// CS line.
func NewTransport(conn SPIConn, cs ChipSelect) *Transport {
	return &Transport{conn: conn, cs: cs}
}

// Begin asserts chip-select, opening a transaction.
func (t *Transport) Begin() error {
	return t.cs.Out(gpio.Low)
}

// End deasserts chip-select, closing a transaction.
func (t *Transport) End() error {
	return t.cs.Out(gpio.High)
}

// Write clocks out p, discarding anything clocked in.
func (t *Transport) Write(p []byte) error {
	return t.conn.Tx(p, nil)
}

// Read clocks in n bytes, transmitting fill on MOSI while doing so.
func (t *Transport) Read(n int, fill byte) ([]byte, error) {
	buf := make([]byte, n)
	if err := t.ReadInto(buf, fill); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadInto clocks in len(buf) bytes into buf, transmitting fill on MOSI.
func (t *Transport) ReadInto(buf []byte, fill byte) error {
	tx := make([]byte, len(buf))
	for i := range tx {
		tx[i] = fill
	}
	return t.conn.Tx(tx, buf)
}

// transact wraps a single write-only command in its own CS-low/CS-high
// transaction.
func (t *Transport) transact(buf []byte) (err error) {
	if err = t.Begin(); err != nil {
		return err
	}
	defer func() {
		if csErr := t.End(); csErr != nil && err == nil {
			err = csErr
		}
	}()
	err = t.Write(buf)
	return
}
