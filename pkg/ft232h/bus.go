package ft232h

import (
	"errors"
	"fmt"
)

const readBit = 0x01

// Transact implements the chip bus over the MPSSE engine. The engine is
// half duplex, so a read frame is split into an address write followed by a
// reply read inside one chip select window. The LTC5599 only drives SDO
// during the reply byte, so the split exchange is equivalent to the
// full-duplex frame.
func (br *Bridge) Transact(tx, rx []byte) error {
	if len(tx) != len(rx) {
		return fmt.Errorf("tx/rx length mismatch: %d != %d", len(tx), len(rx))
	}

	if err := br.setCS(false); err != nil {
		return fmt.Errorf("assert CS: %w", err)
	}

	if tx[0]&readBit != 0 {
		if _, err := br.SPI.Write(tx[:1], true, false); err != nil {
			return errors.Join(fmt.Errorf("address write: %w", err), br.setCS(true))
		}
		buf, err := br.SPI.Read(uint(len(rx)-1), false, true)
		if err != nil {
			return errors.Join(fmt.Errorf("reply read: %w", err), br.setCS(true))
		}
		copy(rx[1:], buf)
	} else {
		if _, err := br.SPI.Write(tx, true, true); err != nil {
			return errors.Join(fmt.Errorf("frame write: %w", err), br.setCS(true))
		}
	}

	return br.setCS(true)
}

func (br *Bridge) setCS(high bool) error {
	return br.GPIO.Set(br.csPin, high)
}

// Close releases the MPSSE engine.
func (br *Bridge) Close() error {
	return br.SPI.Close()
}
