package ltc5599

import "fmt"

// writeRegister transacts a single-register write frame. The caller must
// hold d.mu. The shadow mirror is not touched here; codecs fold the value in
// once the write is confirmed so a rejected or failed value never lands in
// the mirror.
func (d *Device) writeRegister(addr Register, value byte) error {
	if addr >= NumRegisters {
		return fmt.Errorf("%w: register address 0x%02X", ErrOutOfRange, byte(addr))
	}

	d.txBuf[0] = (byte(addr) << 1) &^ readBit
	d.txBuf[1] = value

	if err := d.bus.Transact(d.txBuf[:], d.rxBuf[:]); err != nil {
		return fmt.Errorf("write register 0x%02X: %w", byte(addr), err)
	}
	return nil
}

// readRegister transacts a single-register read frame and returns the byte
// the chip clocked out during the second frame byte. The caller must hold
// d.mu.
func (d *Device) readRegister(addr Register) (byte, error) {
	if addr >= NumRegisters {
		return 0, fmt.Errorf("%w: register address 0x%02X", ErrOutOfRange, byte(addr))
	}

	d.txBuf[0] = (byte(addr) << 1) | readBit
	d.txBuf[1] = 0xFF

	if err := d.bus.Transact(d.txBuf[:], d.rxBuf[:]); err != nil {
		return 0, fmt.Errorf("read register 0x%02X: %w", byte(addr), err)
	}
	return d.rxBuf[1], nil
}

// ShadowRegister returns the last confirmed value of one register.
func (d *Device) ShadowRegister(addr Register) byte {
	d.mu.RLock()
	b := d.shadow[addr%NumRegisters]
	d.mu.RUnlock()
	return b
}

// Registers returns a snapshot of the shadow mirror.
func (d *Device) Registers() map[Register]byte {
	d.mu.RLock()
	r := make(map[Register]byte, NumRegisters)
	for reg, val := range d.shadow {
		r[Register(reg)] = val
	}
	d.mu.RUnlock()
	return r
}

// RefreshShadow re-reads every register used by the driver back into the
// shadow mirror. Handy after an external actor has touched the chip.
func (d *Device) RefreshShadow() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for reg := RegFREQ; reg <= RegMode; reg++ {
		val, err := d.readRegister(reg)
		if err != nil {
			return err
		}
		d.shadow[reg] = val
	}
	return nil
}
