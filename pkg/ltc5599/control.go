package ltc5599

// Control operations outside the channel parameter surface: soft reset, the
// gain register control bits and the analog override registers.

// Reset pulses the soft reset bit in the mode register and reloads the
// shadow mirror with the power-on defaults.
func (d *Device) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.writeRegister(RegMode, ResetBit); err != nil {
		return err
	}
	d.fillShadow()
	return nil
}

// setGainBit flips one control bit in the gain register while preserving
// the attenuation code and the other control bits.
func (d *Device) setGainBit(bit byte, on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	tmp := d.shadow[RegGAIN]
	if on {
		tmp |= bit
	} else {
		tmp &^= bit
	}

	if err := d.writeRegister(RegGAIN, tmp); err != nil {
		return err
	}
	d.shadow[RegGAIN] = tmp
	return nil
}

// SetQChannelDisable disables or re-enables the Q channel input.
func (d *Device) SetQChannelDisable(disable bool) error {
	return d.setGainBit(QDisableBit, disable)
}

// SetAGC enables or disables automatic gain control.
func (d *Device) SetAGC(enable bool) error {
	return d.setGainBit(AGCtrlBit, enable)
}

// SetTempCompUpdate enables or disables temperature compensation updates.
func (d *Device) SetTempCompUpdate(enable bool) error {
	return d.setGainBit(TempUpdtBit, enable)
}

// SetLOMatchOverride writes the LO input matching override register.
func (d *Device) SetLOMatchOverride(val byte) error {
	return d.setByteRegister(RegLOMatchOvr, val)
}

// LOMatchOverride reads the LO input matching override register.
func (d *Device) LOMatchOverride() (byte, error) {
	return d.getByteRegister(RegLOMatchOvr)
}

// SetTempCorrOverride writes the temperature correction override register.
func (d *Device) SetTempCorrOverride(val byte) error {
	return d.setByteRegister(RegTempCorrOvr, val)
}

// TempCorrOverride reads the temperature correction override register.
func (d *Device) TempCorrOverride() (byte, error) {
	return d.getByteRegister(RegTempCorrOvr)
}

func (d *Device) setByteRegister(reg Register, val byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.writeRegister(reg, val); err != nil {
		return err
	}
	d.shadow[reg] = val
	return nil
}

func (d *Device) getByteRegister(reg Register) (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	val, err := d.readRegister(reg)
	if err != nil {
		return 0, err
	}
	d.shadow[reg] = val
	return val, nil
}
