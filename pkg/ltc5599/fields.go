package ltc5599

// Field codecs. Each pair translates between one logical parameter and its
// register encoding, going through writeRegister/readRegister and folding
// confirmed values into the shadow mirror. All of these expect the caller
// (channel dispatch or a control method) to hold d.mu, so read-modify-write
// sequences cannot interleave with another caller's traffic.

// writeFrequency merges a tuning code into the low 7 bits of the frequency
// register, preserving bit 7, which belongs to the phase balance codec.
func (d *Device) writeFrequency(word byte) error {
	tmp := d.shadow[RegFREQ]
	tmp = (tmp &^ FreqMask) | (word & FreqMask)

	if err := d.writeRegister(RegFREQ, tmp); err != nil {
		return err
	}
	d.shadow[RegFREQ] = tmp
	return nil
}

// readFrequency reads back the raw 7-bit tuning code.
func (d *Device) readFrequency() (byte, error) {
	tmp, err := d.readRegister(RegFREQ)
	if err != nil {
		return 0, err
	}
	d.shadow[RegFREQ] = tmp
	return tmp & FreqMask, nil
}

// writeGain merges an attenuation code into the low 5 bits of the gain
// register, preserving the Q-disable, AGC and temperature update control
// bits above it.
func (d *Device) writeGain(raw byte) error {
	tmp := d.shadow[RegGAIN]
	tmp = (tmp &^ GainMask) | (raw & GainMask)

	if err := d.writeRegister(RegGAIN, tmp); err != nil {
		return err
	}
	d.shadow[RegGAIN] = tmp
	return nil
}

// readGain reads back the raw 5-bit attenuation code.
func (d *Device) readGain() (byte, error) {
	tmp, err := d.readRegister(RegGAIN)
	if err != nil {
		return 0, err
	}
	d.shadow[RegGAIN] = tmp
	return tmp & GainMask, nil
}

// writeOffset sets one channel's DC offset trim. The register holds the
// full byte, offset-binary with 0x80 as mid-scale.
func (d *Device) writeOffset(ch Channel, val int) error {
	if val > MaxOffset {
		val = MaxOffset
	}
	if val < -MaxOffset {
		val = -MaxOffset
	}

	reg := RegOFFSI + Register(ch)
	tmp := byte(val + 128)

	if err := d.writeRegister(reg, tmp); err != nil {
		return err
	}
	d.shadow[reg] = tmp
	return nil
}

// readOffset reads one channel's DC offset trim.
func (d *Device) readOffset(ch Channel) (int, error) {
	reg := RegOFFSI + Register(ch)
	tmp, err := d.readRegister(reg)
	if err != nil {
		return 0, err
	}
	d.shadow[reg] = tmp
	return int(tmp) - 128, nil
}

// writeIQGainRatio sets the I/Q gain ratio trim. The encoding flips the
// sign bit of the two's-complement input, while the read path subtracts 128
// from the raw byte; the two conventions are kept exactly as the chip has
// always been driven rather than unified.
func (d *Device) writeIQGainRatio(val int) error {
	tmp := byte(val) ^ 0x80

	if err := d.writeRegister(RegIQGainRatio, tmp); err != nil {
		return err
	}
	d.shadow[RegIQGainRatio] = tmp
	return nil
}

// readIQGainRatio reads the I/Q gain ratio trim.
func (d *Device) readIQGainRatio() (int, error) {
	tmp, err := d.readRegister(RegIQGainRatio)
	if err != nil {
		return 0, err
	}
	d.shadow[RegIQGainRatio] = tmp
	return int(tmp) - 128, nil
}

// writeIQPhaseBalance sets the I/Q phase balance. The setting is split
// across two registers: a 5-bit fine field and 3-bit coarse field in the
// phase register, plus a sign bit borrowed from bit 7 of the frequency
// register (low 7 bits preserved).
//
// The phase register is written first, then the frequency register. If the
// second write fails the shadow keeps only the confirmed phase value; there
// is no rollback, so hardware and mirror stay self-consistent per register
// but the two-register setting is torn until rewritten.
func (d *Device) writeIQPhaseBalance(val int) error {
	freq := d.shadow[RegFREQ]
	if val < -16 {
		freq &^= PhaseBalSignBit
	} else {
		freq |= PhaseBalSignBit
	}

	var coarse int
	if val > 0 {
		coarse = (val + 16) / 32
	} else {
		coarse = (15 - val) / 32
	}

	fine := byte(val&PhaseBalFineMask) ^ 0x10
	phase := (byte(coarse) << PhaseBalCoarseShift & PhaseBalCoarseMask) | (fine & PhaseBalFineMask)

	if err := d.writeRegister(RegIQPhaseBal, phase); err != nil {
		return err
	}
	d.shadow[RegIQPhaseBal] = phase

	if err := d.writeRegister(RegFREQ, freq); err != nil {
		return err
	}
	d.shadow[RegFREQ] = freq
	return nil
}

// readIQPhaseBalance reconstructs the phase balance from the frequency
// register's sign bit and the phase register's coarse and fine fields.
// Round-trip with the write path is not exact at every boundary magnitude;
// this mirrors the chip's quantization, not a codec bug.
func (d *Device) readIQPhaseBalance() (int, error) {
	tmp, err := d.readRegister(RegFREQ)
	if err != nil {
		return 0, err
	}
	d.shadow[RegFREQ] = tmp

	multiplier := -1
	if tmp&PhaseBalSignBit != 0 {
		multiplier = 1
	}

	tmp, err = d.readRegister(RegIQPhaseBal)
	if err != nil {
		return 0, err
	}
	d.shadow[RegIQPhaseBal] = tmp

	coarse := int(tmp&PhaseBalCoarseMask) >> PhaseBalCoarseShift
	val := int(tmp&PhaseBalFineMask) - 16
	val += multiplier * coarse * 32
	return val, nil
}
