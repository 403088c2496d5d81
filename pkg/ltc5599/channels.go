package ltc5599

import "fmt"

// Channel selects one of the two baseband output channels. The channel
// index only decides which DC offset register is touched; every other
// parameter is global to the chip.
type Channel int

const (
	ChannelI Channel = iota
	ChannelQ
)

func (c Channel) String() string {
	switch c {
	case ChannelI:
		return "I"
	case ChannelQ:
		return "Q"
	default:
		return "(invalid channel)"
	}
}

// Param identifies a logical chip parameter.
type Param int

const (
	// ParamOffset is the per-channel DC offset trim, -127..127.
	ParamOffset Param = iota
	// ParamFrequency is the carrier frequency in Hz.
	ParamFrequency
	// ParamHardwareGain is the gain in dB; only attenuation is possible,
	// so requests must be <= 0 and magnitudes clamp to MaxAttenuation.
	ParamHardwareGain
	// ParamQuadratureCorrection is the I/Q gain ratio trim, -127..127.
	ParamQuadratureCorrection
	// ParamPhase is the I/Q phase balance, -240..239.
	ParamPhase
)

func (p Param) String() string {
	switch p {
	case ParamOffset:
		return "offset"
	case ParamFrequency:
		return "frequency"
	case ParamHardwareGain:
		return "hardwaregain"
	case ParamQuadratureCorrection:
		return "quadrature"
	case ParamPhase:
		return "phase"
	default:
		return "(invalid parameter)"
	}
}

// Format tags how a ReadRaw result pair is to be interpreted.
type Format int

const (
	// FormatInt means val alone carries the result.
	FormatInt Format = iota
	// FormatIntPlusMicroDB means val carries whole dB and val2 micro-dB.
	FormatIntPlusMicroDB
)

func checkChannel(ch Channel) error {
	if ch != ChannelI && ch != ChannelQ {
		return fmt.Errorf("%w: %d", ErrInvalidChannel, int(ch))
	}
	return nil
}

// ReadRaw reads one parameter from the chip. val2 is only meaningful for
// FormatIntPlusMicroDB results, where it carries the micro-dB component
// (always zero on this chip).
func (d *Device) ReadRaw(ch Channel, p Param) (val, val2 int, f Format, err error) {
	if err := checkChannel(ch); err != nil {
		return 0, 0, FormatInt, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch p {
	case ParamOffset:
		v, err := d.readOffset(ch)
		return v, 0, FormatInt, err
	case ParamFrequency:
		w, err := d.readFrequency()
		if err != nil {
			return 0, 0, FormatInt, err
		}
		return int(ctrlWordToHz(w)), 0, FormatInt, nil
	case ParamHardwareGain:
		raw, err := d.readGain()
		if err != nil {
			return 0, 0, FormatIntPlusMicroDB, err
		}
		return -int(raw), 0, FormatIntPlusMicroDB, nil
	case ParamQuadratureCorrection:
		v, err := d.readIQGainRatio()
		return v, 0, FormatInt, err
	case ParamPhase:
		v, err := d.readIQPhaseBalance()
		return v, 0, FormatInt, err
	default:
		return 0, 0, FormatInt, fmt.Errorf("%w: %d", ErrInvalidParam, int(p))
	}
}

// WriteRaw writes one parameter to the chip. Ranges are validated before
// any bus traffic; a rejected value performs no I/O and never reaches the
// shadow mirror. Bus errors propagate unchanged and are not fatal to the
// device.
func (d *Device) WriteRaw(ch Channel, p Param, val, val2 int) error {
	if err := checkChannel(ch); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch p {
	case ParamOffset:
		if val < -MaxOffset || val > MaxOffset {
			return fmt.Errorf("%w: offset %d, want -127..127", ErrOutOfRange, val)
		}
		return d.writeOffset(ch, val)
	case ParamFrequency:
		if val < MinFrequencyHz || val > MaxFrequencyHz {
			return fmt.Errorf("%w: frequency %dHz, want %d..%d", ErrOutOfRange, val, MinFrequencyHz, MaxFrequencyHz)
		}
		return d.writeFrequency(freqToCtrlWord(uint32(val / 1000)))
	case ParamHardwareGain:
		if val > 0 {
			return fmt.Errorf("%w: gain %ddB, only attenuation (<= 0) is possible", ErrOutOfRange, val)
		}
		raw := -val
		if raw > MaxAttenuation {
			raw = MaxAttenuation
		}
		return d.writeGain(byte(raw))
	case ParamQuadratureCorrection:
		if val < -MaxOffset || val > MaxOffset {
			return fmt.Errorf("%w: quadrature correction %d, want -127..127", ErrOutOfRange, val)
		}
		return d.writeIQGainRatio(val)
	case ParamPhase:
		if val < MinPhaseBalance || val > MaxPhaseBalance {
			return fmt.Errorf("%w: phase balance %d, want %d..%d", ErrOutOfRange, val, MinPhaseBalance, MaxPhaseBalance)
		}
		return d.writeIQPhaseBalance(val)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidParam, int(p))
	}
}
