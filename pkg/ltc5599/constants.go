package ltc5599

// Constants from the datasheet

// Register Addresses
const (
	// RegFREQ holds the 7-bit LO tuning word in its low bits. Bit 7 is the
	// phase balance extension sign bit, shared with the phase codec.
	RegFREQ Register = 0x00
	// RegGAIN holds the 5-bit gain attenuation code plus control bits.
	RegGAIN Register = 0x01
	// RegOFFSI is the I channel DC offset trim.
	RegOFFSI Register = 0x02
	// RegOFFSQ is the Q channel DC offset trim.
	RegOFFSQ Register = 0x03
	// RegIQGainRatio is the I/Q gain ratio trim.
	RegIQGainRatio Register = 0x04
	// RegIQPhaseBal holds the phase balance fine (bits 0-4) and coarse
	// (bits 5-7) fields.
	RegIQPhaseBal Register = 0x05
	// RegLOMatchOvr overrides the LO input matching network.
	RegLOMatchOvr Register = 0x06
	// RegTempCorrOvr overrides the temperature correction circuit.
	RegTempCorrOvr Register = 0x07
	// RegMode is the mode register.
	RegMode Register = 0x08

	// NumRegisters is the size of the register address space mirrored by
	// the shadow array.
	NumRegisters = 0x20
)

// Bits for the FREQ register
const (
	FreqMask        = 0x7F
	PhaseBalSignBit = 1 << 7
)

// Bits for the GAIN register
const (
	GainMask    = 0x1F
	QDisableBit = 1 << 5 // (bit5) Q channel disable
	AGCtrlBit   = 1 << 6 // (bit6) automatic gain control
	TempUpdtBit = 1 << 7 // (bit7) temperature compensation update
)

// Bits for the IQ phase balance register
const (
	PhaseBalFineMask    = 0x1F
	PhaseBalCoarseShift = 5
	PhaseBalCoarseMask  = 0x07 << PhaseBalCoarseShift
)

// Bits for the MODE register
const (
	ResetBit = 1 << 3
)

// readBit in the first frame byte selects a register read.
const readBit = 0x01

// Accepted parameter ranges
const (
	// MinFrequencyHz and MaxFrequencyHz bound the carrier frequency
	// accepted by WriteRaw. The tuning table itself covers roughly
	// 93 MHz to 1249 MHz; inputs outside that band saturate to the
	// nearest tuning code.
	MinFrequencyHz = 30_000_000
	MaxFrequencyHz = 1_300_000_000

	// MaxAttenuation is the largest gain attenuation code, in dB.
	MaxAttenuation = 19

	// MaxOffset bounds the per-channel DC offset trim.
	MaxOffset = 127

	// MinPhaseBalance and MaxPhaseBalance bound the I/Q phase balance
	// setting.
	MinPhaseBalance = -240
	MaxPhaseBalance = 239
)
