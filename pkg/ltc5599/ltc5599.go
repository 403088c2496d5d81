// Package ltc5599 controls an Analog Devices LTC5599 direct quadrature
// modulator over SPI.
//
// The package translates engineering units (carrier frequency, gain
// attenuation, per-channel DC offset, I/Q gain ratio and phase balance
// correction) into the chip's register encodings and keeps a shadow mirror
// of register state on the host, since several register fields are
// write-only in practice and two registers pack unrelated fields into one
// byte.
//
// Hardware access goes through the Bus interface so the chip logic stays
// independent of the transport; see the spidev and ft232h packages for
// backends.
package ltc5599

import "sync"

type Register byte

// Bus is a synchronous full-duplex byte exchange with the chip. Transact
// clocks out len(tx) bytes while reading len(rx) bytes back in the same
// frame. Implementations must not retry on failure.
type Bus interface {
	Transact(tx, rx []byte) error

	// Close closes the underlying transport.
	Close() error
}

// ChipInfo describes a supported chip variant, selected at attach time.
type ChipInfo struct {
	Name     string
	Channels int
}

// LTC5599Info is the only variant currently supported.
var LTC5599Info = &ChipInfo{Name: "ltc5599", Channels: 2}

// Device provides register-level control over one LTC5599 attached to one
// bus endpoint.
//
// A device-scoped mutex serializes all bus traffic: the 2-byte transfer
// buffer is owned by the device and reused, and multi-register sequences
// (the phase balance codec) must not interleave with other callers.
type Device struct {
	mu   sync.RWMutex
	bus  Bus
	chip *ChipInfo

	// Reused transfer buffers, one frame each.
	txBuf [2]byte
	rxBuf [2]byte

	// shadow mirrors the last confirmed value of every register: the last
	// byte successfully written to, or read back from, that address.
	shadow [NumRegisters]byte
}

// New attaches to a chip on the given bus. A nil chip selects the LTC5599.
// The shadow mirror is loaded with the documented power-on reset values
// before the device accepts any parameter access.
func New(bus Bus, chip *ChipInfo) *Device {
	d := &Device{bus: bus, chip: chip}
	if d.chip == nil {
		d.chip = LTC5599Info
	}
	d.fillShadow()
	return d
}

// Chip returns the variant descriptor selected at attach time.
func (d *Device) Chip() *ChipInfo {
	return d.chip
}

// Close releases the bus. The shadow mirror is left as-is; the chip retains
// its register state while powered.
func (d *Device) Close() error {
	return d.bus.Close()
}

// fillShadow loads the power-on reset values from the datasheet.
func (d *Device) fillShadow() {
	for i := range d.shadow {
		d.shadow[i] = 0x00
	}
	d.shadow[RegFREQ] = 0x2E
	d.shadow[RegGAIN] = 0x84
	d.shadow[RegOFFSI] = 0x80
	d.shadow[RegOFFSQ] = 0x80
	d.shadow[RegIQGainRatio] = 0x80
	d.shadow[RegIQPhaseBal] = 0x10
	d.shadow[RegLOMatchOvr] = 0x50
	d.shadow[RegTempCorrOvr] = 0x06
	d.shadow[RegMode] = 0x00
}
