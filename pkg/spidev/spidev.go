// Package spidev provides an LTC5599 bus backend on top of a Linux spidev
// port, via periph.io. An optional GPIO line can drive the chip's EN pin
// for boards where it is not strapped high.
package spidev

import (
	"errors"
	"fmt"

	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// DefaultClock is a conservative SPI clock; the LTC5599 serial port is
// rated to 20 MHz.
const DefaultClock = 1 * physic.MegaHertz

// Options selects the spidev port and optional enable line.
type Options struct {
	// Device is the spidev registry name, e.g. "/dev/spidev0.0".
	Device string
	// ClockHz is the SPI clock in Hz; zero selects DefaultClock.
	ClockHz uint32
	// EnableChip names the GPIO chip holding the EN line, e.g.
	// "gpiochip0". Leave empty when EN is strapped high in hardware.
	EnableChip string
	// EnableLine is the line offset of EN on EnableChip.
	EnableLine int
}

// Port is a Bus over one spidev device node, exclusively owned.
type Port struct {
	conn   spi.Conn
	port   spi.PortCloser
	enable *gpiocdev.Line
	name   string
	clock  physic.Frequency
}

// Open opens the spidev port, configures it for the chip (mode 0, 8-bit
// words) and, if requested, raises the enable line.
func Open(opts Options) (*Port, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}

	port, err := spireg.Open(opts.Device)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Device, err)
	}

	clock := DefaultClock
	if opts.ClockHz != 0 {
		clock = physic.Frequency(opts.ClockHz) * physic.Hertz
	}

	conn, err := port.Connect(clock, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("connect %s: %w", opts.Device, err)
	}

	p := &Port{conn: conn, port: port, name: opts.Device, clock: clock}

	if opts.EnableChip != "" {
		line, err := gpiocdev.RequestLine(opts.EnableChip, opts.EnableLine,
			gpiocdev.AsOutput(1), gpiocdev.WithConsumer("ltc5599"))
		if err != nil {
			_ = port.Close()
			return nil, fmt.Errorf("request enable line %s:%d: %w",
				opts.EnableChip, opts.EnableLine, err)
		}
		p.enable = line
	}

	return p, nil
}

// Transact performs one full-duplex frame exchange.
func (p *Port) Transact(tx, rx []byte) error {
	if len(tx) != len(rx) {
		return fmt.Errorf("tx/rx length mismatch: %d != %d", len(tx), len(rx))
	}
	if err := p.conn.Tx(tx, rx); err != nil {
		return fmt.Errorf("spi transfer: %w", err)
	}
	return nil
}

func (p *Port) String() string {
	return fmt.Sprintf("spidev{%s @ %s}", p.name, p.clock)
}

// Close drops the enable line, if held, and releases the port.
func (p *Port) Close() error {
	var err error
	if p.enable != nil {
		err = errors.Join(p.enable.SetValue(0), p.enable.Close())
	}
	return errors.Join(err, p.port.Close())
}
