// Package ft232h provides an LTC5599 bus backend over an FTDI FT232H
// USB-to-MPSSE bridge, for bench setups without a native SPI port.
package ft232h

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/yunginnanet/ft232h"
)

// ErrBadDescriptor is returned when a [Descriptor] identifies no device.
var ErrBadDescriptor = errors.New("invalid FT232H descriptor provided")

// Descriptor selects one FT232H when more than one is attached.
type Descriptor struct {
	Index  int
	Serial string
	mask   *ft232h.Mask
}

// ByIndex selects the nth enumerated FT232H.
func ByIndex(index int) Descriptor {
	return Descriptor{Index: index}
}

// BySerial selects an FT232H by its serial number.
func BySerial(serial string) Descriptor {
	return Descriptor{Serial: serial, Index: -1}
}

// ByMask selects an FT232H by an explicit [ft232h.Mask].
func ByMask(mask *ft232h.Mask) Descriptor {
	return Descriptor{mask: mask, Index: -1}
}

// Validate checks that the [Descriptor] can identify a device.
func (ftd Descriptor) Validate() error {
	if ftd.Index < 0 && ftd.Serial == "" && emptyMask(ftd.mask) {
		return ErrBadDescriptor
	}
	return nil
}

// Mask returns the [ft232h.Mask] representation of the [Descriptor].
func (ftd Descriptor) Mask() *ft232h.Mask {
	if ftd.mask == nil {
		ftd.mask = new(ft232h.Mask)
	}
	if ftd.Serial != "" {
		ftd.mask.Serial = ftd.Serial
	}
	if ftd.Index >= 0 {
		ftd.mask.Index = strconv.Itoa(ftd.Index)
	}
	return ftd.mask
}

func (ftd Descriptor) String() string {
	return fmt.Sprintf("Descriptor{Index:%d, Serial:%s}", ftd.Index, ftd.Serial)
}

func emptyMask(mask *ft232h.Mask) bool {
	return mask == nil ||
		(mask.Serial == "" && mask.PID == "" && mask.VID == "" && mask.Desc == "" && mask.Index == "")
}

// Bridge is an LTC5599 bus over one FT232H.
type Bridge struct {
	*ft232h.FT232H
	csPin ft232h.CPin
}

func (br *Bridge) String() string {
	return fmt.Sprintf("FT232H[%d]: %s", br.Index(), br.Desc())
}

// Connect opens an FT232H and configures its SPI engine for the chip:
// mode 0 at the given clock, with chip select driven as a GPIO so the
// split read in Transact stays inside a single select window.
func Connect(clockHz uint32, csPin uint, choice ...Descriptor) (*Bridge, error) {
	br := &Bridge{}

	var err error
	switch len(choice) {
	case 0:
		br.FT232H, err = ft232h.New()
	case 1:
		if err = choice[0].Validate(); err != nil {
			return nil, err
		}
		br.FT232H, err = ft232h.OpenMask(choice[0].Mask())
	default:
		return nil, fmt.Errorf("invalid number of arguments")
	}
	if err != nil {
		return nil, err
	}

	cfg := br.SPI.GetConfig()
	cfg.Clock = clockHz
	cfg.Mode = 0 // CPOL=0, CPHA=0 per the datasheet
	cfg.CS = ft232h.C(csPin)
	cfg.ActiveLow = false
	if err = br.SPI.Config(cfg); err != nil {
		return nil, errors.Join(fmt.Errorf("configure SPI engine: %w", err), br.SPI.Close())
	}

	br.csPin = ft232h.CPin(csPin)
	if err = br.GPIO.ConfigPin(br.csPin, ft232h.Output, true); err != nil {
		return nil, errors.Join(fmt.Errorf("configure CS pin: %w", err), br.SPI.Close())
	}

	return br, nil
}
