package ft232h

import (
	"os"
	"testing"

	"github.com/l0nax/go-spew/spew"
	"github.com/yunginnanet/ft232h"
)

var pprint = spew.ConfigState{
	Indent:          "\t",
	SortKeys:        true,
	SpewKeys:        true,
	HighlightValues: true,
	HighlightHex:    true,
}

func TestDescriptor(t *testing.T) {
	t.Run("ByIndex", func(t *testing.T) {
		desc := ByIndex(0)
		if err := desc.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Run("Invalid", func(t *testing.T) {
			desc = ByIndex(-1)
			if err := desc.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	})
	t.Run("BySerial", func(t *testing.T) {
		desc := BySerial("123456")
		if err := desc.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Run("Invalid", func(t *testing.T) {
			desc = BySerial("")
			if err := desc.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	})
	t.Run("ByMask", func(t *testing.T) {
		mask := new(ft232h.Mask)
		mask.Index = "0"
		desc := ByMask(mask)
		if err := desc.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		t.Run("Invalid", func(t *testing.T) {
			desc = ByMask(nil)
			if err := desc.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	})
	t.Run("Mask", func(t *testing.T) {
		if ByIndex(5).Mask().Index != "5" {
			t.Error("unexpected mask index")
		}
		if BySerial("5").Mask().Serial != "5" {
			t.Error("unexpected mask serial")
		}
	})
}

func TestConnect(t *testing.T) {
	if os.Getenv("TEST_FT232H") == "" {
		t.Skip("set 'TEST_FT232H' in environment to run this test")
	}

	br, err := Connect(1_000_000, 0x10, ByIndex(0))
	if err != nil {
		t.Fatalf("failed to connect to FT232H: %v", err)
	}
	t.Logf("FT232H connected: %s", br.String())

	pprint.Dump(br.FT232H)

	// read the frequency register; any attached LTC5599 answers
	tx := []byte{0x00<<1 | readBit, 0xFF}
	rx := make([]byte, 2)
	if err = br.Transact(tx, rx); err != nil {
		t.Errorf("transact failed: %v", err)
	}
	t.Logf("frequency register: 0x%02X", rx[1])

	if err = br.Close(); err != nil {
		t.Errorf("failed to close FT232H: %v", err)
	}
}
