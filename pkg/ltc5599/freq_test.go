package ltc5599

import (
	"errors"
	"testing"
)

func TestFreqToCtrlWord(t *testing.T) {
	t.Run("SaturatesLow", func(t *testing.T) {
		if w := freqToCtrlWord(93000); w != 121 {
			t.Errorf("expected code 121 at bottom threshold, got %d", w)
		}
		if w := freqToCtrlWord(30000); w != 121 {
			t.Errorf("expected code 121 below tuning range, got %d", w)
		}
	})

	t.Run("SaturatesHigh", func(t *testing.T) {
		if w := freqToCtrlWord(1249101); w != 1 {
			t.Errorf("expected code 1 above top threshold, got %d", w)
		}
		if w := freqToCtrlWord(1300000); w != 1 {
			t.Errorf("expected code 1 at range ceiling, got %d", w)
		}
	})

	t.Run("TableLookup", func(t *testing.T) {
		cases := []struct {
			khz  uint32
			want byte
		}{
			{433000, 51},
			{868000, 20},
			{1249100, 2}, // threshold itself belongs to the next code down
			{93001, 120},
			{915000, 18},
		}
		for _, c := range cases {
			if got := freqToCtrlWord(c.khz); got != c.want {
				t.Errorf("freqToCtrlWord(%d) = %d, want %d", c.khz, got, c.want)
			}
		}
	})
}

func TestCtrlWordToHz(t *testing.T) {
	t.Run("StrictlyDecreasing", func(t *testing.T) {
		for w := byte(1); w < 121; w++ {
			if ctrlWordToHz(w) <= ctrlWordToHz(w+1) {
				t.Fatalf("curve not decreasing between codes %d and %d", w, w+1)
			}
		}
	})

	t.Run("KnownPoint", func(t *testing.T) {
		// power-on tuning code
		if hz := ctrlWordToHz(0x2E); hz != 484827869 {
			t.Errorf("ctrlWordToHz(0x2E) = %d, want 484827869", hz)
		}
	})
}

func TestFrequencyParam(t *testing.T) {
	t.Run("RejectsBelowFloor", func(t *testing.T) {
		d, bus := newTestDevice()
		err := d.WriteRaw(ChannelI, ParamFrequency, 29_000_000, 0)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("expected ErrOutOfRange, got %v", err)
		}
		if bus.frameCount() != 0 {
			t.Errorf("expected no bus traffic, saw %d frames", bus.frameCount())
		}
	})

	t.Run("FloorProducesLowestCode", func(t *testing.T) {
		d, bus := newTestDevice()
		if err := d.WriteRaw(ChannelI, ParamFrequency, 30_000_000, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := bus.reg(RegFREQ); got != 121 {
			t.Errorf("expected tuning code 121, register holds 0x%02X", got)
		}
	})

	t.Run("WriteFrame", func(t *testing.T) {
		d, bus := newTestDevice()
		if err := d.WriteRaw(ChannelQ, ParamFrequency, 433_000_000, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f := bus.frame(0)
		if f[0] != 0x00 {
			t.Errorf("expected write frame to address 0x00, got 0x%02X", f[0])
		}
		if f[1] != 51 {
			t.Errorf("expected tuning code 51 for 433 MHz, got %d", f[1])
		}
	})

	t.Run("PreservesSignBit", func(t *testing.T) {
		d, bus := newTestDevice()
		// positive phase balance sets bit 7 of the frequency register
		if err := d.WriteRaw(ChannelI, ParamPhase, 10, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := d.WriteRaw(ChannelI, ParamFrequency, 433_000_000, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := bus.reg(RegFREQ); got != 0x80|51 {
			t.Errorf("frequency write clobbered the sign bit: 0x%02X", got)
		}
	})

	t.Run("ReadUsesCurveFit", func(t *testing.T) {
		d, _ := newTestDevice()
		val, _, f, err := d.ReadRaw(ChannelI, ParamFrequency)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f != FormatInt {
			t.Errorf("expected FormatInt, got %v", f)
		}
		if val != 484827869 {
			t.Errorf("expected 484827869 Hz for power-on code 0x2E, got %d", val)
		}
	})
}
