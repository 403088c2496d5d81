package ltc5599

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

var errBus = errors.New("bus failure")

// testBus emulates the chip's register file and records every frame so
// tests can assert on the exact bus traffic.
type testBus struct {
	mu     sync.Mutex
	regs   [NumRegisters]byte
	frames [][2]byte

	// depth flags re-entrant Transact calls from concurrent callers.
	depth    atomic.Int32
	overlaps atomic.Int32

	failFrom int // fail transactions numbered >= failFrom when >= 0
	closed   bool
}

func newTestBus() *testBus {
	b := &testBus{failFrom: -1}
	// power-on register values, as the hardware would present them
	b.regs[RegFREQ] = 0x2E
	b.regs[RegGAIN] = 0x84
	b.regs[RegOFFSI] = 0x80
	b.regs[RegOFFSQ] = 0x80
	b.regs[RegIQGainRatio] = 0x80
	b.regs[RegIQPhaseBal] = 0x10
	b.regs[RegLOMatchOvr] = 0x50
	b.regs[RegTempCorrOvr] = 0x06
	return b
}

func (b *testBus) Transact(tx, rx []byte) error {
	if b.depth.Add(1) != 1 {
		b.overlaps.Add(1)
	}
	runtime.Gosched()
	defer b.depth.Add(-1)

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(tx) != 2 || len(rx) != 2 {
		return fmt.Errorf("malformed frame: tx=%d rx=%d bytes", len(tx), len(rx))
	}

	n := len(b.frames)
	b.frames = append(b.frames, [2]byte{tx[0], tx[1]})
	if b.failFrom >= 0 && n >= b.failFrom {
		return errBus
	}

	addr := tx[0] >> 1
	if tx[0]&readBit != 0 {
		rx[0] = 0x00
		rx[1] = b.regs[addr]
	} else {
		b.regs[addr] = tx[1]
	}
	return nil
}

func (b *testBus) Close() error {
	b.closed = true
	return nil
}

func (b *testBus) frameCount() int {
	b.mu.Lock()
	n := len(b.frames)
	b.mu.Unlock()
	return n
}

func (b *testBus) frame(i int) [2]byte {
	b.mu.Lock()
	f := b.frames[i]
	b.mu.Unlock()
	return f
}

func (b *testBus) reg(r Register) byte {
	b.mu.Lock()
	v := b.regs[r]
	b.mu.Unlock()
	return v
}

func (b *testBus) setReg(r Register, v byte) {
	b.mu.Lock()
	b.regs[r] = v
	b.mu.Unlock()
}

func newTestDevice() (*Device, *testBus) {
	bus := newTestBus()
	return New(bus, nil), bus
}
