package spidev

import (
	"os"
	"testing"
)

func TestOpen(t *testing.T) {
	dev := os.Getenv("TEST_SPIDEV")
	if dev == "" {
		t.Skip("set 'TEST_SPIDEV' to a spidev port name to run this test")
	}

	port, err := Open(Options{Device: dev})
	if err != nil {
		t.Fatalf("failed to open %s: %v", dev, err)
	}
	t.Logf("opened: %s", port)

	// read the frequency register; any attached LTC5599 answers
	tx := []byte{0x00<<1 | 0x01, 0xFF}
	rx := make([]byte, 2)
	if err = port.Transact(tx, rx); err != nil {
		t.Errorf("transact failed: %v", err)
	}
	t.Logf("frequency register: 0x%02X", rx[1])

	if err = port.Close(); err != nil {
		t.Errorf("failed to close port: %v", err)
	}
}
