// ltc5599ctl reads and writes LTC5599 parameters from the command line,
// over either a Linux spidev port or an FT232H USB bridge.
//
// Examples:
//
//	ltc5599ctl -param frequency -set 433000000
//	ltc5599ctl -channel 1 -param offset -set -12
//	ltc5599ctl -config rig.yaml -param phase -get
//	ltc5599ctl -dump
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rfgear/spi-ltc5599/pkg/ft232h"
	"github.com/rfgear/spi-ltc5599/pkg/ltc5599"
	"github.com/rfgear/spi-ltc5599/pkg/spidev"
)

var log zerolog.Logger

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	log = zerolog.New(cw).With().Timestamp().Logger()
}

// Config selects the bus backend. A yaml file loaded with -config provides
// the baseline; flags set explicitly on the command line win.
type Config struct {
	Bus        string `yaml:"bus"` // "spidev" or "ft232h"
	Device     string `yaml:"device"`
	ClockHz    uint   `yaml:"clock_hz"`
	EnableChip string `yaml:"enable_chip"`
	EnableLine int    `yaml:"enable_line"`
	FTIndex    int    `yaml:"ft_index"`
	FTSerial   string `yaml:"ft_serial"`
	CSPin      uint   `yaml:"cs_pin"`
}

type operation struct {
	channel int
	param   string
	set     string
	get     bool
	dump    bool
	refresh bool
	reset   bool
}

func parseArgs() (Config, operation) {
	cfg := Config{
		Bus:     "spidev",
		Device:  "/dev/spidev0.0",
		ClockHz: 1_000_000,
		CSPin:   0x10,
	}

	cfgPath := flag.String("config", "", "yaml config file for the bus backend")
	bus := flag.String("bus", cfg.Bus, "bus backend: spidev or ft232h")
	device := flag.String("device", cfg.Device, "spidev port name")
	clock := flag.Uint("clock", cfg.ClockHz, "SPI clock in Hz")
	enChip := flag.String("enable-chip", cfg.EnableChip, "GPIO chip for the EN line (spidev only)")
	enLine := flag.Int("enable-line", cfg.EnableLine, "GPIO line offset for EN (spidev only)")
	ftIndex := flag.Int("ft-index", cfg.FTIndex, "FT232H index")
	ftSerial := flag.String("ft-serial", cfg.FTSerial, "FT232H serial number")
	csPin := flag.Uint("cs", cfg.CSPin, "chip select pin (ft232h only)")

	var op operation
	flag.IntVar(&op.channel, "channel", 0, "output channel, 0 (I) or 1 (Q)")
	flag.StringVar(&op.param, "param", "", "parameter: offset, frequency, gain, quadrature, phase")
	flag.StringVar(&op.set, "set", "", "value to write")
	flag.BoolVar(&op.get, "get", false, "read the parameter back")
	flag.BoolVar(&op.dump, "dump", false, "print the shadow register mirror")
	flag.BoolVar(&op.refresh, "refresh", false, "re-read all registers before dumping")
	flag.BoolVar(&op.reset, "reset", false, "soft-reset the chip")
	flag.Parse()

	if *cfgPath != "" {
		buf, err := os.ReadFile(*cfgPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read config file")
		}
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to parse config file")
		}
	}

	// explicit flags override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bus":
			cfg.Bus = *bus
		case "device":
			cfg.Device = *device
		case "clock":
			cfg.ClockHz = *clock
		case "enable-chip":
			cfg.EnableChip = *enChip
		case "enable-line":
			cfg.EnableLine = *enLine
		case "ft-index":
			cfg.FTIndex = *ftIndex
		case "ft-serial":
			cfg.FTSerial = *ftSerial
		case "cs":
			cfg.CSPin = *csPin
		}
	})

	return cfg, op
}

func openBus(cfg Config) ltc5599.Bus {
	switch cfg.Bus {
	case "spidev":
		port, err := spidev.Open(spidev.Options{
			Device:     cfg.Device,
			ClockHz:    uint32(cfg.ClockHz),
			EnableChip: cfg.EnableChip,
			EnableLine: cfg.EnableLine,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open spidev port")
		}
		log.Info().Msgf("connected: %s", port)
		return port
	case "ft232h":
		desc := ft232h.ByIndex(cfg.FTIndex)
		if cfg.FTSerial != "" {
			desc = ft232h.BySerial(cfg.FTSerial)
		}
		br, err := ft232h.Connect(uint32(cfg.ClockHz), cfg.CSPin, desc)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to FT232H")
		}
		log.Info().Msgf("connected: %s", br)
		return br
	default:
		log.Fatal().Str("bus", cfg.Bus).Msg("unknown bus backend")
		return nil
	}
}

func parseParam(name string) (ltc5599.Param, error) {
	switch name {
	case "offset":
		return ltc5599.ParamOffset, nil
	case "frequency":
		return ltc5599.ParamFrequency, nil
	case "gain":
		return ltc5599.ParamHardwareGain, nil
	case "quadrature":
		return ltc5599.ParamQuadratureCorrection, nil
	case "phase":
		return ltc5599.ParamPhase, nil
	default:
		return 0, fmt.Errorf("unknown parameter %q", name)
	}
}

func main() {
	cfg, op := parseArgs()

	dev := ltc5599.New(openBus(cfg), nil)
	defer func() {
		if err := dev.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close device")
		}
	}()

	ch := ltc5599.Channel(op.channel)

	if op.reset {
		if err := dev.Reset(); err != nil {
			log.Fatal().Err(err).Msg("reset failed")
		}
		log.Info().Msg("chip reset, shadow mirror back to power-on defaults")
	}

	if op.set != "" || op.get {
		if op.param == "" {
			log.Fatal().Msg("-set/-get need -param")
		}
		param, err := parseParam(op.param)
		if err != nil {
			log.Fatal().Err(err).Msg("bad -param")
		}

		if op.set != "" {
			val, err := strconv.Atoi(op.set)
			if err != nil {
				log.Fatal().Err(err).Msg("bad -set value")
			}
			if err := dev.WriteRaw(ch, param, val, 0); err != nil {
				log.Fatal().Err(err).Msg("write failed")
			}
			log.Info().
				Stringer("channel", ch).
				Stringer("param", param).
				Int("value", val).
				Msg("written")
		}

		if op.get {
			val, val2, format, err := dev.ReadRaw(ch, param)
			if err != nil {
				log.Fatal().Err(err).Msg("read failed")
			}
			ev := log.Info().
				Stringer("channel", ch).
				Stringer("param", param).
				Int("value", val)
			if format == ltc5599.FormatIntPlusMicroDB {
				ev = ev.Int("micro_db", val2)
			}
			ev.Msg("read")
		}
	}

	if op.dump {
		if op.refresh {
			if err := dev.RefreshShadow(); err != nil {
				log.Fatal().Err(err).Msg("shadow refresh failed")
			}
		}
		regs := dev.Registers()
		for reg := ltc5599.Register(0); reg < ltc5599.NumRegisters; reg++ {
			log.Info().
				Str("register", fmt.Sprintf("0x%02X", byte(reg))).
				Str("value", fmt.Sprintf("0x%02X", regs[reg])).
				Msg("shadow")
		}
	}
}
