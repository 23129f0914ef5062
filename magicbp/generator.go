package magicbp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/reddit/pppmagic/log"
)

// Config is the configuration of a Generator.
//
// The zero value is valid and uses DefaultDevicePath.
//
// Can be deserialized from YAML.
type Config struct {
	// DevicePath is the entropy device to read from.
	// Default to DefaultDevicePath if empty.
	DevicePath string `yaml:"devicePath"`

	// DisableEntropy skips opening the entropy device and always uses the
	// seeded fallback generator.
	DisableEntropy bool `yaml:"disableEntropy"`

	// Optional, the logger to report entropy device failures.
	// Default to no logging.
	Logger log.Wrapper `yaml:"logger"`

	// Optional, used to open DevicePath. Default to OpenDevice.
	Open OpenFunc `yaml:"-"`

	// Optional, used to derive the fallback seed.
	// Default to CurrentSeedInputs.
	SeedInputs func() SeedInputs `yaml:"-"`
}

var (
	errShortRead = errors.New("short read")
	errNilSource = errors.New("open returned nil source")
)

// Generator generates magic numbers.
//
// The zero value is ready to use with the default Config.
// All its methods are safe for concurrent use.
type Generator struct {
	cfg Config

	lock        sync.Mutex
	initialized bool
	// src is the active strategy, either the entropy source or &prng.
	src     EntropySource
	entropy bool
	prng    Rand48
	seed    int64
	seeded  bool
}

// New creates a Generator.
//
// Nothing is opened until the first Initialize or NextMagic call.
func New(cfg Config) *Generator {
	cfg.setDefaults()
	return &Generator{cfg: cfg}
}

func (cfg *Config) setDefaults() {
	if cfg.DevicePath == "" {
		cfg.DevicePath = DefaultDevicePath
	}
	if cfg.Open == nil {
		cfg.Open = openDevice
	}
	if cfg.SeedInputs == nil {
		cfg.SeedInputs = CurrentSeedInputs
	}
}

// Initialize prepares the generator.
//
// It tries to open the entropy device first, and falls back to seeding the
// pseudo-random generator if that fails.
// Only the first call does anything. It never fails, a failure to open the
// device is only logged.
func (g *Generator) Initialize() {
	g.lock.Lock()
	defer g.lock.Unlock()

	g.initLocked()
}

func (g *Generator) initLocked() {
	if g.initialized {
		return
	}
	g.initialized = true
	g.cfg.setDefaults()

	if !g.cfg.DisableEntropy {
		src, err := g.cfg.Open(g.cfg.DevicePath)
		if err == nil && src == nil {
			err = errNilSource
		}
		if err == nil {
			g.src = src
			g.entropy = true
			initCounter.WithLabelValues(sourceEntropy).Inc()
			return
		}
		g.cfg.Logger.Log(fmt.Sprintf(
			"magicbp: failed to open entropy device %q, using seeded generator instead: %v",
			g.cfg.DevicePath,
			err,
		))
	}
	g.useFallbackLocked()
	initCounter.WithLabelValues(sourceFallback).Inc()
}

// useFallbackLocked makes the seeded generator the active strategy, seeding
// it if it never was.
func (g *Generator) useFallbackLocked() {
	g.src = &g.prng
	g.entropy = false
	if g.seeded {
		return
	}
	g.cfg.setDefaults()
	g.seed = g.cfg.SeedInputs().Seed()
	g.seeded = true
	g.prng.Seed(g.seed)
}

// NextMagic returns the next magic number.
//
// It calls Initialize first if needed.
//
// The 4 bytes read from the active source are returned as a big endian value.
// When a read from the entropy source returns fewer than 4 bytes, the value
// comes from the fallback generator for this call only, and the next call
// tries the entropy source again.
func (g *Generator) NextMagic() uint32 {
	g.lock.Lock()
	defer g.lock.Unlock()

	g.initLocked()

	var buf [4]byte
	n, err := g.src.Read(buf[:])
	if n >= len(buf) {
		drawCounter.WithLabelValues(g.sourceLabelLocked()).Inc()
		return binary.BigEndian.Uint32(buf[:])
	}
	faultCounter.Inc()
	if err == nil {
		err = errShortRead
	}
	g.cfg.Logger.Log(fmt.Sprintf(
		"magicbp: short read from entropy source (%d of %d bytes), using seeded generator for this value: %v",
		n,
		len(buf),
		err,
	))
	drawCounter.WithLabelValues(sourceFallback).Inc()
	return g.prng.Uint32()
}

func (g *Generator) sourceLabelLocked() string {
	if g.entropy {
		return sourceEntropy
	}
	return sourceFallback
}

// Seed returns the fallback seed and whether it was computed.
//
// The seed is only computed when the entropy source is unavailable.
func (g *Generator) Seed() (seed int64, ok bool) {
	g.lock.Lock()
	defer g.lock.Unlock()

	return g.seed, g.seeded
}

// UsingEntropy reports whether the generator is initialized and reads from
// the entropy source.
func (g *Generator) UsingEntropy() bool {
	g.lock.Lock()
	defer g.lock.Unlock()

	return g.entropy
}

// Close closes the entropy source if it's open and implements io.Closer.
//
// Generators living for the whole process don't need to be closed.
// After Close, NextMagic keeps working with the fallback generator, which is
// seeded at this point if it never was.
func (g *Generator) Close() error {
	g.lock.Lock()
	defer g.lock.Unlock()

	g.initialized = true
	src, entropy := g.src, g.entropy
	g.useFallbackLocked()
	if !entropy {
		return nil
	}
	if c, ok := src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
