package magicbp

import (
	"fmt"
	"io"
	"os"
)

// DefaultDevicePath is the entropy device used when Config.DevicePath is
// empty.
const DefaultDevicePath = "/dev/urandom"

// EntropySource is a fallible source of random bytes.
//
// Generator issues a single Read of 4 bytes per value, and treats any read
// returning fewer bytes as a fault of the source.
//
// Implementations provided by this package are DeviceSource, backed by the OS
// entropy device, and *Rand48, backed by a seeded generator.
type EntropySource interface {
	io.Reader
}

// SourceFunc is an EntropySource implemented by a function.
type SourceFunc func(p []byte) (int, error)

// Read calls f.
func (f SourceFunc) Read(p []byte) (int, error) {
	return f(p)
}

// OpenFunc opens the EntropySource at path.
type OpenFunc func(path string) (EntropySource, error)

var (
	_ EntropySource = (*DeviceSource)(nil)
	_ io.Closer     = (*DeviceSource)(nil)
	_ EntropySource = (*Rand48)(nil)
	_ EntropySource = SourceFunc(nil)
	_ OpenFunc      = openDevice
)

// DeviceSource is an EntropySource reading from an open device or file.
type DeviceSource struct {
	f *os.File
}

// OpenDevice opens the device at path read-only.
//
// When err is nil it's the caller's responsibility to close the returned
// DeviceSource.
func OpenDevice(path string) (*DeviceSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("magicbp.OpenDevice: %w", err)
	}
	return &DeviceSource{f: f}, nil
}

func openDevice(path string) (EntropySource, error) {
	ds, err := OpenDevice(path)
	if err != nil {
		// Avoid returning a typed nil.
		return nil, err
	}
	return ds, nil
}

// Read reads from the device.
func (ds *DeviceSource) Read(p []byte) (int, error) {
	return ds.f.Read(p)
}

// Close closes the device.
func (ds *DeviceSource) Close() error {
	return ds.f.Close()
}
