package magicbp

import (
	"encoding/binary"
	"io"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
)

// HostIDPath is the file gethostid(3) reads the host ID from.
const HostIDPath = "/etc/hostid"

// Overridden in tests.
var (
	hostIDPath = HostIDPath
	hostname   = os.Hostname
)

// SeedInputs are the values the fallback seed is derived from.
type SeedInputs struct {
	HostID int64
	Time   time.Time
	PID    int
}

// CurrentSeedInputs returns the SeedInputs of the current process at the
// current time.
func CurrentSeedInputs() SeedInputs {
	return SeedInputs{
		HostID: HostID(),
		Time:   time.Now(),
		PID:    os.Getpid(),
	}
}

// Seed combines all the inputs with bitwise xor.
//
// The time contributes both its unix seconds and its microseconds.
func (si SeedInputs) Seed() int64 {
	return si.HostID ^
		si.Time.Unix() ^
		int64(si.Time.Nanosecond()/int(time.Microsecond)) ^
		int64(si.PID)
}

// HostID returns a 32-bit identifier of the current host.
//
// It reads HostIDPath the same way gethostid(3) does.
// If that fails it falls back to the low 32 bits of the xxhash of the
// hostname, and to 0 if the hostname is also unavailable.
func HostID() int64 {
	if id, err := readHostID(hostIDPath); err == nil {
		return id
	}
	name, err := hostname()
	if err != nil || name == "" {
		return 0
	}
	return int64(int32(xxhash.Sum64String(name)))
}

func readHostID(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var buf [4]byte
	if _, err := io.ReadFull(f, buf[:]); err != nil {
		return 0, err
	}
	// gethostid returns a long holding a signed 32-bit value.
	return int64(int32(binary.NativeEndian.Uint32(buf[:]))), nil
}
