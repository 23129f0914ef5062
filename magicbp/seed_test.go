package magicbp

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
)

func TestSeedInputsSeed(t *testing.T) {
	for _, c := range []struct {
		label  string
		inputs SeedInputs
		want   int64
	}{
		{
			label: "zero-time",
			inputs: SeedInputs{
				HostID: 42,
				Time:   time.Unix(0, 0),
			},
			want: 42,
		},
		{
			label: "all",
			inputs: SeedInputs{
				HostID: 0x1234,
				Time:   time.Unix(1000, 5999),
				PID:    4321,
			},
			// 5999ns truncates to 5us.
			want: 0x1234 ^ 1000 ^ 5 ^ 4321,
		},
		{
			label: "negative-host-id",
			inputs: SeedInputs{
				HostID: -1,
				Time:   time.Unix(0, 0),
				PID:    1,
			},
			want: -2,
		},
	} {
		t.Run(c.label, func(t *testing.T) {
			if got := c.inputs.Seed(); got != c.want {
				t.Errorf("%#v.Seed() = %d, want %d", c.inputs, got, c.want)
			}
		})
	}
}

func TestCurrentSeedInputs(t *testing.T) {
	before := time.Now()
	si := CurrentSeedInputs()
	after := time.Now()

	if si.PID != os.Getpid() {
		t.Errorf("Expected PID %d, got %d", os.Getpid(), si.PID)
	}
	if si.Time.Before(before) || si.Time.After(after) {
		t.Errorf("Expected time between %v and %v, got %v", before, after, si.Time)
	}
	if si.HostID != HostID() {
		t.Errorf("Expected host id %d, got %d", HostID(), si.HostID)
	}
}

func TestHostID(t *testing.T) {
	oldPath := hostIDPath
	oldHostname := hostname
	t.Cleanup(func() {
		hostIDPath = oldPath
		hostname = oldHostname
	})

	dir := t.TempDir()

	t.Run("hostid-file", func(t *testing.T) {
		path := filepath.Join(dir, "hostid")
		var buf [4]byte
		binary.NativeEndian.PutUint32(buf[:], 0xfffffffe)
		if err := os.WriteFile(path, buf[:], 0600); err != nil {
			t.Fatalf("SETUP: failed to write file: %v", err)
		}
		hostIDPath = path
		hostname = func() (string, error) {
			t.Error("hostname should not be called")
			return "", nil
		}

		if got, want := HostID(), int64(-2); got != want {
			t.Errorf("HostID() = %d, want %d", got, want)
		}
	})

	t.Run("short-hostid-file", func(t *testing.T) {
		path := filepath.Join(dir, "short")
		if err := os.WriteFile(path, []byte{1, 2}, 0600); err != nil {
			t.Fatalf("SETUP: failed to write file: %v", err)
		}
		hostIDPath = path
		hostname = func() (string, error) {
			return "example.local", nil
		}

		want := int64(int32(xxhash.Sum64String("example.local")))
		if got := HostID(); got != want {
			t.Errorf("HostID() = %d, want %d", got, want)
		}
	})

	t.Run("hostname", func(t *testing.T) {
		hostIDPath = filepath.Join(dir, "does-not-exist")
		hostname = func() (string, error) {
			return "example.local", nil
		}

		want := int64(int32(xxhash.Sum64String("example.local")))
		if got := HostID(); got != want {
			t.Errorf("HostID() = %d, want %d", got, want)
		}
	})

	t.Run("nothing", func(t *testing.T) {
		hostIDPath = filepath.Join(dir, "does-not-exist")
		hostname = func() (string, error) {
			return "", errors.New("no hostname")
		}

		if got := HostID(); got != 0 {
			t.Errorf("HostID() = %d, want 0", got)
		}
	})
}
