// Package configbp parses yaml configuration files.
package configbp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v2"

	"github.com/reddit/pppmagic/log"
)

// DefaultConfigPath points to the default config file,
// read from the PPPMAGIC_CONFIG_PATH environment variable.
var DefaultConfigPath = os.Getenv("PPPMAGIC_CONFIG_PATH")

// envsubstReader expands environment variables line by line.
type envsubstReader struct {
	buffer bytes.Buffer
	lines  *bufio.Scanner
}

func (r *envsubstReader) Read(buf []byte) (int, error) {
	if r.buffer.Len() > 0 {
		return r.buffer.Read(buf)
	}

	if !r.lines.Scan() {
		if err := r.lines.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	r.buffer.WriteString(os.ExpandEnv(r.lines.Text()))
	r.buffer.WriteString("\n")
	return r.buffer.Read(buf)
}

// ParseStrictFile parses configuration from the file at the given path.
//
// Only .yaml and .yml files are supported.
// See ParseStrictYAML for the parsing rules.
func ParseStrictFile(path string, ptr interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("configbp.ParseStrictFile: %w", err) // contains filename
	}
	defer f.Close() // safe to blindly close read-only files

	switch ext := filepath.Ext(path); strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseStrictYAML(f, ptr)
	default:
		return fmt.Errorf("configbp.ParseStrictFile: unsupported config extension %q", ext)
	}
}

// ParseStrictYAML parses YAML read from the given Reader into ptr.
//
// Environment variables (e.g. $FOO and ${FOO}) are substituted from the
// environment before parsing.
// Unknown keys are treated as errors.
func ParseStrictYAML(reader io.Reader, ptr interface{}) error {
	reader = &envsubstReader{
		lines: bufio.NewScanner(reader),
	}

	var debugOutput strings.Builder
	if log.With().Desugar().Core().Enabled(zap.DebugLevel) {
		reader = io.TeeReader(reader, &debugOutput)
	}

	dec := yaml.NewDecoder(reader)
	dec.SetStrict(true)
	if err := dec.Decode(ptr); err != nil && err != io.EOF {
		if debugOutput.Len() > 0 {
			log.Debugf("Partial configuration for decoding into %T: (error: %s)\n%s", ptr, err, debugOutput.String())
		}
		return fmt.Errorf("configbp.ParseStrictYAML: parsing YAML into %T: %w", ptr, err)
	}

	if debugOutput.Len() > 0 {
		log.Debugf("Parsed configuration as %T:\n%s", ptr, debugOutput.String())
	}
	return nil
}
