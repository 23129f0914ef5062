package magicgen

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/reddit/pppmagic/configbp"
	"github.com/reddit/pppmagic/log"
	"github.com/reddit/pppmagic/magicbp"
)

const metricsPrefix = "magicbp_"

// Config is the yaml configuration of magicgen.
type Config struct {
	Log   log.Config     `yaml:"log"`
	Magic magicbp.Config `yaml:"magic"`
}

type formatter func(v uint32) string

var formatters = map[string]formatter{
	"dec": func(v uint32) string {
		return strconv.FormatUint(uint64(v), 10)
	},
	"hex": func(v uint32) string {
		return fmt.Sprintf("0x%08x", v)
	},
}

// Run runs magicgen.
//
// It returns 0 to indicate success,
// and non-zero to indicate failure.
func Run() int {
	if err := RunArgs(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// RunArgs is the more customizable/testable version of Run.
//
// In production code it expects you to pass in os.Args as the args.
func RunArgs(args []string, stdout, stderr io.Writer) (err error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String(
		"config",
		configbp.DefaultConfigPath,
		"The yaml config file to read, optional.",
	)
	count := fs.Int(
		"n",
		1,
		"The number of magic numbers to print.",
	)
	device := fs.String(
		"device",
		"",
		"The entropy device to read from, overrides magic.devicePath from the config.",
	)
	fallback := fs.Bool(
		"fallback",
		false,
		"Skip the entropy device and use the seeded generator.",
	)
	metrics := fs.Bool(
		"metrics",
		false,
		"Write the generator metrics in prometheus text format to stderr after generating.",
	)
	format := oneof{
		choices: formatters,
		value:   "dec",
	}
	fs.Var(
		&format,
		"format",
		fmt.Sprintf("The output format, one of %s.", format.choicesString()),
	)
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}
	if *count < 0 {
		return fmt.Errorf("-n must be non-negative, got %d", *count)
	}

	var cfg Config
	if *configPath != "" {
		if err := configbp.ParseStrictFile(*configPath, &cfg); err != nil {
			return err
		}
	}
	if *device != "" {
		cfg.Magic.DevicePath = *device
	}
	if *fallback {
		cfg.Magic.DisableEntropy = true
	}
	log.InitFromConfig(cfg.Log)
	if cfg.Magic.Logger == nil {
		cfg.Magic.Logger = log.ZapWrapper(zapcore.WarnLevel)
	}

	g := magicbp.New(cfg.Magic)
	out := bufio.NewWriter(stdout)
	defer func() {
		err = multierr.Combine(err, out.Flush(), g.Close())
	}()

	toString := format.getValue()
	for i := 0; i < *count; i++ {
		if _, err := fmt.Fprintln(out, toString(g.NextMagic())); err != nil {
			return fmt.Errorf("failed to write magic number: %w", err)
		}
	}
	entropy := g.UsingEntropy()
	if *count > 0 && !entropy && !cfg.Magic.DisableEntropy {
		log.Warnw(
			"Entropy device unavailable, magic numbers came from the seeded generator",
			"device", cfg.Magic.DevicePath,
		)
	}
	log.Debugw(
		"Generated magic numbers",
		"count", *count,
		"entropy", entropy,
	)

	if *metrics {
		return writeMetrics(stderr, prometheus.DefaultGatherer)
	}
	return nil
}

func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metricsPrefix) {
			continue
		}
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric %q: %w", mf.GetName(), err)
		}
	}
	return nil
}
