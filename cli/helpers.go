package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/convox/stdcli"
	"github.com/pkg/errors"

	"github.com/katalvlaran/sortviz/config"
	"github.com/katalvlaran/sortviz/gen"
)

var (
	flagConfig   = stdcli.StringFlag("config", "c", "config file (toml)")
	flagGenerate = stdcli.StringFlag("generate", "g", "generate input: random, sorted, reversed, nearly_sorted, few_unique")
	flagSeed     = stdcli.IntFlag("seed", "s", "seed for generated input")
	flagSize     = stdcli.IntFlag("size", "n", "length of generated input")
	flagVerbose  = stdcli.BoolFlag("verbose", "", "log progress to stderr")
)

// loadConfig reads --config (if any) plus the environment.
func loadConfig(c *stdcli.Context) (config.Config, error) {
	return config.Load(c.String("config"))
}

// stringOr returns the flag value if it was given, else def.
func stringOr(c *stdcli.Context, name, def string) string {
	if c.Value(name) == nil {
		return def
	}
	return c.String(name)
}

// intOr returns the flag value if it was given, else def.
func intOr(c *stdcli.Context, name string, def int) int {
	if c.Value(name) == nil {
		return def
	}
	return c.Int(name)
}

// durationOr returns the flag value if it was given, else def.
func durationOr(c *stdcli.Context, name string, def time.Duration) time.Duration {
	if d, ok := c.Value(name).(time.Duration); ok {
		return d
	}
	return def
}

// parseValues turns arguments like "5 3 8,1" into integers. A bare
// negative value reaches here only after "--" or inside a comma list;
// otherwise the flag parser claims it.
func parseValues(args []string) ([]int, error) {
	values := []int{}
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid value %q", field)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// input returns the values to sort: the explicit arguments when present,
// otherwise a generated sequence described by flags and config.
// Values and --generate are mutually exclusive.
func input(c *stdcli.Context, cfg config.Config, args []string) ([]int, error) {
	if len(args) > 0 {
		if c.Value("generate") != nil {
			return nil, errors.New("--generate cannot be combined with explicit values")
		}
		return parseValues(args)
	}

	kind, err := gen.ParseKind(stringOr(c, "generate", cfg.Generator))
	if err != nil {
		return nil, err
	}

	values, err := gen.Generate(kind, intOr(c, "size", cfg.Size), gen.WithSeed(int64(intOr(c, "seed", int(cfg.Seed)))))
	if err != nil {
		return nil, errors.Wrap(err, "generate input")
	}
	return values, nil
}
