package cli

import (
	"fmt"
	"io"

	"github.com/convox/stdcli"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/katalvlaran/sortviz/config"
	"github.com/katalvlaran/sortviz/sorting"
	"github.com/katalvlaran/sortviz/trace"
)

func init() {
	register("sort", "sort values and print the operation trace", Sort, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			flagConfig,
			stdcli.StringFlag("format", "f", "trace format: text, json"),
			flagGenerate,
			stdcli.BoolFlag("quiet", "q", "omit the trace"),
			flagSeed,
			flagSize,
			flagVerbose,
		},
		Usage: "[algorithm] [--] [values...]",
	})
}

// Sort runs one algorithm and streams its trace to stdout. Without an
// algorithm argument the configured one is used; without values the input
// is generated.
func Sort(e *Engine, c *stdcli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	alg, args, err := algorithm(c, cfg)
	if err != nil {
		return err
	}

	format, err := trace.ParseFormat(stringOr(c, "format", cfg.Format))
	if err != nil {
		return err
	}

	seq, err := input(c, cfg, args)
	if err != nil {
		return err
	}

	log := e.log(c).At("sort").Namespace("algorithm=%s values=%d", alg, len(seq)).Start()

	rec := trace.NewRecorder()
	emit := sorting.Emitter(rec.Emit)

	var enc *trace.Encoder
	if !c.Bool("quiet") {
		enc, err = trace.NewEncoder(e.stdout(), format)
		if err != nil {
			return err
		}
		emit = sorting.Tee(rec.Emit, enc.Emit)
	}

	if err := sorting.Sort(alg, seq, emit); err != nil {
		return log.Error(err)
	}
	if enc != nil && enc.Err() != nil {
		return log.Error(errors.Wrap(enc.Err(), "write trace"))
	}

	// json consumers read stdout line by line; keep the summary off it
	out := e.stdout()
	if format == trace.JSON && !c.Bool("quiet") {
		out = e.Writer.Stderr
	}
	summarize(out, alg, seq, rec.Stats())

	log.Successf("operations=%d", rec.Len())

	return nil
}

// algorithm resolves the selector from the first argument, falling back to
// the configured one when there are no arguments. The remaining arguments
// are returned as values.
func algorithm(c *stdcli.Context, cfg config.Config) (sorting.Algorithm, []string, error) {
	if len(c.Args) == 0 {
		alg, err := sorting.ParseAlgorithm(cfg.Algorithm)
		return alg, nil, err
	}

	alg, err := sorting.ParseAlgorithm(c.Arg(0))
	if err != nil {
		return "", nil, err
	}

	return alg, c.Args[1:], nil
}

func summarize(w io.Writer, alg sorting.Algorithm, seq []int, st trace.Stats) {
	fmt.Fprintf(w, "sorted: %v\n", seq)
	fmt.Fprintf(w, "%s: %s operations (%s swaps, %s moves) on %s values\n",
		alg,
		humanize.Comma(int64(st.Total())),
		humanize.Comma(int64(st.Swaps)),
		humanize.Comma(int64(st.Moves)),
		humanize.Comma(int64(len(seq))),
	)
}
