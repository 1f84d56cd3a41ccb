package cli

import (
	"fmt"
	"os"

	"github.com/convox/stdcli"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/katalvlaran/sortviz/render"
	"github.com/katalvlaran/sortviz/sorting"
)

func init() {
	register("animate", "draw a sort as terminal bars, one frame per operation", Animate, stdcli.CommandOptions{
		Flags: []stdcli.Flag{
			flagConfig,
			stdcli.DurationFlag("delay", "d", "pause between frames"),
			flagGenerate,
			stdcli.BoolFlag("no-color", "", "disable colors"),
			flagSeed,
			flagSize,
			flagVerbose,
			stdcli.IntFlag("width", "w", "widest bar in cells"),
		},
		Usage: "[algorithm] [--] [values...]",
	})
}

func Animate(e *Engine, c *stdcli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	alg, args, err := algorithm(c, cfg)
	if err != nil {
		return err
	}

	seq, err := input(c, cfg, args)
	if err != nil {
		return err
	}

	width := intOr(c, "width", cfg.Width)
	redraw := false

	if f, ok := e.stdout().(*os.File); ok {
		if width == 0 {
			width = render.Width(f, render.DefaultWidth)
		}
		redraw = render.IsTerminal(f)
	}

	term := render.NewTerminal(e.stdout(), seq,
		render.WithWidth(width),
		render.WithDelay(durationOr(c, "delay", cfg.Delay)),
		render.WithColor(cfg.Color && e.Writer.Color && !c.Bool("no-color")),
		render.WithClear(redraw),
	)

	log := e.log(c).At("animate").Namespace("algorithm=%s values=%d", alg, len(seq)).Start()

	if err := term.Draw(fmt.Sprintf("%s %v", alg, seq)); err != nil {
		return log.Error(errors.Wrap(err, "draw"))
	}

	if err := sorting.Sort(alg, seq, term.Emitter()); err != nil {
		return log.Error(err)
	}
	if err := term.Err(); err != nil {
		return log.Error(errors.Wrap(err, "draw"))
	}

	steps := term.Frames() - 1

	c.Writef("%s: sorted in %s steps\n", alg, humanize.Comma(int64(steps)))

	log.Successf("frames=%d", term.Frames())

	return nil
}
