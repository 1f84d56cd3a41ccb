package cli

import (
	"github.com/convox/stdcli"

	"github.com/katalvlaran/sortviz/gen"
	"github.com/katalvlaran/sortviz/sorting"
)

func init() {
	register("algorithms", "list sorting algorithms", Algorithms, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{stdcli.BoolFlag("generators", "", "list input generators instead")},
		Validate: stdcli.Args(0),
	})
}

func Algorithms(e *Engine, c *stdcli.Context) error {
	if c.Bool("generators") {
		for _, k := range gen.Kinds() {
			c.Writef("%s\n", k)
		}
		return nil
	}

	for _, a := range sorting.Algorithms() {
		c.Writef("%s\n", a)
	}

	return nil
}
