// Package cli wires the sortviz commands into a stdcli engine.
package cli

import (
	"io"

	"github.com/convox/logger"
	"github.com/convox/stdcli"
)

// HandlerFunc is a command body with access to the sortviz engine.
type HandlerFunc func(*Engine, *stdcli.Context) error

// Engine wraps the stdcli engine with sortviz state.
type Engine struct {
	*stdcli.Engine
}

// New returns an engine with every sortviz command registered.
func New(name, version string) *Engine {
	e := &Engine{
		Engine: stdcli.New(name, version),
	}

	e.RegisterCommands()

	return e
}

// Command registers fn under command.
func (e *Engine) Command(command, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	wfn := func(c *stdcli.Context) error {
		return fn(e, c)
	}

	e.Engine.Command(command, description, wfn, opts)
}

// RegisterCommands adds every command collected by register.
func (e *Engine) RegisterCommands() {
	for _, c := range commands {
		e.Command(c.Command, c.Description, c.Handler, c.Opts)
	}
}

// stdout is where command output and traces go.
func (e *Engine) stdout() io.Writer {
	return e.Writer.Stdout
}

// log returns the operational logger: stderr when verbose, discarded
// otherwise so that stdout stays machine-readable either way.
func (e *Engine) log(c *stdcli.Context) *logger.Logger {
	if c.Bool("verbose") {
		return logger.NewWriter("ns=sortviz", e.Writer.Stderr)
	}
	return logger.NewWriter("ns=sortviz", io.Discard)
}

var commands = []command{}

type command struct {
	Command     string
	Description string
	Handler     HandlerFunc
	Opts        stdcli.CommandOptions
}

func register(cmd, description string, fn HandlerFunc, opts stdcli.CommandOptions) {
	commands = append(commands, command{
		Command:     cmd,
		Description: description,
		Handler:     fn,
		Opts:        opts,
	})
}
