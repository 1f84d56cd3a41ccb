package main

import (
	"os"

	"github.com/katalvlaran/sortviz/cli"
)

var version = "dev"

func main() {
	c := cli.New("sortviz", version)

	os.Exit(c.Execute(os.Args[1:]))
}
