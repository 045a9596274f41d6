package main

import (
	"flag"

	"simple-stl/src"
)

func main() {
	// parse args
	src.ParseCliArgs()
	// start cli
	src.CliStart(flag.Args())
}
