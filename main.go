package main

import (
	"os"

	"github.com/xll-gen/resources-compiler/cmd"
)

// main is the entry point of the resources_compiler CLI.
// It runs the root command and exits with the code it reports.
func main() {
	os.Exit(cmd.Execute())
}
