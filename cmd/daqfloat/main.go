// Package main is the daqfloat command line tool.
package main

import (
	"fmt"
	"os"
)

func main() {
	err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args)
	if err != nil {
		// We are a CLI, it's appropriate to write to stderr.
		fmt.Fprintln(os.Stderr, "daqfloat:", err)
		os.Exit(1)
	}
}
