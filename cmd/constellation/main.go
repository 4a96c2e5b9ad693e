package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/constellation/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the view crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mCONSTELLATION CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		failure.Fprintf(os.Stderr, "constellation: %v\n", err)
		os.Exit(1)
	}
}
