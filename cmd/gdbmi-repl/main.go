// Command gdbmi-repl is a minimal reference driver: it launches a
// debugger under the Machine Interface, forwards typed-in MI commands
// verbatim, and prints every dispatched event as it arrives.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
