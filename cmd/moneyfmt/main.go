// Command moneyfmt formats BRL amounts, replays masked-input keystrokes and
// runs CEP lookups from the terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
