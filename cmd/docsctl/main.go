// Command docsctl talks to a document server using the SDK settings: it
// checks reachability, converts files, runs service commands and signs or
// verifies tokens.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
