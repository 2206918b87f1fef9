// Command ls-nightsky reports where a target sits in the sky from an
// observatory, with sun, moon, night events, planets and barycentric
// corrections.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
