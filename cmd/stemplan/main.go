// Package main provides the stemplan CLI: label-space queries, frame
// composition and planning session management for the supported hip
// stem product lines.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsageError)
	}
}
