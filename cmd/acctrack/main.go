// Package main provides the acctrack command: a local bookkeeping data
// service with a SQLite-backed record store and an HTTP façade for the
// desktop UI.
package main

import (
	"fmt"
	"os"
)

const (
	exitSuccess  = 0
	exitUserErr  = 1
	exitSysError = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserErr)
	}
}
