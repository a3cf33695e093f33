// Package main is the entry point for the spike-report application
package main

import "github.com/ethpandaops/spike-report/cmd"

func main() {
	cmd.Execute()
}
