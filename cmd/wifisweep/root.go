package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wifisweep",
	Short: "WiFi distance sweep campaign driver",
	Long:  "wifisweep runs a distance-parameterized WiFi experiment campaign and records per-scenario throughput, delay, and loss.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
