package main

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of runjson",
	RunE: func(cmd *cobra.Command, args []string) error {
		runjson.PrintVersion()
		return nil
	},
}
