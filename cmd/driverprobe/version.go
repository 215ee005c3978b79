package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// overridden at build time through ldflags
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of " + appName,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(appName, version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
