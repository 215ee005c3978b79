package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zhangi/octavia-lib/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  `Prints the loaded configuration as YAML, handy as a starting point for a config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfig(cmd)
	},
}

func init() {
	configCmd.Flags().Bool("reference", false, "print the stock configuration instead of the loaded one")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command) error {
	out := cfg
	if reference, _ := cmd.Flags().GetBool("reference"); reference {
		out = config.Default()
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
