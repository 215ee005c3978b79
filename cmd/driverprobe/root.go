package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zhangi/octavia-lib/agent"
	"github.com/zhangi/octavia-lib/config"
	"github.com/zhangi/octavia-lib/log"
)

const appName = "driverprobe"

var (
	cfgFile string
	cfg     config.Configuration
	client  *agent.Client
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Poke a running driver agent from the command line",
	Long: `driverprobe talks to the unix sockets of a running driver agent.
It pushes status and statistics documents and fetches single resources,
which makes it handy when wiring up or debugging a provider driver.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "configuration file (stock settings apply when omitted)")
}

func setup() error {
	cfg = config.Default()
	if cfgFile != "" {
		loaded, err := config.ReadConfig(cfgFile)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	log.Init(cfg.Core.LogFile, cfg.Core.LogLevel)

	var err error
	client, err = agent.NewClient(cfg.Agent)
	return err
}
