package main

import (
	"github.com/spf13/cobra"

	"github.com/zhangi/octavia-lib/agent"
	"github.com/zhangi/octavia-lib/log"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Push listener statistics",
	Long:  `Reports the traffic counters of one listener over the statistics socket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd)
	},
}

func init() {
	statsCmd.Flags().String("listener", "", "listener id the counters belong to")
	statsCmd.Flags().Int("active", 0, "active connections")
	statsCmd.Flags().Int64("bytes-in", 0, "bytes received")
	statsCmd.Flags().Int64("bytes-out", 0, "bytes sent")
	statsCmd.Flags().Int64("request-errors", 0, "request errors")
	statsCmd.Flags().Int64("total", 0, "total connections")
	_ = statsCmd.MarkFlagRequired("listener")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command) error {
	id, _ := cmd.Flags().GetString("listener")
	active, _ := cmd.Flags().GetInt("active")
	bytesIn, _ := cmd.Flags().GetInt64("bytes-in")
	bytesOut, _ := cmd.Flags().GetInt64("bytes-out")
	requestErrors, _ := cmd.Flags().GetInt64("request-errors")
	total, _ := cmd.Flags().GetInt64("total")

	stats := agent.StatisticsUpdate{
		Listeners: []agent.ListenerStatistics{
			{
				ListenerID:        id,
				ActiveConnections: active,
				BytesIn:           bytesIn,
				BytesOut:          bytesOut,
				RequestErrors:     requestErrors,
				TotalConnections:  total,
			},
		},
	}
	if err := client.UpdateListenerStatistics(stats); err != nil {
		return err
	}
	log.Infof("reported statistics for listener %s", id)
	return nil
}
