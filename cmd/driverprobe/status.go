package main

import (
	"github.com/spf13/cobra"

	"github.com/zhangi/octavia-lib/agent"
	"github.com/zhangi/octavia-lib/log"
	"github.com/zhangi/octavia-lib/models"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Push a load balancer status document",
	Long:  `Reports the provisioning and operating status of one load balancer over the status socket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

func init() {
	statusCmd.Flags().String("loadbalancer", "", "load balancer id to report")
	statusCmd.Flags().String("provisioning-status", models.ProvisioningStatusActive, "provisioning status to report")
	statusCmd.Flags().String("operating-status", models.OperatingStatusOnline, "operating status to report")
	_ = statusCmd.MarkFlagRequired("loadbalancer")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command) error {
	id, _ := cmd.Flags().GetString("loadbalancer")
	provisioning, _ := cmd.Flags().GetString("provisioning-status")
	operating, _ := cmd.Flags().GetString("operating-status")

	update := agent.StatusUpdate{
		LoadBalancers: []agent.ObjectStatus{
			{ID: id, ProvisioningStatus: provisioning, OperatingStatus: operating},
		},
	}
	if err := client.UpdateLoadBalancerStatus(update); err != nil {
		return err
	}
	log.Infof("reported %s/%s for load balancer %s", provisioning, operating, id)
	return nil
}
