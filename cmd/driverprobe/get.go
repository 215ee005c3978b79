package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/zhangi/octavia-lib/agent"
)

// getCmd represents the get command.
var getCmd = &cobra.Command{
	Use:   "get [object] [id]",
	Short: "Fetch the controller's view of a resource",
	Long: `Fetches one resource over the get socket and prints it as JSON.
Objects: loadbalancer, listener, pool, member, healthmonitor, l7policy, l7rule.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(object, id string) error {
	obj, err := fetch(object, id)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func fetch(object, id string) (any, error) {
	switch object {
	case agent.ObjectLoadBalancer:
		return client.GetLoadBalancer(id)
	case agent.ObjectListener:
		return client.GetListener(id)
	case agent.ObjectPool:
		return client.GetPool(id)
	case agent.ObjectMember:
		return client.GetMember(id)
	case agent.ObjectHealthMonitor:
		return client.GetHealthMonitor(id)
	case agent.ObjectL7Policy:
		return client.GetL7Policy(id)
	case agent.ObjectL7Rule:
		return client.GetL7Rule(id)
	default:
		return nil, errors.Errorf("unknown object %q", object)
	}
}
