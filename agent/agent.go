// Package agent is the driver side client of the controller's driver agent.
// Provider drivers report provisioning and operating statuses, push listener
// statistics and fetch the controller's view of a resource over three local
// unix sockets, one JSON document per connection.
package agent

// Default driver agent endpoints
const (
	DefaultStatusSocket   = "/var/run/octavia/status.sock"
	DefaultStatsSocket    = "/var/run/octavia/stats.sock"
	DefaultGetSocket      = "/var/run/octavia/get.sock"
	DefaultRequestTimeout = "5s"
)

// Config holds the driver agent endpoints of one deployment
type Config struct {
	StatusSocket   string `yaml:"statusSocket" toml:"statusSocket"`
	StatsSocket    string `yaml:"statsSocket" toml:"statsSocket"`
	GetSocket      string `yaml:"getSocket" toml:"getSocket"`
	RequestTimeout string `yaml:"requestTimeout" toml:"requestTimeout"`
}

// DefaultConfig returns the stock endpoint configuration
func DefaultConfig() Config {
	return Config{
		StatusSocket:   DefaultStatusSocket,
		StatsSocket:    DefaultStatsSocket,
		GetSocket:      DefaultGetSocket,
		RequestTimeout: DefaultRequestTimeout,
	}
}
