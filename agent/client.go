package agent

import (
	"encoding/json"
	"net"
	"time"

	"github.com/pkg/errors"

	"github.com/zhangi/octavia-lib/driver"
	"github.com/zhangi/octavia-lib/log"
	"github.com/zhangi/octavia-lib/models"
)

const (
	statusOK       = 200
	statusNotFound = 404
)

// Resource names understood by the get socket
const (
	ObjectLoadBalancer  = "loadbalancer"
	ObjectListener      = "listener"
	ObjectPool          = "pool"
	ObjectMember        = "member"
	ObjectHealthMonitor = "healthmonitor"
	ObjectL7Policy      = "l7policy"
	ObjectL7Rule        = "l7rule"
)

// ObjectStatus carries the reported statuses of a single resource
type ObjectStatus struct {
	ID                 string `json:"id"`
	ProvisioningStatus string `json:"provisioning_status,omitempty"`
	OperatingStatus    string `json:"operating_status,omitempty"`
}

// StatusUpdate is a status document covering any mix of resources. Drivers
// usually report the whole subtree they just converged.
type StatusUpdate struct {
	LoadBalancers  []ObjectStatus `json:"loadbalancers,omitempty"`
	Listeners      []ObjectStatus `json:"listeners,omitempty"`
	Pools          []ObjectStatus `json:"pools,omitempty"`
	Members        []ObjectStatus `json:"members,omitempty"`
	HealthMonitors []ObjectStatus `json:"healthmonitors,omitempty"`
	L7Policies     []ObjectStatus `json:"l7policies,omitempty"`
	L7Rules        []ObjectStatus `json:"l7rules,omitempty"`
}

// ListenerStatistics carries the traffic counters of one listener
type ListenerStatistics struct {
	ListenerID        string `json:"listener_id"`
	ActiveConnections int    `json:"active_connections"`
	BytesIn           int64  `json:"bytes_in"`
	BytesOut          int64  `json:"bytes_out"`
	RequestErrors     int64  `json:"request_errors"`
	TotalConnections  int64  `json:"total_connections"`
}

// StatisticsUpdate is a statistics document for one or more listeners
type StatisticsUpdate struct {
	Listeners []ListenerStatistics `json:"listeners"`
}

type getRequest struct {
	Object string `json:"object"`
	ID     string `json:"id"`
}

type response struct {
	StatusCode     int             `json:"status_code"`
	FaultString    string          `json:"fault_string,omitempty"`
	StatusObject   string          `json:"status_object,omitempty"`
	StatusObjectID string          `json:"status_object_id,omitempty"`
	Object         json.RawMessage `json:"object,omitempty"`
}

// Client talks to a running driver agent. It is safe for concurrent use,
// every request opens its own connection.
type Client struct {
	statusSocket string
	statsSocket  string
	getSocket    string
	timeout      time.Duration
}

// NewClient builds a client from cfg. Empty fields fall back to the stock
// endpoints, the request timeout must parse as a duration.
func NewClient(cfg Config) (*Client, error) {
	defaults := DefaultConfig()
	if cfg.StatusSocket == "" {
		cfg.StatusSocket = defaults.StatusSocket
	}
	if cfg.StatsSocket == "" {
		cfg.StatsSocket = defaults.StatsSocket
	}
	if cfg.GetSocket == "" {
		cfg.GetSocket = defaults.GetSocket
	}
	if cfg.RequestTimeout == "" {
		cfg.RequestTimeout = defaults.RequestTimeout
	}
	timeout, err := time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid requestTimeout %q", cfg.RequestTimeout)
	}
	return &Client{
		statusSocket: cfg.StatusSocket,
		statsSocket:  cfg.StatsSocket,
		getSocket:    cfg.GetSocket,
		timeout:      timeout,
	}, nil
}

// UpdateLoadBalancerStatus pushes a status document to the controller. A
// rejected document comes back as an UpdateStatusError.
func (c *Client) UpdateLoadBalancerStatus(status StatusUpdate) error {
	log.Debugf("pushing status update to %s", c.statusSocket)
	resp, err := c.roundTrip(c.statusSocket, status)
	if err != nil {
		return err
	}
	if resp.StatusCode != statusOK {
		return &UpdateStatusError{
			FaultString:    resp.FaultString,
			StatusObject:   resp.StatusObject,
			StatusObjectID: resp.StatusObjectID,
		}
	}
	return nil
}

// UpdateListenerStatistics pushes listener counters to the controller. A
// rejected document comes back as an UpdateStatisticsError.
func (c *Client) UpdateListenerStatistics(stats StatisticsUpdate) error {
	log.Debugf("pushing statistics update to %s", c.statsSocket)
	resp, err := c.roundTrip(c.statsSocket, stats)
	if err != nil {
		return err
	}
	if resp.StatusCode != statusOK {
		return &UpdateStatisticsError{
			FaultString:   resp.FaultString,
			StatsObject:   resp.StatusObject,
			StatsObjectID: resp.StatusObjectID,
		}
	}
	return nil
}

// GetLoadBalancer fetches the controller's view of a load balancer
func (c *Client) GetLoadBalancer(id string) (*models.LoadBalancer, error) {
	var lb models.LoadBalancer
	if err := c.get(ObjectLoadBalancer, id, &lb); err != nil {
		return nil, err
	}
	return &lb, nil
}

// GetListener fetches the controller's view of a listener
func (c *Client) GetListener(id string) (*models.Listener, error) {
	var listener models.Listener
	if err := c.get(ObjectListener, id, &listener); err != nil {
		return nil, err
	}
	return &listener, nil
}

// GetPool fetches the controller's view of a pool
func (c *Client) GetPool(id string) (*models.Pool, error) {
	var pool models.Pool
	if err := c.get(ObjectPool, id, &pool); err != nil {
		return nil, err
	}
	return &pool, nil
}

// GetMember fetches the controller's view of a member
func (c *Client) GetMember(id string) (*models.Member, error) {
	var member models.Member
	if err := c.get(ObjectMember, id, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// GetHealthMonitor fetches the controller's view of a health monitor
func (c *Client) GetHealthMonitor(id string) (*models.HealthMonitor, error) {
	var monitor models.HealthMonitor
	if err := c.get(ObjectHealthMonitor, id, &monitor); err != nil {
		return nil, err
	}
	return &monitor, nil
}

// GetL7Policy fetches the controller's view of an L7 policy
func (c *Client) GetL7Policy(id string) (*models.L7Policy, error) {
	var policy models.L7Policy
	if err := c.get(ObjectL7Policy, id, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// GetL7Rule fetches the controller's view of an L7 rule
func (c *Client) GetL7Rule(id string) (*models.L7Rule, error) {
	var rule models.L7Rule
	if err := c.get(ObjectL7Rule, id, &rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (c *Client) get(resource, id string, out any) error {
	log.Debugf("fetching %s %s from %s", resource, id, c.getSocket)
	resp, err := c.roundTrip(c.getSocket, getRequest{Object: resource, ID: id})
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case statusOK:
		if err := json.Unmarshal(resp.Object, out); err != nil {
			return errors.Wrapf(err, "could not decode %s %s", resource, id)
		}
		return nil
	case statusNotFound:
		return driver.NewNotFoundError(resource, id)
	default:
		return errors.Errorf("driver agent rejected the request for %s %s: %s", resource, id, resp.FaultString)
	}
}

func (c *Client) roundTrip(socket string, payload any) (*response, error) {
	conn, err := net.DialTimeout("unix", socket, c.timeout)
	if err != nil {
		return nil, &AgentNotFoundError{Socket: socket, Err: err}
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, errors.Wrap(err, "could not arm the socket deadline")
	}
	if err := json.NewEncoder(conn).Encode(payload); err != nil {
		return nil, c.wireError(socket, err)
	}
	var resp response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return nil, c.wireError(socket, err)
	}
	return &resp, nil
}

func (c *Client) wireError(socket string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &AgentTimeoutError{Socket: socket, Err: err}
	}
	return errors.Wrapf(err, "driver agent request on %s failed", socket)
}
