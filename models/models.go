// Package models defines the load balancing resource records exchanged
// between the controller and provider drivers. Field names on the wire follow
// the controller API (snake case), the Go side carries plain typed fields.
package models

import "encoding/json"

// LoadBalancer is the root resource handed to a driver. Listeners and pools
// may be populated on create when the caller provides a full object graph.
type LoadBalancer struct {
	AdminStateUp     bool            `json:"admin_state_up"`
	Description      string          `json:"description,omitempty"`
	Flavor           map[string]any  `json:"flavor,omitempty"`
	Listeners        []Listener      `json:"listeners,omitempty"`
	Pools            []Pool          `json:"pools,omitempty"`
	AdditionalVIPs   []AdditionalVIP `json:"additional_vips,omitempty"`
	LoadBalancerID   string          `json:"loadbalancer_id,omitempty"`
	Name             string          `json:"name,omitempty"`
	ProjectID        string          `json:"project_id,omitempty"`
	VIPAddress       string          `json:"vip_address,omitempty"`
	VIPNetworkID     string          `json:"vip_network_id,omitempty"`
	VIPPortID        string          `json:"vip_port_id,omitempty"`
	VIPSubnetID      string          `json:"vip_subnet_id,omitempty"`
	VIPQoSPolicyID   string          `json:"vip_qos_policy_id,omitempty"`
	AvailabilityZone string          `json:"availability_zone,omitempty"`
	OperatingStatus  string          `json:"operating_status,omitempty"`
}

// VIP describes the frontend address of a load balancer
type VIP struct {
	VIPAddress     string `json:"vip_address,omitempty"`
	VIPNetworkID   string `json:"vip_network_id,omitempty"`
	VIPPortID      string `json:"vip_port_id,omitempty"`
	VIPSubnetID    string `json:"vip_subnet_id,omitempty"`
	VIPQoSPolicyID string `json:"vip_qos_policy_id,omitempty"`
}

// AdditionalVIP is an extra frontend address on another subnet
type AdditionalVIP struct {
	SubnetID  string `json:"subnet_id,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
}

// Listener is a frontend endpoint of a load balancer
type Listener struct {
	AdminStateUp             bool              `json:"admin_state_up"`
	AllowedCIDRs             []string          `json:"allowed_cidrs,omitempty"`
	ALPNProtocols            []string          `json:"alpn_protocols,omitempty"`
	ClientAuthentication     string            `json:"client_authentication,omitempty"`
	ClientCATLSContainerData string            `json:"client_ca_tls_container_data,omitempty"`
	ClientCATLSContainerRef  string            `json:"client_ca_tls_container_ref,omitempty"`
	ClientCRLContainerData   string            `json:"client_crl_container_data,omitempty"`
	ClientCRLContainerRef    string            `json:"client_crl_container_ref,omitempty"`
	ConnectionLimit          int               `json:"connection_limit,omitempty"`
	DefaultPool              *Pool             `json:"default_pool,omitempty"`
	DefaultPoolID            string            `json:"default_pool_id,omitempty"`
	DefaultTLSContainerData  string            `json:"default_tls_container_data,omitempty"`
	DefaultTLSContainerRef   string            `json:"default_tls_container_ref,omitempty"`
	Description              string            `json:"description,omitempty"`
	InsertHeaders            map[string]string `json:"insert_headers,omitempty"`
	L7Policies               []L7Policy        `json:"l7policies,omitempty"`
	ListenerID               string            `json:"listener_id,omitempty"`
	LoadBalancerID           string            `json:"loadbalancer_id,omitempty"`
	Name                     string            `json:"name,omitempty"`
	ProjectID                string            `json:"project_id,omitempty"`
	Protocol                 string            `json:"protocol,omitempty"`
	ProtocolPort             int               `json:"protocol_port,omitempty"`
	SNIContainerData         []string          `json:"sni_container_data,omitempty"`
	SNIContainerRefs         []string          `json:"sni_container_refs,omitempty"`
	TimeoutClientData        int               `json:"timeout_client_data,omitempty"`
	TimeoutMemberConnect     int               `json:"timeout_member_connect,omitempty"`
	TimeoutMemberData        int               `json:"timeout_member_data,omitempty"`
	TimeoutTCPInspect        int               `json:"timeout_tcp_inspect,omitempty"`
	TLSCiphers               string            `json:"tls_ciphers,omitempty"`
	TLSVersions              []string          `json:"tls_versions,omitempty"`
	OperatingStatus          string            `json:"operating_status,omitempty"`
}

// Pool is a group of members behind a listener
type Pool struct {
	AdminStateUp       bool              `json:"admin_state_up"`
	ALPNProtocols      []string          `json:"alpn_protocols,omitempty"`
	Description        string            `json:"description,omitempty"`
	HealthMonitor      *HealthMonitor    `json:"healthmonitor,omitempty"`
	LBAlgorithm        string            `json:"lb_algorithm,omitempty"`
	ListenerID         string            `json:"listener_id,omitempty"`
	LoadBalancerID     string            `json:"loadbalancer_id,omitempty"`
	Members            []Member          `json:"members,omitempty"`
	Name               string            `json:"name,omitempty"`
	PoolID             string            `json:"pool_id,omitempty"`
	ProjectID          string            `json:"project_id,omitempty"`
	Protocol           string            `json:"protocol,omitempty"`
	SessionPersistence map[string]string `json:"session_persistence,omitempty"`
	TLSCiphers         string            `json:"tls_ciphers,omitempty"`
	TLSVersions        []string          `json:"tls_versions,omitempty"`
	OperatingStatus    string            `json:"operating_status,omitempty"`
}

// Member is a single backend of a pool. Weight is always rendered, a weight
// of zero drains the member on most backends.
type Member struct {
	Address         string `json:"address,omitempty"`
	AdminStateUp    bool   `json:"admin_state_up"`
	Backup          bool   `json:"backup"`
	MemberID        string `json:"member_id,omitempty"`
	MonitorAddress  string `json:"monitor_address,omitempty"`
	MonitorPort     int    `json:"monitor_port,omitempty"`
	Name            string `json:"name,omitempty"`
	PoolID          string `json:"pool_id,omitempty"`
	ProjectID       string `json:"project_id,omitempty"`
	ProtocolPort    int    `json:"protocol_port,omitempty"`
	SubnetID        string `json:"subnet_id,omitempty"`
	Weight          int    `json:"weight"`
	OperatingStatus string `json:"operating_status,omitempty"`
}

// HealthMonitor describes the health checking of one pool
type HealthMonitor struct {
	AdminStateUp    bool    `json:"admin_state_up"`
	Delay           int     `json:"delay,omitempty"`
	DomainName      string  `json:"domain_name,omitempty"`
	ExpectedCodes   string  `json:"expected_codes,omitempty"`
	HealthMonitorID string  `json:"healthmonitor_id,omitempty"`
	HTTPMethod      string  `json:"http_method,omitempty"`
	HTTPVersion     float64 `json:"http_version,omitempty"`
	MaxRetries      int     `json:"max_retries,omitempty"`
	MaxRetriesDown  int     `json:"max_retries_down,omitempty"`
	Name            string  `json:"name,omitempty"`
	PoolID          string  `json:"pool_id,omitempty"`
	ProjectID       string  `json:"project_id,omitempty"`
	Timeout         int     `json:"timeout,omitempty"`
	Type            string  `json:"type,omitempty"`
	URLPath         string  `json:"url_path,omitempty"`
	OperatingStatus string  `json:"operating_status,omitempty"`
}

// L7Policy is a layer 7 routing policy attached to a listener
type L7Policy struct {
	Action           string   `json:"action,omitempty"`
	AdminStateUp     bool     `json:"admin_state_up"`
	Description      string   `json:"description,omitempty"`
	L7PolicyID       string   `json:"l7policy_id,omitempty"`
	ListenerID       string   `json:"listener_id,omitempty"`
	Name             string   `json:"name,omitempty"`
	Position         int      `json:"position,omitempty"`
	ProjectID        string   `json:"project_id,omitempty"`
	RedirectHTTPCode int      `json:"redirect_http_code,omitempty"`
	RedirectPoolID   string   `json:"redirect_pool_id,omitempty"`
	RedirectPrefix   string   `json:"redirect_prefix,omitempty"`
	RedirectURL      string   `json:"redirect_url,omitempty"`
	Rules            []L7Rule `json:"rules,omitempty"`
}

// L7Rule is a single match condition of an L7 policy
type L7Rule struct {
	AdminStateUp bool   `json:"admin_state_up"`
	CompareType  string `json:"compare_type,omitempty"`
	Invert       bool   `json:"invert"`
	Key          string `json:"key,omitempty"`
	L7PolicyID   string `json:"l7policy_id,omitempty"`
	L7RuleID     string `json:"l7rule_id,omitempty"`
	ProjectID    string `json:"project_id,omitempty"`
	Type         string `json:"type,omitempty"`
	Value        string `json:"value,omitempty"`
}

// ToMap renders the load balancer as a wire shaped map. Nested resources
// (listeners, pools, additional VIPs) are only included when recurse is set.
func (l LoadBalancer) ToMap(recurse bool) map[string]any {
	if recurse {
		return toMap(l)
	}
	return toMap(l, "listeners", "pools", "additional_vips")
}

// ToMap renders the listener as a wire shaped map. The default pool and the
// L7 policies are only included when recurse is set.
func (l Listener) ToMap(recurse bool) map[string]any {
	if recurse {
		return toMap(l)
	}
	return toMap(l, "default_pool", "l7policies")
}

// ToMap renders the pool as a wire shaped map. Members and the health
// monitor are only included when recurse is set.
func (p Pool) ToMap(recurse bool) map[string]any {
	if recurse {
		return toMap(p)
	}
	return toMap(p, "members", "healthmonitor")
}

// ToMap renders the policy as a wire shaped map. Rules are only included
// when recurse is set.
func (p L7Policy) ToMap(recurse bool) map[string]any {
	if recurse {
		return toMap(p)
	}
	return toMap(p, "rules")
}

// ToMap renders the member as a wire shaped map
func (m Member) ToMap() map[string]any {
	return toMap(m)
}

// ToMap renders the health monitor as a wire shaped map
func (h HealthMonitor) ToMap() map[string]any {
	return toMap(h)
}

// ToMap renders the rule as a wire shaped map
func (r L7Rule) ToMap() map[string]any {
	return toMap(r)
}

// ToMap renders the VIP as a wire shaped map
func (v VIP) ToMap() map[string]any {
	return toMap(v)
}

// ToMap renders the additional VIP as a wire shaped map
func (a AdditionalVIP) ToMap() map[string]any {
	return toMap(a)
}

// LoadBalancerFromMap builds a LoadBalancer from its wire shaped map form
func LoadBalancerFromMap(m map[string]any) (LoadBalancer, error) {
	var lb LoadBalancer
	err := fromMap(m, &lb)
	return lb, err
}

// VIPFromMap builds a VIP from its wire shaped map form
func VIPFromMap(m map[string]any) (VIP, error) {
	var v VIP
	err := fromMap(m, &v)
	return v, err
}

// AdditionalVIPFromMap builds an AdditionalVIP from its wire shaped map form
func AdditionalVIPFromMap(m map[string]any) (AdditionalVIP, error) {
	var a AdditionalVIP
	err := fromMap(m, &a)
	return a, err
}

// ListenerFromMap builds a Listener from its wire shaped map form
func ListenerFromMap(m map[string]any) (Listener, error) {
	var l Listener
	err := fromMap(m, &l)
	return l, err
}

// PoolFromMap builds a Pool from its wire shaped map form
func PoolFromMap(m map[string]any) (Pool, error) {
	var p Pool
	err := fromMap(m, &p)
	return p, err
}

// MemberFromMap builds a Member from its wire shaped map form
func MemberFromMap(m map[string]any) (Member, error) {
	var mb Member
	err := fromMap(m, &mb)
	return mb, err
}

// HealthMonitorFromMap builds a HealthMonitor from its wire shaped map form
func HealthMonitorFromMap(m map[string]any) (HealthMonitor, error) {
	var h HealthMonitor
	err := fromMap(m, &h)
	return h, err
}

// L7PolicyFromMap builds an L7Policy from its wire shaped map form
func L7PolicyFromMap(m map[string]any) (L7Policy, error) {
	var p L7Policy
	err := fromMap(m, &p)
	return p, err
}

// L7RuleFromMap builds an L7Rule from its wire shaped map form
func L7RuleFromMap(m map[string]any) (L7Rule, error) {
	var r L7Rule
	err := fromMap(m, &r)
	return r, err
}

func toMap(v any, skip ...string) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	m := make(map[string]any)
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	for _, key := range skip {
		delete(m, key)
	}
	return m
}

func fromMap(m map[string]any, out any) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
