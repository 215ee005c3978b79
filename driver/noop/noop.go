// Package noop provides a provider driver that accepts every operation
// without touching any backend. It journals the calls it receives so tests
// and integrators can assert what a controller handed to the driver.
package noop

import (
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/zhangi/octavia-lib/driver"
	"github.com/zhangi/octavia-lib/log"
	"github.com/zhangi/octavia-lib/models"
)

// Operation is one journal entry of the driver
type Operation struct {
	Op     driver.Op
	Object any
}

// BatchUpdate is the journal object recorded for member_batch_update calls
type BatchUpdate struct {
	PoolID  string
	Members []models.Member
}

// Driver implements the full provider contract by accepting everything
type Driver struct {
	driver.UnimplementedDriver

	mu  sync.Mutex
	ops []Operation
}

// New returns an empty noop driver
func New() *Driver {
	return &Driver{}
}

var _ driver.Driver = (*Driver)(nil)

func (d *Driver) record(op driver.Op, object any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ops = append(d.ops, Operation{Op: op, Object: object})
}

// Operations returns a copy of the journal in call order
func (d *Driver) Operations() []Operation {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Operation, len(d.ops))
	copy(out, d.ops)
	return out
}

// CreateVIPPort accepts the requested VIP as is, generating a port id when
// the caller left it empty
func (d *Driver) CreateVIPPort(loadBalancerID, projectID string, vip models.VIP, additionalVIPs []models.AdditionalVIP) (models.VIP, []models.AdditionalVIP, error) {
	log.Debugf("noop driver: create_vip_port for load balancer %s", loadBalancerID)
	if vip.VIPPortID == "" {
		vip.VIPPortID = uuid.NewV4().String()
	}
	d.record(driver.OpCreateVIPPort, vip)
	return vip, additionalVIPs, nil
}

func (d *Driver) LoadBalancerCreate(loadBalancer models.LoadBalancer) error {
	log.Debugf("noop driver: loadbalancer_create %s", loadBalancer.LoadBalancerID)
	d.record(driver.OpLoadBalancerCreate, loadBalancer)
	return nil
}

func (d *Driver) LoadBalancerDelete(loadBalancer models.LoadBalancer, cascade bool) error {
	log.Debugf("noop driver: loadbalancer_delete %s (cascade %t)", loadBalancer.LoadBalancerID, cascade)
	d.record(driver.OpLoadBalancerDelete, loadBalancer)
	return nil
}

func (d *Driver) LoadBalancerFailover(loadBalancerID string) error {
	log.Debugf("noop driver: loadbalancer_failover %s", loadBalancerID)
	d.record(driver.OpLoadBalancerFailover, loadBalancerID)
	return nil
}

func (d *Driver) LoadBalancerUpdate(old, new models.LoadBalancer) error {
	log.Debugf("noop driver: loadbalancer_update %s, changed fields %v", new.LoadBalancerID, models.Diff(old, new))
	d.record(driver.OpLoadBalancerUpdate, new)
	return nil
}

func (d *Driver) ListenerCreate(listener models.Listener) error {
	log.Debugf("noop driver: listener_create %s", listener.ListenerID)
	d.record(driver.OpListenerCreate, listener)
	return nil
}

func (d *Driver) ListenerDelete(listener models.Listener) error {
	log.Debugf("noop driver: listener_delete %s", listener.ListenerID)
	d.record(driver.OpListenerDelete, listener)
	return nil
}

func (d *Driver) ListenerUpdate(old, new models.Listener) error {
	log.Debugf("noop driver: listener_update %s, changed fields %v", new.ListenerID, models.Diff(old, new))
	d.record(driver.OpListenerUpdate, new)
	return nil
}

func (d *Driver) PoolCreate(pool models.Pool) error {
	log.Debugf("noop driver: pool_create %s", pool.PoolID)
	d.record(driver.OpPoolCreate, pool)
	return nil
}

func (d *Driver) PoolDelete(pool models.Pool) error {
	log.Debugf("noop driver: pool_delete %s", pool.PoolID)
	d.record(driver.OpPoolDelete, pool)
	return nil
}

func (d *Driver) PoolUpdate(old, new models.Pool) error {
	log.Debugf("noop driver: pool_update %s, changed fields %v", new.PoolID, models.Diff(old, new))
	d.record(driver.OpPoolUpdate, new)
	return nil
}

func (d *Driver) MemberCreate(member models.Member) error {
	log.Debugf("noop driver: member_create %s", member.MemberID)
	d.record(driver.OpMemberCreate, member)
	return nil
}

func (d *Driver) MemberDelete(member models.Member) error {
	log.Debugf("noop driver: member_delete %s", member.MemberID)
	d.record(driver.OpMemberDelete, member)
	return nil
}

func (d *Driver) MemberUpdate(old, new models.Member) error {
	log.Debugf("noop driver: member_update %s, changed fields %v", new.MemberID, models.Diff(old, new))
	d.record(driver.OpMemberUpdate, new)
	return nil
}

// MemberBatchUpdate accepts the full desired member set of the pool, an
// empty set included
func (d *Driver) MemberBatchUpdate(poolID string, members []models.Member) error {
	log.Debugf("noop driver: member_batch_update %s with %d members", poolID, len(members))
	d.record(driver.OpMemberBatchUpdate, BatchUpdate{PoolID: poolID, Members: members})
	return nil
}

func (d *Driver) HealthMonitorCreate(healthMonitor models.HealthMonitor) error {
	log.Debugf("noop driver: health_monitor_create %s", healthMonitor.HealthMonitorID)
	d.record(driver.OpHealthMonitorCreate, healthMonitor)
	return nil
}

func (d *Driver) HealthMonitorDelete(healthMonitor models.HealthMonitor) error {
	log.Debugf("noop driver: health_monitor_delete %s", healthMonitor.HealthMonitorID)
	d.record(driver.OpHealthMonitorDelete, healthMonitor)
	return nil
}

func (d *Driver) HealthMonitorUpdate(old, new models.HealthMonitor) error {
	log.Debugf("noop driver: health_monitor_update %s, changed fields %v", new.HealthMonitorID, models.Diff(old, new))
	d.record(driver.OpHealthMonitorUpdate, new)
	return nil
}

func (d *Driver) L7PolicyCreate(l7Policy models.L7Policy) error {
	log.Debugf("noop driver: l7policy_create %s", l7Policy.L7PolicyID)
	d.record(driver.OpL7PolicyCreate, l7Policy)
	return nil
}

func (d *Driver) L7PolicyDelete(l7Policy models.L7Policy) error {
	log.Debugf("noop driver: l7policy_delete %s", l7Policy.L7PolicyID)
	d.record(driver.OpL7PolicyDelete, l7Policy)
	return nil
}

func (d *Driver) L7PolicyUpdate(old, new models.L7Policy) error {
	log.Debugf("noop driver: l7policy_update %s, changed fields %v", new.L7PolicyID, models.Diff(old, new))
	d.record(driver.OpL7PolicyUpdate, new)
	return nil
}

func (d *Driver) L7RuleCreate(l7Rule models.L7Rule) error {
	log.Debugf("noop driver: l7rule_create %s", l7Rule.L7RuleID)
	d.record(driver.OpL7RuleCreate, l7Rule)
	return nil
}

func (d *Driver) L7RuleDelete(l7Rule models.L7Rule) error {
	log.Debugf("noop driver: l7rule_delete %s", l7Rule.L7RuleID)
	d.record(driver.OpL7RuleDelete, l7Rule)
	return nil
}

func (d *Driver) L7RuleUpdate(old, new models.L7Rule) error {
	log.Debugf("noop driver: l7rule_update %s, changed fields %v", new.L7RuleID, models.Diff(old, new))
	d.record(driver.OpL7RuleUpdate, new)
	return nil
}

func (d *Driver) GetSupportedFlavorMetadata() (map[string]string, error) {
	log.Debug("noop driver: get_supported_flavor_metadata")
	d.record(driver.OpGetSupportedFlavorMetadata, nil)
	return map[string]string{
		models.MetadataKeyName:        "The name of the flavor profile.",
		models.MetadataKeyDescription: "A human readable description of the flavor profile.",
		"noop_flag":                   "Accepted and ignored by the noop driver.",
	}, nil
}

// ValidateFlavor accepts any flavor metadata
func (d *Driver) ValidateFlavor(metadata map[string]any) error {
	log.Debugf("noop driver: validate_flavor %v", metadata)
	d.record(driver.OpValidateFlavor, metadata)
	return nil
}

func (d *Driver) GetSupportedAvailabilityZoneMetadata() (map[string]string, error) {
	log.Debug("noop driver: get_supported_availability_zone_metadata")
	d.record(driver.OpGetSupportedAvailabilityZoneMetadata, nil)
	return map[string]string{
		models.MetadataKeyName:        "The name of the availability zone profile.",
		models.MetadataKeyDescription: "A human readable description of the availability zone profile.",
		"noop_zone_hint":              "Accepted and ignored by the noop driver.",
	}, nil
}

// ValidateAvailabilityZone accepts any availability zone metadata
func (d *Driver) ValidateAvailabilityZone(metadata map[string]any) error {
	log.Debugf("noop driver: validate_availability_zone %v", metadata)
	d.record(driver.OpValidateAvailabilityZone, metadata)
	return nil
}
