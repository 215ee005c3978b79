// Package driver defines the contract between the load balancing controller
// and provider drivers: the operations a provider may offer, the fault
// taxonomy used to reject them and the embeddable default implementation
// every concrete driver starts from.
package driver

import "github.com/zhangi/octavia-lib/models"

// Op identifies one operation of the provider driver contract
type Op string

const (
	OpCreateVIPPort                        Op = "create_vip_port"
	OpLoadBalancerCreate                   Op = "loadbalancer_create"
	OpLoadBalancerDelete                   Op = "loadbalancer_delete"
	OpLoadBalancerFailover                 Op = "loadbalancer_failover"
	OpLoadBalancerUpdate                   Op = "loadbalancer_update"
	OpListenerCreate                       Op = "listener_create"
	OpListenerDelete                       Op = "listener_delete"
	OpListenerUpdate                       Op = "listener_update"
	OpPoolCreate                           Op = "pool_create"
	OpPoolDelete                           Op = "pool_delete"
	OpPoolUpdate                           Op = "pool_update"
	OpMemberCreate                         Op = "member_create"
	OpMemberDelete                         Op = "member_delete"
	OpMemberUpdate                         Op = "member_update"
	OpMemberBatchUpdate                    Op = "member_batch_update"
	OpHealthMonitorCreate                  Op = "health_monitor_create"
	OpHealthMonitorDelete                  Op = "health_monitor_delete"
	OpHealthMonitorUpdate                  Op = "health_monitor_update"
	OpL7PolicyCreate                       Op = "l7policy_create"
	OpL7PolicyDelete                       Op = "l7policy_delete"
	OpL7PolicyUpdate                       Op = "l7policy_update"
	OpL7RuleCreate                         Op = "l7rule_create"
	OpL7RuleDelete                         Op = "l7rule_delete"
	OpL7RuleUpdate                         Op = "l7rule_update"
	OpGetSupportedFlavorMetadata           Op = "get_supported_flavor_metadata"
	OpValidateFlavor                       Op = "validate_flavor"
	OpGetSupportedAvailabilityZoneMetadata Op = "get_supported_availability_zone_metadata"
	OpValidateAvailabilityZone             Op = "validate_availability_zone"
)

// Ops returns every contract operation in its canonical order
func Ops() []Op {
	return []Op{
		OpCreateVIPPort,
		OpLoadBalancerCreate,
		OpLoadBalancerDelete,
		OpLoadBalancerFailover,
		OpLoadBalancerUpdate,
		OpListenerCreate,
		OpListenerDelete,
		OpListenerUpdate,
		OpPoolCreate,
		OpPoolDelete,
		OpPoolUpdate,
		OpMemberCreate,
		OpMemberDelete,
		OpMemberUpdate,
		OpMemberBatchUpdate,
		OpHealthMonitorCreate,
		OpHealthMonitorDelete,
		OpHealthMonitorUpdate,
		OpL7PolicyCreate,
		OpL7PolicyDelete,
		OpL7PolicyUpdate,
		OpL7RuleCreate,
		OpL7RuleDelete,
		OpL7RuleUpdate,
		OpGetSupportedFlavorMetadata,
		OpValidateFlavor,
		OpGetSupportedAvailabilityZoneMetadata,
		OpValidateAvailabilityZone,
	}
}

// Driver is the full provider driver contract. A nil error from any mutating
// operation means the request was ACCEPTED for asynchronous processing, not
// that the backend already converged; completion is reported later through
// the driver agent. Every operation of UnimplementedDriver answers with a
// NotImplementedError, so a concrete driver only overrides what it supports.
//
// The provider name a driver is published under belongs to the controller
// configuration; implementations must not depend on it.
type Driver interface {
	// CreateVIPPort reserves a frontend port for a load balancer before the
	// load balancer itself is created. Drivers that leave port creation to
	// the controller keep the default behavior. On success the returned VIP
	// carries the created port id.
	CreateVIPPort(loadBalancerID, projectID string, vip models.VIP, additionalVIPs []models.AdditionalVIP) (models.VIP, []models.AdditionalVIP, error)

	// LoadBalancerCreate enqueues the creation of loadBalancer
	LoadBalancerCreate(loadBalancer models.LoadBalancer) error
	// LoadBalancerDelete enqueues the deletion of loadBalancer. With cascade
	// set, every child resource is deleted along with it.
	LoadBalancerDelete(loadBalancer models.LoadBalancer, cascade bool) error
	// LoadBalancerFailover rebuilds the backend resources of the load
	// balancer while keeping its VIP
	LoadBalancerFailover(loadBalancerID string) error
	// LoadBalancerUpdate enqueues the transition from old to new
	LoadBalancerUpdate(old, new models.LoadBalancer) error

	// ListenerCreate enqueues the creation of listener
	ListenerCreate(listener models.Listener) error
	// ListenerDelete enqueues the deletion of listener
	ListenerDelete(listener models.Listener) error
	// ListenerUpdate enqueues the transition from old to new
	ListenerUpdate(old, new models.Listener) error

	// PoolCreate enqueues the creation of pool
	PoolCreate(pool models.Pool) error
	// PoolDelete enqueues the deletion of pool
	PoolDelete(pool models.Pool) error
	// PoolUpdate enqueues the transition from old to new
	PoolUpdate(old, new models.Pool) error

	// MemberCreate enqueues the creation of member
	MemberCreate(member models.Member) error
	// MemberDelete enqueues the deletion of member
	MemberDelete(member models.Member) error
	// MemberUpdate enqueues the transition from old to new
	MemberUpdate(old, new models.Member) error
	// MemberBatchUpdate replaces the whole member set of the pool with
	// members. An empty set is valid and removes every member.
	MemberBatchUpdate(poolID string, members []models.Member) error

	// HealthMonitorCreate enqueues the creation of healthMonitor
	HealthMonitorCreate(healthMonitor models.HealthMonitor) error
	// HealthMonitorDelete enqueues the deletion of healthMonitor
	HealthMonitorDelete(healthMonitor models.HealthMonitor) error
	// HealthMonitorUpdate enqueues the transition from old to new
	HealthMonitorUpdate(old, new models.HealthMonitor) error

	// L7PolicyCreate enqueues the creation of l7Policy
	L7PolicyCreate(l7Policy models.L7Policy) error
	// L7PolicyDelete enqueues the deletion of l7Policy
	L7PolicyDelete(l7Policy models.L7Policy) error
	// L7PolicyUpdate enqueues the transition from old to new
	L7PolicyUpdate(old, new models.L7Policy) error

	// L7RuleCreate enqueues the creation of l7Rule
	L7RuleCreate(l7Rule models.L7Rule) error
	// L7RuleDelete enqueues the deletion of l7Rule
	L7RuleDelete(l7Rule models.L7Rule) error
	// L7RuleUpdate enqueues the transition from old to new
	L7RuleUpdate(old, new models.L7Rule) error

	// GetSupportedFlavorMetadata returns the flavor metadata keys the
	// provider understands, mapped to human readable descriptions. The map
	// always carries the keys "name" and "description".
	GetSupportedFlavorMetadata() (map[string]string, error)
	// ValidateFlavor checks a flavor metadata map against the provider. An
	// unknown referenced profile answers with a NotFoundError, an
	// unacceptable value with an UnsupportedOptionError.
	ValidateFlavor(metadata map[string]any) error
	// GetSupportedAvailabilityZoneMetadata returns the availability zone
	// metadata keys the provider understands, mapped to human readable
	// descriptions. The map always carries the keys "name" and
	// "description".
	GetSupportedAvailabilityZoneMetadata() (map[string]string, error)
	// ValidateAvailabilityZone checks an availability zone metadata map
	// against the provider
	ValidateAvailabilityZone(metadata map[string]any) error
}
