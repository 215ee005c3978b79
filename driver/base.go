package driver

import "github.com/zhangi/octavia-lib/models"

// UnimplementedDriver answers every contract operation with a
// NotImplementedError carrying a tenant safe fault string and an operator
// fault string naming the missing hook. Concrete drivers embed it and
// override the operations they support.
type UnimplementedDriver struct{}

var _ Driver = UnimplementedDriver{}

func (UnimplementedDriver) CreateVIPPort(string, string, models.VIP, []models.AdditionalVIP) (models.VIP, []models.AdditionalVIP, error) {
	return models.VIP{}, nil, NewNotImplementedError(
		"This provider does not support creating VIP ports.",
		"CreateVIPPort is not implemented by this provider driver, the controller will create the VIP port instead.")
}

func (UnimplementedDriver) LoadBalancerCreate(models.LoadBalancer) error {
	return NewNotImplementedError(
		"This provider does not support creating load balancers.",
		"LoadBalancerCreate is not implemented by this provider driver.")
}

func (UnimplementedDriver) LoadBalancerDelete(models.LoadBalancer, bool) error {
	return NewNotImplementedError(
		"This provider does not support deleting load balancers.",
		"LoadBalancerDelete is not implemented by this provider driver.")
}

func (UnimplementedDriver) LoadBalancerFailover(string) error {
	return NewNotImplementedError(
		"This provider does not support failing over load balancers.",
		"LoadBalancerFailover is not implemented by this provider driver.")
}

func (UnimplementedDriver) LoadBalancerUpdate(models.LoadBalancer, models.LoadBalancer) error {
	return NewNotImplementedError(
		"This provider does not support updating load balancers.",
		"LoadBalancerUpdate is not implemented by this provider driver.")
}

func (UnimplementedDriver) ListenerCreate(models.Listener) error {
	return NewNotImplementedError(
		"This provider does not support creating listeners.",
		"ListenerCreate is not implemented by this provider driver.")
}

func (UnimplementedDriver) ListenerDelete(models.Listener) error {
	return NewNotImplementedError(
		"This provider does not support deleting listeners.",
		"ListenerDelete is not implemented by this provider driver.")
}

func (UnimplementedDriver) ListenerUpdate(models.Listener, models.Listener) error {
	return NewNotImplementedError(
		"This provider does not support updating listeners.",
		"ListenerUpdate is not implemented by this provider driver.")
}

func (UnimplementedDriver) PoolCreate(models.Pool) error {
	return NewNotImplementedError(
		"This provider does not support creating pools.",
		"PoolCreate is not implemented by this provider driver.")
}

func (UnimplementedDriver) PoolDelete(models.Pool) error {
	return NewNotImplementedError(
		"This provider does not support deleting pools.",
		"PoolDelete is not implemented by this provider driver.")
}

func (UnimplementedDriver) PoolUpdate(models.Pool, models.Pool) error {
	return NewNotImplementedError(
		"This provider does not support updating pools.",
		"PoolUpdate is not implemented by this provider driver.")
}

func (UnimplementedDriver) MemberCreate(models.Member) error {
	return NewNotImplementedError(
		"This provider does not support creating members.",
		"MemberCreate is not implemented by this provider driver.")
}

func (UnimplementedDriver) MemberDelete(models.Member) error {
	return NewNotImplementedError(
		"This provider does not support deleting members.",
		"MemberDelete is not implemented by this provider driver.")
}

func (UnimplementedDriver) MemberUpdate(models.Member, models.Member) error {
	return NewNotImplementedError(
		"This provider does not support updating members.",
		"MemberUpdate is not implemented by this provider driver.")
}

func (UnimplementedDriver) MemberBatchUpdate(string, []models.Member) error {
	return NewNotImplementedError(
		"This provider does not support batch updating members.",
		"MemberBatchUpdate is not implemented by this provider driver.")
}

func (UnimplementedDriver) HealthMonitorCreate(models.HealthMonitor) error {
	return NewNotImplementedError(
		"This provider does not support creating health monitors.",
		"HealthMonitorCreate is not implemented by this provider driver.")
}

func (UnimplementedDriver) HealthMonitorDelete(models.HealthMonitor) error {
	return NewNotImplementedError(
		"This provider does not support deleting health monitors.",
		"HealthMonitorDelete is not implemented by this provider driver.")
}

func (UnimplementedDriver) HealthMonitorUpdate(models.HealthMonitor, models.HealthMonitor) error {
	return NewNotImplementedError(
		"This provider does not support updating health monitors.",
		"HealthMonitorUpdate is not implemented by this provider driver.")
}

func (UnimplementedDriver) L7PolicyCreate(models.L7Policy) error {
	return NewNotImplementedError(
		"This provider does not support creating l7policies.",
		"L7PolicyCreate is not implemented by this provider driver.")
}

func (UnimplementedDriver) L7PolicyDelete(models.L7Policy) error {
	return NewNotImplementedError(
		"This provider does not support deleting l7policies.",
		"L7PolicyDelete is not implemented by this provider driver.")
}

func (UnimplementedDriver) L7PolicyUpdate(models.L7Policy, models.L7Policy) error {
	return NewNotImplementedError(
		"This provider does not support updating l7policies.",
		"L7PolicyUpdate is not implemented by this provider driver.")
}

func (UnimplementedDriver) L7RuleCreate(models.L7Rule) error {
	return NewNotImplementedError(
		"This provider does not support creating l7rules.",
		"L7RuleCreate is not implemented by this provider driver.")
}

func (UnimplementedDriver) L7RuleDelete(models.L7Rule) error {
	return NewNotImplementedError(
		"This provider does not support deleting l7rules.",
		"L7RuleDelete is not implemented by this provider driver.")
}

func (UnimplementedDriver) L7RuleUpdate(models.L7Rule, models.L7Rule) error {
	return NewNotImplementedError(
		"This provider does not support updating l7rules.",
		"L7RuleUpdate is not implemented by this provider driver.")
}

func (UnimplementedDriver) GetSupportedFlavorMetadata() (map[string]string, error) {
	return nil, NewNotImplementedError(
		"This provider does not support getting the supported flavor metadata.",
		"GetSupportedFlavorMetadata is not implemented by this provider driver.")
}

func (UnimplementedDriver) ValidateFlavor(map[string]any) error {
	return NewNotImplementedError(
		"This provider does not support validating flavors.",
		"ValidateFlavor is not implemented by this provider driver.")
}

func (UnimplementedDriver) GetSupportedAvailabilityZoneMetadata() (map[string]string, error) {
	return nil, NewNotImplementedError(
		"This provider does not support getting the supported availability zone metadata.",
		"GetSupportedAvailabilityZoneMetadata is not implemented by this provider driver.")
}

func (UnimplementedDriver) ValidateAvailabilityZone(map[string]any) error {
	return NewNotImplementedError(
		"This provider does not support validating availability zones.",
		"ValidateAvailabilityZone is not implemented by this provider driver.")
}
