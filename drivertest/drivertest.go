// Package drivertest checks a concrete provider driver against the base
// contract: operations the driver does not declare must keep answering with
// the default unsupported fault, declared operations must not. Driver
// packages call Run from their own tests.
package drivertest

import (
	"testing"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhangi/octavia-lib/driver"
	"github.com/zhangi/octavia-lib/models"
)

// Config describes the driver under test
type Config struct {
	// Driver is the implementation to exercise
	Driver driver.Driver
	// Supported lists the operations the driver implements. Every operation
	// not listed must keep the default unsupported behavior.
	Supported []driver.Op
}

// Run exercises every contract operation of cfg.Driver with minimal valid
// inputs and checks the outcome against the declared capabilities
func Run(t *testing.T, cfg Config) {
	require.NotNil(t, cfg.Driver, "a driver under test is required")

	supported := make(map[driver.Op]bool, len(cfg.Supported))
	for _, op := range cfg.Supported {
		supported[op] = true
	}

	for _, op := range driver.Ops() {
		op := op
		t.Run(string(op), func(t *testing.T) {
			err := invoke(t, cfg.Driver, op)
			if supported[op] {
				var fault *driver.NotImplementedError
				assert.False(t, errors.As(err, &fault),
					"operation %s is declared supported but answered with the default unsupported fault", op)
				return
			}
			requireUnsupported(t, op, err)
		})
	}

	t.Run("member_batch_update_emptiness", func(t *testing.T) {
		poolID := uuid.NewV4().String()
		emptyKind := faultKind(cfg.Driver.MemberBatchUpdate(poolID, nil))
		fullKind := faultKind(cfg.Driver.MemberBatchUpdate(poolID, []models.Member{minimalMember()}))
		assert.Equal(t, fullKind, emptyKind,
			"an empty member set must not change the outcome kind of member_batch_update")
	})

	if supported[driver.OpGetSupportedFlavorMetadata] {
		t.Run("flavor_metadata_keys", func(t *testing.T) {
			metadata, err := cfg.Driver.GetSupportedFlavorMetadata()
			if err != nil {
				t.Skipf("flavor metadata query failed: %v", err)
			}
			assert.Contains(t, metadata, models.MetadataKeyName)
			assert.Contains(t, metadata, models.MetadataKeyDescription)
		})
	}
	if supported[driver.OpGetSupportedAvailabilityZoneMetadata] {
		t.Run("availability_zone_metadata_keys", func(t *testing.T) {
			metadata, err := cfg.Driver.GetSupportedAvailabilityZoneMetadata()
			if err != nil {
				t.Skipf("availability zone metadata query failed: %v", err)
			}
			assert.Contains(t, metadata, models.MetadataKeyName)
			assert.Contains(t, metadata, models.MetadataKeyDescription)
		})
	}
}

func requireUnsupported(t *testing.T, op driver.Op, err error) {
	t.Helper()
	require.Error(t, err, "operation %s must answer with the default unsupported fault", op)
	var fault *driver.NotImplementedError
	require.True(t, errors.As(err, &fault),
		"operation %s must answer with *driver.NotImplementedError, got %T: %v", op, err, err)
	assert.NotEmpty(t, fault.UserFault, "operation %s: user fault string is empty", op)
	assert.NotEmpty(t, fault.OperatorFault, "operation %s: operator fault string is empty", op)
	assert.NotEqual(t, fault.UserFault, fault.OperatorFault,
		"operation %s: user and operator fault strings must differ", op)
}

// faultKind classifies an operation outcome by the contract fault taxonomy
func faultKind(err error) string {
	if err == nil {
		return "accepted"
	}
	var notImplemented *driver.NotImplementedError
	if errors.As(err, &notImplemented) {
		return "not_implemented"
	}
	var unsupportedOption *driver.UnsupportedOptionError
	if errors.As(err, &unsupportedOption) {
		return "unsupported_option"
	}
	var notFound *driver.NotFoundError
	if errors.As(err, &notFound) {
		return "not_found"
	}
	var driverError *driver.DriverError
	if errors.As(err, &driverError) {
		return "driver_error"
	}
	return "unclassified"
}

func minimalMember() models.Member {
	return models.Member{
		MemberID:     uuid.NewV4().String(),
		Address:      "192.0.2.21",
		ProtocolPort: 80,
		Weight:       1,
		AdminStateUp: true,
	}
}

func minimalLoadBalancer() models.LoadBalancer {
	return models.LoadBalancer{
		LoadBalancerID: uuid.NewV4().String(),
		ProjectID:      uuid.NewV4().String(),
		VIPAddress:     "198.51.100.5",
		VIPSubnetID:    uuid.NewV4().String(),
		AdminStateUp:   true,
	}
}

func minimalListener() models.Listener {
	return models.Listener{
		ListenerID:     uuid.NewV4().String(),
		LoadBalancerID: uuid.NewV4().String(),
		Protocol:       models.ProtocolHTTP,
		ProtocolPort:   80,
		AdminStateUp:   true,
	}
}

func minimalPool() models.Pool {
	return models.Pool{
		PoolID:         uuid.NewV4().String(),
		LoadBalancerID: uuid.NewV4().String(),
		Protocol:       models.ProtocolHTTP,
		LBAlgorithm:    models.LBAlgorithmRoundRobin,
		AdminStateUp:   true,
	}
}

func minimalHealthMonitor() models.HealthMonitor {
	return models.HealthMonitor{
		HealthMonitorID: uuid.NewV4().String(),
		PoolID:          uuid.NewV4().String(),
		Type:            models.HealthMonitorTCP,
		Delay:           5,
		Timeout:         3,
		MaxRetries:      3,
		AdminStateUp:    true,
	}
}

func minimalL7Policy() models.L7Policy {
	return models.L7Policy{
		L7PolicyID:   uuid.NewV4().String(),
		ListenerID:   uuid.NewV4().String(),
		Action:       models.L7PolicyActionReject,
		Position:     1,
		AdminStateUp: true,
	}
}

func minimalL7Rule() models.L7Rule {
	return models.L7Rule{
		L7RuleID:     uuid.NewV4().String(),
		L7PolicyID:   uuid.NewV4().String(),
		Type:         models.L7RuleTypePath,
		CompareType:  models.L7RuleCompareTypeStartsWith,
		Value:        "/api",
		AdminStateUp: true,
	}
}

// invoke calls op on d with minimal valid arguments
func invoke(t *testing.T, d driver.Driver, op driver.Op) error {
	t.Helper()
	switch op {
	case driver.OpCreateVIPPort:
		_, _, err := d.CreateVIPPort(uuid.NewV4().String(), uuid.NewV4().String(),
			models.VIP{VIPAddress: "198.51.100.5", VIPSubnetID: uuid.NewV4().String()}, nil)
		return err
	case driver.OpLoadBalancerCreate:
		return d.LoadBalancerCreate(minimalLoadBalancer())
	case driver.OpLoadBalancerDelete:
		return d.LoadBalancerDelete(minimalLoadBalancer(), false)
	case driver.OpLoadBalancerFailover:
		return d.LoadBalancerFailover(uuid.NewV4().String())
	case driver.OpLoadBalancerUpdate:
		old := minimalLoadBalancer()
		updated := old
		updated.Name = "renamed"
		return d.LoadBalancerUpdate(old, updated)
	case driver.OpListenerCreate:
		return d.ListenerCreate(minimalListener())
	case driver.OpListenerDelete:
		return d.ListenerDelete(minimalListener())
	case driver.OpListenerUpdate:
		old := minimalListener()
		updated := old
		updated.ConnectionLimit = 100
		return d.ListenerUpdate(old, updated)
	case driver.OpPoolCreate:
		return d.PoolCreate(minimalPool())
	case driver.OpPoolDelete:
		return d.PoolDelete(minimalPool())
	case driver.OpPoolUpdate:
		old := minimalPool()
		updated := old
		updated.LBAlgorithm = models.LBAlgorithmSourceIP
		return d.PoolUpdate(old, updated)
	case driver.OpMemberCreate:
		return d.MemberCreate(minimalMember())
	case driver.OpMemberDelete:
		return d.MemberDelete(minimalMember())
	case driver.OpMemberUpdate:
		old := minimalMember()
		updated := old
		updated.Weight = 2
		return d.MemberUpdate(old, updated)
	case driver.OpMemberBatchUpdate:
		return d.MemberBatchUpdate(uuid.NewV4().String(), []models.Member{minimalMember()})
	case driver.OpHealthMonitorCreate:
		return d.HealthMonitorCreate(minimalHealthMonitor())
	case driver.OpHealthMonitorDelete:
		return d.HealthMonitorDelete(minimalHealthMonitor())
	case driver.OpHealthMonitorUpdate:
		old := minimalHealthMonitor()
		updated := old
		updated.Delay = 10
		return d.HealthMonitorUpdate(old, updated)
	case driver.OpL7PolicyCreate:
		return d.L7PolicyCreate(minimalL7Policy())
	case driver.OpL7PolicyDelete:
		return d.L7PolicyDelete(minimalL7Policy())
	case driver.OpL7PolicyUpdate:
		old := minimalL7Policy()
		updated := old
		updated.Position = 2
		return d.L7PolicyUpdate(old, updated)
	case driver.OpL7RuleCreate:
		return d.L7RuleCreate(minimalL7Rule())
	case driver.OpL7RuleDelete:
		return d.L7RuleDelete(minimalL7Rule())
	case driver.OpL7RuleUpdate:
		old := minimalL7Rule()
		updated := old
		updated.Value = "/v2"
		return d.L7RuleUpdate(old, updated)
	case driver.OpGetSupportedFlavorMetadata:
		_, err := d.GetSupportedFlavorMetadata()
		return err
	case driver.OpValidateFlavor:
		return d.ValidateFlavor(map[string]any{})
	case driver.OpGetSupportedAvailabilityZoneMetadata:
		_, err := d.GetSupportedAvailabilityZoneMetadata()
		return err
	case driver.OpValidateAvailabilityZone:
		return d.ValidateAvailabilityZone(map[string]any{})
	}
	t.Fatalf("no fixture for operation %s", op)
	return nil
}
