package models

import (
	"reflect"
	"testing"

	uuid "github.com/satori/go.uuid"
)

var (
	lbID       = uuid.NewV4().String()
	projectID  = uuid.NewV4().String()
	networkID  = uuid.NewV4().String()
	portID     = uuid.NewV4().String()
	subnetID   = uuid.NewV4().String()
	listenerID = uuid.NewV4().String()
	poolID     = uuid.NewV4().String()
	memberID   = uuid.NewV4().String()
	monitorID  = uuid.NewV4().String()
	policyID   = uuid.NewV4().String()
	ruleID     = uuid.NewV4().String()
)

func refMember() Member {
	return Member{
		Address:      "192.0.2.10",
		AdminStateUp: true,
		MemberID:     memberID,
		PoolID:       poolID,
		ProjectID:    projectID,
		ProtocolPort: 8080,
		SubnetID:     subnetID,
		Weight:       1,
	}
}

func refPool() Pool {
	return Pool{
		AdminStateUp:   true,
		HealthMonitor:  &HealthMonitor{HealthMonitorID: monitorID, Type: HealthMonitorHTTP, Delay: 5, Timeout: 3, MaxRetries: 3, AdminStateUp: true},
		LBAlgorithm:    LBAlgorithmRoundRobin,
		LoadBalancerID: lbID,
		ListenerID:     listenerID,
		Members:        []Member{refMember()},
		PoolID:         poolID,
		ProjectID:      projectID,
		Protocol:       ProtocolHTTP,
		SessionPersistence: map[string]string{
			SessionPersistenceTypeKey:       SessionPersistenceAppCookie,
			SessionPersistenceCookieNameKey: "chocolate",
		},
	}
}

func refListener() Listener {
	return Listener{
		AdminStateUp:   true,
		DefaultPoolID:  poolID,
		InsertHeaders:  map[string]string{"X-Forwarded-For": "true"},
		ListenerID:     listenerID,
		LoadBalancerID: lbID,
		Name:           "web-listener",
		ProjectID:      projectID,
		Protocol:       ProtocolHTTP,
		ProtocolPort:   80,
		DefaultPool:    func() *Pool { p := refPool(); return &p }(),
	}
}

func refL7Policy() L7Policy {
	return L7Policy{
		Action:         L7PolicyActionRedirectToPool,
		AdminStateUp:   true,
		L7PolicyID:     policyID,
		ListenerID:     listenerID,
		Position:       1,
		ProjectID:      projectID,
		RedirectPoolID: poolID,
		Rules: []L7Rule{{
			AdminStateUp: true,
			CompareType:  L7RuleCompareTypeStartsWith,
			L7PolicyID:   policyID,
			L7RuleID:     ruleID,
			Type:         L7RuleTypePath,
			Value:        "/api",
		}},
	}
}

func refLoadBalancer() LoadBalancer {
	return LoadBalancer{
		AdminStateUp:    true,
		Description:     "frontend load balancer",
		Flavor:          map[string]any{"size": "small"},
		Listeners:       []Listener{refListener()},
		Pools:           []Pool{refPool()},
		AdditionalVIPs:  []AdditionalVIP{{SubnetID: subnetID, IPAddress: "198.51.100.11"}},
		LoadBalancerID:  lbID,
		Name:            "web-lb",
		ProjectID:       projectID,
		VIPAddress:      "198.51.100.10",
		VIPNetworkID:    networkID,
		VIPPortID:       portID,
		VIPSubnetID:     subnetID,
		OperatingStatus: OperatingStatusOnline,
	}
}

func TestLoadBalancerToMap(t *testing.T) {
	lb := refLoadBalancer()

	got := lb.ToMap(false)
	want := map[string]any{
		"admin_state_up":   true,
		"description":      "frontend load balancer",
		"flavor":           map[string]any{"size": "small"},
		"loadbalancer_id":  lbID,
		"name":             "web-lb",
		"project_id":       projectID,
		"vip_address":      "198.51.100.10",
		"vip_network_id":   networkID,
		"vip_port_id":      portID,
		"vip_subnet_id":    subnetID,
		"operating_status": OperatingStatusOnline,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap(false) = %v, want %v", got, want)
	}

	got = lb.ToMap(true)
	listeners, ok := got["listeners"].([]any)
	if !ok || len(listeners) != 1 {
		t.Fatalf("ToMap(true) listeners = %v, want a single listener", got["listeners"])
	}
	rendered, ok := listeners[0].(map[string]any)
	if !ok || rendered["listener_id"] != listenerID {
		t.Errorf("ToMap(true) rendered listener = %v, want listener_id %v", listeners[0], listenerID)
	}
	if _, ok := got["pools"]; !ok {
		t.Error("ToMap(true) did not render pools")
	}
	if _, ok := got["additional_vips"]; !ok {
		t.Error("ToMap(true) did not render additional_vips")
	}
}

func TestListenerToMap(t *testing.T) {
	listener := refListener()
	listener.L7Policies = []L7Policy{refL7Policy()}

	got := listener.ToMap(false)
	for _, key := range []string{"default_pool", "l7policies"} {
		if _, ok := got[key]; ok {
			t.Errorf("ToMap(false) rendered %s", key)
		}
	}
	if got["listener_id"] != listenerID || got["default_pool_id"] != poolID {
		t.Errorf("ToMap(false) = %v, want listener_id %v and default_pool_id %v", got, listenerID, poolID)
	}

	got = listener.ToMap(true)
	pool, ok := got["default_pool"].(map[string]any)
	if !ok || pool["pool_id"] != poolID {
		t.Errorf("ToMap(true) default_pool = %v, want pool_id %v", got["default_pool"], poolID)
	}
	policies, ok := got["l7policies"].([]any)
	if !ok || len(policies) != 1 {
		t.Errorf("ToMap(true) l7policies = %v, want a single policy", got["l7policies"])
	}
}

func TestPoolToMap(t *testing.T) {
	pool := refPool()

	got := pool.ToMap(false)
	for _, key := range []string{"members", "healthmonitor"} {
		if _, ok := got[key]; ok {
			t.Errorf("ToMap(false) rendered %s", key)
		}
	}
	wantPersistence := map[string]any{
		SessionPersistenceTypeKey:       SessionPersistenceAppCookie,
		SessionPersistenceCookieNameKey: "chocolate",
	}
	if !reflect.DeepEqual(got["session_persistence"], wantPersistence) {
		t.Errorf("ToMap(false) session_persistence = %v, want %v", got["session_persistence"], wantPersistence)
	}

	got = pool.ToMap(true)
	monitor, ok := got["healthmonitor"].(map[string]any)
	if !ok || monitor["healthmonitor_id"] != monitorID {
		t.Errorf("ToMap(true) healthmonitor = %v, want id %v", got["healthmonitor"], monitorID)
	}
}

func TestL7PolicyToMap(t *testing.T) {
	policy := refL7Policy()

	got := policy.ToMap(false)
	if _, ok := got["rules"]; ok {
		t.Error("ToMap(false) rendered rules")
	}
	if got["l7policy_id"] != policyID || got["redirect_pool_id"] != poolID {
		t.Errorf("ToMap(false) = %v, want l7policy_id %v and redirect_pool_id %v", got, policyID, poolID)
	}

	got = policy.ToMap(true)
	rules, ok := got["rules"].([]any)
	if !ok || len(rules) != 1 {
		t.Fatalf("ToMap(true) rules = %v, want a single rule", got["rules"])
	}
	rendered, ok := rules[0].(map[string]any)
	if !ok || rendered["l7rule_id"] != ruleID {
		t.Errorf("ToMap(true) rendered rule = %v, want l7rule_id %v", rules[0], ruleID)
	}
}

func TestMemberToMap(t *testing.T) {
	member := Member{
		Address:      "192.0.2.10",
		AdminStateUp: true,
		MemberID:     memberID,
		ProtocolPort: 8080,
	}
	got := member.ToMap()
	want := map[string]any{
		"address":        "192.0.2.10",
		"admin_state_up": true,
		"backup":         false,
		"member_id":      memberID,
		"protocol_port":  float64(8080),
		"weight":         float64(0),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap() = %v, want %v", got, want)
	}
}

func TestLoadBalancerFromMap(t *testing.T) {
	type args struct {
		m map[string]any
	}
	tests := []struct {
		name    string
		args    args
		want    LoadBalancer
		wantErr bool
	}{
		{
			"ok",
			args{m: map[string]any{
				"admin_state_up":  true,
				"loadbalancer_id": lbID,
				"name":            "web-lb",
				"vip_address":     "198.51.100.10",
			}},
			LoadBalancer{AdminStateUp: true, LoadBalancerID: lbID, Name: "web-lb", VIPAddress: "198.51.100.10"},
			false,
		},
		{
			"wrong field type",
			args{m: map[string]any{"admin_state_up": "yes"}},
			LoadBalancer{},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadBalancerFromMap(tt.args.m)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadBalancerFromMap() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LoadBalancerFromMap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMemberFromMapRoundTrip(t *testing.T) {
	member := refMember()
	got, err := MemberFromMap(member.ToMap())
	if err != nil {
		t.Fatalf("MemberFromMap() error = %v", err)
	}
	if !reflect.DeepEqual(got, member) {
		t.Errorf("MemberFromMap() = %v, want %v", got, member)
	}
}
