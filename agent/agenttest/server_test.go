package agenttest

import (
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/zhangi/octavia-lib/models"
)

// send one raw JSON document and decode the answer, like a client would
func postJSON(t *testing.T, socket string, payload string) reply {
	t.Helper()
	conn, err := net.Dial("unix", socket)
	if err != nil {
		t.Fatalf("dial %s: %v", socket, err)
	}
	defer conn.Close()
	if _, err := conn.Write([]byte(payload)); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp reply
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	return resp
}

func TestServerStatusRoundTrip(t *testing.T) {
	srv, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer srv.Close()

	resp := postJSON(t, srv.Config().StatusSocket,
		`{"loadbalancers":[{"id":"lb1","provisioning_status":"ACTIVE","operating_status":"ONLINE"}]}`)
	if resp.StatusCode != 200 {
		t.Errorf("got status_code %d, want 200", resp.StatusCode)
	}

	got := srv.StatusUpdates()
	if len(got) != 1 || len(got[0].LoadBalancers) != 1 {
		t.Fatalf("recorded updates = %+v, want one document with one load balancer", got)
	}
	lb := got[0].LoadBalancers[0]
	if lb.ID != "lb1" || lb.ProvisioningStatus != models.ProvisioningStatusActive {
		t.Errorf("recorded load balancer status = %+v", lb)
	}
}

func TestServerGet(t *testing.T) {
	srv, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer srv.Close()

	srv.AddMember(models.Member{MemberID: "m1", Address: "10.0.0.4", ProtocolPort: 8080})

	resp := postJSON(t, srv.Config().GetSocket, `{"object":"member","id":"m1"}`)
	if resp.StatusCode != 200 {
		t.Fatalf("got status_code %d, want 200", resp.StatusCode)
	}
	obj, ok := resp.Object.(map[string]any)
	if !ok {
		t.Fatalf("object = %T, want a JSON object", resp.Object)
	}
	if obj["member_id"] != "m1" || obj["address"] != "10.0.0.4" {
		t.Errorf("object = %v", obj)
	}

	resp = postJSON(t, srv.Config().GetSocket, `{"object":"member","id":"missing"}`)
	if resp.StatusCode != 404 {
		t.Errorf("got status_code %d for unknown id, want 404", resp.StatusCode)
	}
}

func TestServerCloseWithSilentClient(t *testing.T) {
	srv, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	// connect and never send a document
	conn, err := net.Dial("unix", srv.Config().StatusSocket)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		srv.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return while a connection was idle")
	}
}

func TestServerRejectOnce(t *testing.T) {
	srv, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer srv.Close()

	srv.RejectNext("controller said no")

	doc := `{"listeners":[{"listener_id":"l1","active_connections":1,"bytes_in":2,"bytes_out":3,"request_errors":0,"total_connections":4}]}`
	resp := postJSON(t, srv.Config().StatsSocket, doc)
	if resp.StatusCode != 500 || resp.FaultString != "controller said no" {
		t.Errorf("got %d %q, want the injected fault", resp.StatusCode, resp.FaultString)
	}
	if len(srv.StatisticsUpdates()) != 0 {
		t.Error("rejected document must not be recorded")
	}

	resp = postJSON(t, srv.Config().StatsSocket, doc)
	if resp.StatusCode != 200 {
		t.Errorf("got status_code %d after one-shot reject, want 200", resp.StatusCode)
	}
	if got := len(srv.StatisticsUpdates()); got != 1 {
		t.Errorf("recorded %d statistics documents, want 1", got)
	}
}
