// Package agenttest runs an in-memory driver agent for tests. It speaks the
// same socket protocol as a real agent, records every document it receives
// and serves objects seeded through the Add helpers.
package agenttest

import (
	"encoding/json"
	"net"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/zhangi/octavia-lib/agent"
	"github.com/zhangi/octavia-lib/models"
)

type reply struct {
	StatusCode     int    `json:"status_code"`
	FaultString    string `json:"fault_string,omitempty"`
	StatusObject   string `json:"status_object,omitempty"`
	StatusObjectID string `json:"status_object_id,omitempty"`
	Object         any    `json:"object,omitempty"`
}

// Server is a fake driver agent listening on unix sockets under a directory
// chosen by the caller, usually a test temp dir.
type Server struct {
	statusListener net.Listener
	statsListener  net.Listener
	getListener    net.Listener
	wg             sync.WaitGroup

	mu            sync.Mutex
	statusUpdates []agent.StatusUpdate
	statsUpdates  []agent.StatisticsUpdate
	objects       map[string]map[string]any
	conns         map[net.Conn]struct{}
	closed        bool
	reject        bool
	rejectFault   string
}

// New starts a fake agent with its sockets in dir. Callers must Close it.
func New(dir string) (*Server, error) {
	s := &Server{
		objects: make(map[string]map[string]any),
		conns:   make(map[net.Conn]struct{}),
	}
	var err error
	if s.statusListener, err = net.Listen("unix", filepath.Join(dir, "status.sock")); err != nil {
		return nil, errors.Wrap(err, "cannot listen on status socket")
	}
	if s.statsListener, err = net.Listen("unix", filepath.Join(dir, "stats.sock")); err != nil {
		s.statusListener.Close()
		return nil, errors.Wrap(err, "cannot listen on stats socket")
	}
	if s.getListener, err = net.Listen("unix", filepath.Join(dir, "get.sock")); err != nil {
		s.statusListener.Close()
		s.statsListener.Close()
		return nil, errors.Wrap(err, "cannot listen on get socket")
	}
	s.wg.Add(3)
	go s.serve(s.statusListener, s.handleStatus)
	go s.serve(s.statsListener, s.handleStats)
	go s.serve(s.getListener, s.handleGet)
	return s, nil
}

// Config returns a client configuration pointing at this server
func (s *Server) Config() agent.Config {
	return agent.Config{
		StatusSocket: s.statusListener.Addr().String(),
		StatsSocket:  s.statsListener.Addr().String(),
		GetSocket:    s.getListener.Addr().String(),
	}
}

// Close stops the listeners, unblocks connections still being served and
// waits for the handlers to finish.
func (s *Server) Close() {
	s.statusListener.Close()
	s.statsListener.Close()
	s.getListener.Close()
	s.mu.Lock()
	s.closed = true
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// RejectNext makes the server answer the next status or statistics update
// with a 500 carrying fault. One shot.
func (s *Server) RejectNext(fault string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reject = true
	s.rejectFault = fault
}

// StatusUpdates returns a copy of the status documents received so far
func (s *Server) StatusUpdates() []agent.StatusUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]agent.StatusUpdate, len(s.statusUpdates))
	copy(out, s.statusUpdates)
	return out
}

// StatisticsUpdates returns a copy of the statistics documents received so far
func (s *Server) StatisticsUpdates() []agent.StatisticsUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]agent.StatisticsUpdate, len(s.statsUpdates))
	copy(out, s.statsUpdates)
	return out
}

// AddLoadBalancer seeds a load balancer served by the get socket
func (s *Server) AddLoadBalancer(lb models.LoadBalancer) {
	s.add(agent.ObjectLoadBalancer, lb.LoadBalancerID, lb)
}

// AddListener seeds a listener served by the get socket
func (s *Server) AddListener(listener models.Listener) {
	s.add(agent.ObjectListener, listener.ListenerID, listener)
}

// AddPool seeds a pool served by the get socket
func (s *Server) AddPool(pool models.Pool) {
	s.add(agent.ObjectPool, pool.PoolID, pool)
}

// AddMember seeds a member served by the get socket
func (s *Server) AddMember(member models.Member) {
	s.add(agent.ObjectMember, member.MemberID, member)
}

// AddHealthMonitor seeds a health monitor served by the get socket
func (s *Server) AddHealthMonitor(monitor models.HealthMonitor) {
	s.add(agent.ObjectHealthMonitor, monitor.HealthMonitorID, monitor)
}

// AddL7Policy seeds an L7 policy served by the get socket
func (s *Server) AddL7Policy(policy models.L7Policy) {
	s.add(agent.ObjectL7Policy, policy.L7PolicyID, policy)
}

// AddL7Rule seeds an L7 rule served by the get socket
func (s *Server) AddL7Rule(rule models.L7Rule) {
	s.add(agent.ObjectL7Rule, rule.L7RuleID, rule)
}

func (s *Server) add(resource, id string, obj any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.objects[resource] == nil {
		s.objects[resource] = make(map[string]any)
	}
	s.objects[resource][id] = obj
}

func (s *Server) lookup(resource, id string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[resource][id]
	return obj, ok
}

func (s *Server) takeReject() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.reject {
		return "", false
	}
	s.reject = false
	return s.rejectFault, true
}

func (s *Server) serve(l net.Listener, handle func(net.Conn)) {
	defer s.wg.Done()
	for {
		conn, err := l.Accept()
		if err != nil {
			return
		}
		if !s.track(conn) {
			conn.Close()
			return
		}
		handle(conn)
		s.untrack(conn)
	}
}

// track registers an accepted connection so Close can unblock it. It refuses
// connections that raced with Close.
func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

func (s *Server) handleStatus(conn net.Conn) {
	defer conn.Close()
	var update agent.StatusUpdate
	if err := json.NewDecoder(conn).Decode(&update); err != nil {
		json.NewEncoder(conn).Encode(reply{StatusCode: 500, FaultString: err.Error()})
		return
	}
	if fault, rejected := s.takeReject(); rejected {
		json.NewEncoder(conn).Encode(reply{StatusCode: 500, FaultString: fault})
		return
	}
	s.mu.Lock()
	s.statusUpdates = append(s.statusUpdates, update)
	s.mu.Unlock()
	json.NewEncoder(conn).Encode(reply{StatusCode: 200})
}

func (s *Server) handleStats(conn net.Conn) {
	defer conn.Close()
	var update agent.StatisticsUpdate
	if err := json.NewDecoder(conn).Decode(&update); err != nil {
		json.NewEncoder(conn).Encode(reply{StatusCode: 500, FaultString: err.Error()})
		return
	}
	if fault, rejected := s.takeReject(); rejected {
		json.NewEncoder(conn).Encode(reply{StatusCode: 500, FaultString: fault})
		return
	}
	s.mu.Lock()
	s.statsUpdates = append(s.statsUpdates, update)
	s.mu.Unlock()
	json.NewEncoder(conn).Encode(reply{StatusCode: 200})
}

func (s *Server) handleGet(conn net.Conn) {
	defer conn.Close()
	var req struct {
		Object string `json:"object"`
		ID     string `json:"id"`
	}
	if err := json.NewDecoder(conn).Decode(&req); err != nil {
		json.NewEncoder(conn).Encode(reply{StatusCode: 500, FaultString: err.Error()})
		return
	}
	obj, ok := s.lookup(req.Object, req.ID)
	if !ok {
		json.NewEncoder(conn).Encode(reply{StatusCode: 404, FaultString: "Not Found"})
		return
	}
	json.NewEncoder(conn).Encode(reply{StatusCode: 200, Object: obj})
}
