package agent

import "fmt"

// UpdateStatusError reports a status document the controller rejected
type UpdateStatusError struct {
	FaultString    string
	StatusObject   string
	StatusObjectID string
}

func (e *UpdateStatusError) Error() string {
	if e.FaultString == "" {
		return "The status update had an unknown error."
	}
	return e.FaultString
}

// UpdateStatisticsError reports a statistics document the controller rejected
type UpdateStatisticsError struct {
	FaultString   string
	StatsObject   string
	StatsObjectID string
}

func (e *UpdateStatisticsError) Error() string {
	if e.FaultString == "" {
		return "The statistics update had an unknown error."
	}
	return e.FaultString
}

// AgentNotFoundError reports that a driver agent socket could not be reached
type AgentNotFoundError struct {
	Socket string
	Err    error
}

func (e *AgentNotFoundError) Error() string {
	return fmt.Sprintf("The driver agent was not found on %s: %v", e.Socket, e.Err)
}

func (e *AgentNotFoundError) Unwrap() error {
	return e.Err
}

// AgentTimeoutError reports that the driver agent did not answer in time
type AgentTimeoutError struct {
	Socket string
	Err    error
}

func (e *AgentTimeoutError) Error() string {
	return fmt.Sprintf("The driver agent on %s timed out: %v", e.Socket, e.Err)
}

func (e *AgentTimeoutError) Unwrap() error {
	return e.Err
}
