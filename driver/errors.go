package driver

import "fmt"

// Fallback fault strings, used when a fault is built without any detail
const (
	defaultNotImplementedFault    = "A feature is not implemented by this provider."
	defaultUnsupportedOptionFault = "A specified option is not supported by this provider."
	defaultNotFoundFault          = "The requested resource was not found."
	defaultDriverFault            = "An unknown driver error occurred."
)

// Fault is implemented by every error of the driver contract. Error() is safe
// to hand back to the requesting tenant, Operator() may carry implementation
// detail and is meant for the deployment logs.
type Fault interface {
	error
	Operator() string
}

var (
	_ Fault = (*NotImplementedError)(nil)
	_ Fault = (*UnsupportedOptionError)(nil)
	_ Fault = (*NotFoundError)(nil)
	_ Fault = (*DriverError)(nil)
)

// NotImplementedError reports that a provider does not offer an operation at
// all. It is the default outcome of every contract operation.
type NotImplementedError struct {
	UserFault     string
	OperatorFault string
}

// NewNotImplementedError builds a NotImplementedError, filling empty strings
// with the fallback fault text
func NewNotImplementedError(userFault, operatorFault string) *NotImplementedError {
	return &NotImplementedError{
		UserFault:     orDefault(userFault, defaultNotImplementedFault),
		OperatorFault: orDefault(operatorFault, defaultNotImplementedFault),
	}
}

func (e *NotImplementedError) Error() string {
	return orDefault(e.UserFault, defaultNotImplementedFault)
}

// Operator returns the operator facing fault string
func (e *NotImplementedError) Operator() string {
	return orDefault(e.OperatorFault, defaultNotImplementedFault)
}

// UnsupportedOptionError reports that an operation is offered but one of the
// requested options is not
type UnsupportedOptionError struct {
	UserFault     string
	OperatorFault string
}

// NewUnsupportedOptionError builds an UnsupportedOptionError, filling empty
// strings with the fallback fault text
func NewUnsupportedOptionError(userFault, operatorFault string) *UnsupportedOptionError {
	return &UnsupportedOptionError{
		UserFault:     orDefault(userFault, defaultUnsupportedOptionFault),
		OperatorFault: orDefault(operatorFault, defaultUnsupportedOptionFault),
	}
}

func (e *UnsupportedOptionError) Error() string {
	return orDefault(e.UserFault, defaultUnsupportedOptionFault)
}

// Operator returns the operator facing fault string
func (e *UnsupportedOptionError) Operator() string {
	return orDefault(e.OperatorFault, defaultUnsupportedOptionFault)
}

// NotFoundError reports that a referenced resource does not exist, for
// example an unknown flavor during validation
type NotFoundError struct {
	Resource string
	ID       string
}

// NewNotFoundError builds a NotFoundError for the given resource and id
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.Resource == "" {
		return defaultNotFoundFault
	}
	return fmt.Sprintf("%s %s was not found.", e.Resource, e.ID)
}

// Operator returns the operator facing fault string
func (e *NotFoundError) Operator() string {
	return e.Error()
}

// DriverError reports a provider failure that fits no other kind. It may
// wrap the underlying cause.
type DriverError struct {
	UserFault     string
	OperatorFault string
	Err           error
}

// NewDriverError builds a DriverError around err, filling empty strings with
// the fallback fault text
func NewDriverError(userFault, operatorFault string, err error) *DriverError {
	return &DriverError{
		UserFault:     orDefault(userFault, defaultDriverFault),
		OperatorFault: orDefault(operatorFault, defaultDriverFault),
		Err:           err,
	}
}

func (e *DriverError) Error() string {
	return orDefault(e.UserFault, defaultDriverFault)
}

// Operator returns the operator facing fault string, falling back to the
// wrapped cause
func (e *DriverError) Operator() string {
	if e.OperatorFault != "" {
		return e.OperatorFault
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return defaultDriverFault
}

func (e *DriverError) Unwrap() error {
	return e.Err
}

func orDefault(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
