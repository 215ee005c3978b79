package driver

import (
	"testing"

	"github.com/pkg/errors"
)

func TestFaultDefaults(t *testing.T) {
	tests := []struct {
		name         string
		fault        Fault
		wantUser     string
		wantOperator string
	}{
		{"not implemented zero value", &NotImplementedError{}, defaultNotImplementedFault, defaultNotImplementedFault},
		{"unsupported option zero value", &UnsupportedOptionError{}, defaultUnsupportedOptionFault, defaultUnsupportedOptionFault},
		{"not found zero value", &NotFoundError{}, defaultNotFoundFault, defaultNotFoundFault},
		{"driver error zero value", &DriverError{}, defaultDriverFault, defaultDriverFault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fault.Error(); got != tt.wantUser {
				t.Errorf("Error() = %q, want %q", got, tt.wantUser)
			}
			if got := tt.fault.Operator(); got != tt.wantOperator {
				t.Errorf("Operator() = %q, want %q", got, tt.wantOperator)
			}
		})
	}
}

func TestNewNotImplementedError(t *testing.T) {
	type args struct {
		userFault     string
		operatorFault string
	}
	tests := []struct {
		name         string
		args         args
		wantUser     string
		wantOperator string
	}{
		{
			"both strings kept",
			args{"This provider does not support floating pools.", "PoolFloat is not implemented."},
			"This provider does not support floating pools.",
			"PoolFloat is not implemented.",
		},
		{
			"empty strings fall back",
			args{"", ""},
			defaultNotImplementedFault,
			defaultNotImplementedFault,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fault := NewNotImplementedError(tt.args.userFault, tt.args.operatorFault)
			if fault.Error() != tt.wantUser {
				t.Errorf("Error() = %q, want %q", fault.Error(), tt.wantUser)
			}
			if fault.Operator() != tt.wantOperator {
				t.Errorf("Operator() = %q, want %q", fault.Operator(), tt.wantOperator)
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	fault := NewNotFoundError("flavor", "a83b6334")
	want := "flavor a83b6334 was not found."
	if fault.Error() != want {
		t.Errorf("Error() = %q, want %q", fault.Error(), want)
	}
	if fault.Operator() != want {
		t.Errorf("Operator() = %q, want %q", fault.Operator(), want)
	}
}

func TestDriverErrorUnwrap(t *testing.T) {
	cause := errors.New("backend connection reset")
	fault := NewDriverError("", "", cause)
	if !errors.Is(fault, cause) {
		t.Error("Is() did not match the wrapped cause")
	}
	if fault.Operator() != defaultDriverFault {
		t.Errorf("Operator() = %q, want %q", fault.Operator(), defaultDriverFault)
	}

	bare := &DriverError{Err: cause}
	if bare.Operator() != cause.Error() {
		t.Errorf("Operator() = %q, want the cause %q", bare.Operator(), cause.Error())
	}
}
