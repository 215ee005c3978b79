package agent

import (
	"reflect"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	type args struct {
		cfg Config
	}
	tests := []struct {
		name    string
		args    args
		want    *Client
		wantErr bool
	}{
		{"defaults", args{Config{}}, &Client{
			statusSocket: DefaultStatusSocket,
			statsSocket:  DefaultStatsSocket,
			getSocket:    DefaultGetSocket,
			timeout:      5 * time.Second,
		}, false},
		{"custom sockets", args{Config{StatusSocket: "/tmp/status.sock", RequestTimeout: "250ms"}}, &Client{
			statusSocket: "/tmp/status.sock",
			statsSocket:  DefaultStatsSocket,
			getSocket:    DefaultGetSocket,
			timeout:      250 * time.Millisecond,
		}, false},
		{"bad timeout", args{Config{RequestTimeout: "soon"}}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewClient(tt.args.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClient() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewClient() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	got := DefaultConfig()
	if got.StatusSocket != DefaultStatusSocket || got.RequestTimeout != DefaultRequestTimeout {
		t.Errorf("DefaultConfig() = %+v", got)
	}
}
