package classify

import (
	"errors"
	"net"
	"syscall"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestNetworkTransient(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{
			name:      "nil error",
			err:       nil,
			transient: false,
		},
		{
			name:      "temporary DNS error",
			err:       &net.DNSError{Err: "server misbehaving", IsTemporary: true},
			transient: true,
		},
		{
			name:      "DNS timeout",
			err:       &net.DNSError{Err: "lookup timed out", IsTimeout: true},
			transient: true,
		},
		{
			name:      "permanent DNS error",
			err:       &net.DNSError{Err: "no such host in zone"},
			transient: false,
		},
		{
			name:      "connection refused errno",
			err:       &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED},
			transient: true,
		},
		{
			name:      "connection reset errno",
			err:       &net.OpError{Op: "read", Err: syscall.ECONNRESET},
			transient: true,
		},
		{
			name:      "network unreachable errno",
			err:       &net.OpError{Op: "dial", Err: syscall.ENETUNREACH},
			transient: true,
		},
		{
			name:      "connection refused message",
			err:       errors.New("dial tcp 127.0.0.1:5432: connection refused"),
			transient: true,
		},
		{
			name:      "i/o timeout message",
			err:       errors.New("read tcp: i/o timeout"),
			transient: true,
		},
		{
			name:      "broken pipe message",
			err:       errors.New("write: broken pipe"),
			transient: true,
		},
		{
			name:      "unrelated message",
			err:       errors.New("syntax error in query"),
			transient: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NetworkTransient(tt.err); got != tt.transient {
				t.Errorf("NetworkTransient(%v) = %v, want %v", tt.err, got, tt.transient)
			}
		})
	}
}

func TestTransient_Union(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{
			name:      "transient postgres error",
			err:       &pgconn.PgError{Code: "08006", Message: "connection failure"},
			transient: true,
		},
		{
			name:      "transient network error",
			err:       &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED},
			transient: true,
		},
		{
			name:      "fatal postgres error",
			err:       &pgconn.PgError{Code: "42601", Message: "syntax error"},
			transient: false,
		},
		{
			name:      "unrelated error",
			err:       errors.New("validation failed"),
			transient: false,
		},
		{
			name:      "nil error",
			err:       nil,
			transient: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transient(tt.err); got != tt.transient {
				t.Errorf("Transient(%v) = %v, want %v", tt.err, got, tt.transient)
			}
		})
	}
}
