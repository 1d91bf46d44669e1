package classify

import (
	"errors"
	"net"
	"strings"
	"syscall"
)

// Common connection error messages used as a last-resort match when the
// failure is not a typed network error.
var transientPatterns = []string{
	"connection refused",
	"connection reset",
	"connection timeout",
	"connection failure",
	"no such host",
	"network is unreachable",
	"i/o timeout",
	"broken pipe",
	"too many connections",
	"server closed the connection",
	"unexpected eof",
	"connection pool exhausted",
	"context deadline exceeded", // May be transient if external timeout
}

// NetworkTransient reports whether err looks like a temporary network
// failure: DNS trouble, timeouts, refused or reset connections, or one of
// the usual connection error messages.
func NetworkTransient(err error) bool {
	if err == nil {
		return false
	}

	// DNS errors
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.Temporary() || dnsErr.Timeout()
	}

	// Network operation errors
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Temporary() || opErr.Timeout() {
			return true
		}
		if opErr.Err != nil && isTransientErrno(opErr.Err) {
			return true
		}
	}

	return matchesTransientPattern(err)
}

func isTransientErrno(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH)
}

func matchesTransientPattern(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// Transient combines the built-in predicates. It is suitable directly as a
// retry predicate when the domain failure type is error.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	return PostgresTransient(err) || NetworkTransient(err)
}
