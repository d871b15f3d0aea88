package classify

import (
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/vvka-141/backstop/pkg/backstop"
)

// Network classifies common network-level failures as transient.
// DNS resolution hiccups, timeouts, and connection-level errors are
// retried; everything else stops the loop.
func Network() backstop.Classifier {
	return Transient(isNetworkTransient)
}

func isNetworkTransient(err error) bool {
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

		if opErr.Err != nil {
			// Connection refused (server not ready)
			if errors.Is(opErr.Err, syscall.ECONNREFUSED) {
				return true
			}

			// Connection reset by peer
			if errors.Is(opErr.Err, syscall.ECONNRESET) {
				return true
			}

			// Network unreachable
			if errors.Is(opErr.Err, syscall.ENETUNREACH) {
				return true
			}

			// Host unreachable
			if errors.Is(opErr.Err, syscall.EHOSTUNREACH) {
				return true
			}
		}
	}

	return matchesTransientPattern(err)
}

// matchesTransientPattern falls back to message matching for errors that
// lost their type through string-based wrapping.
func matchesTransientPattern(err error) bool {
	errMsg := strings.ToLower(err.Error())

	transientPatterns := []string{
		"connection refused",
		"connection reset",
		"connection timeout",
		"connection failure",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"broken pipe",
		"server closed the connection",
		"unexpected eof",
	}

	for _, pattern := range transientPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}
