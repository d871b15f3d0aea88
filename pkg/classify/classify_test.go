package classify

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestPostgres_PgErrorCodes(t *testing.T) {
	classifier := Postgres()

	tests := []struct {
		name      string
		err       error
		wantRetry bool
	}{
		// Transient PostgreSQL errors
		{
			name:      "connection_exception (08000)",
			err:       &pgconn.PgError{Code: "08000", Message: "connection exception"},
			wantRetry: true,
		},
		{
			name:      "connection_failure (08006)",
			err:       &pgconn.PgError{Code: "08006", Message: "connection failure"},
			wantRetry: true,
		},
		{
			name:      "too_many_connections (53300)",
			err:       &pgconn.PgError{Code: "53300", Message: "too many connections"},
			wantRetry: true,
		},
		{
			name:      "serialization_failure (40001)",
			err:       &pgconn.PgError{Code: "40001", Message: "could not serialize access"},
			wantRetry: true,
		},
		{
			name:      "deadlock_detected (40P01)",
			err:       &pgconn.PgError{Code: "40P01", Message: "deadlock detected"},
			wantRetry: true,
		},
		{
			name:      "lock_not_available (55P03)",
			err:       &pgconn.PgError{Code: "55P03", Message: "could not obtain lock"},
			wantRetry: true,
		},
		{
			name:      "admin_shutdown (57P01)",
			err:       &pgconn.PgError{Code: "57P01", Message: "terminating connection due to administrator command"},
			wantRetry: true,
		},
		{
			name:      "cannot_connect_now (57P03)",
			err:       &pgconn.PgError{Code: "57P03", Message: "the database system is starting up"},
			wantRetry: true,
		},

		// Fatal PostgreSQL errors
		{
			name:      "syntax_error (42601)",
			err:       &pgconn.PgError{Code: "42601", Message: "syntax error at or near"},
			wantRetry: false,
		},
		{
			name:      "invalid_password (28P01)",
			err:       &pgconn.PgError{Code: "28P01", Message: "password authentication failed"},
			wantRetry: false,
		},
		{
			name:      "unique_violation (23505)",
			err:       &pgconn.PgError{Code: "23505", Message: "duplicate key value"},
			wantRetry: false,
		},
		{
			name:      "undefined_table (42P01)",
			err:       &pgconn.PgError{Code: "42P01", Message: "relation does not exist"},
			wantRetry: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotRetry, effective := classifier(0, tt.err)
			if gotRetry != tt.wantRetry {
				t.Errorf("retry = %v, want %v", gotRetry, tt.wantRetry)
			}
			if !errors.Is(effective, tt.err) {
				t.Errorf("effective error changed unexpectedly: %v", effective)
			}
		})
	}
}

func TestPostgres_WrappedPgError(t *testing.T) {
	classifier := Postgres()

	wrapped := fmt.Errorf("connect: %w", &pgconn.PgError{Code: "08006"})
	gotRetry, _ := classifier(0, wrapped)
	if !gotRetry {
		t.Error("wrapped transient pg error must stay retryable")
	}
}

func TestNetwork_SyscallErrors(t *testing.T) {
	classifier := Network()

	tests := []struct {
		name      string
		errno     syscall.Errno
		wantRetry bool
	}{
		{name: "connection refused", errno: syscall.ECONNREFUSED, wantRetry: true},
		{name: "connection reset", errno: syscall.ECONNRESET, wantRetry: true},
		{name: "network unreachable", errno: syscall.ENETUNREACH, wantRetry: true},
		{name: "host unreachable", errno: syscall.EHOSTUNREACH, wantRetry: true},
		{name: "permission denied", errno: syscall.EACCES, wantRetry: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &net.OpError{Op: "dial", Net: "tcp", Err: tt.errno}
			gotRetry, _ := classifier(0, err)
			if gotRetry != tt.wantRetry {
				t.Errorf("retry = %v, want %v", gotRetry, tt.wantRetry)
			}
		})
	}
}

func TestNetwork_DNSTemporary(t *testing.T) {
	classifier := Network()

	temp := &net.DNSError{Err: "server misbehaving", IsTemporary: true}
	if gotRetry, _ := classifier(0, temp); !gotRetry {
		t.Error("temporary DNS error must be retryable")
	}

	perm := &net.DNSError{Err: "name does not resolve"}
	if gotRetry, _ := classifier(0, perm); gotRetry {
		t.Error("permanent DNS error must not be retryable")
	}
}

func TestNetwork_MessagePatterns(t *testing.T) {
	classifier := Network()

	tests := []struct {
		msg       string
		wantRetry bool
	}{
		{msg: "dial tcp 10.0.0.1:5432: connection refused", wantRetry: true},
		{msg: "read tcp: i/o timeout", wantRetry: true},
		{msg: "write: broken pipe", wantRetry: true},
		{msg: "unexpected EOF", wantRetry: true},
		{msg: "file not found", wantRetry: false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			gotRetry, _ := classifier(0, errors.New(tt.msg))
			if gotRetry != tt.wantRetry {
				t.Errorf("retry = %v, want %v", gotRetry, tt.wantRetry)
			}
		})
	}
}

func TestTransient_Adapter(t *testing.T) {
	sentinel := errors.New("flaky")
	classifier := Transient(func(err error) bool { return errors.Is(err, sentinel) })

	if gotRetry, effective := classifier(0, sentinel); !gotRetry || effective != sentinel {
		t.Error("transient error must retry with the error unchanged")
	}
	other := errors.New("solid")
	if gotRetry, _ := classifier(0, other); gotRetry {
		t.Error("non-transient error must not retry")
	}
}

func TestReclassify_SubstitutesError(t *testing.T) {
	sentinel := errors.New("storage unavailable")
	classifier := Reclassify(Network(), func(err error) error {
		return fmt.Errorf("%w: %v", sentinel, err)
	})

	opErr := &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}
	gotRetry, effective := classifier(0, opErr)
	if !gotRetry {
		t.Error("retry decision must pass through")
	}
	if !errors.Is(effective, sentinel) {
		t.Errorf("expected substituted error, got %v", effective)
	}
}
