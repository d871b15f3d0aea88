package classify

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vvka-141/backstop/pkg/backstop"
)

// PostgreSQL error codes for transient conditions
// See: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	// Class 40 - Transaction Rollback
	pgCodeSerializationFailure = "40001"
	pgCodeDeadlockDetected     = "40P01"

	// Class 55 - Object Not In Prerequisite State
	pgCodeLockNotAvailable = "55P03"
)

// Postgres classifies PostgreSQL failures as transient or fatal.
// Connection exceptions (class 08), resource exhaustion (class 53),
// operator intervention (class 57), serialization failures, deadlocks, and
// lock timeouts are retried. Network-level failures fall through to the
// Network classifier. Everything else (syntax errors, constraint
// violations, auth failures) stops the loop.
func Postgres() backstop.Classifier {
	return Transient(isPostgresTransient)
}

func isPostgresTransient(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return isTransientPgCode(pgErr.Code)
	}

	if isNetworkTransient(err) {
		return true
	}

	// pgconn surfaces some pool/connection failures as plain errors.
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "too many connections") ||
		strings.Contains(errMsg, "connection pool exhausted")
}

func isTransientPgCode(code string) bool {
	// Class 08 - Connection Exception
	if strings.HasPrefix(code, "08") {
		return true
	}

	// Class 53 - Insufficient Resources
	if strings.HasPrefix(code, "53") {
		return true
	}

	// Class 57 - Operator Intervention (admin shutdown, crash shutdown, etc.)
	if strings.HasPrefix(code, "57") {
		return true
	}

	switch code {
	case pgCodeSerializationFailure,
		pgCodeDeadlockDetected,
		pgCodeLockNotAvailable:
		return true
	}

	return false
}
