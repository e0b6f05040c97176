package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"

	"github.com/ballotbox/api/internal/core/domain"
)

// Postgres error codes the repositories translate into domain errors.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeUniqueViolation     = pq.ErrorCode("23505")
	codeForeignKeyViolation = pq.ErrorCode("23503")
	codeSerializationFail   = pq.ErrorCode("40001")
	codeDeadlockDetected    = pq.ErrorCode("40P01")
	codeLockNotAvailable    = pq.ErrorCode("55P03")
	codeQueryCanceled       = pq.ErrorCode("57014")
)

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == codeUniqueViolation && pqErr.Constraint == constraint
}

func isForeignKeyViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == codeForeignKeyViolation && pqErr.Constraint == constraint
}

// isTransient reports whether the error is a storage fault that left no
// partial state and is safe to retry: connection failures, lock timeouts,
// canceled statements, serialization conflicts.
func isTransient(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code.Class() == "08" { // connection exception
			return true
		}
		switch pqErr.Code {
		case codeSerializationFail, codeDeadlockDetected, codeLockNotAvailable, codeQueryCanceled:
			return true
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded)
}

// wrapStoreErr maps transient faults to domain.ErrStoreUnavailable and keeps
// everything else wrapped, so no raw pq error crosses the service boundary
// unclassified.
func wrapStoreErr(op string, err error) error {
	if isTransient(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
