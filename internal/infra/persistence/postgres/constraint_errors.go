package postgres

import (
	"strings"

	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/errors"

	"gorm.io/gorm"
)

// SQLSTATE codes a later attempt may clear.
var transientStates = []string{
	"40001", // serialization_failure
	"40P01", // deadlock_detected
	"57014", // query_canceled, e.g. statement_timeout
	"57P01", // admin_shutdown
	"08000", // connection_exception
	"08003", // connection_does_not_exist
	"08006", // connection_failure
}

// isUniqueConstraintViolation reports a duplicate key, e.g. a google object id
// already stored on another card.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isTransient(err error) bool {
	msg := err.Error()
	for _, state := range transientStates {
		if strings.Contains(msg, "SQLSTATE "+state) {
			return true
		}
	}

	return strings.Contains(msg, "connection reset") || strings.Contains(msg, "broken pipe")
}

// linkageWriteError maps a failed linkage write: duplicates mean another
// sync linked first, transient failures are marked retryable.
func linkageWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrAlreadyLinked
	case isTransient(err):
		return errors.Retryable(domainerrors.NewDatabaseExecuteError(err, details))
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
