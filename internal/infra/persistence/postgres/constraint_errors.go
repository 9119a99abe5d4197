package postgres

import (
	"strings"

	"staffing/internal/errors"

	"gorm.io/gorm"
)

// sqlStateSerialization is the PostgreSQL SQLSTATE GORM does not translate.
const sqlStateSerialization = "40001"

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// isSerializationFailure reports a concurrent-update abort; the caller may retry the whole unit.
func isSerializationFailure(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "could not serialize") ||
		strings.Contains(errMsg, sqlStateSerialization)
}
