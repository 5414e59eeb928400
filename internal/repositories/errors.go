package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// IsNotFoundError reports whether the error means the record does not exist.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsConflictError reports whether the error is a unique-constraint
// violation. Requires TranslateError on the gorm config.
func IsConflictError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
