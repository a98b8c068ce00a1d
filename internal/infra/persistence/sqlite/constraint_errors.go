package sqlite

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation matches both the translated gorm error and the raw SQLite message,
// since TranslateError only covers errors raised through gorm's own statements.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	return strings.Contains(err.Error(), "NOT NULL constraint failed")
}
