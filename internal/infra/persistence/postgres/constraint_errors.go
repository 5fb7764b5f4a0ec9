package postgres

import (
	"strings"

	"github.com/TimDev9492/chad-website/internal/errors"

	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking. Untranslated driver errors are matched by SQLSTATE.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), "23503")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(err.Error(), "23514")
}
