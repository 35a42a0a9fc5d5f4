package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

// Extended result codes reported by modernc.org/sqlite.
const (
	codeBusy                 = 5
	codeConstraintCheck      = 275
	codeConstraintForeignKey = 787
	codeConstraintPrimaryKey = 1555
	codeConstraintUnique     = 2067
)

// MapError converts database/sql and SQLite errors to domain errors.
// Context errors pass through.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var coder interface{ Code() int }
	if errors.As(err, &coder) {
		switch coder.Code() {
		case codeConstraintPrimaryKey, codeConstraintUnique:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case codeConstraintForeignKey:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case codeConstraintCheck:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		case codeBusy:
			return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrTransient, err)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
