package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/yungbote/orderbench/internal/pkg/errors"
)

// mapStoreError classifies store rejections so callers can test with
// errors.Is instead of matching driver types.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23502", "23503", "23505", "23514":
			// not_null / foreign_key / unique / check violations
			return fmt.Errorf("%w: %w", apperrors.ErrConstraintViolation, err)
		}
		return err
	}

	// The sqlite driver reports constraint failures as plain error text.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "constraint"),
		strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "unique"):
		return fmt.Errorf("%w: %w", apperrors.ErrConstraintViolation, err)
	}
	return err
}
