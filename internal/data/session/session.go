// Package session is the engine's only store boundary: a factory hands out
// isolated unit-of-work sessions, each owning a pending-change buffer that a
// commit flushes to the store in one transaction.
package session

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"

	apperrors "github.com/yungbote/orderbench/internal/pkg/errors"
	"github.com/yungbote/orderbench/internal/platform/logger"
)

// Session is an isolated unit-of-work handle. Adds stage rows in order;
// Commit flushes them inside a single store transaction and resolves
// store-assigned identities into the staged structs. A session is owned by
// exactly one caller and must not be shared across concurrent units.
type Session interface {
	// Add stages a single row (a pointer to an entity struct). Rows whose
	// association fields are populated are committed as one graph: parents
	// are inserted first and foreign keys assigned by the store client.
	Add(row any)
	// AddAll stages a slice of rows for a single bulk insert. Empty slices
	// are ignored.
	AddAll(rows any)
	// Commit flushes the staged rows in staging order within one
	// transaction, then clears the buffer. Committing an empty buffer is a
	// no-op.
	Commit(ctx context.Context) error
	// Release returns the session; any later Commit fails.
	Release()
}

type gormSession struct {
	db       *gorm.DB
	log      *logger.Logger
	pending  []any
	released bool
}

func (s *gormSession) Add(row any) {
	if row == nil {
		return
	}
	s.pending = append(s.pending, row)
}

func (s *gormSession) AddAll(rows any) {
	if rows == nil {
		return
	}
	v := reflect.ValueOf(rows)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() == reflect.Slice && v.Len() == 0 {
		return
	}
	s.pending = append(s.pending, rows)
}

func (s *gormSession) Commit(ctx context.Context) error {
	if s.released {
		return fmt.Errorf("commit: %w", apperrors.ErrSessionReleased)
	}
	if len(s.pending) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range s.pending {
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return mapStoreError(err)
	}
	s.pending = s.pending[:0]
	return nil
}

func (s *gormSession) Release() {
	s.released = true
	s.pending = nil
}
