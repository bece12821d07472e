package session

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/yungbote/orderbench/internal/pkg/errors"
	"github.com/yungbote/orderbench/internal/platform/logger"
)

// Factory produces isolated sessions. Implementations must be safe for
// concurrent acquisition; each returned session belongs exclusively to its
// caller. Connection pooling lives underneath the factory.
type Factory interface {
	Acquire(ctx context.Context) (Session, error)
}

type gormFactory struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewGormFactory returns a session factory backed by a shared, pooled GORM
// handle.
func NewGormFactory(db *gorm.DB, baseLog *logger.Logger) Factory {
	return &gormFactory{db: db, log: baseLog.With("component", "SessionFactory")}
}

func (f *gormFactory) Acquire(ctx context.Context) (Session, error) {
	if f == nil || f.db == nil {
		return nil, fmt.Errorf("factory has no store handle: %w", apperrors.ErrSessionAcquisition)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrSessionAcquisition, err)
	}
	return &gormSession{
		db:  f.db.Session(&gorm.Session{NewDB: true}),
		log: f.log,
	}, nil
}
