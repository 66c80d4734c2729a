package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Filter selects audit rows of one store. Zero values mean no filter.
type Filter struct {
	StoreID uint
	Action  string
	Entity  string
	From    time.Time
	To      time.Time

	Page  int
	Limit int
}

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Normalize clamps paging to sane values.
func (f Filter) Normalize() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > MaxLimit {
		f.Limit = DefaultLimit
	}
	return f
}

type Reader interface {
	List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

var _ Reader = (*Logger)(nil)

// List returns the requested page, newest first, and the total row count.
func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f = f.Normalize()

	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("store_id = ?", f.StoreID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
