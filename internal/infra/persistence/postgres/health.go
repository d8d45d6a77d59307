package postgres

import (
	"context"

	"walkey/internal/domain/service"
	"walkey/internal/errors"

	"gorm.io/gorm"
)

type dbHealthChecker struct {
	db *gorm.DB
}

// NewHealthChecker reports database reachability for the health endpoint.
func NewHealthChecker(db *gorm.DB) service.HealthChecker {
	return &dbHealthChecker{db: db}
}

func (h *dbHealthChecker) Ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	return sqlDB.PingContext(ctx)
}
