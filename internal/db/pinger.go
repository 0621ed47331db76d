package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// GormPinger проверяет доступность sql базы.
type GormPinger struct {
	db *gorm.DB
}

func NewGormPinger(db *gorm.DB) *GormPinger {
	return &GormPinger{db: db}
}

func (p *GormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	if pingErr := sqlDB.PingContext(ctx); pingErr != nil {
		return fmt.Errorf("ping: %w", pingErr)
	}
	return nil
}
