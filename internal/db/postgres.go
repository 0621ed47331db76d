package db

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgres создает подключение к PostgreSQL через gorm и накатывает схему.
//
// Параметры:
//   - ctx: контекст выполнения, используется для проверки соединения
//   - dsn: строка подключения к базе данных (Data Source Name)
//
// Возвращает:
//   - *gorm.DB: подключение к PostgreSQL
//   - error: ошибка создания подключения
func NewPostgres(ctx context.Context, dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if pingErr := sqlDB.PingContext(ctx); pingErr != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", pingErr)
	}
	if migrateErr := Migrate(conn.WithContext(ctx)); migrateErr != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", migrateErr)
	}
	return conn, nil
}
