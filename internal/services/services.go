package services

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/smartlinks/internal/db"
	"github.com/fsdevblog/smartlinks/internal/repositories/memstore"
	"github.com/fsdevblog/smartlinks/internal/repositories/sql"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceTypeSQLite   ServiceType = "sqlite"
	ServiceTypePostgres ServiceType = "postgres"
	ServiceTypeInMemory ServiceType = "inMemory"
)

type Services struct {
	SmartlinkService *SmartlinkService
	PingService      *PingService
}

// Factory собирает сервисы поверх соединения, созданного db.NewConnectionFactory.
// Для sqlite и postgres conn должен быть *gorm.DB, для inMemory *db.MemoryStorage.
func Factory(
	conn any,
	sType ServiceType,
	logger *logrus.Logger,
	opts ...func(*SmartlinkServiceOptions),
) (*Services, error) {
	opts = append([]func(*SmartlinkServiceOptions){WithLogger(logger)}, opts...)

	switch sType {
	case ServiceTypeSQLite, ServiceTypePostgres:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		return getSQLServices(gormDB, logger, opts), nil
	case ServiceTypeInMemory:
		store, ok := conn.(*db.MemoryStorage)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.MemoryStorage")
		}
		return getInMemoryServices(store, logger, opts), nil
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}
}

func getSQLServices(conn *gorm.DB, logger *logrus.Logger, opts []func(*SmartlinkServiceOptions)) *Services {
	repo := sql.NewSmartlinkRepo(conn, logger)
	return &Services{
		SmartlinkService: NewSmartlinkService(repo, opts...),
		PingService:      NewPingService(db.NewGormPinger(conn)),
	}
}

func getInMemoryServices(
	store *db.MemoryStorage,
	logger *logrus.Logger,
	opts []func(*SmartlinkServiceOptions),
) *Services {
	repo := memstore.NewSmartlinkRepo(store, logger)
	return &Services{
		SmartlinkService: NewSmartlinkService(repo, opts...),
		PingService:      NewPingService(store),
	}
}
