package services

import (
	"testing"

	"github.com/fsdevblog/smartlinks/internal/db"
	"github.com/fsdevblog/smartlinks/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)

	sqliteConn, err := db.NewSQLite(":memory:")
	require.NoError(t, err)

	tests := []struct {
		name  string
		conn  any
		sType ServiceType
	}{
		{name: "sqlite", conn: sqliteConn, sType: ServiceTypeSQLite},
		{name: "in memory", conn: db.NewMemStorage(), sType: ServiceTypeInMemory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, factoryErr := Factory(tt.conn, tt.sType, logger)
			require.NoError(t, factoryErr)

			require.NoError(t, svc.PingService.CheckConnection(t.Context()))
			m, createErr := svc.SmartlinkService.Create(t.Context(), nil)
			require.NoError(t, createErr)
			assert.Len(t, m.ID, models.SmartlinkIDLength)
		})
	}

	_, err = Factory(db.NewMemStorage(), ServiceTypeSQLite, logger)
	assert.Error(t, err)
	_, err = Factory(sqliteConn, ServiceTypeInMemory, logger)
	assert.Error(t, err)
	_, err = Factory(sqliteConn, "mongo", logger)
	assert.Error(t, err)
}
