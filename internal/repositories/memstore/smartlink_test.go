package memstore

import (
	"testing"

	"github.com/fsdevblog/smartlinks/internal/db"
	"github.com/fsdevblog/smartlinks/internal/repositories/repotest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

func TestSmartlinkRepo(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)

	suite.Run(t, &repotest.SmartlinkRepoSuite{
		NewRepo: func() repotest.Repository {
			return NewSmartlinkRepo(db.NewMemStorage(), logger)
		},
	})
}
