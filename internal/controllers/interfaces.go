package controllers

import (
	"context"

	"github.com/fsdevblog/smartlinks/internal/models"
)

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

// SmartlinkStore операции над смартлинками, доступные HTTP слою.
type SmartlinkStore interface {
	Create(ctx context.Context, fields *models.SmartlinkFields) (*models.Smartlink, error)
	List(ctx context.Context) ([]models.Smartlink, error)
	// Get возвращает запись и увеличивает счетчик просмотров.
	Get(ctx context.Context, id string) (*models.Smartlink, error)
	Update(ctx context.Context, id string, fields *models.SmartlinkFields) (*models.Smartlink, error)
	Delete(ctx context.Context, id string) error
	// TrackClick возвращает новое общее число кликов.
	TrackClick(ctx context.Context, id string) (int64, error)
	// GetLandingPage возвращает представление лендинга и увеличивает счетчик просмотров.
	GetLandingPage(ctx context.Context, id string) (*models.LandingPage, error)
	TrackPlatformClick(ctx context.Context, id string, index int) (*models.PlatformClick, error)
}
