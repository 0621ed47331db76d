package smocks

import (
	"context"

	"github.com/fsdevblog/smartlinks/internal/models"
	"github.com/stretchr/testify/mock"
)

type SmartlinkMock struct {
	mock.Mock
}

func (s *SmartlinkMock) Create(ctx context.Context, fields *models.SmartlinkFields) (*models.Smartlink, error) {
	args := s.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Smartlink), args.Error(1) //nolint:wrapcheck,errcheck
}

func (s *SmartlinkMock) List(ctx context.Context) ([]models.Smartlink, error) {
	args := s.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).([]models.Smartlink), args.Error(1) //nolint:wrapcheck,errcheck
}

func (s *SmartlinkMock) Get(ctx context.Context, id string) (*models.Smartlink, error) {
	args := s.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Smartlink), args.Error(1) //nolint:wrapcheck,errcheck
}

func (s *SmartlinkMock) Update(
	ctx context.Context,
	id string,
	fields *models.SmartlinkFields,
) (*models.Smartlink, error) {
	args := s.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.Smartlink), args.Error(1) //nolint:wrapcheck,errcheck
}

func (s *SmartlinkMock) Delete(ctx context.Context, id string) error {
	return s.Called(ctx, id).Error(0) //nolint:wrapcheck
}

func (s *SmartlinkMock) TrackClick(ctx context.Context, id string) (int64, error) {
	args := s.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1) //nolint:wrapcheck,errcheck
}

func (s *SmartlinkMock) GetLandingPage(ctx context.Context, id string) (*models.LandingPage, error) {
	args := s.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.LandingPage), args.Error(1) //nolint:wrapcheck,errcheck
}

func (s *SmartlinkMock) TrackPlatformClick(
	ctx context.Context,
	id string,
	index int,
) (*models.PlatformClick, error) {
	args := s.Called(ctx, id, index)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck
	}
	return args.Get(0).(*models.PlatformClick), args.Error(1) //nolint:wrapcheck,errcheck
}

// PingMock заглушка проверки соединения.
type PingMock struct {
	mock.Mock
}

func (p *PingMock) CheckConnection(ctx context.Context) error {
	return p.Called(ctx).Error(0) //nolint:wrapcheck
}
