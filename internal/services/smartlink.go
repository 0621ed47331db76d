package services

import (
	"context"
	"math/rand/v2"
	"time"
	"unicode/utf8"

	"github.com/fsdevblog/smartlinks/internal/metrics"
	"github.com/fsdevblog/smartlinks/internal/models"
	"github.com/fsdevblog/smartlinks/internal/repositories"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Ограничения на длину строковых полей, в символах.
const maxShortTextLength = 255

// SmartlinkService Сервис работает с хранилищем в контексте таблицы `smartlinks`.
type SmartlinkService struct {
	repo     SmartlinkRepository
	ids      *IDGenerator
	now      func() time.Time
	recorder CounterRecorder
	logger   *logrus.Entry
}

type SmartlinkServiceOptions struct {
	RandSource rand.Source
	Clock      func() time.Time
	Recorder   CounterRecorder
	Logger     *logrus.Logger
}

// WithRandSource задает источник случайности для генератора идентификаторов.
func WithRandSource(src rand.Source) func(*SmartlinkServiceOptions) {
	return func(o *SmartlinkServiceOptions) {
		o.RandSource = src
	}
}

// WithClock подменяет часы сервиса.
func WithClock(clock func() time.Time) func(*SmartlinkServiceOptions) {
	return func(o *SmartlinkServiceOptions) {
		o.Clock = clock
	}
}

func WithRecorder(r CounterRecorder) func(*SmartlinkServiceOptions) {
	return func(o *SmartlinkServiceOptions) {
		o.Recorder = r
	}
}

func WithLogger(l *logrus.Logger) func(*SmartlinkServiceOptions) {
	return func(o *SmartlinkServiceOptions) {
		o.Logger = l
	}
}

func NewSmartlinkService(repo SmartlinkRepository, opts ...func(*SmartlinkServiceOptions)) *SmartlinkService {
	options := SmartlinkServiceOptions{
		Clock:    time.Now,
		Recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.RandSource == nil {
		options.RandSource = NewSecureSource()
	}
	if options.Logger == nil {
		options.Logger = logrus.StandardLogger()
	}

	return &SmartlinkService{
		repo:     repo,
		ids:      NewIDGenerator(options.RandSource, models.SmartlinkIDLength),
		now:      options.Clock,
		recorder: options.Recorder,
		logger:   options.Logger.WithField("module", "service/smartlink"),
	}
}

// Create создает смартлинк со свежим уникальным идентификатором.
// Идентификатор перегенерируется, пока не окажется свободным. Цикл прерывает только отмена контекста.
func (s *SmartlinkService) Create(ctx context.Context, fields *models.SmartlinkFields) (*models.Smartlink, error) {
	if fields == nil {
		fields = &models.SmartlinkFields{}
	}
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	now := s.timestamp()
	m := models.Smartlink{
		CreatedAt:            now,
		UpdatedAt:            now,
		Platforms:            models.Platforms{},
		SocialSharingEnabled: models.DefaultSocialSharingEnabled,
	}
	fields.Apply(&m)

	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "create smartlink")
		}

		m.ID = s.ids.Next()
		exists, err := s.repo.Exists(ctx, m.ID)
		if err != nil {
			return nil, s.convertErr(err, "check id %s", m.ID)
		}
		if exists {
			s.logger.Debugf("id collision on %s, regenerating", m.ID)
			continue
		}

		if createErr := s.repo.Create(ctx, &m); createErr != nil {
			if errors.Is(createErr, repositories.ErrDuplicateKey) {
				s.logger.Debugf("id %s taken concurrently, regenerating", m.ID)
				continue
			}
			return nil, s.convertErr(createErr, "create smartlink %s", m.ID)
		}
		return &m, nil
	}
}

// List возвращает все смартлинки в порядке создания.
func (s *SmartlinkService) List(ctx context.Context) ([]models.Smartlink, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.convertErr(err, "list smartlinks")
	}
	if list == nil {
		list = []models.Smartlink{}
	}
	return list, nil
}

// Get возвращает смартлинк и учитывает просмотр. updated_at не меняется.
func (s *SmartlinkService) Get(ctx context.Context, id string) (*models.Smartlink, error) {
	m, err := s.repo.Increment(ctx, id, repositories.CounterViews)
	if err != nil {
		return nil, s.convertErr(err, "get smartlink %s", id)
	}
	s.recorder.View(metrics.ViewSourceRecord)
	return m, nil
}

// Stats возвращает смартлинк без изменения счетчиков.
func (s *SmartlinkService) Stats(ctx context.Context, id string) (*models.Smartlink, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.convertErr(err, "stats of smartlink %s", id)
	}
	return m, nil
}

// Update применяет присутствующие поля и обновляет updated_at.
func (s *SmartlinkService) Update(
	ctx context.Context,
	id string,
	fields *models.SmartlinkFields,
) (*models.Smartlink, error) {
	if fields == nil {
		fields = &models.SmartlinkFields{}
	}
	if err := validateFields(fields); err != nil {
		return nil, err
	}

	m, err := s.repo.Update(ctx, id, func(m *models.Smartlink) error {
		fields.Apply(m)
		m.UpdatedAt = s.nextUpdatedAt(m.UpdatedAt)
		return nil
	})
	if err != nil {
		return nil, s.convertErr(err, "update smartlink %s", id)
	}
	return m, nil
}

func (s *SmartlinkService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.convertErr(err, "delete smartlink %s", id)
	}
	return nil
}

// TrackClick учитывает клик и возвращает новое общее число кликов.
func (s *SmartlinkService) TrackClick(ctx context.Context, id string) (int64, error) {
	m, err := s.repo.Increment(ctx, id, repositories.CounterClicks)
	if err != nil {
		return 0, s.convertErr(err, "track click on smartlink %s", id)
	}
	s.recorder.Click()
	return m.Clicks, nil
}

// GetLandingPage возвращает представление лендинга и учитывает просмотр.
func (s *SmartlinkService) GetLandingPage(ctx context.Context, id string) (*models.LandingPage, error) {
	m, err := s.repo.Increment(ctx, id, repositories.CounterViews)
	if err != nil {
		return nil, s.convertErr(err, "get landing page of smartlink %s", id)
	}
	s.recorder.View(metrics.ViewSourceLanding)
	return m.LandingPage(), nil
}

// TrackPlatformClick учитывает клик по платформе с индексом index.
// Индекс вне [0, len(platforms)) дает ErrOutOfRange, счетчики при этом не меняются.
func (s *SmartlinkService) TrackPlatformClick(
	ctx context.Context,
	id string,
	index int,
) (*models.PlatformClick, error) {
	var result models.PlatformClick
	_, err := s.repo.Update(ctx, id, func(m *models.Smartlink) error {
		if index < 0 || index >= len(m.Platforms) {
			return errors.Wrapf(ErrOutOfRange, "index %d, platforms %d", index, len(m.Platforms))
		}
		m.Clicks++
		m.Platforms[index].Clicks++

		result = models.PlatformClick{
			TotalClicks:    m.Clicks,
			PlatformClicks: m.Platforms[index].Clicks,
			RedirectURL:    m.Platforms[index].URL,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOutOfRange) {
			return nil, err
		}
		return nil, s.convertErr(err, "track platform %d click on smartlink %s", index, id)
	}
	s.recorder.PlatformClick()
	return &result, nil
}

// timestamp текущее время в UTC с точностью до микросекунд, как хранит PostgreSQL.
func (s *SmartlinkService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// nextUpdatedAt гарантирует строгий рост updated_at даже при одинаковых показаниях часов.
func (s *SmartlinkService) nextUpdatedAt(prev time.Time) time.Time {
	next := s.timestamp()
	if !next.After(prev) {
		next = prev.Add(time.Microsecond)
	}
	return next
}

// convertErr переводит ошибки репозитория в ошибки сервиса. Неизвестные ошибки логируются.
func (s *SmartlinkService) convertErr(err error, format string, args ...any) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return errors.Wrapf(ErrRecordNotFound, format, args...)
	case errors.Is(err, repositories.ErrDuplicateKey):
		return errors.Wrapf(ErrDuplicateKey, format, args...)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errors.Wrapf(err, format, args...)
	default:
		s.logger.WithError(err).Errorf(format, args...)
		return errors.Wrapf(ErrUnknown, format, args...)
	}
}

func validateFields(f *models.SmartlinkFields) error {
	short := map[string]models.Optional[*string]{
		"title":                 f.Title,
		"landing_page_title":    f.LandingPageTitle,
		"landing_page_subtitle": f.LandingPageSubtitle,
	}
	for name, v := range short {
		if v.Value != nil && utf8.RuneCountInString(*v.Value) > maxShortTextLength {
			return errors.Wrapf(ErrValidation, "%s is longer than %d characters", name, maxShortTextLength)
		}
	}
	for i, p := range f.Platforms.Value {
		if p.URL == "" {
			return errors.Wrapf(ErrValidation, "platforms[%d].url is required", i)
		}
	}
	return nil
}

type noopRecorder struct{}

func (noopRecorder) View(string)    {}
func (noopRecorder) Click()         {}
func (noopRecorder) PlatformClick() {}
