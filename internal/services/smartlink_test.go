package services

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/smartlinks/internal/db"
	"github.com/fsdevblog/smartlinks/internal/models"
	"github.com/fsdevblog/smartlinks/internal/repositories/memstore"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type SmartlinkServiceSuite struct {
	suite.Suite
	svc *SmartlinkService
	now time.Time
}

func (s *SmartlinkServiceSuite) SetupTest() {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)

	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := memstore.NewSmartlinkRepo(db.NewMemStorage(), logger)
	s.svc = NewSmartlinkService(repo,
		WithRandSource(rand.NewPCG(1, 2)),
		WithClock(func() time.Time { return s.now }),
		WithLogger(logger),
	)
}

func (s *SmartlinkServiceSuite) fields(raw string) *models.SmartlinkFields {
	var f models.SmartlinkFields
	s.Require().NoError(json.Unmarshal([]byte(raw), &f))
	return &f
}

func (s *SmartlinkServiceSuite) TestCreateDefaults() {
	m, err := s.svc.Create(s.T().Context(), s.fields(`{"title":"A","url":"http://x"}`))
	s.Require().NoError(err)

	s.Regexp(idPattern, m.ID)
	s.Equal("A", *m.Title)
	s.Equal("http://x", *m.URL)
	s.Nil(m.Description)
	s.Equal(int64(0), m.Views)
	s.Equal(int64(0), m.Clicks)
	s.True(m.SocialSharingEnabled)
	s.NotNil(m.Platforms)
	s.Empty(m.Platforms)
	s.Equal(s.now, m.CreatedAt)
	s.Equal(s.now, m.UpdatedAt)
}

func (s *SmartlinkServiceSuite) TestCreateUniqueIDs() {
	ids := make(map[string]struct{})
	for range 50 {
		m, err := s.svc.Create(s.T().Context(), s.fields(`{}`))
		s.Require().NoError(err)
		ids[m.ID] = struct{}{}
	}
	s.Len(ids, 50)

	list, err := s.svc.List(s.T().Context())
	s.Require().NoError(err)
	s.Len(list, 50)
}

func (s *SmartlinkServiceSuite) TestCreateValidation() {
	long := gofakeit.LetterN(256)
	_, err := s.svc.Create(s.T().Context(), &models.SmartlinkFields{Title: models.Some(&long)})
	s.ErrorIs(err, ErrValidation)

	_, err = s.svc.Create(s.T().Context(), s.fields(`{"platforms":[{"name":"no url"}]}`))
	s.ErrorIs(err, ErrValidation)

	list, err := s.svc.List(s.T().Context())
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *SmartlinkServiceSuite) TestListEmpty() {
	list, err := s.svc.List(s.T().Context())
	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)
}

// Create -> Get -> TrackClick -> Delete -> Get.
func (s *SmartlinkServiceSuite) TestLifecycle() {
	ctx := s.T().Context()
	m, err := s.svc.Create(ctx, s.fields(`{"title":"A","url":"http://x"}`))
	s.Require().NoError(err)

	got, err := s.svc.Get(ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), got.Views)
	s.Equal(m.UpdatedAt, got.UpdatedAt)

	clicks, err := s.svc.TrackClick(ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), clicks)

	s.Require().NoError(s.svc.Delete(ctx, m.ID))

	_, err = s.svc.Get(ctx, m.ID)
	s.ErrorIs(err, ErrRecordNotFound)
	s.ErrorIs(s.svc.Delete(ctx, m.ID), ErrRecordNotFound)
	_, err = s.svc.TrackClick(ctx, m.ID)
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *SmartlinkServiceSuite) TestViewsCount() {
	ctx := s.T().Context()
	m, err := s.svc.Create(ctx, s.fields(`{}`))
	s.Require().NoError(err)

	for range 3 {
		_, err = s.svc.Get(ctx, m.ID)
		s.Require().NoError(err)
	}
	lp, err := s.svc.GetLandingPage(ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(int64(4), lp.Views)

	stats, err := s.svc.Stats(ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(int64(4), stats.Views)

	stats, err = s.svc.Stats(ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(int64(4), stats.Views, "stats must not count views")
}

func (s *SmartlinkServiceSuite) TestUpdatePartial() {
	ctx := s.T().Context()
	m, err := s.svc.Create(ctx, s.fields(`{"title":"A","description":"D","url":"http://x"}`))
	s.Require().NoError(err)

	updated, err := s.svc.Update(ctx, m.ID, s.fields(`{"title":"B","description":null}`))
	s.Require().NoError(err)
	s.Equal("B", *updated.Title)
	s.Nil(updated.Description)
	s.Equal("http://x", *updated.URL)
	s.Equal(m.CreatedAt, updated.CreatedAt)
	s.True(updated.UpdatedAt.After(m.UpdatedAt))

	again, err := s.svc.Update(ctx, m.ID, s.fields(`{}`))
	s.Require().NoError(err)
	s.True(again.UpdatedAt.After(updated.UpdatedAt), "updated_at must grow even with a frozen clock")

	s.now = s.now.Add(time.Hour)
	later, err := s.svc.Update(ctx, m.ID, s.fields(`{}`))
	s.Require().NoError(err)
	s.Equal(s.now, later.UpdatedAt)
}

func (s *SmartlinkServiceSuite) TestUpdateNotFound() {
	_, err := s.svc.Update(s.T().Context(), "nothere1", s.fields(`{"title":"B"}`))
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *SmartlinkServiceSuite) TestPlatformClicks() {
	ctx := s.T().Context()
	m, err := s.svc.Create(ctx, s.fields(`{"platforms":[{"url":"http://a"}]}`))
	s.Require().NoError(err)

	res, err := s.svc.TrackPlatformClick(ctx, m.ID, 0)
	s.Require().NoError(err)
	s.Equal(models.PlatformClick{TotalClicks: 1, PlatformClicks: 1, RedirectURL: "http://a"}, *res)

	_, err = s.svc.TrackPlatformClick(ctx, m.ID, 1)
	s.ErrorIs(err, ErrOutOfRange)
	_, err = s.svc.TrackPlatformClick(ctx, m.ID, -1)
	s.ErrorIs(err, ErrOutOfRange)

	stats, err := s.svc.Stats(ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), stats.Clicks)
	s.Equal(int64(1), stats.Platforms[0].Clicks)
	s.Equal(m.UpdatedAt, stats.UpdatedAt)

	_, err = s.svc.TrackPlatformClick(ctx, "nothere1", 0)
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *SmartlinkServiceSuite) TestPlatformsRoundTrip() {
	ctx := s.T().Context()
	raw := `{"platforms":[{"url":"http://a","name":"spotify"},{"url":"http://b","clicks":5}]}`
	m, err := s.svc.Create(ctx, s.fields(raw))
	s.Require().NoError(err)

	got, err := s.svc.Get(ctx, m.ID)
	s.Require().NoError(err)

	out, err := json.Marshal(got.Platforms)
	s.Require().NoError(err)
	s.JSONEq(`[{"url":"http://a","clicks":0,"name":"spotify"},{"url":"http://b","clicks":5}]`, string(out))

	updated, err := s.svc.Update(ctx, m.ID, s.fields(`{"platforms":null}`))
	s.Require().NoError(err)
	s.Empty(updated.Platforms)
}

func (s *SmartlinkServiceSuite) TestLandingPage() {
	ctx := s.T().Context()
	m, err := s.svc.Create(ctx, s.fields(`{"title":"T","description":"D","landing_page_subtitle":"S"}`))
	s.Require().NoError(err)

	lp, err := s.svc.GetLandingPage(ctx, m.ID)
	s.Require().NoError(err)
	s.Equal("T", *lp.Title)
	s.Equal("D", *lp.Description)
	s.Equal("S", *lp.Subtitle)
	s.Equal(int64(1), lp.Views)

	_, err = s.svc.GetLandingPage(ctx, "nothere1")
	s.ErrorIs(err, ErrRecordNotFound)
}

func TestSmartlinkService(t *testing.T) {
	suite.Run(t, new(SmartlinkServiceSuite))
}
