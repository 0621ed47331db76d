// Package repotest общий набор тестов для реализаций репозитория смартлинков.
package repotest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/smartlinks/internal/models"
	"github.com/fsdevblog/smartlinks/internal/repositories"
	"github.com/stretchr/testify/suite"
)

// Repository методы, которые обязана поддерживать любая реализация.
type Repository interface {
	Create(ctx context.Context, m *models.Smartlink) error
	Exists(ctx context.Context, id string) (bool, error)
	GetAll(ctx context.Context) ([]models.Smartlink, error)
	GetByID(ctx context.Context, id string) (*models.Smartlink, error)
	Update(ctx context.Context, id string, mutate repositories.SmartlinkMutation) (*models.Smartlink, error)
	Increment(ctx context.Context, id string, counter repositories.Counter) (*models.Smartlink, error)
	Delete(ctx context.Context, id string) error
}

// SmartlinkRepoSuite проверяет поведение репозитория. NewRepo вызывается перед каждым тестом
// и должен возвращать пустое хранилище.
type SmartlinkRepoSuite struct {
	suite.Suite
	NewRepo func() Repository
	repo    Repository
	now     time.Time
}

func (s *SmartlinkRepoSuite) SetupTest() {
	s.repo = s.NewRepo()
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func (s *SmartlinkRepoSuite) newLink(id string, createdAt time.Time) *models.Smartlink {
	title := gofakeit.Sentence(3)
	u := gofakeit.URL()
	return &models.Smartlink{
		ID:                   id,
		Title:                &title,
		URL:                  &u,
		CreatedAt:            createdAt,
		UpdatedAt:            createdAt,
		Platforms:            models.Platforms{{URL: gofakeit.URL()}, {URL: gofakeit.URL(), Clicks: 2}},
		SocialSharingEnabled: true,
	}
}

func (s *SmartlinkRepoSuite) TestCreateAndGet() {
	ctx := s.T().Context()
	link := s.newLink("aaaaaaa1", s.now)
	s.Require().NoError(s.repo.Create(ctx, link))

	got, err := s.repo.GetByID(ctx, link.ID)
	s.Require().NoError(err)
	s.Equal(link.ID, got.ID)
	s.Equal(*link.Title, *got.Title)
	s.Equal(*link.URL, *got.URL)
	s.Nil(got.Description)
	s.Nil(got.LandingPageTitle)
	s.True(got.SocialSharingEnabled)
	s.WithinDuration(link.CreatedAt, got.CreatedAt, time.Millisecond)
	s.WithinDuration(link.UpdatedAt, got.UpdatedAt, time.Millisecond)
	s.Require().Len(got.Platforms, 2)
	s.Equal(link.Platforms[0].URL, got.Platforms[0].URL)
	s.Equal(int64(2), got.Platforms[1].Clicks)
}

func (s *SmartlinkRepoSuite) TestCreateDuplicate() {
	ctx := s.T().Context()
	s.Require().NoError(s.repo.Create(ctx, s.newLink("dup00001", s.now)))

	err := s.repo.Create(ctx, s.newLink("dup00001", s.now))
	s.ErrorIs(err, repositories.ErrDuplicateKey)
}

func (s *SmartlinkRepoSuite) TestExists() {
	ctx := s.T().Context()
	s.Require().NoError(s.repo.Create(ctx, s.newLink("exists01", s.now)))

	ok, err := s.repo.Exists(ctx, "exists01")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.repo.Exists(ctx, "missing1")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *SmartlinkRepoSuite) TestGetAllOrderedByCreation() {
	ctx := s.T().Context()

	list, err := s.repo.GetAll(ctx)
	s.Require().NoError(err)
	s.Empty(list)

	s.Require().NoError(s.repo.Create(ctx, s.newLink("third001", s.now.Add(2*time.Minute))))
	s.Require().NoError(s.repo.Create(ctx, s.newLink("first001", s.now)))
	s.Require().NoError(s.repo.Create(ctx, s.newLink("second01", s.now.Add(time.Minute))))

	list, err = s.repo.GetAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("first001", list[0].ID)
	s.Equal("second01", list[1].ID)
	s.Equal("third001", list[2].ID)
}

func (s *SmartlinkRepoSuite) TestGetByIDNotFound() {
	_, err := s.repo.GetByID(s.T().Context(), "nothere1")
	s.ErrorIs(err, repositories.ErrNotFound)
}

func (s *SmartlinkRepoSuite) TestUpdate() {
	ctx := s.T().Context()
	s.Require().NoError(s.repo.Create(ctx, s.newLink("update01", s.now)))

	later := s.now.Add(time.Hour)
	updated, err := s.repo.Update(ctx, "update01", func(m *models.Smartlink) error {
		m.Title = nil
		m.SocialSharingEnabled = false
		m.Platforms = models.Platforms{}
		m.UpdatedAt = later
		return nil
	})
	s.Require().NoError(err)
	s.Nil(updated.Title)
	s.False(updated.SocialSharingEnabled)

	got, err := s.repo.GetByID(ctx, "update01")
	s.Require().NoError(err)
	s.Nil(got.Title)
	s.False(got.SocialSharingEnabled)
	s.Empty(got.Platforms)
	s.WithinDuration(later, got.UpdatedAt, time.Millisecond)
	s.WithinDuration(s.now, got.CreatedAt, time.Millisecond)
}

func (s *SmartlinkRepoSuite) TestUpdateMutationErrorRollsBack() {
	ctx := s.T().Context()
	link := s.newLink("rollback", s.now)
	s.Require().NoError(s.repo.Create(ctx, link))

	errStop := errors.New("stop")
	_, err := s.repo.Update(ctx, "rollback", func(m *models.Smartlink) error {
		m.Clicks = 100
		m.Platforms = nil
		return errStop
	})
	s.ErrorIs(err, errStop)

	got, err := s.repo.GetByID(ctx, "rollback")
	s.Require().NoError(err)
	s.Equal(int64(0), got.Clicks)
	s.Len(got.Platforms, 2)
}

func (s *SmartlinkRepoSuite) TestUpdateNotFound() {
	called := false
	_, err := s.repo.Update(s.T().Context(), "nothere1", func(*models.Smartlink) error {
		called = true
		return nil
	})
	s.ErrorIs(err, repositories.ErrNotFound)
	s.False(called)
}

func (s *SmartlinkRepoSuite) TestIncrement() {
	ctx := s.T().Context()
	s.Require().NoError(s.repo.Create(ctx, s.newLink("counter1", s.now)))

	got, err := s.repo.Increment(ctx, "counter1", repositories.CounterViews)
	s.Require().NoError(err)
	s.Equal(int64(1), got.Views)
	s.Equal(int64(0), got.Clicks)

	got, err = s.repo.Increment(ctx, "counter1", repositories.CounterViews)
	s.Require().NoError(err)
	s.Equal(int64(2), got.Views)

	got, err = s.repo.Increment(ctx, "counter1", repositories.CounterClicks)
	s.Require().NoError(err)
	s.Equal(int64(2), got.Views)
	s.Equal(int64(1), got.Clicks)
	s.WithinDuration(s.now, got.UpdatedAt, time.Millisecond)
}

// Параллельные Increment и Update одной записи не теряют ни одного увеличения.
func (s *SmartlinkRepoSuite) TestConcurrentIncrementAndUpdate() {
	ctx := s.T().Context()
	s.Require().NoError(s.repo.Create(ctx, s.newLink("race0001", s.now)))

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, 3*workers)
	for range workers {
		wg.Add(3) //nolint:mnd
		go func() {
			defer wg.Done()
			_, err := s.repo.Increment(ctx, "race0001", repositories.CounterViews)
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := s.repo.Increment(ctx, "race0001", repositories.CounterClicks)
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := s.repo.Update(ctx, "race0001", func(m *models.Smartlink) error {
				m.Platforms[0].Clicks++
				m.Clicks++
				return nil
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	got, err := s.repo.GetByID(ctx, "race0001")
	s.Require().NoError(err)
	s.Equal(int64(workers), got.Views)
	s.Equal(int64(2*workers), got.Clicks)
	s.Equal(int64(workers), got.Platforms[0].Clicks)
}

func (s *SmartlinkRepoSuite) TestIncrementNotFound() {
	_, err := s.repo.Increment(s.T().Context(), "nothere1", repositories.CounterClicks)
	s.ErrorIs(err, repositories.ErrNotFound)
}

func (s *SmartlinkRepoSuite) TestIncrementUnknownCounter() {
	ctx := s.T().Context()
	s.Require().NoError(s.repo.Create(ctx, s.newLink("counter2", s.now)))

	_, err := s.repo.Increment(ctx, "counter2", repositories.Counter("id"))
	s.ErrorIs(err, repositories.ErrUnknown)
}

func (s *SmartlinkRepoSuite) TestDelete() {
	ctx := s.T().Context()
	s.Require().NoError(s.repo.Create(ctx, s.newLink("delete01", s.now)))

	s.Require().NoError(s.repo.Delete(ctx, "delete01"))

	_, err := s.repo.GetByID(ctx, "delete01")
	s.ErrorIs(err, repositories.ErrNotFound)
	s.ErrorIs(s.repo.Delete(ctx, "delete01"), repositories.ErrNotFound)
}
