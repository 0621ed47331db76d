package memstore

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/fsdevblog/smartlinks/internal/db"
	"github.com/fsdevblog/smartlinks/internal/db/memory"
	"github.com/fsdevblog/smartlinks/internal/models"
	"github.com/fsdevblog/smartlinks/internal/repositories"
	"github.com/sirupsen/logrus"
)

// SmartlinkRepo репозиторий смартлинков в памяти. Ключом служит идентификатор смартлинка.
type SmartlinkRepo struct {
	s      *db.MemoryStorage
	logger *logrus.Entry
}

// NewSmartlinkRepo создает новый экземпляр репозитория.
//
// Параметры:
//   - store: экземпляр хранилища в памяти
//   - logger: логгер
//
// Возвращает:
//   - *SmartlinkRepo: инициализированный репозиторий
func NewSmartlinkRepo(store *db.MemoryStorage, logger *logrus.Logger) *SmartlinkRepo {
	return &SmartlinkRepo{
		s:      store,
		logger: logger.WithField("module", "repository/memstore/smartlink"),
	}
}

// Create сохраняет новый смартлинк. Занятый идентификатор дает repositories.ErrDuplicateKey.
func (r *SmartlinkRepo) Create(ctx context.Context, m *models.Smartlink) error {
	if err := memory.Set[models.Smartlink](ctx, m.ID, m, r.s.MStorage); err != nil {
		return fmt.Errorf("failed to create smartlink %s: %w", m.ID, convertErrorType(err))
	}
	return nil
}

func (r *SmartlinkRepo) Exists(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err //nolint:wrapcheck
	}
	return r.s.IsExist(id), nil
}

// GetAll возвращает все смартлинки в порядке создания.
//
// Параметры:
//   - ctx: контекст выполнения
//
// Возвращает:
//   - []models.Smartlink: все записи
//   - error: ошибка получения (преобразованная через convertErrorType)
func (r *SmartlinkRepo) GetAll(ctx context.Context) ([]models.Smartlink, error) {
	list, err := memory.GetAll[models.Smartlink](ctx, r.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get all smartlinks: %w", convertErrorType(err))
	}
	slices.SortFunc(list, func(a, b models.Smartlink) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return list, nil
}

func (r *SmartlinkRepo) GetByID(ctx context.Context, id string) (*models.Smartlink, error) {
	m, err := memory.Get[models.Smartlink](ctx, id, r.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to get smartlink %s: %w", id, convertErrorType(err))
	}
	return m, nil
}

// Update передает запись в mutate и сохраняет результат под блокировкой хранилища.
// Ошибка mutate возвращается как есть, запись при этом не меняется.
func (r *SmartlinkRepo) Update(
	ctx context.Context,
	id string,
	mutate repositories.SmartlinkMutation,
) (*models.Smartlink, error) {
	var mutateErr error
	m, err := memory.Update[models.Smartlink](ctx, id, r.s.MStorage, func(m *models.Smartlink) error {
		mutateErr = mutate(m)
		return mutateErr
	})
	if mutateErr != nil {
		return nil, mutateErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update smartlink %s: %w", id, r.logUnknown(convertErrorType(err)))
	}
	return m, nil
}

// Increment увеличивает счетчик на единицу. updated_at не меняется.
func (r *SmartlinkRepo) Increment(
	ctx context.Context,
	id string,
	counter repositories.Counter,
) (*models.Smartlink, error) {
	if !counter.Valid() {
		return nil, fmt.Errorf("%w: unknown counter %q", repositories.ErrUnknown, counter)
	}
	m, err := memory.Update[models.Smartlink](ctx, id, r.s.MStorage, func(m *models.Smartlink) error {
		switch counter {
		case repositories.CounterViews:
			m.Views++
		case repositories.CounterClicks:
			m.Clicks++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to increment %s of smartlink %s: %w",
			counter, id, r.logUnknown(convertErrorType(err)),
		)
	}
	return m, nil
}

func (r *SmartlinkRepo) Delete(ctx context.Context, id string) error {
	if err := memory.Delete(ctx, id, r.s.MStorage); err != nil {
		return fmt.Errorf("failed to delete smartlink %s: %w", id, convertErrorType(err))
	}
	return nil
}

func (r *SmartlinkRepo) logUnknown(err error) error {
	if errors.Is(err, repositories.ErrUnknown) {
		r.logger.WithError(err).Error("storage failure")
	}
	return err
}
