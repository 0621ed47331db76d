package sql

import (
	"context"
	"fmt"

	"github.com/fsdevblog/smartlinks/internal/models"
	"github.com/fsdevblog/smartlinks/internal/repositories"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SmartlinkRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewSmartlinkRepo(db *gorm.DB, logger *logrus.Logger) *SmartlinkRepo {
	return &SmartlinkRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/smartlink"),
	}
}

func (s *SmartlinkRepo) Create(ctx context.Context, m *models.Smartlink) error {
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		convErr := ConvertErrorType(err)
		if !errors.Is(convErr, repositories.ErrDuplicateKey) {
			s.logger.WithError(err).Errorf("failed to create smartlink %s", m.ID)
		}
		return convErr
	}
	return nil
}

func (s *SmartlinkRepo) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Smartlink{}).Where("id = ?", id).Count(&count).Error; err != nil {
		s.logger.WithError(err).Errorf("failed to check existence of smartlink %s", id)
		return false, ConvertErrorType(err)
	}
	return count > 0, nil
}

// GetAll возвращает все смартлинки в порядке создания.
func (s *SmartlinkRepo) GetAll(ctx context.Context) ([]models.Smartlink, error) {
	var list []models.Smartlink
	if err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&list).Error; err != nil {
		s.logger.WithError(err).Error("failed to list smartlinks")
		return nil, ConvertErrorType(err)
	}
	return list, nil
}

func (s *SmartlinkRepo) GetByID(ctx context.Context, id string) (*models.Smartlink, error) {
	var m models.Smartlink
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, s.handleError(err, "failed to get smartlink %s", id)
	}
	return &m, nil
}

// Update читает запись, передает ее в mutate и сохраняет результат в одной транзакции.
// Строка блокируется на чтение (SELECT ... FOR UPDATE), поэтому параллельный Increment
// ждет окончания транзакции и не затирается сохранением. Ошибка mutate откатывает транзакцию
// и возвращается как есть.
func (s *SmartlinkRepo) Update(
	ctx context.Context,
	id string,
	mutate repositories.SmartlinkMutation,
) (*models.Smartlink, error) {
	var (
		result    models.Smartlink
		mutateErr error
	)
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRow(tx, id).First(&result).Error; err != nil {
			return err //nolint:wrapcheck
		}
		if mutateErr = mutate(&result); mutateErr != nil {
			return mutateErr
		}
		return tx.Save(&result).Error //nolint:wrapcheck
	})
	if mutateErr != nil {
		return nil, mutateErr
	}
	if txErr != nil {
		return nil, s.handleError(txErr, "failed to update smartlink %s", id)
	}
	return &result, nil
}

// Increment атомарно увеличивает счетчик на единицу и возвращает обновленную запись.
// updated_at не меняется.
func (s *SmartlinkRepo) Increment(
	ctx context.Context,
	id string,
	counter repositories.Counter,
) (*models.Smartlink, error) {
	if !counter.Valid() {
		return nil, fmt.Errorf("%w: unknown counter %q", repositories.ErrUnknown, counter)
	}
	column := string(counter)

	var result models.Smartlink
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Smartlink{}).
			Where("id = ?", id).
			UpdateColumn(column, gorm.Expr(column+" + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("id = ?", id).First(&result).Error //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, s.handleError(txErr, "failed to increment %s of smartlink %s", column, id)
	}
	return &result, nil
}

func (s *SmartlinkRepo) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Smartlink{})
	if res.Error != nil {
		return s.handleError(res.Error, "failed to delete smartlink %s", id)
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// lockRow выбирает запись по id с блокировкой строки до конца транзакции.
// sqlite блокировку строк не поддерживает, драйвер опускает FOR UPDATE: там запись сериализует
// единственное соединение.
func lockRow(tx *gorm.DB, id string) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).Where("id = ?", id)
}

// handleError конвертирует ошибку gorm и логирует все, кроме отсутствия записи.
func (s *SmartlinkRepo) handleError(err error, format string, args ...any) error {
	convErr := ConvertErrorType(err)
	if !errors.Is(convErr, repositories.ErrNotFound) {
		s.logger.WithError(err).Errorf(format, args...)
	}
	return convErr
}
