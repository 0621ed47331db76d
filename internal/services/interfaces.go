package services

import (
	"context"

	"github.com/fsdevblog/smartlinks/internal/models"
	"github.com/fsdevblog/smartlinks/internal/repositories"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go -package=mocks

// SmartlinkRepository описывает репозиторий смартлинков.
type SmartlinkRepository interface {
	// Create сохраняет новую запись. Занятый идентификатор дает repositories.ErrDuplicateKey.
	Create(ctx context.Context, link *models.Smartlink) error
	// Exists проверяет, занят ли идентификатор.
	Exists(ctx context.Context, id string) (bool, error)
	// GetAll возвращает все записи в порядке создания.
	GetAll(ctx context.Context) ([]models.Smartlink, error)
	// GetByID находит запись по идентификатору.
	GetByID(ctx context.Context, id string) (*models.Smartlink, error)
	// Update читает запись, изменяет ее через mutate и сохраняет в одной транзакции.
	Update(ctx context.Context, id string, mutate repositories.SmartlinkMutation) (*models.Smartlink, error)
	// Increment атомарно увеличивает счетчик на единицу.
	Increment(ctx context.Context, id string, counter repositories.Counter) (*models.Smartlink, error)
	// Delete удаляет запись.
	Delete(ctx context.Context, id string) error
}

// CounterRecorder получает уведомления об успешно учтенных просмотрах и кликах.
type CounterRecorder interface {
	View(source string)
	Click()
	PlatformClick()
}
