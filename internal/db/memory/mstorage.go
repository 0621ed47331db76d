package memory

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MStorage хранилище в памяти. Значения хранятся сериализованными в JSON,
// поэтому наружу всегда отдаются копии и случайная мутация не портит данные.
type MStorage struct {
	data map[string][]byte
	m    sync.RWMutex
}

func NewMemStorage() *MStorage {
	return &MStorage{
		data: make(map[string][]byte),
	}
}

func (m *MStorage) IsExist(key string) bool {
	m.m.RLock()
	defer m.m.RUnlock()

	_, ok := m.data[key]
	return ok
}

// Ping проверяет доступность хранилища. Хранилище в памяти доступно всегда, пока жив контекст.
func (m *MStorage) Ping(ctx context.Context) error {
	return ctx.Err() //nolint:wrapcheck
}

func Get[T any](ctx context.Context, key string, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.m.RLock()
	defer m.m.RUnlock()

	return decode[T](key, m.data)
}

// Set Сохраняет новые пары ключ/значение. Ключ обязан быть уникальным, иначе вернется ошибка ErrDuplicateKey.
// Существующее значение меняется только через Update.
func Set[T any](ctx context.Context, key string, val *T, m *MStorage) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	bytes, err := json.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal json for object `%+v`", val)
	}

	m.m.Lock()
	defer m.m.Unlock()

	if _, ok := m.data[key]; ok {
		return ErrDuplicateKey
	}
	m.data[key] = bytes
	return nil
}

// Update атомарно читает значение, передает его в fn и сохраняет результат.
// Если fn вернула ошибку, значение остается прежним и ошибка возвращается как есть.
func Update[T any](ctx context.Context, key string, m *MStorage, fn func(*T) error) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.m.Lock()
	defer m.m.Unlock()

	val, err := decode[T](key, m.data)
	if err != nil {
		return nil, err
	}
	if fnErr := fn(val); fnErr != nil {
		return nil, fnErr
	}

	bytes, err := json.Marshal(val)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal json for object `%+v`", val)
	}
	m.data[key] = bytes
	return val, nil
}

// Delete удаляет ключ. Если ключа нет, вернется ErrNotFound.
func Delete(ctx context.Context, key string, m *MStorage) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	m.m.Lock()
	defer m.m.Unlock()

	if _, ok := m.data[key]; !ok {
		return ErrNotFound
	}
	delete(m.data, key)
	return nil
}

// GetAll возвращает все значения. Порядок не гарантируется.
func GetAll[T any](ctx context.Context, m *MStorage) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.m.RLock()
	defer m.m.RUnlock()

	var result = make([]T, 0, len(m.data))

	for key, bytes := range m.data {
		var val T
		if err := json.Unmarshal(bytes, &val); err != nil {
			logrus.WithError(err).Errorf("failed to unmarshal json by key `%s`", key)
			continue
		}
		result = append(result, val)
	}
	return result, nil
}

func decode[T any](key string, data map[string][]byte) (*T, error) {
	val, ok := data[key]
	if !ok {
		return nil, ErrNotFound
	}
	var result T
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
	}
	return &result, nil
}
