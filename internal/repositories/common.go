package repositories

import "github.com/fsdevblog/smartlinks/internal/models"

// SmartlinkMutation изменяет запись внутри транзакции обновления.
// Ненулевая ошибка отменяет обновление и возвращается вызывающему без изменений.
type SmartlinkMutation func(m *models.Smartlink) error

// Counter счетчик смартлинка, который можно атомарно увеличить.
type Counter string

const (
	CounterViews  Counter = "views"
	CounterClicks Counter = "clicks"
)

// Valid сообщает, известен ли счетчик.
func (c Counter) Valid() bool {
	return c == CounterViews || c == CounterClicks
}
