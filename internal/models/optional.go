package models

import "github.com/goccy/go-json"

// Optional значение поля частичного обновления.
// Set выставляется, если ключ присутствовал в JSON, в том числе со значением null.
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some возвращает заданное значение поля.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UnmarshalJSON вызывается декодером только для присутствующих ключей, поэтому отсутствующее поле остается Set=false.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value) //nolint:wrapcheck
}
