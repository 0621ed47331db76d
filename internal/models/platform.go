package models

import (
	"bytes"
	"database/sql/driver"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	platformURLKey    = "url"
	platformClicksKey = "clicks"
)

// Platform одна ссылка назначения внутри смартлинка со своим счетчиком кликов.
// Неизвестные ключи сохраняются в Extra и возвращаются клиенту без изменений.
type Platform struct {
	URL    string
	Clicks int64
	Extra  map[string]any
}

func (p Platform) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+2) //nolint:mnd
	for k, v := range p.Extra {
		out[k] = v
	}
	out[platformURLKey] = p.URL
	out[platformClicksKey] = p.Clicks
	return json.Marshal(out) //nolint:wrapcheck
}

func (p *Platform) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return errors.Wrap(err, "decode platform")
	}

	*p = Platform{}

	if v, ok := raw[platformURLKey]; ok && v != nil {
		s, isStr := v.(string)
		if !isStr {
			return fmt.Errorf("platform url must be a string, got %T", v)
		}
		p.URL = s
	}
	if v, ok := raw[platformClicksKey]; ok && v != nil {
		n, isNum := v.(json.Number)
		if !isNum {
			return fmt.Errorf("platform clicks must be a number, got %T", v)
		}
		clicks, err := n.Int64()
		if err != nil || clicks < 0 {
			return fmt.Errorf("platform clicks must be a non-negative integer, got %s", n)
		}
		p.Clicks = clicks
	}

	delete(raw, platformURLKey)
	delete(raw, platformClicksKey)
	if len(raw) > 0 {
		p.Extra = raw
	}
	return nil
}

// Platforms упорядоченный список платформ. В базе хранится JSON строкой.
type Platforms []Platform

// MarshalJSON отдает пустой массив вместо null.
func (p Platforms) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Platform(p)) //nolint:wrapcheck
}

// Value реализует driver.Valuer.
func (p Platforms) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]Platform(p))
	if err != nil {
		return nil, errors.Wrap(err, "marshal platforms")
	}
	return string(b), nil
}

// Scan реализует sql.Scanner. Битый JSON превращается в пустой список, запись при этом остается читаемой.
func (p *Platforms) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*p = Platforms{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported platforms column type %T", src)
	}

	var list []Platform
	if err := json.Unmarshal(data, &list); err != nil || list == nil {
		*p = Platforms{}
		return nil //nolint:nilerr
	}
	*p = list
	return nil
}
