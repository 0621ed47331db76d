package bmeta

import (
	"fmt"
	"io"
)

const defaultBuildMeta = "N/A" // Значение по умолчанию

// Meta данные сборки, задаются через -ldflags.
type Meta struct {
	Version string
	Date    string
	Commit  string
}

// WithDefaults заменяет пустые поля на N/A.
func (m Meta) WithDefaults() Meta {
	return Meta{
		Version: defaultIfBlank(m.Version),
		Date:    defaultIfBlank(m.Date),
		Commit:  defaultIfBlank(m.Commit),
	}
}

// Fprint распечатывает версию, дату и коммит сборки в w.
func Fprint(w io.Writer, m Meta) error {
	m = m.WithDefaults()
	if _, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		m.Version, m.Date, m.Commit); err != nil {
		return fmt.Errorf("print build meta: %w", err)
	}
	return nil
}

func defaultIfBlank(v string) string {
	if v == "" {
		return defaultBuildMeta
	}
	return v
}
