package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// EncodingType определяет формат вывода логов.
type EncodingType string

const (
	EncodingTypeText EncodingType = "text"
	EncodingTypeJSON EncodingType = "json"
)

// LoggerOptions настройки логгера.
type LoggerOptions struct {
	Level    string       // Уровень логирования в формате logrus.ParseLevel
	Encoding EncodingType // Формат вывода
	Output   io.Writer
}

// WithLevel задает уровень. Пустая строка оставляет уровень по умолчанию.
func WithLevel(level string) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		if level != "" {
			o.Level = level
		}
	}
}

func WithOutput(w io.Writer) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		o.Output = w
	}
}

func WithEncoding(e EncodingType) func(*LoggerOptions) {
	return func(o *LoggerOptions) {
		o.Encoding = e
	}
}

// New создает новый логгер с указанными настройками.
// В продакшн окружении (GIN_MODE=release) по умолчанию JSON и уровень info, иначе текст и debug.
//
// Параметры:
//   - opts: функции для настройки логгера
//
// Возвращает:
//   - *logrus.Logger: настроенный логгер
//   - error: ошибка разбора уровня
func New(opts ...func(*LoggerOptions)) (*logrus.Logger, error) {
	options := LoggerOptions{
		Level:    logrus.DebugLevel.String(),
		Encoding: EncodingTypeText,
		Output:   os.Stdout,
	}
	if os.Getenv("GIN_MODE") == "release" {
		options.Level = logrus.InfoLevel.String()
		options.Encoding = EncodingTypeJSON
	}

	for _, opt := range opts {
		opt(&options)
	}

	lvl, err := logrus.ParseLevel(options.Level)
	if err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(options.Output)
	logger.SetLevel(lvl)

	switch options.Encoding {
	case EncodingTypeJSON:
		logger.SetFormatter(new(logrus.JSONFormatter))
	case EncodingTypeText:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown encoding %q", options.Encoding)
	}
	return logger, nil
}
