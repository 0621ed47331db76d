package sql

import (
	"fmt"

	"github.com/fsdevblog/smartlinks/internal/repositories"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ConvertErrorType переводит ошибку gorm в ошибку репозитория. Исходная ошибка остается в цепочке,
// так что отмена контекста по-прежнему распознается через errors.Is.
func ConvertErrorType(err error) error {
	if err == nil {
		return nil
	}
	var nativeErr error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		nativeErr = repositories.ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		nativeErr = repositories.ErrNotFound
	default:
		nativeErr = repositories.ErrUnknown
	}
	return fmt.Errorf("%w: %w", nativeErr, err)
}
