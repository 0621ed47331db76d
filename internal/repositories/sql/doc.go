// Package sql предоставляет реализацию репозитория смартлинков поверх gorm (sqlite, PostgreSQL).
//
// Ошибки gorm преобразуются в общие ошибки уровня репозитория с помощью ConvertErrorType:
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
