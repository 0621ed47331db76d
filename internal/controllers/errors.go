package controllers

import "errors"

// Ошибки, которые видит клиент.
var (
	ErrSmartlinkNotFound = errors.New("Smartlink not found")         //nolint:stylecheck
	ErrInvalidJSON       = errors.New("invalid JSON body")           // Тело не разбирается как JSON объект
	ErrBodyTooLarge      = errors.New("request body too large")      // Тело больше MaxBodySize
	ErrInvalidIndex      = errors.New("invalid platform index")      // Индекс не число
	ErrIndexOutOfRange   = errors.New("Platform index out of range") //nolint:stylecheck
	ErrInternal          = errors.New("internal error")              // Прочая ошибка
)
