package controllers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fsdevblog/smartlinks/internal/models"
	"github.com/fsdevblog/smartlinks/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	pkgerrors "github.com/pkg/errors"
)

const (
	DefaultRequestTimeout = 3 * time.Second
	// MaxBodySize предел тела запроса после распаковки.
	MaxBodySize int64 = 1 << 20
)

// errorResponse отдает клиенту {"error": msg}.
func errorResponse(ctx *gin.Context, status int, msg string) {
	ctx.JSON(status, gin.H{"error": msg})
}

// handleBindError отвечает на ошибку разбора тела запроса.
func handleBindError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	if errors.Is(err, ErrBodyTooLarge) {
		errorResponse(ctx, http.StatusRequestEntityTooLarge, ErrBodyTooLarge.Error())
		return
	}
	errorResponse(ctx, http.StatusBadRequest, ErrInvalidJSON.Error())
}

// handleServiceError прикрепляет ошибку к контексту для логгера и отвечает статусом по типу ошибки сервиса.
func handleServiceError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)

	switch {
	case errors.Is(err, services.ErrRecordNotFound):
		errorResponse(ctx, http.StatusNotFound, ErrSmartlinkNotFound.Error())
	case errors.Is(err, services.ErrOutOfRange):
		errorResponse(ctx, http.StatusBadRequest, ErrIndexOutOfRange.Error())
	case errors.Is(err, services.ErrValidation):
		errorResponse(ctx, http.StatusBadRequest, validationMessage(err))
	default:
		errorResponse(ctx, http.StatusInternalServerError, ErrInternal.Error())
	}
}

// validationMessage текст ошибки валидации без служебного префикса сервиса.
func validationMessage(err error) string {
	return strings.TrimSuffix(err.Error(), ": "+services.ErrValidation.Error())
}

// bindFields разбирает тело запроса в models.SmartlinkFields.
// Тело больше MaxBodySize дает ErrBodyTooLarge, любая другая ошибка означает некорректный запрос.
func bindFields(ctx *gin.Context) (*models.SmartlinkFields, error) {
	body, readErr := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, MaxBodySize))
	if readErr != nil {
		var maxErr *http.MaxBytesError
		if errors.As(readErr, &maxErr) {
			return nil, pkgerrors.Wrapf(ErrBodyTooLarge, "limit %d bytes", maxErr.Limit)
		}
		return nil, pkgerrors.Wrap(readErr, "read request body")
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil, ErrInvalidJSON
	}

	var fields models.SmartlinkFields
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, pkgerrors.Wrap(ErrInvalidJSON, err.Error())
	}
	return &fields, nil
}
