package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fsdevblog/smartlinks/internal/models"
	"github.com/gin-gonic/gin"
)

// Сообщения успешных ответов.
const (
	msgDeleted              = "Smartlink deleted successfully"
	msgClickTracked         = "Click tracked successfully"
	msgPlatformClickTracked = "Platform click tracked successfully"
)

type SmartlinksController struct {
	store SmartlinkStore
}

func NewSmartlinksController(store SmartlinkStore) *SmartlinksController {
	return &SmartlinksController{store: store}
}

// Create POST /smartlinks.
func (s *SmartlinksController) Create(ctx *gin.Context) {
	fields, bindErr := bindFields(ctx)
	if bindErr != nil {
		handleBindError(ctx, bindErr)
		return
	}

	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	m, err := s.store.Create(reqCtx, fields)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, m)
}

// List GET /smartlinks.
func (s *SmartlinksController) List(ctx *gin.Context) {
	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	list, err := s.store.List(reqCtx)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	if list == nil {
		list = []models.Smartlink{}
	}
	ctx.JSON(http.StatusOK, list)
}

// Get GET /smartlinks/:id. Каждый успешный запрос считается просмотром.
func (s *SmartlinksController) Get(ctx *gin.Context) {
	id, ok := smartlinkID(ctx)
	if !ok {
		return
	}
	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	m, err := s.store.Get(reqCtx, id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, m)
}

// Update PUT /smartlinks/:id. Обновляются только присутствующие в теле поля.
func (s *SmartlinksController) Update(ctx *gin.Context) {
	id, ok := smartlinkID(ctx)
	if !ok {
		return
	}
	fields, bindErr := bindFields(ctx)
	if bindErr != nil {
		handleBindError(ctx, bindErr)
		return
	}

	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	m, err := s.store.Update(reqCtx, id, fields)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, m)
}

// Delete DELETE /smartlinks/:id.
func (s *SmartlinksController) Delete(ctx *gin.Context) {
	id, ok := smartlinkID(ctx)
	if !ok {
		return
	}
	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	if err := s.store.Delete(reqCtx, id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": msgDeleted})
}

// TrackClick POST /smartlinks/:id/click.
func (s *SmartlinksController) TrackClick(ctx *gin.Context) {
	id, ok := smartlinkID(ctx)
	if !ok {
		return
	}
	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	clicks, err := s.store.TrackClick(reqCtx, id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": msgClickTracked,
		"clicks":  clicks,
	})
}

// Landing GET /smartlinks/:id/landing.
func (s *SmartlinksController) Landing(ctx *gin.Context) {
	id, ok := smartlinkID(ctx)
	if !ok {
		return
	}
	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	lp, err := s.store.GetLandingPage(reqCtx, id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lp)
}

// TrackPlatformClick POST /smartlinks/:id/platforms/:index/click.
// Индекс, который не разбирается как целое число, дает 400 без обращения к хранилищу.
func (s *SmartlinksController) TrackPlatformClick(ctx *gin.Context) {
	id, ok := smartlinkID(ctx)
	if !ok {
		return
	}
	index, convErr := strconv.Atoi(ctx.Param("index"))
	if convErr != nil {
		_ = ctx.Error(convErr)
		errorResponse(ctx, http.StatusBadRequest, ErrInvalidIndex.Error())
		return
	}

	reqCtx, cancel := requestContext(ctx)
	defer cancel()

	res, err := s.store.TrackPlatformClick(reqCtx, id, index)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message":         msgPlatformClickTracked,
		"total_clicks":    res.TotalClicks,
		"platform_clicks": res.PlatformClicks,
		"redirect_url":    res.RedirectURL,
	})
}

// smartlinkID достает идентификатор из пути. Идентификатор неверной длины сразу дает 404.
func smartlinkID(ctx *gin.Context) (string, bool) {
	id := ctx.Param("id")
	if len(id) != models.SmartlinkIDLength {
		errorResponse(ctx, http.StatusNotFound, ErrSmartlinkNotFound.Error())
		return "", false
	}
	return id, true
}

func requestContext(ctx *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), DefaultRequestTimeout)
}
