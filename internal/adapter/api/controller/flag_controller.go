package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mindease/mindease-api/internal/adapter/api/dto"
	"github.com/mindease/mindease-api/internal/adapter/repository"
	"github.com/mindease/mindease-api/internal/domain/flag"
	"github.com/mindease/mindease-api/internal/domain/role"
	"github.com/mindease/mindease-api/pkg/auth"
)

// FlagController gerencia as requisições de denúncias de conteúdo
type FlagController struct {
	flagRepository flag.Repository
	roleRepository role.Repository
}

// NewFlagController cria uma nova instância de FlagController
func NewFlagController(flagRepository flag.Repository, roleRepository role.Repository) *FlagController {
	return &FlagController{
		flagRepository: flagRepository,
		roleRepository: roleRepository,
	}
}

// Create registra uma denúncia de conteúdo
// @Summary Denuncia um conteúdo
// @Tags flags
// @Accept json
// @Produce json
// @Security Bearer
// @Param flag body dto.FlagRequest true "Dados da denúncia"
// @Success 201 {object} dto.FlagResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /flags [post]
func (c *FlagController) Create(ctx *gin.Context) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return
	}

	var request dto.FlagRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	now := time.Now()
	f := &flag.Flag{
		ID:          uuid.New().String(),
		ContentType: flag.ContentType(request.ContentType),
		ContentID:   request.ContentID,
		Reason:      request.Reason,
		ReporterID:  userID,
		Status:      flag.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.flagRepository.Create(ctx, f); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao registrar denúncia", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFlagResponse(f))
}

// List lista as denúncias registradas
// @Summary Lista as denúncias
// @Description Requer papel moderator ou admin
// @Tags flags
// @Produce json
// @Security Bearer
// @Param status query string false "Filtro por status (pending, resolved, dismissed)"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.FlagListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /flags [get]
func (c *FlagController) List(ctx *gin.Context) {
	if !c.requireModerator(ctx) {
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)
	status := flag.Status(ctx.Query("status"))

	flags, err := c.flagRepository.List(ctx, status, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar denúncias", err.Error()))
		return
	}

	totalCount, err := c.flagRepository.Count(ctx, status)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar denúncias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFlagListResponse(flags, totalCount, pagination.Page, pagination.PageSize))
}

// Resolve registra o desfecho de uma denúncia
// @Summary Resolve uma denúncia
// @Description Requer papel moderator ou admin
// @Tags flags
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da denúncia"
// @Param resolution body dto.ResolveFlagRequest true "Desfecho da denúncia"
// @Success 200 {object} dto.FlagResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /flags/{id}/resolve [patch]
func (c *FlagController) Resolve(ctx *gin.Context) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return
	}
	if !c.requireModerator(ctx) {
		return
	}

	var request dto.ResolveFlagRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	id := ctx.Param("id")
	if err := c.flagRepository.Resolve(ctx, id, flag.Status(request.Status), request.ResolutionNotes, userID); err != nil {
		if errors.Is(err, repository.ErrFlagNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Denúncia não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao resolver denúncia", err.Error()))
		return
	}

	f, err := c.flagRepository.FindByID(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar denúncia", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFlagResponse(f))
}

// requireModerator verifica se o chamador possui papel de moderação
func (c *FlagController) requireModerator(ctx *gin.Context) bool {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return false
	}

	isModerator, err := c.roleRepository.IsModeratorOrAdmin(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao verificar permissões", err.Error()))
		return false
	}
	if !isModerator {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Permissão negada", "Requer papel moderator ou admin"))
		return false
	}

	return true
}
