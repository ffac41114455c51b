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
	"github.com/mindease/mindease-api/internal/domain/discussion"
	"github.com/mindease/mindease-api/internal/domain/role"
	"github.com/mindease/mindease-api/internal/domain/user"
	"github.com/mindease/mindease-api/pkg/auth"
)

// DiscussionController gerencia as requisições de discussões da comunidade
type DiscussionController struct {
	discussionRepository discussion.Repository
	userRepository       user.Repository
	roleRepository       role.Repository
}

// NewDiscussionController cria uma nova instância de DiscussionController
func NewDiscussionController(discussionRepository discussion.Repository, userRepository user.Repository, roleRepository role.Repository) *DiscussionController {
	return &DiscussionController{
		discussionRepository: discussionRepository,
		userRepository:       userRepository,
		roleRepository:       roleRepository,
	}
}

// Create cria uma nova discussão
// @Summary Cria uma nova discussão
// @Description A discussão nasce não aprovada e aguarda moderação
// @Tags discussions
// @Accept json
// @Produce json
// @Security Bearer
// @Param discussion body dto.DiscussionRequest true "Dados da discussão"
// @Success 201 {object} dto.DiscussionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /discussions [post]
func (c *DiscussionController) Create(ctx *gin.Context) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return
	}

	var request dto.DiscussionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	// Carregar o autor para desnormalizar nome e avatar na discussão
	author, err := c.userRepository.FindByID(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar autor", err.Error()))
		return
	}

	now := time.Now()
	d := &discussion.Discussion{
		ID:           uuid.New().String(),
		AuthorID:     userID,
		AuthorName:   author.DisplayName(),
		AuthorAvatar: author.AvatarURL,
		Title:        request.Title,
		Content:      request.Content,
		Tags:         request.Tags,
		IsApproved:   false,
		IsHidden:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.discussionRepository.Create(ctx, d); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar discussão", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDiscussionResponse(d))
}

// List lista as discussões visíveis da comunidade
// @Summary Lista as discussões aprovadas
// @Tags discussions
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Param tag query string false "Filtro por tag"
// @Success 200 {object} dto.DiscussionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /discussions [get]
func (c *DiscussionController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)
	tag := ctx.Query("tag")

	discussions, err := c.discussionRepository.ListVisible(ctx, tag, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar discussões", err.Error()))
		return
	}

	totalCount, err := c.discussionRepository.CountVisible(ctx, tag)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar discussões", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDiscussionListResponse(discussions, totalCount, pagination.Page, pagination.PageSize))
}

// GetByID retorna uma discussão pelo ID
// @Summary Busca uma discussão pelo ID
// @Tags discussions
// @Produce json
// @Param id path string true "ID da discussão"
// @Success 200 {object} dto.DiscussionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /discussions/{id} [get]
func (c *DiscussionController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")

	d, err := c.discussionRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDiscussionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Discussão não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar discussão", err.Error()))
		return
	}

	// Discussões ocultas ou não aprovadas não são expostas publicamente
	if !d.IsVisible() {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Discussão não encontrada", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDiscussionResponse(d))
}

// Approve aprova uma discussão para exibição pública
// @Summary Aprova uma discussão
// @Description Requer papel moderator ou admin
// @Tags discussions
// @Produce json
// @Security Bearer
// @Param id path string true "ID da discussão"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /discussions/{id}/approve [patch]
func (c *DiscussionController) Approve(ctx *gin.Context) {
	if !c.requireModerator(ctx) {
		return
	}

	id := ctx.Param("id")
	if err := c.discussionRepository.SetApproved(ctx, id, true); err != nil {
		if errors.Is(err, repository.ErrDiscussionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Discussão não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao aprovar discussão", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Discussão aprovada", nil))
}

// Hide oculta uma discussão da exibição pública
// @Summary Oculta uma discussão
// @Description Requer papel moderator ou admin
// @Tags discussions
// @Produce json
// @Security Bearer
// @Param id path string true "ID da discussão"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /discussions/{id}/hide [patch]
func (c *DiscussionController) Hide(ctx *gin.Context) {
	if !c.requireModerator(ctx) {
		return
	}

	id := ctx.Param("id")
	if err := c.discussionRepository.SetHidden(ctx, id, true); err != nil {
		if errors.Is(err, repository.ErrDiscussionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Discussão não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao ocultar discussão", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Discussão ocultada", nil))
}

// Like registra uma curtida em uma discussão
// @Summary Curte uma discussão
// @Tags discussions
// @Produce json
// @Security Bearer
// @Param id path string true "ID da discussão"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /discussions/{id}/like [post]
func (c *DiscussionController) Like(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.discussionRepository.IncrementLikes(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDiscussionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Discussão não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao registrar curtida", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Curtida registrada", nil))
}

// ListTags lista o vocabulário de tags
// @Summary Lista as tags de discussão
// @Tags discussions
// @Produce json
// @Success 200 {array} dto.TagResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /discussions/tags [get]
func (c *DiscussionController) ListTags(ctx *gin.Context) {
	tags, err := c.discussionRepository.ListTags(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar tags", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTagResponses(tags))
}

// requireModerator verifica se o chamador possui papel de moderação;
// em caso negativo responde e retorna false
func (c *DiscussionController) requireModerator(ctx *gin.Context) bool {
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
