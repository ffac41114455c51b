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
	"github.com/mindease/mindease-api/internal/domain/mood"
	"github.com/mindease/mindease-api/pkg/auth"
	"github.com/mindease/mindease-api/pkg/completion"
)

// suggestionPrompt instrui o assistente a gerar uma sugestão curta de
// enfrentamento a partir de uma entrada do diário
const suggestionPrompt = "You are a supportive mental wellness assistant. Given a user's " +
	"mood journal entry, suggest one short, practical and healthy coping strategy. " +
	"Answer in at most three sentences, with a warm and encouraging tone."

// MoodController gerencia as requisições do diário de humor
type MoodController struct {
	moodRepository mood.Repository
	completer      Completer
}

// NewMoodController cria uma nova instância de MoodController
func NewMoodController(moodRepository mood.Repository, completer Completer) *MoodController {
	return &MoodController{
		moodRepository: moodRepository,
		completer:      completer,
	}
}

// Create cria uma nova entrada no diário de humor
// @Summary Cria uma entrada do diário de humor
// @Tags mood
// @Accept json
// @Produce json
// @Security Bearer
// @Param entry body dto.MoodEntryRequest true "Conteúdo e pontuação de humor"
// @Success 201 {object} dto.MoodEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /mood-entries [post]
func (c *MoodController) Create(ctx *gin.Context) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return
	}

	var request dto.MoodEntryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	if !mood.ValidScore(request.MoodScore) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Pontuação inválida", "A pontuação de humor deve estar entre 1 e 10"))
		return
	}

	now := time.Now()
	e := &mood.Entry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Content:   request.Content,
		MoodScore: request.MoodScore,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.moodRepository.Create(ctx, e); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar entrada", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMoodEntryResponse(e))
}

// List lista as entradas do diário do usuário autenticado
// @Summary Lista as entradas do diário de humor
// @Tags mood
// @Produce json
// @Security Bearer
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.MoodEntryListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /mood-entries [get]
func (c *MoodController) List(ctx *gin.Context) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	entries, err := c.moodRepository.ListByUser(ctx, userID, pagination.PageSize, pagination.Offset())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar entradas", err.Error()))
		return
	}

	totalCount, err := c.moodRepository.CountByUser(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar entradas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMoodEntryListResponse(entries, totalCount, pagination.Page, pagination.PageSize))
}

// Update atualiza uma entrada do diário
// @Summary Atualiza uma entrada do diário de humor
// @Tags mood
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da entrada"
// @Param entry body dto.MoodEntryRequest true "Conteúdo e pontuação de humor"
// @Success 200 {object} dto.MoodEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /mood-entries/{id} [put]
func (c *MoodController) Update(ctx *gin.Context) {
	e, ok := c.ownedEntry(ctx)
	if !ok {
		return
	}

	var request dto.MoodEntryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	if !mood.ValidScore(request.MoodScore) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Pontuação inválida", "A pontuação de humor deve estar entre 1 e 10"))
		return
	}

	e.Content = request.Content
	e.MoodScore = request.MoodScore

	if err := c.moodRepository.Update(ctx, e); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar entrada", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMoodEntryResponse(e))
}

// Delete remove uma entrada do diário
// @Summary Remove uma entrada do diário de humor
// @Tags mood
// @Produce json
// @Security Bearer
// @Param id path string true "ID da entrada"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /mood-entries/{id} [delete]
func (c *MoodController) Delete(ctx *gin.Context) {
	e, ok := c.ownedEntry(ctx)
	if !ok {
		return
	}

	if err := c.moodRepository.Delete(ctx, e.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover entrada", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Entrada removida", nil))
}

// Suggest gera e registra uma sugestão de enfrentamento para uma entrada
// @Summary Gera uma sugestão para uma entrada do diário
// @Description Usa o assistente para sugerir uma estratégia de enfrentamento
// @Tags mood
// @Produce json
// @Security Bearer
// @Param id path string true "ID da entrada"
// @Success 200 {object} dto.SuggestionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /mood-entries/{id}/suggestion [post]
func (c *MoodController) Suggest(ctx *gin.Context) {
	e, ok := c.ownedEntry(ctx)
	if !ok {
		return
	}

	messages := []completion.Message{
		{Role: completion.RoleSystem, Content: suggestionPrompt},
		{Role: completion.RoleUser, Content: e.Content},
	}

	suggestion, err := c.completer.Complete(ctx, messages)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar sugestão", err.Error()))
		return
	}

	if err := c.moodRepository.UpdateSuggestion(ctx, e.ID, suggestion); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao registrar sugestão", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestionResponse{
		EntryID:    e.ID,
		Suggestion: suggestion,
	})
}

// ownedEntry carrega a entrada do path e garante que pertence ao chamador;
// em caso de falha responde e retorna false
func (c *MoodController) ownedEntry(ctx *gin.Context) (*mood.Entry, bool) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Autenticação requerida", ""))
		return nil, false
	}

	id := ctx.Param("id")
	e, err := c.moodRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMoodEntryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Entrada não encontrada", ""))
			return nil, false
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar entrada", err.Error()))
		return nil, false
	}

	if e.UserID != userID {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Permissão negada", "A entrada pertence a outro usuário"))
		return nil, false
	}

	return e, true
}
