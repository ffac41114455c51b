package dto

import (
	"time"

	"github.com/mindease/mindease-api/internal/domain/mood"
)

// MoodEntryRequest representa os dados para criação ou atualização de uma entrada do diário
type MoodEntryRequest struct {
	Content   string `json:"content" binding:"required"`
	MoodScore int    `json:"mood_score" binding:"required,min=1,max=10"`
}

// MoodEntryResponse representa a resposta com dados de uma entrada do diário
type MoodEntryResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Content      string    `json:"content"`
	MoodScore    int       `json:"mood_score"`
	AISuggestion string    `json:"ai_suggestion,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MoodEntryListResponse representa a resposta com a lista de entradas paginada
type MoodEntryListResponse struct {
	Data       []MoodEntryResponse `json:"data"`
	TotalCount int                 `json:"total_count"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

// SuggestionResponse representa a sugestão gerada para uma entrada do diário
type SuggestionResponse struct {
	EntryID    string `json:"entry_id"`
	Suggestion string `json:"suggestion"`
}

// ToMoodEntryResponse converte uma entrada do domínio para DTO de resposta
func ToMoodEntryResponse(e *mood.Entry) MoodEntryResponse {
	return MoodEntryResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		Content:      e.Content,
		MoodScore:    e.MoodScore,
		AISuggestion: e.AISuggestion,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ToMoodEntryListResponse converte uma lista de entradas para DTO de resposta paginada
func ToMoodEntryListResponse(entries []*mood.Entry, totalCount, page, pageSize int) MoodEntryListResponse {
	data := make([]MoodEntryResponse, len(entries))
	for i, e := range entries {
		data[i] = ToMoodEntryResponse(e)
	}

	return MoodEntryListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}
