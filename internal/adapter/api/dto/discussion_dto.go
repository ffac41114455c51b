package dto

import (
	"time"

	"github.com/mindease/mindease-api/internal/domain/discussion"
)

// DiscussionRequest representa os dados para criação de uma discussão
type DiscussionRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// DiscussionResponse representa a resposta com dados de uma discussão
type DiscussionResponse struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author_name,omitempty"`
	AuthorAvatar string    `json:"author_avatar,omitempty"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Tags         []string  `json:"tags"`
	IsApproved   bool      `json:"is_approved"`
	IsHidden     bool      `json:"is_hidden"`
	LikeCount    int       `json:"like_count"`
	ReplyCount   int       `json:"reply_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DiscussionListResponse representa a resposta com a lista de discussões paginada
type DiscussionListResponse struct {
	Data       []DiscussionResponse `json:"data"`
	TotalCount int                  `json:"total_count"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

// TagResponse representa uma tag do vocabulário de discussões
type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToDiscussionResponse converte uma discussão do domínio para DTO de resposta
func ToDiscussionResponse(d *discussion.Discussion) DiscussionResponse {
	return DiscussionResponse{
		ID:           d.ID,
		AuthorID:     d.AuthorID,
		AuthorName:   d.AuthorName,
		AuthorAvatar: d.AuthorAvatar,
		Title:        d.Title,
		Content:      d.Content,
		Tags:         d.Tags,
		IsApproved:   d.IsApproved,
		IsHidden:     d.IsHidden,
		LikeCount:    d.LikeCount,
		ReplyCount:   d.ReplyCount,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ToDiscussionListResponse converte uma lista de discussões para DTO de resposta paginada
func ToDiscussionListResponse(discussions []*discussion.Discussion, totalCount, page, pageSize int) DiscussionListResponse {
	data := make([]DiscussionResponse, len(discussions))
	for i, d := range discussions {
		data[i] = ToDiscussionResponse(d)
	}

	return DiscussionListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}

// ToTagResponses converte as tags do domínio para DTOs de resposta
func ToTagResponses(tags []discussion.Tag) []TagResponse {
	responses := make([]TagResponse, len(tags))
	for i, t := range tags {
		responses[i] = TagResponse{ID: t.ID, Name: t.Name}
	}
	return responses
}
