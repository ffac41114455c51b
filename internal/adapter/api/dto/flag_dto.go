package dto

import (
	"time"

	"github.com/mindease/mindease-api/internal/domain/flag"
)

// FlagRequest representa os dados para registro de uma denúncia
type FlagRequest struct {
	ContentType string `json:"content_type" binding:"required"`
	ContentID   string `json:"content_id" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

// ResolveFlagRequest representa o desfecho de uma denúncia
type ResolveFlagRequest struct {
	Status          string `json:"status" binding:"required,oneof=resolved dismissed"`
	ResolutionNotes string `json:"resolution_notes"`
}

// FlagResponse representa a resposta com dados de uma denúncia
type FlagResponse struct {
	ID              string    `json:"id"`
	ContentType     string    `json:"content_type"`
	ContentID       string    `json:"content_id"`
	Reason          string    `json:"reason"`
	ReporterID      string    `json:"reporter_id,omitempty"`
	Status          string    `json:"status"`
	ResolutionNotes string    `json:"resolution_notes,omitempty"`
	ResolvedBy      string    `json:"resolved_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FlagListResponse representa a resposta com a lista de denúncias paginada
type FlagListResponse struct {
	Data       []FlagResponse `json:"data"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// ToFlagResponse converte uma denúncia do domínio para DTO de resposta
func ToFlagResponse(f *flag.Flag) FlagResponse {
	return FlagResponse{
		ID:              f.ID,
		ContentType:     string(f.ContentType),
		ContentID:       f.ContentID,
		Reason:          f.Reason,
		ReporterID:      f.ReporterID,
		Status:          string(f.Status),
		ResolutionNotes: f.ResolutionNotes,
		ResolvedBy:      f.ResolvedBy,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

// ToFlagListResponse converte uma lista de denúncias para DTO de resposta paginada
func ToFlagListResponse(flags []*flag.Flag, totalCount, page, pageSize int) FlagListResponse {
	data := make([]FlagResponse, len(flags))
	for i, f := range flags {
		data[i] = ToFlagResponse(f)
	}

	return FlagListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}
