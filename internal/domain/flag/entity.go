package flag

import (
	"time"
)

// Status representa o estado de tratamento de uma denúncia
type Status string

// Constantes para Status
const (
	StatusPending   Status = "pending"   // Aguardando moderação
	StatusResolved  Status = "resolved"  // Tratada pela moderação
	StatusDismissed Status = "dismissed" // Descartada pela moderação
)

// ContentType representa o tipo de conteúdo denunciado
type ContentType string

// Constantes para ContentType
const (
	ContentDiscussion ContentType = "discussion"
	ContentMoodEntry  ContentType = "mood_entry"
)

// Flag representa uma denúncia de conteúdo feita por um usuário
type Flag struct {
	ID              string      `json:"id"`
	ContentType     ContentType `json:"content_type"`
	ContentID       string      `json:"content_id"`
	Reason          string      `json:"reason"`
	ReporterID      string      `json:"reporter_id"`
	Status          Status      `json:"status"`
	ResolutionNotes string      `json:"resolution_notes"`
	ResolvedBy      string      `json:"resolved_by"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// IsPending verifica se a denúncia ainda aguarda moderação
func (f *Flag) IsPending() bool {
	return f.Status == StatusPending
}
