package mood

import (
	"time"
)

// Limites da escala de humor
const (
	MinScore = 1
	MaxScore = 10
)

// Entry representa uma entrada do diário de humor de um usuário
type Entry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Content      string    `json:"content"`
	MoodScore    int       `json:"mood_score"`
	AISuggestion string    `json:"ai_suggestion,omitempty"`
	IsHidden     bool      `json:"is_hidden"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidScore verifica se a pontuação de humor está dentro da escala
func ValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}
