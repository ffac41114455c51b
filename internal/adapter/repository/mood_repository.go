package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindease/mindease-api/internal/domain/mood"
)

// Erros específicos do repositório
var (
	ErrMoodEntryNotFound = errors.New("entrada do diário não encontrada")
)

// MoodRepository implementa a interface mood.Repository usando PostgreSQL
type MoodRepository struct {
	db *pgxpool.Pool
}

// NewMoodRepository cria uma nova instância de MoodRepository
func NewMoodRepository(db *pgxpool.Pool) mood.Repository {
	return &MoodRepository{
		db: db,
	}
}

// Create implementa mood.Repository.Create
func (r *MoodRepository) Create(ctx context.Context, e *mood.Entry) error {
	query := `
		INSERT INTO mood_journal_entries (
			id, user_id, content, mood_score, ai_suggestion, is_hidden, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8
		)
	`

	_, err := r.db.Exec(ctx, query,
		e.ID,
		e.UserID,
		e.Content,
		e.MoodScore,
		e.AISuggestion,
		e.IsHidden,
		e.CreatedAt,
		e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir entrada do diário: %w", err)
	}

	return nil
}

// FindByID implementa mood.Repository.FindByID
func (r *MoodRepository) FindByID(ctx context.Context, id string) (*mood.Entry, error) {
	query := `
		SELECT id, user_id, content, COALESCE(mood_score, 0), COALESCE(ai_suggestion, ''),
		       COALESCE(is_hidden, false), created_at, updated_at
		FROM mood_journal_entries
		WHERE id = $1
	`

	e := &mood.Entry{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.UserID, &e.Content, &e.MoodScore, &e.AISuggestion,
		&e.IsHidden, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMoodEntryNotFound
		}
		return nil, fmt.Errorf("falha ao buscar entrada do diário: %w", err)
	}

	return e, nil
}

// ListByUser implementa mood.Repository.ListByUser
func (r *MoodRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*mood.Entry, error) {
	query := `
		SELECT id, user_id, content, COALESCE(mood_score, 0), COALESCE(ai_suggestion, ''),
		       COALESCE(is_hidden, false), created_at, updated_at
		FROM mood_journal_entries
		WHERE user_id = $1 AND is_hidden = false
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar entradas do diário: %w", err)
	}
	defer rows.Close()

	entries := []*mood.Entry{}
	for rows.Next() {
		e := &mood.Entry{}
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Content, &e.MoodScore, &e.AISuggestion,
			&e.IsHidden, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler entrada do diário: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer entradas do diário: %w", err)
	}

	return entries, nil
}

// CountByUser implementa mood.Repository.CountByUser
func (r *MoodRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM mood_journal_entries WHERE user_id = $1 AND is_hidden = false`

	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar entradas do diário: %w", err)
	}

	return count, nil
}

// Update implementa mood.Repository.Update
func (r *MoodRepository) Update(ctx context.Context, e *mood.Entry) error {
	query := `
		UPDATE mood_journal_entries
		SET content = $2, mood_score = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, e.ID, e.Content, e.MoodScore)
	if err != nil {
		return fmt.Errorf("falha ao atualizar entrada do diário: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMoodEntryNotFound
	}

	return nil
}

// UpdateSuggestion implementa mood.Repository.UpdateSuggestion
func (r *MoodRepository) UpdateSuggestion(ctx context.Context, id, suggestion string) error {
	query := `
		UPDATE mood_journal_entries
		SET ai_suggestion = NULLIF($2, ''), updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, suggestion)
	if err != nil {
		return fmt.Errorf("falha ao registrar sugestão: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMoodEntryNotFound
	}

	return nil
}

// Delete implementa mood.Repository.Delete
func (r *MoodRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM mood_journal_entries WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("falha ao remover entrada do diário: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMoodEntryNotFound
	}

	return nil
}
