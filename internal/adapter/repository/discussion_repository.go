package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindease/mindease-api/internal/domain/discussion"
)

// Erros específicos do repositório
var (
	ErrDiscussionNotFound = errors.New("discussão não encontrada")
)

// DiscussionRepository implementa a interface discussion.Repository usando PostgreSQL
type DiscussionRepository struct {
	db *pgxpool.Pool
}

// NewDiscussionRepository cria uma nova instância de DiscussionRepository
func NewDiscussionRepository(db *pgxpool.Pool) discussion.Repository {
	return &DiscussionRepository{
		db: db,
	}
}

// Create implementa discussion.Repository.Create
func (r *DiscussionRepository) Create(ctx context.Context, d *discussion.Discussion) error {
	query := `
		INSERT INTO community_discussions (
			id, author_id, author_name, author_avatar, title, content, tags,
			is_approved, is_hidden, like_count, reply_count, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
	`

	_, err := r.db.Exec(ctx, query,
		d.ID,
		d.AuthorID,
		d.AuthorName,
		d.AuthorAvatar,
		d.Title,
		d.Content,
		d.Tags,
		d.IsApproved,
		d.IsHidden,
		d.LikeCount,
		d.ReplyCount,
		d.CreatedAt,
		d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir discussão: %w", err)
	}

	return nil
}

// FindByID implementa discussion.Repository.FindByID
func (r *DiscussionRepository) FindByID(ctx context.Context, id string) (*discussion.Discussion, error) {
	query := `
		SELECT id, author_id, COALESCE(author_name, ''), COALESCE(author_avatar, ''),
		       title, content, COALESCE(tags, '{}'), COALESCE(is_approved, false),
		       COALESCE(is_hidden, false), COALESCE(like_count, 0), COALESCE(reply_count, 0),
		       created_at, updated_at
		FROM community_discussions
		WHERE id = $1
	`

	d := &discussion.Discussion{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.AuthorID, &d.AuthorName, &d.AuthorAvatar,
		&d.Title, &d.Content, &d.Tags, &d.IsApproved,
		&d.IsHidden, &d.LikeCount, &d.ReplyCount,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDiscussionNotFound
		}
		return nil, fmt.Errorf("falha ao buscar discussão: %w", err)
	}

	return d, nil
}

// ListVisible implementa discussion.Repository.ListVisible
func (r *DiscussionRepository) ListVisible(ctx context.Context, tag string, limit, offset int) ([]*discussion.Discussion, error) {
	query := `
		SELECT id, author_id, COALESCE(author_name, ''), COALESCE(author_avatar, ''),
		       title, content, COALESCE(tags, '{}'), COALESCE(is_approved, false),
		       COALESCE(is_hidden, false), COALESCE(like_count, 0), COALESCE(reply_count, 0),
		       created_at, updated_at
		FROM community_discussions
		WHERE is_approved = true AND is_hidden = false
		  AND ($1 = '' OR $1 = ANY(tags))
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, tag, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar discussões: %w", err)
	}
	defer rows.Close()

	discussions := []*discussion.Discussion{}
	for rows.Next() {
		d := &discussion.Discussion{}
		if err := rows.Scan(
			&d.ID, &d.AuthorID, &d.AuthorName, &d.AuthorAvatar,
			&d.Title, &d.Content, &d.Tags, &d.IsApproved,
			&d.IsHidden, &d.LikeCount, &d.ReplyCount,
			&d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler discussão: %w", err)
		}
		discussions = append(discussions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer discussões: %w", err)
	}

	return discussions, nil
}

// CountVisible implementa discussion.Repository.CountVisible
func (r *DiscussionRepository) CountVisible(ctx context.Context, tag string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM community_discussions
		WHERE is_approved = true AND is_hidden = false
		  AND ($1 = '' OR $1 = ANY(tags))
	`

	var count int
	if err := r.db.QueryRow(ctx, query, tag).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar discussões: %w", err)
	}

	return count, nil
}

// SetApproved implementa discussion.Repository.SetApproved
func (r *DiscussionRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	query := `UPDATE community_discussions SET is_approved = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, approved)
	if err != nil {
		return fmt.Errorf("falha ao atualizar aprovação da discussão: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDiscussionNotFound
	}

	return nil
}

// SetHidden implementa discussion.Repository.SetHidden
func (r *DiscussionRepository) SetHidden(ctx context.Context, id string, hidden bool) error {
	query := `UPDATE community_discussions SET is_hidden = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, hidden)
	if err != nil {
		return fmt.Errorf("falha ao ocultar discussão: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDiscussionNotFound
	}

	return nil
}

// IncrementLikes implementa discussion.Repository.IncrementLikes
func (r *DiscussionRepository) IncrementLikes(ctx context.Context, id string) error {
	query := `
		UPDATE community_discussions
		SET like_count = COALESCE(like_count, 0) + 1, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("falha ao registrar curtida: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDiscussionNotFound
	}

	return nil
}

// ListTags implementa discussion.Repository.ListTags
func (r *DiscussionRepository) ListTags(ctx context.Context) ([]discussion.Tag, error) {
	query := `SELECT id, name FROM discussion_tags ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar tags: %w", err)
	}
	defer rows.Close()

	tags := []discussion.Tag{}
	for rows.Next() {
		var t discussion.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("falha ao ler tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer tags: %w", err)
	}

	return tags, nil
}
