package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindease/mindease-api/internal/domain/flag"
)

// Erros específicos do repositório
var (
	ErrFlagNotFound = errors.New("denúncia não encontrada")
)

// FlagRepository implementa a interface flag.Repository usando PostgreSQL
type FlagRepository struct {
	db *pgxpool.Pool
}

// NewFlagRepository cria uma nova instância de FlagRepository
func NewFlagRepository(db *pgxpool.Pool) flag.Repository {
	return &FlagRepository{
		db: db,
	}
}

// Create implementa flag.Repository.Create
func (r *FlagRepository) Create(ctx context.Context, f *flag.Flag) error {
	query := `
		INSERT INTO content_flags (
			id, content_type, content_id, reason, reporter_id, status,
			resolution_notes, resolved_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, NULLIF($5, '')::uuid, $6, NULLIF($7, ''), NULLIF($8, '')::uuid, $9, $10
		)
	`

	_, err := r.db.Exec(ctx, query,
		f.ID,
		string(f.ContentType),
		f.ContentID,
		f.Reason,
		f.ReporterID,
		string(f.Status),
		f.ResolutionNotes,
		f.ResolvedBy,
		f.CreatedAt,
		f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar denúncia: %w", err)
	}

	return nil
}

// FindByID implementa flag.Repository.FindByID
func (r *FlagRepository) FindByID(ctx context.Context, id string) (*flag.Flag, error) {
	query := `
		SELECT id, content_type, content_id, reason, COALESCE(reporter_id::text, ''),
		       status, COALESCE(resolution_notes, ''), COALESCE(resolved_by::text, ''),
		       created_at, updated_at
		FROM content_flags
		WHERE id = $1
	`

	f := &flag.Flag{}
	var contentType, status string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&f.ID, &contentType, &f.ContentID, &f.Reason, &f.ReporterID,
		&status, &f.ResolutionNotes, &f.ResolvedBy,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFlagNotFound
		}
		return nil, fmt.Errorf("falha ao buscar denúncia: %w", err)
	}
	f.ContentType = flag.ContentType(contentType)
	f.Status = flag.Status(status)

	return f, nil
}

// List implementa flag.Repository.List
func (r *FlagRepository) List(ctx context.Context, status flag.Status, limit, offset int) ([]*flag.Flag, error) {
	query := `
		SELECT id, content_type, content_id, reason, COALESCE(reporter_id::text, ''),
		       status, COALESCE(resolution_notes, ''), COALESCE(resolved_by::text, ''),
		       created_at, updated_at
		FROM content_flags
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar denúncias: %w", err)
	}
	defer rows.Close()

	flags := []*flag.Flag{}
	for rows.Next() {
		f := &flag.Flag{}
		var contentType, st string
		if err := rows.Scan(
			&f.ID, &contentType, &f.ContentID, &f.Reason, &f.ReporterID,
			&st, &f.ResolutionNotes, &f.ResolvedBy,
			&f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler denúncia: %w", err)
		}
		f.ContentType = flag.ContentType(contentType)
		f.Status = flag.Status(st)
		flags = append(flags, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao percorrer denúncias: %w", err)
	}

	return flags, nil
}

// Count implementa flag.Repository.Count
func (r *FlagRepository) Count(ctx context.Context, status flag.Status) (int, error) {
	query := `SELECT COUNT(*) FROM content_flags WHERE ($1 = '' OR status = $1)`

	var count int
	if err := r.db.QueryRow(ctx, query, string(status)).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar denúncias: %w", err)
	}

	return count, nil
}

// Resolve implementa flag.Repository.Resolve
func (r *FlagRepository) Resolve(ctx context.Context, id string, status flag.Status, notes, resolvedBy string) error {
	query := `
		UPDATE content_flags
		SET status = $2, resolution_notes = NULLIF($3, ''), resolved_by = NULLIF($4, '')::uuid,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, string(status), notes, resolvedBy)
	if err != nil {
		return fmt.Errorf("falha ao resolver denúncia: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFlagNotFound
	}

	return nil
}
