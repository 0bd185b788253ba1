package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourusername/resumecoach-api/internal/model"
)

type ResumeRepo struct {
	pool *pgxpool.Pool
}

func NewResumeRepo(pool *pgxpool.Pool) *ResumeRepo {
	return &ResumeRepo{pool: pool}
}

// Create stores an uploaded resume with its raw text and parsed profile
func (r *ResumeRepo) Create(ctx context.Context, resume *model.Resume) (*model.Resume, error) {
	var created model.Resume
	err := r.pool.QueryRow(ctx, `
		INSERT INTO resumes (user_id, original_name, mime_type, size_bytes, raw_text, parsed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, original_name, mime_type, size_bytes, raw_text, parsed, uploaded_at
	`, resume.UserID, resume.OriginalName, resume.MimeType, resume.SizeBytes,
		resume.RawText, resume.Parsed,
	).Scan(
		&created.ID, &created.UserID, &created.OriginalName, &created.MimeType,
		&created.SizeBytes, &created.RawText, &created.Parsed, &created.UploadedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating resume: %w", err)
	}
	return &created, nil
}

// FindByID fetches one resume scoped to its owner
func (r *ResumeRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*model.Resume, error) {
	var resume model.Resume
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, original_name, mime_type, size_bytes, raw_text, parsed, uploaded_at
		FROM resumes
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&resume.ID, &resume.UserID, &resume.OriginalName, &resume.MimeType,
		&resume.SizeBytes, &resume.RawText, &resume.Parsed, &resume.UploadedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding resume: %w", err)
	}
	return &resume, nil
}

// FindLatestByUser returns the most recently uploaded resume, or nil
func (r *ResumeRepo) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*model.Resume, error) {
	var resume model.Resume
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, original_name, mime_type, size_bytes, raw_text, parsed, uploaded_at
		FROM resumes
		WHERE user_id = $1
		ORDER BY uploaded_at DESC
		LIMIT 1
	`, userID).Scan(
		&resume.ID, &resume.UserID, &resume.OriginalName, &resume.MimeType,
		&resume.SizeBytes, &resume.RawText, &resume.Parsed, &resume.UploadedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding latest resume: %w", err)
	}
	return &resume, nil
}

// ListByUser returns all of a user's resumes, newest first
func (r *ResumeRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Resume, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, original_name, mime_type, size_bytes, raw_text, parsed, uploaded_at
		FROM resumes
		WHERE user_id = $1
		ORDER BY uploaded_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing resumes: %w", err)
	}
	defer rows.Close()

	var resumes []model.Resume
	for rows.Next() {
		var resume model.Resume
		if err := rows.Scan(
			&resume.ID, &resume.UserID, &resume.OriginalName, &resume.MimeType,
			&resume.SizeBytes, &resume.RawText, &resume.Parsed, &resume.UploadedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning resume: %w", err)
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}

// Delete removes a resume scoped to its owner
func (r *ResumeRepo) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM resumes WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return false, fmt.Errorf("deleting resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
