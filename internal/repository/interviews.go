package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourusername/resumecoach-api/internal/model"
)

type InterviewRepo struct {
	pool *pgxpool.Pool
}

func NewInterviewRepo(pool *pgxpool.Pool) *InterviewRepo {
	return &InterviewRepo{pool: pool}
}

// Create persists a new interview session with its generated questions
func (r *InterviewRepo) Create(ctx context.Context, session *model.InterviewSession) (*model.InterviewSession, error) {
	var s model.InterviewSession
	err := r.pool.QueryRow(ctx, `
		INSERT INTO interview_sessions (user_id, resume_id, session_type, target_role, difficulty, status, questions)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, resume_id, session_type, target_role, difficulty,
		          status, questions, started_at, completed_at
	`, session.UserID, session.ResumeID, session.SessionType, session.TargetRole,
		session.Difficulty, session.Status, session.Questions,
	).Scan(
		&s.ID, &s.UserID, &s.ResumeID, &s.SessionType, &s.TargetRole,
		&s.Difficulty, &s.Status, &s.Questions, &s.StartedAt, &s.CompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating interview session: %w", err)
	}
	return &s, nil
}

// FindByID fetches one session scoped to its owner
func (r *InterviewRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*model.InterviewSession, error) {
	var s model.InterviewSession
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, resume_id, session_type, target_role, difficulty,
		       status, questions, started_at, completed_at
		FROM interview_sessions
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&s.ID, &s.UserID, &s.ResumeID, &s.SessionType, &s.TargetRole,
		&s.Difficulty, &s.Status, &s.Questions, &s.StartedAt, &s.CompletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding interview session: %w", err)
	}
	return &s, nil
}

// ListByUser returns the user's sessions, newest first
func (r *InterviewRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.InterviewSession, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, resume_id, session_type, target_role, difficulty,
		       status, questions, started_at, completed_at
		FROM interview_sessions
		WHERE user_id = $1
		ORDER BY started_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing interview sessions: %w", err)
	}
	defer rows.Close()

	var sessions []model.InterviewSession
	for rows.Next() {
		var s model.InterviewSession
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.ResumeID, &s.SessionType, &s.TargetRole,
			&s.Difficulty, &s.Status, &s.Questions, &s.StartedAt, &s.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning interview session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// SaveQuestions replaces the session's question list (answers and
// evaluations live inside the JSONB document)
func (r *InterviewRepo) SaveQuestions(ctx context.Context, sessionID uuid.UUID, questions []model.InterviewQuestion) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE interview_sessions SET questions = $2 WHERE id = $1
	`, sessionID, questions)
	if err != nil {
		return fmt.Errorf("saving interview questions: %w", err)
	}
	return nil
}

// Complete marks the session finished
func (r *InterviewRepo) Complete(ctx context.Context, sessionID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE interview_sessions
		SET status = $2, completed_at = now()
		WHERE id = $1
	`, sessionID, model.InterviewCompleted)
	if err != nil {
		return fmt.Errorf("completing interview session: %w", err)
	}
	return nil
}
