package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yourusername/resumecoach-api/internal/model"
)

type ChatRepo struct {
	pool *pgxpool.Pool
}

func NewChatRepo(pool *pgxpool.Pool) *ChatRepo {
	return &ChatRepo{pool: pool}
}

// FindLatestByUser returns the user's most recently active chat session
func (r *ChatRepo) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*model.ChatSession, error) {
	var s model.ChatSession
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, resume_id, title, messages, started_at, last_activity
		FROM chat_sessions
		WHERE user_id = $1
		ORDER BY last_activity DESC
		LIMIT 1
	`, userID).Scan(
		&s.ID, &s.UserID, &s.ResumeID, &s.Title, &s.Messages,
		&s.StartedAt, &s.LastActivity,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding chat session: %w", err)
	}
	return &s, nil
}

// Create starts a new session with the given title
func (r *ChatRepo) Create(ctx context.Context, userID uuid.UUID, resumeID *uuid.UUID, title string) (*model.ChatSession, error) {
	var s model.ChatSession
	err := r.pool.QueryRow(ctx, `
		INSERT INTO chat_sessions (user_id, resume_id, title, messages)
		VALUES ($1, $2, $3, '[]')
		RETURNING id, user_id, resume_id, title, messages, started_at, last_activity
	`, userID, resumeID, title).Scan(
		&s.ID, &s.UserID, &s.ResumeID, &s.Title, &s.Messages,
		&s.StartedAt, &s.LastActivity,
	)
	if err != nil {
		return nil, fmt.Errorf("creating chat session: %w", err)
	}
	return &s, nil
}

// SaveMessages replaces the session transcript and bumps last_activity
func (r *ChatRepo) SaveMessages(ctx context.Context, sessionID uuid.UUID, messages []model.ChatTurn) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE chat_sessions
		SET messages = $2, last_activity = now()
		WHERE id = $1
	`, sessionID, messages)
	if err != nil {
		return fmt.Errorf("saving chat messages: %w", err)
	}
	return nil
}

// LinkResume points the session at a newly uploaded resume
func (r *ChatRepo) LinkResume(ctx context.Context, sessionID, resumeID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE chat_sessions SET resume_id = $2 WHERE id = $1
	`, sessionID, resumeID)
	if err != nil {
		return fmt.Errorf("linking resume to chat session: %w", err)
	}
	return nil
}

// DeleteByUser clears all of a user's chat sessions
func (r *ChatRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM chat_sessions WHERE user_id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("clearing chat sessions: %w", err)
	}
	return nil
}
