package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"whimsy/internal/database"
)

// ErrSessionNotFound is returned when no session matches (id, owner). A
// session owned by someone else is indistinguishable from one that does not
// exist, so nothing leaks about other users' data.
var ErrSessionNotFound = errors.New("session not found")

// Store persists idea sessions. Every mutation is filtered by owner in the
// same statement that performs it.
type Store interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Session, error)
	Create(ctx context.Context, session *Session) (*Session, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, title, description string, ideas []string) (*Session, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// Repository implements Store over Postgres
type Repository struct {
	db database.Service
}

// NewRepository creates a new sessions repository
func NewRepository(db database.Service) *Repository {
	return &Repository{db: db}
}

// ListByOwner returns all sessions owned by ownerID, most recently updated
// first. An empty result is not an error.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Session, error) {
	query := `
		SELECT id, user_id, title, description, ideas, created_at, updated_at
		FROM idea_sessions
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []Session{}
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Title, &s.Description, &s.Ideas, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		if s.Ideas == nil {
			s.Ideas = []string{}
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}

// Create inserts a new session owned by session.OwnerID and returns the
// stored row with its server-assigned id and timestamps.
func (r *Repository) Create(ctx context.Context, session *Session) (*Session, error) {
	query := `
		INSERT INTO idea_sessions (id, user_id, title, description, ideas, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, user_id, title, description, ideas, created_at, updated_at
	`

	created := &Session{}
	err := r.db.QueryRow(ctx, query,
		uuid.New(), session.OwnerID, session.Title, session.Description, session.Ideas, time.Now(),
	).Scan(
		&created.ID,
		&created.OwnerID,
		&created.Title,
		&created.Description,
		&created.Ideas,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if created.Ideas == nil {
		created.Ideas = []string{}
	}

	return created, nil
}

// Update replaces title, description and ideas of the session matching
// (id, ownerID) in a single statement and bumps updated_at.
func (r *Repository) Update(ctx context.Context, id, ownerID uuid.UUID, title, description string, ideas []string) (*Session, error) {
	query := `
		UPDATE idea_sessions
		SET title = $1, description = $2, ideas = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
		RETURNING id, user_id, title, description, ideas, created_at, updated_at
	`

	updated := &Session{}
	err := r.db.QueryRow(ctx, query, title, description, ideas, id, ownerID).Scan(
		&updated.ID,
		&updated.OwnerID,
		&updated.Title,
		&updated.Description,
		&updated.Ideas,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	if updated.Ideas == nil {
		updated.Ideas = []string{}
	}

	return updated, nil
}

// Delete removes the session matching (id, ownerID)
func (r *Repository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `DELETE FROM idea_sessions WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}
