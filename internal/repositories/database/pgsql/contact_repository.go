package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
	"github.com/tableauchef/tableauchef_backend/internal/models"
)

type PgxContactRepository struct {
	db *pgxpool.Pool
}

func newPgxContactRepository(db *pgxpool.Pool) portsrepo.ContactMessageRepository {
	return &PgxContactRepository{db: db}
}

var _ portsrepo.ContactMessageRepository = (*PgxContactRepository)(nil)

func (r *PgxContactRepository) SaveMessage(ctx context.Context, msg domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (message_id, name, email, subject, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		msg.MessageID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Body,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

func (r *PgxContactRepository) ListMessages(ctx context.Context, limit int, offset int) ([]domain.ContactMessage, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT message_id, name, email, subject, body, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ContactMessage, 0)
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.MessageID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message row: %w", err)
		}
		out = append(out, domain.ContactMessage{
			MessageID: m.MessageID,
			Name:      m.Name,
			Email:     m.Email,
			Subject:   m.Subject,
			Body:      m.Body,
			CreatedAt: m.CreatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact message rows: %w", err)
	}
	return out, nil
}
