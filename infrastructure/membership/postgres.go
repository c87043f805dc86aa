package membership

import (
	"chat-relay/domain"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	selectConversationsForUser = `
		SELECT "conversationId"
		FROM "ConversationMember"
		WHERE "userId" = $1
		ORDER BY "conversationId"
	`
	selectMembers = `
		SELECT "userId"
		FROM "ConversationMember"
		WHERE "conversationId" = $1
		ORDER BY "userId"
	`
	selectIsMember = `
		SELECT EXISTS (
			SELECT 1 FROM "ConversationMember"
			WHERE "conversationId" = $1 AND "userId" = $2
		)
	`
)

// PostgresMembership reads conversation participants from the relational store
// owned by the messaging API. It never writes.
type PostgresMembership struct {
	db  *sql.DB
	log *slog.Logger
}

func NewPostgresMembership(db *sql.DB, log *slog.Logger) *PostgresMembership {
	return &PostgresMembership{db: db, log: log}
}

// OpenPostgres opens a pgx backed pool and retries the first ping up to five times.
func OpenPostgres(ctx context.Context, dsn string, log *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	var pingErr error
	for attempt := 1; attempt <= 5; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		pingErr = db.PingContext(pingCtx)
		cancel()
		if pingErr == nil {
			log.Info("Postgres connected")
			return db, nil
		}
		log.Warn("Postgres not reachable yet", "attempt", attempt, "error", pingErr)
		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	_ = db.Close()
	return nil, fmt.Errorf("ping postgres: %w", pingErr)
}

func (m *PostgresMembership) ConversationIDsForUser(ctx context.Context, userID domain.UserID) ([]domain.ConversationID, error) {
	rows, err := m.db.QueryContext(ctx, selectConversationsForUser, string(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []domain.ConversationID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, domain.ConversationID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (m *PostgresMembership) MemberIDs(ctx context.Context, conversationID domain.ConversationID) ([]domain.UserID, error) {
	rows, err := m.db.QueryContext(ctx, selectMembers, string(conversationID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []domain.UserID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, domain.UserID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (m *PostgresMembership) IsMember(ctx context.Context, conversationID domain.ConversationID, userID domain.UserID) (bool, error) {
	var ok bool
	err := m.db.QueryRowContext(ctx, selectIsMember, string(conversationID), string(userID)).Scan(&ok)
	return ok, err
}

func (m *PostgresMembership) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}
