package sqlite

import (
	"context"
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"

	"ether-community-telegram-bot/internal/domain"
)

type RankRepo struct {
	db *sql.DB
}

func NewRankRepo(dsn string) (*RankRepo, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// одно соединение: записи сериализуются, SQLITE_BUSY не возникает
	db.SetMaxOpenConns(1)
	if err := migrateUsers(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &RankRepo{db: db}, nil
}

func migrateUsers(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    user_id INTEGER PRIMARY KEY,
    display_name TEXT NOT NULL,
    message_count INTEGER NOT NULL,
    rank_label TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_users_message_count ON users(message_count);
`)
	return err
}

// Increment выполняет upsert и пересчёт ранга в одной транзакции: читатели
// никогда не видят счётчик и ранг из разных состояний
func (r *RankRepo) Increment(ctx context.Context, userID int64, displayName string) (domain.UserRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.UserRecord{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var count int64
	err = tx.QueryRowContext(ctx, `
INSERT INTO users(user_id, display_name, message_count, rank_label) VALUES(?, ?, 1, ?)
ON CONFLICT(user_id) DO UPDATE SET
    message_count = users.message_count + 1,
    display_name = excluded.display_name
RETURNING message_count`, userID, displayName, domain.RankOf(1)).Scan(&count)
	if err != nil {
		return domain.UserRecord{}, err
	}

	label := domain.RankOf(count)
	if _, err := tx.ExecContext(ctx, `UPDATE users SET rank_label = ? WHERE user_id = ?`, label, userID); err != nil {
		return domain.UserRecord{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.UserRecord{}, err
	}
	return domain.UserRecord{UserID: userID, DisplayName: displayName, MessageCount: count, RankLabel: label}, nil
}

func (r *RankRepo) Lookup(ctx context.Context, userID int64) (domain.UserRecord, error) {
	rec := domain.UserRecord{UserID: userID}
	err := r.db.QueryRowContext(ctx,
		`SELECT display_name, message_count, rank_label FROM users WHERE user_id = ?`, userID).
		Scan(&rec.DisplayName, &rec.MessageCount, &rec.RankLabel)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserRecord{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.UserRecord{}, err
	}
	return rec, nil
}

func (r *RankRepo) Top(ctx context.Context, n int) ([]domain.UserRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT user_id, display_name, message_count, rank_label FROM users
ORDER BY message_count DESC, user_id ASC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]domain.UserRecord, 0, n)
	for rows.Next() {
		var rec domain.UserRecord
		if err := rows.Scan(&rec.UserID, &rec.DisplayName, &rec.MessageCount, &rec.RankLabel); err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

func (r *RankRepo) Close() error { return r.db.Close() }
