package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/url-shortener/internal/models"
	"github.com/pribylovaa/url-shortener/internal/storage"
)

// urlReturning — набор колонок ссылки вместе с логином владельца.
const urlReturning = `
	id, short_code, long_url, visits, created_at, expires_at, user_id,
	(SELECT login FROM users WHERE users.id = urls.user_id)
`

// URLCodeExists проверяет, занят ли короткий код.
func (s *Storage) URLCodeExists(ctx context.Context, code string) (bool, error) {
	const op = "storage.postgres.URLCodeExists"

	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM urls WHERE short_code = $1)`,
		code,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// SaveURL сохраняет новую ссылку. Коллизия кода отдаётся как storage.ErrAlreadyExists.
func (s *Storage) SaveURL(ctx context.Context, url *models.ShortURL) error {
	const op = "storage.postgres.SaveURL"

	query := `
		INSERT INTO urls(short_code, long_url, visits, expires_at, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := s.db.QueryRow(ctx, query,
		url.ShortCode,
		url.LongURL,
		url.Visits,
		url.ExpiresAt,
		url.UserID,
	).Scan(&url.ID, &url.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	url.CreatedAt = url.CreatedAt.UTC()
	return nil
}

// URLByCode находит ссылку по короткому коду.
func (s *Storage) URLByCode(ctx context.Context, code string) (*models.ShortURL, error) {
	const op = "storage.postgres.URLByCode"

	query := `SELECT ` + urlReturning + ` FROM urls WHERE short_code = $1`

	url, err := scanURL(s.db.QueryRow(ctx, query, code))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return url, nil
}

// IncrementVisits в одной транзакции блокирует строку ссылки, проверяет срок
// и увеличивает счётчик посещений. Параллельные вызовы по одному коду
// сериализуются блокировкой строки, поэтому каждое посещение учитывается.
func (s *Storage) IncrementVisits(ctx context.Context, code string, now time.Time) (*models.ShortURL, error) {
	const op = "storage.postgres.IncrementVisits"

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		id        int64
		expiresAt *time.Time
	)

	err = tx.QueryRow(ctx,
		`SELECT id, expires_at FROM urls WHERE short_code = $1 FOR UPDATE`,
		code,
	).Scan(&id, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if expiresAt != nil && !expiresAt.After(now) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrExpired)
	}

	query := `UPDATE urls SET visits = visits + 1 WHERE id = $1 RETURNING ` + urlReturning

	url, err := scanURL(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return url, nil
}

// UpdateURL меняет короткий код ссылки и, если expiresAt != nil, её срок.
// Ссылка другого владельца неотличима от отсутствующей (storage.ErrNotFound).
func (s *Storage) UpdateURL(ctx context.Context, id, userID int64, code string, expiresAt *time.Time) (*models.ShortURL, error) {
	const op = "storage.postgres.UpdateURL"

	query := `
		UPDATE urls
		SET short_code = $3,
		    expires_at = COALESCE($4, expires_at)
		WHERE id = $1 AND user_id = $2
		RETURNING ` + urlReturning

	url, err := scanURL(s.db.QueryRow(ctx, query, id, userID, code, expiresAt))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return url, nil
}

// DeleteURL удаляет ссылку владельца.
func (s *Storage) DeleteURL(ctx context.Context, id, userID int64) error {
	const op = "storage.postgres.DeleteURL"

	tag, err := s.db.Exec(ctx, `DELETE FROM urls WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// URLsByUser возвращает все ссылки пользователя в порядке создания.
func (s *Storage) URLsByUser(ctx context.Context, userID int64) ([]models.ShortURL, error) {
	const op = "storage.postgres.URLsByUser"

	query := `SELECT ` + urlReturning + ` FROM urls WHERE user_id = $1 ORDER BY created_at, id`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	urls := make([]models.ShortURL, 0)
	for rows.Next() {
		url, err := scanURL(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		urls = append(urls, *url)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return urls, nil
}

// CountURLs возвращает число активных и истёкших ссылок на момент now.
func (s *Storage) CountURLs(ctx context.Context, now time.Time) (int64, int64, error) {
	const op = "storage.postgres.CountURLs"

	query := `
		SELECT
			COUNT(*) FILTER (WHERE expires_at IS NULL OR expires_at > $1),
			COUNT(*) FILTER (WHERE expires_at IS NOT NULL AND expires_at <= $1)
		FROM urls
	`

	var active, expired int64
	if err := s.db.QueryRow(ctx, query, now).Scan(&active, &expired); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}

	return active, expired, nil
}

func scanURL(row pgx.Row) (*models.ShortURL, error) {
	var url models.ShortURL

	err := row.Scan(
		&url.ID,
		&url.ShortCode,
		&url.LongURL,
		&url.Visits,
		&url.CreatedAt,
		&url.ExpiresAt,
		&url.UserID,
		&url.OwnerLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, err
	}

	url.CreatedAt = url.CreatedAt.UTC()
	if url.ExpiresAt != nil {
		exp := url.ExpiresAt.UTC()
		url.ExpiresAt = &exp
	}

	return &url, nil
}
