// Package repository implements the storage.Store contract on postgres
// using the pgx stdlib driver.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/ddegtyarev/linkpulse/internal/storage"
)

const schema = `
	CREATE TABLE IF NOT EXISTS links (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		code TEXT UNIQUE NOT NULL,
		original_url TEXT NOT NULL,
		user_id TEXT,
		title TEXT,
		description TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		expires_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS clicks (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		link_id UUID NOT NULL REFERENCES links(id) ON DELETE CASCADE,
		clicked_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		ip_address TEXT NOT NULL DEFAULT '',
		user_agent TEXT NOT NULL DEFAULT '',
		referer TEXT NOT NULL DEFAULT '',
		browser TEXT NOT NULL DEFAULT '',
		device_type TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS clicks_link_id_idx ON clicks (link_id, clicked_at DESC);
`

// InitDB opens the database and makes sure the tables exist.
func InitDB(dsn string, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	if _, err := db.Exec(schema); err != nil {
		logger.Fatal("cannot create tables", zap.Error(err))
	}

	return db
}

type LinkRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateLinkRepository(db *sql.DB, logger *zap.Logger) *LinkRepository {
	return &LinkRepository{
		db:     db,
		logger: logger,
	}
}

const linkColumns = "id, code, original_url, COALESCE(user_id, ''), COALESCE(title, ''), COALESCE(description, ''), is_active, expires_at, created_at, updated_at"

func scanLink(row interface{ Scan(...any) error }) (*storage.LinkRecord, error) {
	var link storage.LinkRecord
	err := row.Scan(
		&link.ID,
		&link.Code,
		&link.OriginalURL,
		&link.UserID,
		&link.Title,
		&link.Description,
		&link.IsActive,
		&link.ExpiresAt,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *LinkRepository) CreateLink(ctx context.Context, link storage.LinkRecord) (*storage.LinkRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO links (code, original_url, user_id, title, description, is_active, expires_at)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7)
		 RETURNING `+linkColumns+`;`,
		link.Code, link.OriginalURL, link.UserID, link.Title, link.Description, link.IsActive, link.ExpiresAt,
	)

	created, err := scanLink(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, storage.ErrDuplicateCode
		}
		r.logger.Error("insert link failed", zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (r *LinkRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM links WHERE code = $1);", code,
	).Scan(&exists)

	return exists, err
}

func (r *LinkRepository) FindActiveByCode(ctx context.Context, code string) (*storage.LinkRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+linkColumns+" FROM links WHERE code = $1 AND is_active;", code,
	)

	link, err := scanLink(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return link, nil
}

func (r *LinkRepository) FindByIDAndOwner(ctx context.Context, id, userID string) (*storage.LinkRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+linkColumns+" FROM links WHERE id = $1 AND user_id = $2;", id, userID,
	)

	link, err := scanLink(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return link, nil
}

func (r *LinkRepository) FindByOwner(ctx context.Context, userID string) ([]storage.LinkWithClicks, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT l.id, l.code, l.original_url, COALESCE(l.user_id, ''), COALESCE(l.title, ''),
		        COALESCE(l.description, ''), l.is_active, l.expires_at, l.created_at, l.updated_at,
		        COUNT(c.id)
		 FROM links l
		 LEFT JOIN clicks c ON c.link_id = l.id
		 WHERE l.user_id = $1
		 GROUP BY l.id
		 ORDER BY l.created_at DESC;`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]storage.LinkWithClicks, 0)
	for rows.Next() {
		var link storage.LinkWithClicks
		err = rows.Scan(
			&link.ID,
			&link.Code,
			&link.OriginalURL,
			&link.UserID,
			&link.Title,
			&link.Description,
			&link.IsActive,
			&link.ExpiresAt,
			&link.CreatedAt,
			&link.UpdatedAt,
			&link.ClickCount,
		)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return links, nil
}

func (r *LinkRepository) UpdateLink(ctx context.Context, id, userID string, upd storage.LinkUpdate) (*storage.LinkRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE links
		 SET title = NULLIF($3, ''), description = NULLIF($4, ''), is_active = $5, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+linkColumns+`;`,
		id, userID, upd.Title, upd.Description, upd.IsActive,
	)

	link, err := scanLink(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return link, nil
}

func (r *LinkRepository) DeleteLink(ctx context.Context, id, userID string) (string, error) {
	var code string
	err := r.db.QueryRowContext(ctx,
		"DELETE FROM links WHERE id = $1 AND user_id = $2 RETURNING code;", id, userID,
	).Scan(&code)

	// Nothing deleted is not an error: the row either never existed or
	// belongs to someone else, and neither is disclosed.
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return code, nil
}

func (r *LinkRepository) WriteClicks(ctx context.Context, clicks []storage.ClickRecord) error {
	if len(clicks) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, c := range clicks {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO clicks (link_id, clicked_at, ip_address, user_agent, referer, browser, device_type, country, city)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			c.LinkID, c.ClickedAt, c.IPAddress, c.UserAgent, c.Referer, c.Browser, c.DeviceType, c.Country, c.City,
		)
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.logger.Error("rollback failed", zap.Error(rbErr))
			}
			return err
		}
	}

	return tx.Commit()
}

func (r *LinkRepository) ClicksByLink(ctx context.Context, linkID string) ([]storage.ClickRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, link_id, clicked_at, ip_address, user_agent, referer, browser, device_type, country, city
		 FROM clicks
		 WHERE link_id = $1
		 ORDER BY clicked_at DESC;`, linkID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clicks := make([]storage.ClickRecord, 0)
	for rows.Next() {
		var c storage.ClickRecord
		err = rows.Scan(
			&c.ID,
			&c.LinkID,
			&c.ClickedAt,
			&c.IPAddress,
			&c.UserAgent,
			&c.Referer,
			&c.Browser,
			&c.DeviceType,
			&c.Country,
			&c.City,
		)
		if err != nil {
			return nil, err
		}
		clicks = append(clicks, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clicks, nil
}

func (r *LinkRepository) Stats(ctx context.Context) (storage.Stats, error) {
	var s storage.Stats
	err := r.db.QueryRowContext(ctx,
		"SELECT (SELECT COUNT(*) FROM links), (SELECT COUNT(*) FROM clicks);",
	).Scan(&s.Links, &s.Clicks)

	return s, err
}

func (r *LinkRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
