package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	domain "github.com/mohammadpnp/prospect-import/internal/domain/prospect"
)

const pgUniqueViolation = "23505"

type ProspectRepository struct {
	pool *pgxpool.Pool
}

func NewProspectRepository(pool *pgxpool.Pool) *ProspectRepository {
	return &ProspectRepository{pool: pool}
}

func (r *ProspectRepository) FindByOwnerAndEmail(ctx context.Context, ownerID int64, email string) (*domain.Prospect, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, email, first_name, last_name, COALESCE(file_id::text, ''), created_at, updated_at
FROM prospects
WHERE user_id = $1 AND email = $2
`, ownerID, email)

	var p domain.Prospect
	err := row.Scan(&p.ID, &p.OwnerID, &p.Email, &p.FirstName, &p.LastName, &p.FileID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find prospect by owner and email: %w", err)
	}
	return &p, nil
}

func (r *ProspectRepository) Insert(ctx context.Context, p domain.Prospect) (domain.Prospect, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO prospects (user_id, email, first_name, last_name, file_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, NOW(), NOW())
RETURNING id, created_at, updated_at
`, p.OwnerID, p.Email, p.FirstName, p.LastName, p.FileID)

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.Prospect{}, domain.ErrProspectExists
		}
		return domain.Prospect{}, fmt.Errorf("insert prospect: %w", err)
	}
	return p, nil
}

func (r *ProspectRepository) Update(ctx context.Context, p domain.Prospect) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE prospects
SET email = $1, first_name = $2, last_name = $3, file_id = NULLIF($4, '')::uuid, updated_at = NOW()
WHERE id = $5
`, p.Email, p.FirstName, p.LastName, p.FileID, p.ID)
	if err != nil {
		return fmt.Errorf("update prospect: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update prospect: no prospect with id %d", p.ID)
	}
	return nil
}

func (r *ProspectRepository) ListByOwner(ctx context.Context, ownerID int64, page, pageSize int) ([]domain.Prospect, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, email, first_name, last_name, COALESCE(file_id::text, ''), created_at, updated_at
FROM prospects
WHERE user_id = $1
ORDER BY id
OFFSET $2 LIMIT $3
`, ownerID, page*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("list prospects: %w", err)
	}
	defer rows.Close()

	prospects := make([]domain.Prospect, 0, pageSize)
	for rows.Next() {
		var p domain.Prospect
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Email, &p.FirstName, &p.LastName, &p.FileID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan prospect: %w", err)
		}
		prospects = append(prospects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list prospects: %w", err)
	}
	return prospects, nil
}

func (r *ProspectRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM prospects WHERE user_id = $1`, ownerID).Scan(&total); err != nil {
		return 0, fmt.Errorf("count prospects: %w", err)
	}
	return total, nil
}
