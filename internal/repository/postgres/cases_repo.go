package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chj1210/investigator/internal/models"
	repo "github.com/chj1210/investigator/internal/repository"
)

type casesRepo struct{ pool *pgxpool.Pool }

func (r *casesRepo) Create(ctx context.Context, c models.Case) (models.Case, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO cases (id, title, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, title, description, status, created_at, updated_at`,
		c.ID, c.Title, c.Description,
	).Scan(&c.ID, &c.Title, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *casesRepo) GetByID(ctx context.Context, id string) (models.Case, error) {
	var c models.Case
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, status, created_at, updated_at
		   FROM cases WHERE id=$1`, id,
	).Scan(&c.ID, &c.Title, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Case{}, repo.ErrNotFound
	}
	return c, err
}

func (r *casesRepo) List(ctx context.Context, limit, offset int) ([]models.Case, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, status, created_at, updated_at
		   FROM cases
		  ORDER BY created_at DESC
		  LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Case
	for rows.Next() {
		var c models.Case
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *casesRepo) Update(ctx context.Context, c models.Case) (models.Case, error) {
	err := r.pool.QueryRow(ctx,
		`UPDATE cases SET title=$2, description=$3, status=$4, updated_at=now()
		  WHERE id=$1
		 RETURNING id, title, description, status, created_at, updated_at`,
		c.ID, c.Title, c.Description, c.Status,
	).Scan(&c.ID, &c.Title, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Case{}, repo.ErrNotFound
	}
	return c, err
}

func (r *casesRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cases WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
