package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chj1210/investigator/internal/models"
	repo "github.com/chj1210/investigator/internal/repository"
)

type transactionsRepo struct{ pool *pgxpool.Pool }

func (r *transactionsRepo) Create(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO transactions (id, case_id, amount, description, transaction_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, case_id, amount, description, transaction_date`,
		t.ID, t.CaseID, t.Amount, t.Description, t.TransactionDate,
	).Scan(&t.ID, &t.CaseID, &t.Amount, &t.Description, &t.TransactionDate)
	return t, err
}

func (r *transactionsRepo) ListByCase(ctx context.Context, caseID string) ([]models.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, case_id, amount, description, transaction_date
		   FROM transactions
		  WHERE case_id=$1
		  ORDER BY created_at`,
		caseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.CaseID, &t.Amount, &t.Description, &t.TransactionDate); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *transactionsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
