package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	repo "github.com/chj1210/investigator/internal/repository"
)

type Repositories struct {
	Cases        repo.Cases
	Transactions repo.Transactions
	AuditLogs    repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Cases:        &casesRepo{pool},
		Transactions: &transactionsRepo{pool},
		AuditLogs:    &auditLogsRepo{pool},
	}
}
