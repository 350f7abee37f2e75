package repository

import (
	"context"
	"errors"

	"github.com/chj1210/investigator/internal/models"
)

// ErrNotFound is returned when a referenced row does not exist. Services
// wrap it into entity-specific sentinels.
var ErrNotFound = errors.New("not found")

type Cases interface {
	Create(ctx context.Context, c models.Case) (models.Case, error)
	GetByID(ctx context.Context, id string) (models.Case, error)
	List(ctx context.Context, limit, offset int) ([]models.Case, error)
	Update(ctx context.Context, c models.Case) (models.Case, error)
	// Delete removes the case and, through the schema's cascade, every
	// transaction referencing it.
	Delete(ctx context.Context, id string) error
}

type Transactions interface {
	Create(ctx context.Context, t models.Transaction) (models.Transaction, error)
	ListByCase(ctx context.Context, caseID string) ([]models.Transaction, error)
	Delete(ctx context.Context, id string) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
