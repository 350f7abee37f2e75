package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/chj1210/investigator/internal/metrics"
	"github.com/chj1210/investigator/internal/models"
	repo "github.com/chj1210/investigator/internal/repository"
	"github.com/chj1210/investigator/internal/worker"
)

type TransactionService struct {
	trx   repo.Transactions
	cases repo.Cases
	log   repo.AuditLogs
	wp    *worker.Pool
}

func NewTransactionService(t repo.Transactions, c repo.Cases, l repo.AuditLogs, wp *worker.Pool) *TransactionService {
	return &TransactionService{trx: t, cases: c, log: l, wp: wp}
}

func (s *TransactionService) audit(entityID, action string) {
	if s.wp == nil {
		return
	}
	id := entityID
	s.wp.Submit(func() {
		_ = s.log.Create(context.Background(), models.AuditLog{
			EntityType: "transaction",
			EntityID:   &id,
			Action:     action,
		})
	})
}

// Create binds a new transaction to an existing case. The case must exist
// before any validation result is reported; nothing is persisted on
// failure.
func (s *TransactionService) Create(ctx context.Context, caseID string, amount decimal.Decimal, description string, date models.Date) (models.Transaction, error) {
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return models.Transaction{}, mapCaseErr(err)
	}

	t := models.Transaction{
		CaseID:          caseID,
		Amount:          amount,
		Description:     description,
		TransactionDate: date,
	}
	if err := t.Validate(); err != nil {
		return models.Transaction{}, err
	}

	created, err := s.trx.Create(ctx, t)
	if err != nil {
		return models.Transaction{}, err
	}

	s.audit(created.ID, "created")
	metrics.TransactionsCreated.Inc()
	return created, nil
}

func (s *TransactionService) ListByCase(ctx context.Context, caseID string) ([]models.Transaction, error) {
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, mapCaseErr(err)
	}
	txs, err := s.trx.ListByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

func (s *TransactionService) Delete(ctx context.Context, id string) error {
	if err := s.trx.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrTransactionNotFound
		}
		return err
	}
	s.audit(id, "deleted")
	return nil
}
