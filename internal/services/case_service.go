package services

import (
	"context"
	"errors"

	"github.com/chj1210/investigator/internal/analysis"
	"github.com/chj1210/investigator/internal/metrics"
	"github.com/chj1210/investigator/internal/models"
	repo "github.com/chj1210/investigator/internal/repository"
	"github.com/chj1210/investigator/internal/worker"
)

const defaultListLimit = 100

type CaseService struct {
	cases repo.Cases
	trx   repo.Transactions
	log   repo.AuditLogs
	wp    *worker.Pool
}

func NewCaseService(c repo.Cases, t repo.Transactions, l repo.AuditLogs, wp *worker.Pool) *CaseService {
	return &CaseService{cases: c, trx: t, log: l, wp: wp}
}

func (s *CaseService) audit(entityID, action string) {
	if s.wp == nil {
		return
	}
	id := entityID
	s.wp.Submit(func() {
		_ = s.log.Create(context.Background(), models.AuditLog{
			EntityType: "case",
			EntityID:   &id,
			Action:     action,
		})
	})
}

func (s *CaseService) Create(ctx context.Context, title, description string) (models.Case, error) {
	c := models.Case{Title: title, Description: description}
	if err := c.Validate(); err != nil {
		return models.Case{}, err
	}
	created, err := s.cases.Create(ctx, c)
	if err != nil {
		return models.Case{}, err
	}
	created.Transactions = []models.Transaction{}

	s.audit(created.ID, "created")
	metrics.CasesCreated.Inc()
	return created, nil
}

// List returns an offset page of cases, each with its transactions
// embedded. limit <= 0 falls back to the default page size.
func (s *CaseService) List(ctx context.Context, skip, limit int) ([]models.Case, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if skip < 0 {
		skip = 0
	}
	cases, err := s.cases.List(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	out := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		if err := s.attachTransactions(ctx, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *CaseService) Get(ctx context.Context, id string) (models.Case, error) {
	c, err := s.cases.GetByID(ctx, id)
	if err != nil {
		return models.Case{}, mapCaseErr(err)
	}
	if err := s.attachTransactions(ctx, &c); err != nil {
		return models.Case{}, err
	}
	return c, nil
}

// Update applies only the fields present in upd and refreshes updated_at.
func (s *CaseService) Update(ctx context.Context, id string, upd models.CaseUpdate) (models.Case, error) {
	c, err := s.cases.GetByID(ctx, id)
	if err != nil {
		return models.Case{}, mapCaseErr(err)
	}
	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if err := c.Validate(); err != nil {
		return models.Case{}, err
	}

	updated, err := s.cases.Update(ctx, c)
	if err != nil {
		return models.Case{}, mapCaseErr(err)
	}
	if err := s.attachTransactions(ctx, &updated); err != nil {
		return models.Case{}, err
	}

	s.audit(id, "updated")
	return updated, nil
}

// Delete removes the case and cascades to its transactions.
func (s *CaseService) Delete(ctx context.Context, id string) error {
	if err := s.cases.Delete(ctx, id); err != nil {
		return mapCaseErr(err)
	}
	s.audit(id, "deleted")
	return nil
}

// Analyze loads the case's transactions and runs the high-value screen.
// The detector is never invoked for an absent case.
func (s *CaseService) Analyze(ctx context.Context, id string) ([]models.AnomalousTransaction, error) {
	if _, err := s.cases.GetByID(ctx, id); err != nil {
		return nil, mapCaseErr(err)
	}
	txs, err := s.trx.ListByCase(ctx, id)
	if err != nil {
		return nil, err
	}

	flagged := analysis.Detect(txs)

	s.audit(id, "analyzed")
	metrics.Analyses.Inc()
	metrics.AnomaliesFlagged.Add(float64(len(flagged)))
	return flagged, nil
}

func (s *CaseService) attachTransactions(ctx context.Context, c *models.Case) error {
	txs, err := s.trx.ListByCase(ctx, c.ID)
	if err != nil {
		return err
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	c.Transactions = txs
	return nil
}

func mapCaseErr(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrCaseNotFound
	}
	return err
}
