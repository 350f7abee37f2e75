package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chj1210/investigator/internal/models"
	repo "github.com/chj1210/investigator/internal/repository"
)

// In-memory stands-ins for the postgres repositories.

type fakeCases struct {
	mu    sync.Mutex
	items map[string]models.Case
	order []string
	trx   *fakeTransactions
}

func newFakeCases(trx *fakeTransactions) *fakeCases {
	return &fakeCases{items: map[string]models.Case{}, trx: trx}
}

func (f *fakeCases) Create(_ context.Context, c models.Case) (models.Case, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = uuid.NewString()
	c.Status = models.StatusOpen
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	f.items[c.ID] = c
	f.order = append(f.order, c.ID)
	return c, nil
}

func (f *fakeCases) GetByID(_ context.Context, id string) (models.Case, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.items[id]
	if !ok {
		return models.Case{}, repo.ErrNotFound
	}
	return c, nil
}

func (f *fakeCases) List(_ context.Context, limit, offset int) ([]models.Case, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Case
	for i := offset; i < len(f.order) && len(out) < limit; i++ {
		out = append(out, f.items[f.order[i]])
	}
	return out, nil
}

func (f *fakeCases) Update(_ context.Context, c models.Case) (models.Case, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	old, ok := f.items[c.ID]
	if !ok {
		return models.Case{}, repo.ErrNotFound
	}
	c.CreatedAt = old.CreatedAt
	c.UpdatedAt = time.Now()
	f.items[c.ID] = c
	return c, nil
}

func (f *fakeCases) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	if _, ok := f.items[id]; !ok {
		f.mu.Unlock()
		return repo.ErrNotFound
	}
	delete(f.items, id)
	f.mu.Unlock()

	// Honor the repo contract: deleting a case removes every transaction
	// referencing it.
	f.trx.deleteByCase(id)
	return nil
}

type fakeTransactions struct {
	mu         sync.Mutex
	items      map[string]models.Transaction
	order      []string
	listCalled bool
}

func newFakeTransactions() *fakeTransactions {
	return &fakeTransactions{items: map[string]models.Transaction{}}
}

func (f *fakeTransactions) Create(_ context.Context, t models.Transaction) (models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t.ID = uuid.NewString()
	f.items[t.ID] = t
	f.order = append(f.order, t.ID)
	return t, nil
}

func (f *fakeTransactions) ListByCase(_ context.Context, caseID string) ([]models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalled = true
	var out []models.Transaction
	for _, id := range f.order {
		if t, ok := f.items[id]; ok && t.CaseID == caseID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactions) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeTransactions) deleteByCase(caseID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, t := range f.items {
		if t.CaseID == caseID {
			delete(f.items, id)
		}
	}
}

func (f *fakeTransactions) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

type fakeAuditLogs struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func (f *fakeAuditLogs) Create(_ context.Context, l models.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, l)
	return nil
}

func (f *fakeAuditLogs) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}
