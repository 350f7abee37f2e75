package models

import (
	"github.com/chj1210/investigator/internal/validate"
	"github.com/shopspring/decimal"
)

// Transaction is a single financial movement owned by exactly one case.
// Amount is stored with 2 fractional digits (NUMERIC(12,2)).
type Transaction struct {
	ID              string          `json:"id"`
	CaseID          string          `json:"case_id"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	TransactionDate Date            `json:"transaction_date"`
}

func (t *Transaction) Validate() error {
	var errs validate.Errs
	if e := validate.Positive("amount", t.Amount); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.MaxLen("description", t.Description, 500); e != nil {
		errs = append(errs, *e)
	}
	if t.TransactionDate.IsZero() {
		errs = append(errs, validate.ErrField{Field: "transaction_date", Msg: "required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AnomalousTransaction is a transaction flagged by the anomaly screen.
type AnomalousTransaction struct {
	Transaction
	Reason string `json:"reason"`
}
