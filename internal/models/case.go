package models

import (
	"strings"
	"time"

	"github.com/chj1210/investigator/internal/validate"
)

const StatusOpen = "open"

// Case groups the transactions under one investigation.
type Case struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Transactions []Transaction `json:"transactions"`
}

func (c *Case) Validate() error {
	c.Title = strings.TrimSpace(c.Title)
	var errs validate.Errs
	if e := validate.MinLen("title", c.Title, 3); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.MaxLen("title", c.Title, 100); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.MaxLen("description", c.Description, 500); e != nil {
		errs = append(errs, *e)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CaseUpdate carries a partial update; nil means "leave untouched".
type CaseUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
