package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/chj1210/investigator/internal/api/httpx"
	"github.com/chj1210/investigator/internal/models"
	"github.com/chj1210/investigator/internal/services"
)

type TransactionHandler struct {
	svc *services.TransactionService
}

func NewTransactionHandler(svc *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	caseID, ok := uuidParam(r, "id")
	if !ok {
		writeErr(w, services.ErrCaseNotFound)
		return
	}
	var req struct {
		Amount          decimal.Decimal `json:"amount"`
		Description     string          `json:"description"`
		TransactionDate models.Date     `json:"transaction_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeBadRequest, "invalid body", nil)
		return
	}
	t, err := h.svc.Create(r.Context(), caseID, req.Amount, req.Description, req.TransactionDate)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, t)
}

func (h *TransactionHandler) ListByCase(w http.ResponseWriter, r *http.Request) {
	caseID, ok := uuidParam(r, "id")
	if !ok {
		writeErr(w, services.ErrCaseNotFound)
		return
	}
	txs, err := h.svc.ListByCase(r.Context(), caseID)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, txs)
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "id")
	if !ok {
		writeErr(w, services.ErrTransactionNotFound)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
