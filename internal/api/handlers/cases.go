package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/chj1210/investigator/internal/api/httpx"
	"github.com/chj1210/investigator/internal/models"
	"github.com/chj1210/investigator/internal/services"
)

type CaseHandler struct {
	svc *services.CaseService
}

func NewCaseHandler(svc *services.CaseService) *CaseHandler {
	return &CaseHandler{svc: svc}
}

func (h *CaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeBadRequest, "invalid body", nil)
		return
	}
	c, err := h.svc.Create(r.Context(), req.Title, req.Description)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

func (h *CaseHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := 0, 0
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	cases, err := h.svc.List(r.Context(), skip, limit)
	if err != nil {
		writeErr(w, err)
		return
	}
	if cases == nil {
		cases = []models.Case{}
	}
	httpx.WriteJSON(w, http.StatusOK, cases)
}

func (h *CaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "id")
	if !ok {
		writeErr(w, services.ErrCaseNotFound)
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *CaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "id")
	if !ok {
		writeErr(w, services.ErrCaseNotFound)
		return
	}
	var upd models.CaseUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeBadRequest, "invalid body", nil)
		return
	}
	c, err := h.svc.Update(r.Context(), id, upd)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *CaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "id")
	if !ok {
		writeErr(w, services.ErrCaseNotFound)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *CaseHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "id")
	if !ok {
		writeErr(w, services.ErrCaseNotFound)
		return
	}
	flagged, err := h.svc.Analyze(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	if flagged == nil {
		flagged = []models.AnomalousTransaction{}
	}
	httpx.WriteJSON(w, http.StatusOK, flagged)
}
