package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"formcraft/internal/model"
	"formcraft/internal/service"
)

// FormHandler handles form endpoints
type FormHandler struct {
	formSvc *service.FormService
	log     *slog.Logger
}

// NewFormHandler creates a new form handler
func NewFormHandler(formSvc *service.FormService, log *slog.Logger) *FormHandler {
	return &FormHandler{formSvc: formSvc, log: log}
}

// Create handles POST /api/forms
//
//	@Summary	Create a form
//	@Tags		forms
//	@Accept		json
//	@Produce	json
//	@Param		form	body		model.CreateFormRequest	true	"Form document"
//	@Success	201		{object}	model.FormEnvelope
//	@Failure	400		{object}	model.ErrorEnvelope
//	@Router		/api/forms [post]
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateFormRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form, err := h.formSvc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.FormEnvelope{Success: true, Form: form})
}

// Get handles GET /api/forms/{id}
//
//	@Summary	Fetch a form
//	@Tags		forms
//	@Produce	json
//	@Param		id	path		string	true	"Form id"
//	@Success	200	{object}	model.FormEnvelope
//	@Failure	404	{object}	model.ErrorEnvelope
//	@Router		/api/forms/{id} [get]
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	form, err := h.formSvc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, model.FormEnvelope{Success: true, Form: form})
}

// List handles GET /api/forms
//
//	@Summary	List recent forms
//	@Tags		forms
//	@Produce	json
//	@Success	200	{object}	model.FormListEnvelope
//	@Router		/api/forms [get]
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	forms, err := h.formSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, model.FormListEnvelope{Success: true, Forms: forms})
}
