package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"formcraft/internal/model"
	"formcraft/internal/service"
)

// ResponseHandler handles answer submission endpoints
type ResponseHandler struct {
	responseSvc *service.ResponseService
	log         *slog.Logger
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService, log *slog.Logger) *ResponseHandler {
	return &ResponseHandler{responseSvc: responseSvc, log: log}
}

// Submit handles POST /api/forms/{id}/responses
//
//	@Summary	Submit answers for a form
//	@Tags		responses
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string						true	"Form id"
//	@Param		response	body		model.SubmitResponseRequest	true	"Answers"
//	@Success	201			{object}	model.ResponseEnvelope
//	@Failure	400			{object}	model.ErrorEnvelope
//	@Failure	404			{object}	model.ErrorEnvelope
//	@Router		/api/forms/{id}/responses [post]
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["id"]

	var req model.SubmitResponseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.responseSvc.Submit(r.Context(), formID, &req)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.ResponseEnvelope{Success: true, Response: resp})
}

// List handles GET /api/forms/{id}/responses
//
//	@Summary	List responses of a form
//	@Tags		responses
//	@Produce	json
//	@Param		id	path		string	true	"Form id"
//	@Success	200	{object}	model.ResponseListEnvelope
//	@Failure	404	{object}	model.ErrorEnvelope
//	@Router		/api/forms/{id}/responses [get]
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["id"]

	responses, err := h.responseSvc.List(r.Context(), formID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ResponseListEnvelope{Success: true, Responses: responses})
}
