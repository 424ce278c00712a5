package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"formcraft/internal/model"
	"formcraft/internal/service"
	"formcraft/internal/storage"
)

// UploadHandler handles file upload and download
type UploadHandler struct {
	uploadSvc *service.UploadService
	maxBytes  int64
	log       *slog.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadSvc *service.UploadService, maxBytes int64, log *slog.Logger) *UploadHandler {
	return &UploadHandler{uploadSvc: uploadSvc, maxBytes: maxBytes, log: log}
}

// Single handles POST /api/upload/single
//
//	@Summary	Upload one image
//	@Tags		uploads
//	@Accept		mpfd
//	@Produce	json
//	@Param		file	formData	file	true	"Image file"
//	@Success	201		{object}	model.UploadResult
//	@Failure	400		{object}	model.ErrorEnvelope
//	@Failure	415		{object}	model.ErrorEnvelope
//	@Router		/api/upload/single [post]
func (h *UploadHandler) Single(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	f, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		writeError(w, http.StatusBadRequest, "file required")
		return
	}
	defer f.Close()

	url, err := h.uploadSvc.Save(r.Context(), header.Filename, f)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.UploadResult{Success: true, URL: url})
}

// Serve handles GET /uploads/{name}
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	contentType, ok := service.ContentTypeFor(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	rc, err := h.uploadSvc.Open(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.log.ErrorContext(r.Context(), "failed to open upload", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	io.Copy(w, rc)
}
