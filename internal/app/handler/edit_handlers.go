package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ddegtyarev/linkpulse/internal/app/service"
	"github.com/ddegtyarev/linkpulse/internal/middleware"
	"github.com/ddegtyarev/linkpulse/internal/models"
	"github.com/ddegtyarev/linkpulse/internal/storage"
)

type EditHandler struct {
	service service.LinkServiceIface
	logger  *zap.Logger
}

func NewEdit(s service.LinkServiceIface, l *zap.Logger) *EditHandler {
	return &EditHandler{
		service: s,
		logger:  l,
	}
}

// Update mutates title, description and active state of an owned link.
func (h *EditHandler) Update(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := middleware.UserID(req.Context())
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(req, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.Error(res, "URL not found", http.StatusNotFound)
		return
	}

	var request models.UpdateLinkRequest
	if err := decodeJSONBody(res, req, &request); err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			http.Error(res, mr.msg, mr.status)
			return
		}
		h.logger.Error(err.Error())
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	link, err := h.service.Update(ctx, id, userID, request)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(res, "URL not found", http.StatusNotFound)
			return
		}
		h.logger.Error("cannot update link", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(res, http.StatusOK, link)
}

// Delete removes an owned link along with its click history.
func (h *EditHandler) Delete(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := middleware.UserID(req.Context())
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(req, "id")
	if _, err := uuid.Parse(id); err != nil {
		http.Error(res, "URL not found", http.StatusNotFound)
		return
	}

	if err := h.service.Delete(ctx, id, userID); err != nil {
		h.logger.Error("cannot delete link", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(res, http.StatusOK, map[string]string{"message": "URL deleted successfully"})
}
