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
	"github.com/ddegtyarev/linkpulse/internal/storage"
)

type GetHandler struct {
	service service.LinkServiceIface
	logger  *zap.Logger
}

func NewGet(s service.LinkServiceIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		service: s,
		logger:  l,
	}
}

// Redirect resolves a short code and answers 302 to the destination.
// The click is recorded after the response headers are decided; a failed
// or slow click write can never degrade the redirect.
func (h *GetHandler) Redirect(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	code := chi.URLParam(req, "code")

	link, err := h.service.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, service.ErrExpired) {
			http.Error(res, "Short URL has expired", http.StatusGone)
			return
		}
		http.Error(res, "Short URL not found", http.StatusNotFound)
		return
	}

	h.service.RecordClick(link, service.RequestInfoFromHTTP(req))

	http.Redirect(res, req, link.OriginalURL, http.StatusFound)
}

// LinksByUser lists the authenticated user's links with click counts.
func (h *GetHandler) LinksByUser(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := middleware.UserID(req.Context())
	if !ok {
		http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	links, err := h.service.LinksByOwner(ctx, userID)
	if err != nil {
		h.logger.Error("cannot list links", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(res, http.StatusOK, links)
}

// Analytics returns the aggregated click history of an owned link.
func (h *GetHandler) Analytics(res http.ResponseWriter, req *http.Request) {
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

	snapshot, err := h.service.Analytics(ctx, id, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(res, "URL not found", http.StatusNotFound)
			return
		}
		h.logger.Error("cannot aggregate analytics", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(res, http.StatusOK, snapshot)
}

// PingDB probes store connectivity.
func (h *GetHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	if err := h.service.PingContext(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// InternalStats reports service-wide counters. Reachable only from the
// trusted subnet.
func (h *GetHandler) InternalStats(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	stats, err := h.service.Stats(ctx)
	if err != nil {
		h.logger.Error("cannot collect stats", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(res, http.StatusOK, stats)
}
