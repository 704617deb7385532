package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ddegtyarev/linkpulse/internal/app/service"
	"github.com/ddegtyarev/linkpulse/internal/middleware"
	"github.com/ddegtyarev/linkpulse/internal/models"
)

type PostHandler struct {
	service service.LinkServiceIface
	logger  *zap.Logger
}

func NewPost(s service.LinkServiceIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		service: s,
		logger:  l,
	}
}

// HandleShorten handles POST requests for URL shortening.
func (h *PostHandler) HandleShorten(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var request models.ShortenRequest

	err := decodeJSONBody(res, req, &request)
	if err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			http.Error(res, mr.msg, mr.status)
		} else {
			log.Print(err.Error())
			http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	if request.URL == "" {
		http.Error(res, "url is required", http.StatusBadRequest)
		return
	}

	// Anonymous creation is allowed; the JWT middleware usually supplies
	// an identity but its absence is not an error here.
	userID, _ := middleware.UserID(ctx)

	link, err := h.service.Create(ctx, request, userID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidURL) {
			http.Error(res, "invalid url format", http.StatusBadRequest)
			return
		}

		if errors.Is(err, service.ErrExhaustedAttempts) {
			h.logger.Error("short code generation exhausted retries")
			http.Error(res, "failed to generate unique short code", http.StatusInternalServerError)
			return
		}

		h.logger.Info(fmt.Sprintf("unable to insert link: %s", err.Error()))
		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(res, http.StatusCreated, models.ShortenResponse{
		ID:          link.ID,
		Code:        link.Code,
		OriginalURL: link.OriginalURL,
		ShortURL:    h.service.ShortURL(link.Code),
		CreatedAt:   link.CreatedAt,
	})
}
