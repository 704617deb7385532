package service

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ddegtyarev/linkpulse/internal/models"
	"github.com/ddegtyarev/linkpulse/internal/storage"
	"github.com/ddegtyarev/linkpulse/internal/worker"
)

// LinkService ties together code generation, resolution, click recording
// and analytics over one storage backend.
type LinkService struct {
	store    storage.Store
	gen      *CodeGenerator
	resolver *LinkResolver
	logger   *zap.Logger
	baseURL  string
	clicks   chan<- storage.ClickRecord
}

// NewLink builds the service and starts the background click worker.
func NewLink(store storage.Store, gen *CodeGenerator, resolver *LinkResolver, logger *zap.Logger, baseURL string) *LinkService {
	w := worker.NewClickFlushWorker(logger, store)
	in := w.GetInChannel()

	service := LinkService{
		store:    store,
		gen:      gen,
		resolver: resolver,
		logger:   logger,
		baseURL:  baseURL,
		clicks:   in,
	}

	go w.Flush()

	return &service
}

func (s *LinkService) PingContext(ctx context.Context) error {
	return s.store.PingContext(ctx)
}

// Create validates the destination, generates a unique code and persists
// the link. Each loop iteration is one attempt: a taken code, or an
// insert losing the check-then-insert race to a concurrent creation,
// both consume an attempt and draw a fresh code.
func (s *LinkService) Create(ctx context.Context, req models.ShortenRequest, userID string) (*storage.LinkRecord, error) {
	u, err := url.ParseRequestURI(req.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidURL
	}

	for attempt := 0; attempt < CodeAttempts; attempt++ {
		code, err := s.gen.Generate()
		if err != nil {
			return nil, err
		}

		unique, err := s.gen.IsUnique(ctx, code)
		if err != nil {
			return nil, err
		}
		if !unique {
			continue
		}

		link, err := s.store.CreateLink(ctx, storage.LinkRecord{
			Code:        code,
			OriginalURL: req.URL,
			UserID:      userID,
			Title:       req.Title,
			Description: req.Description,
			IsActive:    true,
			ExpiresAt:   req.ExpiresAt,
		})
		if errors.Is(err, storage.ErrDuplicateCode) {
			s.logger.Info("short code collided on insert, retrying", zap.String("code", code))
			continue
		}

		return link, err
	}

	return nil, ErrExhaustedAttempts
}

// Resolve returns the destination link for a code.
func (s *LinkService) Resolve(ctx context.Context, code string) (*storage.LinkRecord, error) {
	return s.resolver.Resolve(ctx, code)
}

// RecordClick classifies the request and hands the click to the
// background worker. It never blocks: when the buffer is full the event
// is dropped with a warning, so a slow store cannot delay a redirect.
func (s *LinkService) RecordClick(link *storage.LinkRecord, info RequestInfo) {
	classified := Classify(info)

	record := storage.ClickRecord{
		ID:         uuid.New().String(),
		LinkID:     link.ID,
		ClickedAt:  time.Now(),
		IPAddress:  classified.IPAddress,
		UserAgent:  info.UserAgent,
		Referer:    info.Referer,
		Browser:    classified.Browser,
		DeviceType: classified.DeviceType,
	}

	select {
	case s.clicks <- record:
	default:
		s.logger.Warn("click buffer full, dropping event", zap.String("link_id", link.ID))
	}
}

// LinksByOwner lists the user's links with click counts, newest first.
func (s *LinkService) LinksByOwner(ctx context.Context, userID string) ([]models.LinkResponse, error) {
	links, err := s.store.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.LinkResponse, 0, len(links))
	for _, link := range links {
		result = append(result, s.toResponse(link))
	}

	return result, nil
}

// Update mutates title, description and active state of an owned link.
// A link owned by someone else is storage.ErrNotFound.
func (s *LinkService) Update(ctx context.Context, id, userID string, req models.UpdateLinkRequest) (*models.LinkResponse, error) {
	upd := storage.LinkUpdate{
		Title:       req.Title,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		upd.IsActive = *req.IsActive
	}

	link, err := s.store.UpdateLink(ctx, id, userID, upd)
	if err != nil {
		return nil, err
	}

	s.resolver.Invalidate(ctx, link.Code)

	resp := s.toResponse(storage.LinkWithClicks{LinkRecord: *link})
	return &resp, nil
}

// Delete removes an owned link. Deleting a link that does not exist or
// belongs to someone else is a no-op, matching the ownership-scoped
// delete of the storage layer.
func (s *LinkService) Delete(ctx context.Context, id, userID string) error {
	code, err := s.store.DeleteLink(ctx, id, userID)
	if err != nil {
		return err
	}

	s.resolver.Invalidate(ctx, code)

	return nil
}

// Analytics aggregates the click history of an owned link.
func (s *LinkService) Analytics(ctx context.Context, id, userID string) (*models.AnalyticsSnapshot, error) {
	link, err := s.store.FindByIDAndOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	clicks, err := s.store.ClicksByLink(ctx, link.ID)
	if err != nil {
		return nil, err
	}

	snapshot := Aggregate(link, clicks, time.Now())
	return &snapshot, nil
}

// Stats returns service-wide counters for the internal endpoint.
func (s *LinkService) Stats(ctx context.Context) (storage.Stats, error) {
	return s.store.Stats(ctx)
}

// ShortURL joins the public base URL with a code.
func (s *LinkService) ShortURL(code string) string {
	return s.baseURL + "/" + code
}

func (s *LinkService) toResponse(link storage.LinkWithClicks) models.LinkResponse {
	return models.LinkResponse{
		ID:          link.ID,
		Code:        link.Code,
		OriginalURL: link.OriginalURL,
		ShortURL:    s.ShortURL(link.Code),
		Title:       link.Title,
		Description: link.Description,
		IsActive:    link.IsActive,
		ExpiresAt:   link.ExpiresAt,
		CreatedAt:   link.CreatedAt,
		UpdatedAt:   link.UpdatedAt,
		ClickCount:  link.ClickCount,
	}
}
