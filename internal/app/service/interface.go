package service

import (
	"context"

	"github.com/ddegtyarev/linkpulse/internal/models"
	"github.com/ddegtyarev/linkpulse/internal/storage"
)

//go:generate mockgen -source=interface.go -destination=../../mocks/mock_service.go -package=mocks

// LinkServiceIface is the surface the HTTP handlers depend on.
type LinkServiceIface interface {
	Create(ctx context.Context, req models.ShortenRequest, userID string) (*storage.LinkRecord, error)
	Resolve(ctx context.Context, code string) (*storage.LinkRecord, error)
	RecordClick(link *storage.LinkRecord, info RequestInfo)
	LinksByOwner(ctx context.Context, userID string) ([]models.LinkResponse, error)
	Update(ctx context.Context, id, userID string, req models.UpdateLinkRequest) (*models.LinkResponse, error)
	Delete(ctx context.Context, id, userID string) error
	Analytics(ctx context.Context, id, userID string) (*models.AnalyticsSnapshot, error)
	Stats(ctx context.Context) (storage.Stats, error)
	ShortURL(code string) string
	PingContext(ctx context.Context) error
}
