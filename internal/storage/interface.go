// Package storage defines the persisted data model for links and clicks
// and the Store contract implemented by the in-memory and postgres backends.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a link does not exist, is inactive, or is
// not owned by the requesting user. The three cases are deliberately
// indistinguishable so that existence is not leaked.
var ErrNotFound = errors.New("link not found")

// ErrDuplicateCode is returned when an insert violates the uniqueness of
// the short code. Callers treat it like a failed uniqueness check and
// retry with a fresh code.
var ErrDuplicateCode = errors.New("short code already exists")

type Store interface {
	CreateLink(context.Context, LinkRecord) (*LinkRecord, error)
	CodeExists(context.Context, string) (bool, error)
	FindActiveByCode(context.Context, string) (*LinkRecord, error)
	FindByIDAndOwner(ctx context.Context, id, userID string) (*LinkRecord, error)
	FindByOwner(ctx context.Context, userID string) ([]LinkWithClicks, error)
	UpdateLink(ctx context.Context, id, userID string, upd LinkUpdate) (*LinkRecord, error)
	DeleteLink(ctx context.Context, id, userID string) (string, error)
	WriteClicks(context.Context, []ClickRecord) error
	ClicksByLink(ctx context.Context, linkID string) ([]ClickRecord, error)
	Stats(context.Context) (Stats, error)
	PingContext(context.Context) error
}
